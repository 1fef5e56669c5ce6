// Package treefile loads tree definitions, and the run defaults that travel
// with them, from YAML or JSON files.
//
// A file looks like:
//
//	root:
//	  label: A
//	  h: 5
//	  children:
//	    - {label: B, h: 3, cost: 1}
//	    - {label: C, h: 0, cost: 4}
//	goals: [C]
//	limit: 2
//
// Priority is env > file > defaults. Environment overrides:
//
//	LVLTREE_GOALS      comma separated goal labels
//	LVLTREE_START      start label
//	LVLTREE_LIMIT      depth limit
//	LVLTREE_ALL_GOALS  true/false
package treefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvltree/tree"
)

// Sentinel errors.
var (
	// ErrParse is returned when the data is neither valid YAML nor valid JSON.
	ErrParse = errors.New("treefile: cannot parse tree file")

	// ErrInvalid is returned when a parsed file fails validation.
	ErrInvalid = errors.New("treefile: invalid tree file")
)

var validate = validator.New()

// NodeDef is one node of a tree definition together with its subtree.
type NodeDef struct {
	Label     string    `json:"label" yaml:"label" validate:"required,max=256"`
	Heuristic float64   `json:"h" yaml:"h"`
	PathCost  float64   `json:"cost" yaml:"cost"`
	Children  []NodeDef `json:"children,omitempty" yaml:"children,omitempty" validate:"dive"`
}

// File is a tree definition plus optional run defaults.
type File struct {
	Root     NodeDef  `json:"root" yaml:"root"`
	Goals    []string `json:"goals,omitempty" yaml:"goals,omitempty" validate:"omitempty,dive,required"`
	Start    string   `json:"start,omitempty" yaml:"start,omitempty"`
	Limit    int      `json:"limit,omitempty" yaml:"limit,omitempty" validate:"gte=0"`
	AllGoals bool     `json:"all_goals,omitempty" yaml:"all_goals,omitempty"`
}

// Load reads path, applies LVLTREE_* overrides and validates the result.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("treefile: read %s: %w", path, err)
	}
	f, err := decode(data)
	if err != nil {
		return nil, err
	}
	if err = applyEnv(f); err != nil {
		return nil, err
	}
	if err = f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// Parse decodes and validates data without consulting the environment.
func Parse(data []byte) (*File, error) {
	f, err := decode(data)
	if err != nil {
		return nil, err
	}
	if err = f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

func decode(data []byte) (*File, error) {
	var f File
	// Try YAML first, then JSON
	if err := yaml.Unmarshal(data, &f); err != nil {
		f = File{}
		if jsonErr := json.Unmarshal(data, &f); jsonErr != nil {
			return nil, fmt.Errorf("%w: YAML error: %v, JSON error: %v", ErrParse, err, jsonErr)
		}
	}

	return &f, nil
}

func applyEnv(f *File) error {
	if v, ok := os.LookupEnv("LVLTREE_GOALS"); ok && v != "" {
		f.Goals = f.Goals[:0]
		for _, g := range strings.Split(v, ",") {
			if g = strings.TrimSpace(g); g != "" {
				f.Goals = append(f.Goals, g)
			}
		}
	}
	if v, ok := os.LookupEnv("LVLTREE_START"); ok {
		f.Start = v
	}
	if v, ok := os.LookupEnv("LVLTREE_LIMIT"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: LVLTREE_LIMIT=%q: %v", ErrInvalid, v, err)
		}
		f.Limit = n
	}
	if v, ok := os.LookupEnv("LVLTREE_ALL_GOALS"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: LVLTREE_ALL_GOALS=%q: %v", ErrInvalid, v, err)
		}
		f.AllGoals = b
	}

	return nil
}

// Validate checks the struct tags and that labels are unique.
func (f *File) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	seen := make(map[string]bool)
	var dup string
	var scan func(n *NodeDef)
	scan = func(n *NodeDef) {
		if dup != "" {
			return
		}
		if seen[n.Label] {
			dup = n.Label
			return
		}
		seen[n.Label] = true
		for i := range n.Children {
			scan(&n.Children[i])
		}
	}
	scan(&f.Root)
	if dup != "" {
		return fmt.Errorf("%w: duplicate label %q", ErrInvalid, dup)
	}

	return nil
}

// Build materializes the definition as a tree.Tree, inserting nodes in
// pre-order so children keep their file order.
func (f *File) Build() (*tree.Tree, error) {
	t := tree.New()
	if _, err := t.CreateRoot(f.Root.Label, f.Root.Heuristic, f.Root.PathCost); err != nil {
		return nil, fmt.Errorf("treefile: root %q: %w", f.Root.Label, err)
	}

	var insert func(parent string, defs []NodeDef) error
	insert = func(parent string, defs []NodeDef) error {
		for _, d := range defs {
			if _, err := t.InsertChild(parent, d.Label, d.Heuristic, d.PathCost); err != nil {
				return fmt.Errorf("treefile: node %q under %q: %w", d.Label, parent, err)
			}
			if err := insert(d.Label, d.Children); err != nil {
				return err
			}
		}
		return nil
	}
	if err := insert(f.Root.Label, f.Root.Children); err != nil {
		return nil, err
	}

	return t, nil
}

// FromTree captures t as a definition with no run defaults.
// It returns tree.ErrEmptyTree for a rootless tree.
func FromTree(t *tree.Tree) (*File, error) {
	root := t.Root()
	if root == nil {
		return nil, tree.ErrEmptyTree
	}

	var def func(n *tree.Node) NodeDef
	def = func(n *tree.Node) NodeDef {
		d := NodeDef{Label: n.Label, Heuristic: n.Heuristic, PathCost: n.PathCost}
		for _, c := range n.Children() {
			d.Children = append(d.Children, def(c))
		}
		return d
	}

	return &File{Root: def(root)}, nil
}

// Marshal encodes f as YAML.
func (f *File) Marshal() ([]byte, error) {
	return yaml.Marshal(f)
}
