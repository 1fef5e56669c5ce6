package bfs_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvltree/bfs"
	"github.com/katalvlaran/lvltree/search"
	"github.com/katalvlaran/lvltree/tree"
)

// ExampleNew finds the shallowest exit of a small maze tree and prints
// the full traversal next to the path.
func ExampleNew() {
	t := tree.New()
	t.CreateRoot("entry", 0, 0)
	t.InsertChild("entry", "hall", 0, 1)
	t.InsertChild("entry", "stairs", 0, 1)
	t.InsertChild("hall", "kitchen", 0, 1)
	t.InsertChild("stairs", "exit", 0, 1)

	s, err := bfs.New(t, []string{"exit"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, _ := search.Run(context.Background(), s, nil)
	fmt.Println(res.Order)
	fmt.Println(res.Paths["exit"])
	// Output:
	// [entry hall stairs kitchen exit]
	// [entry stairs exit]
}
