package search

import (
	"context"
	"fmt"
)

// Run steps s until it is terminal and returns its Result.
//
// onStep, if non-nil, sees every StepEvent; returning an error aborts the
// run. ctx is checked between steps, which is the only way a caller-side
// deadline reaches a search: the strategies themselves never block.
func Run(ctx context.Context, s Searcher, onStep func(StepEvent) error) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	for !s.Done() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		ev, err := s.Step()
		if err != nil {
			return nil, err
		}
		if onStep != nil {
			if err = onStep(ev); err != nil {
				return nil, fmt.Errorf("search: step callback at %q: %w", ev.Node, err)
			}
		}
	}

	return s.Result()
}
