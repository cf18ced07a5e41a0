package app

import (
	"context"
	"sync"
)

// Outcome is a settled result of a single fan-out task.
type Outcome[T any, R any] struct {
	Input T
	Value R
	Err   error
}

// SettleAll runs fn for every input concurrently.
// Outcomes are sent in completion order, not in input order. Returned chan is closed after every task settled.
// Failures never stop other tasks; filtering is left to the consumer.
func SettleAll[T any, R any](ctx context.Context, inputs []T, fn func(context.Context, T) (R, error)) <-chan Outcome[T, R] {
	outcomes := make(chan Outcome[T, R], len(inputs))

	var wg sync.WaitGroup
	for _, in := range inputs {
		wg.Add(1)
		go func(in T) {
			defer wg.Done()

			v, err := fn(ctx, in)
			outcomes <- Outcome[T, R]{
				Input: in,
				Value: v,
				Err:   err,
			}
		}(in)
	}

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	return outcomes
}
