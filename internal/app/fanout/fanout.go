// Package fanout runs one function per item on a bounded pool of goroutines
// and hands the outcomes back in input order. The board uses it to fetch
// every pipeline stage from the CRM API in parallel.
package fanout

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Result is the outcome for one item: Value on success, Err on failure.
type Result[T, R any] struct {
	Item  T
	Value R
	Err   error
}

// Run calls fn for each item with at most maxWorkers calls in flight and
// blocks until every call returns. Results keep input order. A maxWorkers
// below one is treated as one.
//
// Items still waiting for a worker when ctx is canceled record ctx.Err()
// and never reach fn; calls already running are left to honor ctx
// themselves.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[T, R] {
	results := make([]Result[T, R], len(items))
	if len(items) == 0 {
		return results
	}
	maxWorkers = max(maxWorkers, 1)

	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		results[i].Item = item
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i].Err = ctx.Err()
				return
			}

			results[i].Value, results[i].Err = fn(ctx, item)
		}()
	}

	wg.Wait()
	return results
}

// Collect returns the successful values in input order together with every
// failure joined into one error. Each failure is prefixed with its item.
func Collect[T, R any](results []Result[T, R]) ([]R, error) {
	values := make([]R, 0, len(results))
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%v: %w", r.Item, r.Err))
			continue
		}
		values = append(values, r.Value)
	}
	return values, errors.Join(errs...)
}
