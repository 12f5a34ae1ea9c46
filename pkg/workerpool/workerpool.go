// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Map runs fn over items with at most workerCount goroutines and returns the results
// in input order. The first error cancels the remaining work and is returned.
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) (R, error),
) ([]R, error) {
	if len(items) == 0 {
		return nil, ctx.Err()
	}
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > len(items) {
		workerCount = len(items)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]R, len(items))
	tasks := make(chan int, workerCount)
	errs := make(chan error, workerCount)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case idx, ok := <-tasks:
					if !ok {
						return
					}
					res, err := fn(ctx, items[idx])
					if err != nil {
						select {
						case errs <- err:
						default:
						}
						cancel()
						return
					}
					results[idx] = res
				}
			}
		}()
	}

	go func() {
		defer close(tasks)
		for idx := range items {
			select {
			case <-ctx.Done():
				return
			case tasks <- idx:
			}
		}
	}()

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
