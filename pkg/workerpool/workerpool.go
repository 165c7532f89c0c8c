// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Map runs fn over items with workerCount workers and returns the
// results in input order. The first error cancels the remaining work
// and is returned.
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) (R, error),
) ([]R, error) {
	if workerCount < 1 {
		workerCount = 1
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
					r, err := fn(ctx, items[idx])
					if err != nil {
						select {
						case errs <- err:
						default:
						}
						cancel()
						return
					}
					results[idx] = r
				}
			}
		}()
	}

	go func() {
		for i := range items {
			select {
			case <-ctx.Done():
				close(tasks)
				return
			case tasks <- i:
			}
		}
		close(tasks)
	}()

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return nil, err
		}
	}

	// A canceled context with no worker error means the caller gave up.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
