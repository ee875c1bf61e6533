// Package listing provides the state controller backing one list view:
// it owns rows, total, loading, and error state, refetches whenever the
// filter changes, and guarantees that a stale response never overwrites
// the result of a later request.
package listing

import (
	"context"
	"sync"
)

// FetchFunc loads one page of rows for a filter and returns the rows
// plus the exact unpaginated total.
type FetchFunc[T any, F any] func(ctx context.Context, filter F) ([]T, int, error)

// Snapshot is a point-in-time copy of the controller state.
type Snapshot[T any] struct {
	Rows    []T
	Total   int
	Loading bool
	Err     error
}

// Controller coordinates refetching for a single list view. Each
// dispatch is stamped with a monotonically increasing sequence number;
// a resolution is applied only while its stamp is still the latest, so
// the last-issued request always wins regardless of resolution order.
type Controller[T any, F any] struct {
	mu    sync.Mutex
	fetch FetchFunc[T, F]
	seq   uint64
	state Snapshot[T]
}

// NewController creates a controller around a fetch function.
func NewController[T any, F any](fetch FetchFunc[T, F]) *Controller[T, F] {
	return &Controller[T, F]{fetch: fetch}
}

// Apply records a new filter, enters loading, and issues the fetch on a
// new goroutine. The returned channel is closed once that particular
// dispatch has resolved, whether its result was applied or dropped as
// stale.
func (c *Controller[T, F]) Apply(ctx context.Context, filter F) <-chan struct{} {
	c.mu.Lock()
	c.seq++
	stamp := c.seq
	c.state.Loading = true
	c.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		rows, total, err := c.fetch(ctx, filter)

		c.mu.Lock()
		defer c.mu.Unlock()
		if stamp != c.seq {
			// A newer request was dispatched while this one was in
			// flight; its outcome owns the state now.
			return
		}
		c.state.Loading = false
		if err != nil {
			// Never a partial list next to an error banner.
			c.state.Rows = nil
			c.state.Total = 0
			c.state.Err = err
			return
		}
		c.state.Rows = rows
		c.state.Total = total
		c.state.Err = nil
	}()
	return done
}

// State returns a copy of the current controller state.
func (c *Controller[T, F]) State() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	s.Rows = append([]T(nil), c.state.Rows...)
	return s
}

// PageCount derives the page count for a page size from the last total.
func (c *Controller[T, F]) PageCount(pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return (c.state.Total + pageSize - 1) / pageSize
}
