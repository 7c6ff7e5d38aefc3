package registrar

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/registrar-client/internal/constants"
)

// Page is one fetched batch of a list resource.
type Page[T any] struct {
	Items []T
	// NextPage is the next page number announced by the server. It is only
	// consulted by the NextPageNumber convention; nil ends the sweep.
	NextPage *int
}

// PageFetcher fetches the page addressed by cursor.
type PageFetcher[T any] func(ctx context.Context, cursor int) (*Page[T], error)

// Continuation decides where a sweep starts and how it advances.
type Continuation interface {
	// Start returns the cursor of the first page.
	Start() int
	// Next returns the cursor of the following page, or false when the
	// sweep is complete.
	Next(cursor, itemCount int, nextPage *int) (int, bool)
}

// NextPageNumber follows an explicit, one-based next page number.
type NextPageNumber struct{}

// Start implements Continuation.
func (NextPageNumber) Start() int {
	return constants.FirstPage
}

// Next implements Continuation.
func (NextPageNumber) Next(_, _ int, nextPage *int) (int, bool) {
	if nextPage == nil {
		return 0, false
	}

	return *nextPage, true
}

// OffsetByCount advances the cursor by the number of items just received
// and stops on the first empty batch.
type OffsetByCount struct{}

// Start implements Continuation.
func (OffsetByCount) Start() int {
	return constants.FirstOffset
}

// Next implements Continuation.
func (OffsetByCount) Next(cursor, itemCount int, _ *int) (int, bool) {
	if itemCount == 0 {
		return 0, false
	}

	return cursor + itemCount, true
}

// PaginationOptions tunes a sweep.
type PaginationOptions struct {
	// MaxPages caps the number of fetches. Reaching the cap before the
	// listing ends fails the sweep. Zero means constants.DefaultMaxPages.
	MaxPages int
}

func (o *PaginationOptions) maxPages() int {
	if o == nil || o.MaxPages <= 0 {
		return constants.DefaultMaxPages
	}

	return o.MaxPages
}

// FetchAll runs one sweep and returns every item in cursor order. Pages are
// fetched strictly one after another. Any failure discards what was
// accumulated so far.
func FetchAll[T any](ctx context.Context, cont Continuation, fetch PageFetcher[T], options *PaginationOptions) ([]T, error) {
	var all []T

	err := sweep(ctx, cont, fetch, options, func(_ int, items []T) error {
		all = append(all, items...)

		return nil
	})
	if err != nil {
		return nil, err
	}

	if all == nil {
		all = []T{}
	}

	return all, nil
}

// PageResult is one element of a StreamPages channel.
type PageResult[T any] struct {
	Cursor int
	Items  []T
	Err    error
}

// StreamPages runs one sweep in a goroutine and delivers each page in cursor
// order. The channel is closed when the sweep ends; a failed sweep, canceled
// ones included, ends with exactly one result carrying Err, so a consumer
// that sees no error has seen the complete listing. Once ctx is canceled no
// further page is delivered. Consumers must receive until the channel is
// closed.
func StreamPages[T any](ctx context.Context, cont Continuation, fetch PageFetcher[T], options *PaginationOptions) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	go func() {
		defer close(results)

		err := sweep(ctx, cont, fetch, options, func(cursor int, items []T) error {
			err := ctx.Err()
			if err != nil {
				return fmt.Errorf("streaming page at cursor %d: %w", cursor, err)
			}

			select {
			case results <- PageResult[T]{Cursor: cursor, Items: items}:
				return nil
			case <-ctx.Done():
				return fmt.Errorf("streaming page at cursor %d: %w", cursor, ctx.Err())
			}
		})
		if err != nil {
			results <- PageResult[T]{Err: err}
		}
	}()

	return results
}

func sweep[T any](ctx context.Context, cont Continuation, fetch PageFetcher[T], options *PaginationOptions, emit func(int, []T) error) error {
	limit := options.maxPages()
	cursor := cont.Start()

	for fetched := 0; ; fetched++ {
		if fetched == limit {
			return fmt.Errorf("%w: %d", ErrPageLimitExceeded, limit)
		}

		err := ctx.Err()
		if err != nil {
			return fmt.Errorf("listing canceled after %d pages: %w", fetched, err)
		}

		page, err := fetch(ctx, cursor)
		if err != nil {
			return fmt.Errorf("fetching page at cursor %d: %w", cursor, err)
		}

		if page == nil {
			page = &Page[T]{}
		}

		err = emit(cursor, page.Items)
		if err != nil {
			return err
		}

		next, more := cont.Next(cursor, len(page.Items), page.NextPage)
		if !more {
			return nil
		}

		if next <= cursor {
			return fmt.Errorf("%w: cursor %d followed by %d", ErrNoProgress, cursor, next)
		}

		cursor = next
	}
}
