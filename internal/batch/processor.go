package batch

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Batch size limits.
const (
	DefaultBatchSize = 256
	MinBatchSize     = 1
	MaxBatchSize     = 1000
)

// Common batch processing errors.
var (
	ErrInvalidBatchSize = errors.New("batch size must be between 1 and 1000")
	ErrNilCallback      = errors.New("batch callback cannot be nil")
	ErrEmptyItems       = errors.New("items slice cannot be empty")
)

// Callback processes one batch. start is the index of batch[0] in the full
// slice, so callbacks can write results into a preallocated output slice.
type Callback[T any] func(ctx context.Context, batch []T, start int) error

// ProgressCallback is invoked after each completed batch.
type ProgressCallback func(snapshot Snapshot)

// Processor runs callbacks over fixed-size batches of a slice.
type Processor[T any] struct {
	batchSize  int
	onProgress ProgressCallback
}

// NewProcessor creates a processor with the given batch size.
func NewProcessor[T any](batchSize int) (*Processor[T], error) {
	if batchSize < MinBatchSize || batchSize > MaxBatchSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBatchSize, batchSize)
	}
	return &Processor[T]{batchSize: batchSize}, nil
}

// NewProcessorWithDefaults creates a processor with DefaultBatchSize.
func NewProcessorWithDefaults[T any]() *Processor[T] {
	return &Processor[T]{batchSize: DefaultBatchSize}
}

// WithProgressCallback sets a progress callback and returns p.
// The callback may be called from several goroutines in ProcessConcurrent.
func (p *Processor[T]) WithProgressCallback(callback ProgressCallback) *Processor[T] {
	p.onProgress = callback
	return p
}

// BatchSize returns the configured batch size.
func (p *Processor[T]) BatchSize() int {
	return p.batchSize
}

// Process runs callback over each batch in order and stops at the first error.
// Cancellation of ctx is checked between batches.
func (p *Processor[T]) Process(ctx context.Context, items []T, callback Callback[T]) error {
	if err := p.check(items, callback); err != nil {
		return err
	}

	bounds := p.CalculateBatches(len(items))
	progress := NewProgress(len(items), len(bounds))

	for i, b := range bounds {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := callback(ctx, items[b[0]:b[1]], b[0]); err != nil {
			return fmt.Errorf("batch %d failed: %w", i, err)
		}
		p.report(progress, b[1]-b[0])
	}

	return nil
}

// ProcessConcurrent runs up to maxConcurrency callbacks at once. The first
// error cancels the context passed to the remaining callbacks and is returned.
// Callbacks must not depend on batch order.
func (p *Processor[T]) ProcessConcurrent(
	ctx context.Context,
	items []T,
	callback Callback[T],
	maxConcurrency int,
) error {
	if err := p.check(items, callback); err != nil {
		return err
	}
	maxConcurrency = max(maxConcurrency, 1)

	bounds := p.CalculateBatches(len(items))
	progress := NewProgress(len(items), len(bounds))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrency)

	for i, b := range bounds {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			if err := callback(gCtx, items[b[0]:b[1]], b[0]); err != nil {
				return fmt.Errorf("batch %d failed: %w", i, err)
			}
			p.report(progress, b[1]-b[0])
			return nil
		})
	}

	return g.Wait()
}

// CalculateBatches returns the [start, end) bounds of each batch.
func (p *Processor[T]) CalculateBatches(totalItems int) [][2]int {
	if totalItems <= 0 {
		return nil
	}
	n := (totalItems + p.batchSize - 1) / p.batchSize
	bounds := make([][2]int, n)
	for i := range n {
		start := i * p.batchSize
		bounds[i] = [2]int{start, min(start+p.batchSize, totalItems)}
	}
	return bounds
}

func (p *Processor[T]) check(items []T, callback Callback[T]) error {
	if len(items) == 0 {
		return ErrEmptyItems
	}
	if callback == nil {
		return ErrNilCallback
	}
	return nil
}

func (p *Processor[T]) report(progress *Progress, n int) {
	snap := progress.Add(n)
	if p.onProgress != nil {
		p.onProgress(snap)
	}
}
