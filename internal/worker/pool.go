// Package worker provides a worker pool for running suite entries in parallel.
package worker

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chesscore/internal/suite"
)

// WorkItem is a suite entry queued for checking.
type WorkItem struct {
	Entry suite.Entry
	Index int // Position in the suite, used to restore order
}

// ProcessResult is the outcome of checking one entry.
type ProcessResult struct {
	Index  int
	Result suite.Result
	Error  error // Same as Result.Err; kept for callers that only need pass/fail
}

// ProcessFunc checks a single work item. Each call builds its own board, so
// workers never share position state.
type ProcessFunc func(ctx context.Context, item WorkItem) ProcessResult

// Pool manages a pool of workers for parallel entry checking.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup

	ctx     context.Context
	cancel  context.CancelFunc
	stopped atomic.Bool // Set by Stop for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a new worker pool with the specified number of workers and buffer size.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	return NewPoolWithOptions(processFunc, WithWorkers(numWorkers), WithBufferSize(bufferSize))
}

// NewPoolWithOptions creates a new worker pool using functional options.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines. Cancelling ctx has the same effect as Stop.
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(p.ctx, item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items and cancels the
// context passed to in-flight ones. Queued items are drained unprocessed.
func (p *Pool) Stop() {
	p.stopped.Store(true)
	if p.cancel != nil {
		p.cancel()
	}
}

// IsStopped returns true if the pool has been stopped or its context cancelled.
func (p *Pool) IsStopped() bool {
	if p.stopped.Load() {
		return true
	}
	return p.ctx != nil && p.ctx.Err() != nil
}

// Close closes the work channel and waits for all workers to finish.
// The result channel is closed once all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
	if p.cancel != nil {
		p.cancel()
	}
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// RunnerFunc adapts a suite runner to a ProcessFunc.
func RunnerFunc(runner *suite.Runner) ProcessFunc {
	return func(ctx context.Context, item WorkItem) ProcessResult {
		result := runner.Run(ctx, item.Entry)
		return ProcessResult{Index: item.Index, Result: result, Error: result.Err}
	}
}

// RunAll checks every entry on a pool of numWorkers and returns the results
// in suite order. With failFast the pool stops at the first failing entry and
// entries never checked are absent from the returned slice.
func RunAll(ctx context.Context, entries []suite.Entry, numWorkers int, failFast bool, processFunc ProcessFunc) []ProcessResult {
	bufferSize := len(entries)
	if bufferSize > 100 {
		bufferSize = 100
	}
	pool := NewPool(numWorkers, bufferSize, processFunc)
	pool.Start(ctx)

	go func() {
		for i, entry := range entries {
			if pool.IsStopped() {
				break
			}
			pool.Submit(WorkItem{Entry: entry, Index: i})
		}
		pool.Close()
	}()

	// results is only appended to from this single consumer goroutine.
	results := make([]ProcessResult, 0, len(entries))
	for result := range pool.Results() {
		results = append(results, result)
		if failFast && result.Error != nil {
			pool.Stop()
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results
}
