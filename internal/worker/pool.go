package worker

import (
	"context"
	"sync"
)

// Job represents a unit of work to be executed
type Job interface {
	Execute(ctx context.Context) Result
}

// Result represents the result of a job execution
type Result interface {
	GetError() error
}

// Pool executes jobs with bounded concurrency. Results come back in
// submission order regardless of completion order, so callers can
// merge them deterministically
type Pool struct {
	workers int
}

// NewPool creates a pool with the given concurrency
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// Run executes all jobs and returns one result per job, index-aligned
// with the input. Jobs that never start because the context was
// cancelled report the context error
func (p *Pool) Run(ctx context.Context, jobs []Job) []Result {
	if len(jobs) == 0 {
		return nil
	}

	results := make([]Result, len(jobs))
	var wg sync.WaitGroup

	// Semaphore bounds in-flight jobs
	semaphore := make(chan struct{}, p.workers)

	for i, job := range jobs {
		wg.Add(1)
		go func(idx int, j Job) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				results[idx] = errResult{err: err}
				return
			}

			select {
			case <-ctx.Done():
				results[idx] = errResult{err: ctx.Err()}
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			results[idx] = j.Execute(ctx)
		}(i, job)
	}

	wg.Wait()
	return results
}

// errResult stands in for jobs the pool could not run
type errResult struct {
	err error
}

func (r errResult) GetError() error {
	return r.err
}
