package workers

import "sync"

// Workers aggregates background workers and starts them in order.
type Workers struct {
	workers []Worker
}

func NewWorkers(list ...Worker) *Workers {
	return &Workers{workers: list}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Job is one unit of background work.
type Job func()

// Runner executes submitted jobs strictly one at a time, in submission
// order, on a single goroutine. File batches are destructive, so two of
// them must never overlap; funneling every batch through one Runner is what
// enforces that.
type Runner struct {
	jobs chan Job

	mu      sync.Mutex
	started bool
	stopped bool
	wg      sync.WaitGroup
}

// NewRunner returns a Runner with the given submission queue capacity.
func NewRunner(queue int) *Runner {
	return &Runner{jobs: make(chan Job, queue)}
}

// Run starts the worker goroutine. It implements [Worker] and is safe to
// call more than once; only the first call starts the loop.
func (r *Runner) Run() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started {
		return
	}
	r.started = true

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		for job := range r.jobs {
			job()
		}
	}()
}

// Submit queues job for execution. It reports false when the runner has
// been stopped.
func (r *Runner) Submit(job Job) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return false
	}
	r.jobs <- job
	return true
}

// Do queues job and returns a channel that is closed once the job has
// finished. The caller can block on it from its own goroutine. A closed
// channel is returned immediately when the runner has been stopped, with
// the job never run.
func (r *Runner) Do(job Job) <-chan struct{} {
	done := make(chan struct{})
	ok := r.Submit(func() {
		defer close(done)
		job()
	})
	if !ok {
		close(done)
	}
	return done
}

// Stop rejects further submissions, waits for already queued jobs to finish
// and releases the worker goroutine.
func (r *Runner) Stop() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	close(r.jobs)
	r.mu.Unlock()

	r.wg.Wait()
}
