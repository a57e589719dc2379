package sieve

import "sync"

// job is one unit of dispatched work: sieve one residue class's line
// end to end (C5 + C6 + C7) and stash its contribution wherever the
// caller closed over.
type job func()

// worker is one long-lived goroutine parked on a condition variable
// between batches. spec.md §4.8/§5 mandates this exact primitive
// shape — a persistent pool with explicit run/finish signaling and
// inline execution of the batch's last job — so it is implemented
// directly with sync.Mutex/sync.Cond rather than reached for via
// golang.org/x/sync/errgroup, which models one-shot fan-out/Wait, not
// workers parked across many batches (see DESIGN.md).
type worker struct {
	mu      sync.Mutex
	cond    *sync.Cond
	work    job
	hasWork bool
	quit    bool
	done    chan struct{}
}

func newWorker() *worker {
	w := &worker{done: make(chan struct{}, 1)}
	w.cond = sync.NewCond(&w.mu)
	go w.loop()
	return w
}

func (w *worker) loop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for {
		for !w.hasWork && !w.quit {
			w.cond.Wait()
		}
		if w.quit {
			return
		}
		work := w.work
		w.work = nil
		w.hasWork = false

		w.mu.Unlock()
		work()
		w.done <- struct{}{}
		w.mu.Lock()
	}
}

func (w *worker) assign(j job) {
	w.mu.Lock()
	w.work = j
	w.hasWork = true
	w.mu.Unlock()
	w.cond.Signal()
}

func (w *worker) stop() {
	w.mu.Lock()
	w.quit = true
	w.mu.Unlock()
	w.cond.Signal()
}

// workerPool is the fixed-size set of long-lived workers C8 dispatches
// batches of residue-class jobs to.
type workerPool struct {
	workers []*worker
}

func newWorkerPool(n int) *workerPool {
	if n < 1 {
		n = 1
	}
	p := &workerPool{workers: make([]*worker, n)}
	for i := range p.workers {
		p.workers[i] = newWorker()
	}
	return p
}

// runBatches dispatches jobs in groups of len(workers): every group's
// first len(group)-1 jobs run on parked workers, and the dispatching
// goroutine itself runs the group's last job inline rather than
// waking a worker for it, per spec.md §4.8.
func (p *workerPool) runBatches(jobs []job) {
	n := len(p.workers)
	for start := 0; start < len(jobs); start += n {
		end := start + n
		if end > len(jobs) {
			end = len(jobs)
		}
		batch := jobs[start:end]
		last := len(batch) - 1
		for i := 0; i < last; i++ {
			p.workers[i].assign(batch[i])
		}
		batch[last]()
		for i := 0; i < last; i++ {
			<-p.workers[i].done
		}
	}
}

func (p *workerPool) close() {
	for _, w := range p.workers {
		w.stop()
	}
}
