package qsim

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Pool is a fixed set of workers draining a shared job queue.
type Pool struct {
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	jobs    chan Job
	metrics *Metrics
	config  *Config
	once    sync.Once

	// gate is held shared by Schedule and exclusively by drain, so no job
	// enters the queue once draining has started.
	gate sync.RWMutex
}

// NewPool starts config.Workers workers that live until ctx ends or Close is called.
func NewPool(ctx context.Context, config *Config) *Pool {
	config = config.orDefault()
	ctx, cancel := context.WithCancel(ctx)

	p := &Pool{
		ctx:     ctx,
		cancel:  cancel,
		jobs:    make(chan Job, config.Workers*10),
		metrics: newMetrics(),
		config:  config,
	}

	for i := 0; i < config.Workers; i++ {
		p.startWorker(i)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.collectMetrics()
	}()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.drain()
	}()

	return p
}

// Done is closed when the pool stops accepting and running jobs.
func (p *Pool) Done() <-chan struct{} {
	return p.ctx.Done()
}

/*
drain waits for the pool to stop, then answers every job still queued with
an error Result. Workers may take queued jobs concurrently; each job is
delivered by whichever side receives it.
*/
func (p *Pool) drain() {
	<-p.ctx.Done()

	p.gate.Lock()
	defer p.gate.Unlock()

	for {
		select {
		case job := <-p.jobs:
			job.result <- Result{ID: job.ID, Err: fmt.Errorf("job %s dropped: %w", job.ID, p.ctx.Err())}
		default:
			return
		}
	}
}

func (p *Pool) collectMetrics() {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.metrics.mu.Lock()
			p.metrics.JobQueueSize = len(p.jobs)
			p.metrics.mu.Unlock()
		}
	}
}

/*
Schedule queues fn and returns a channel that receives exactly one Result.
If the queue stays full past the scheduling timeout, or the pool stops before
a worker takes the job, the Result carries the error instead.
*/
func (p *Pool) Schedule(id string, fn func() (any, error)) chan Result {
	ch := make(chan Result, 1)

	job := Job{
		ID:        id,
		Fn:        fn,
		StartTime: time.Now(),
		result:    ch,
	}

	p.gate.RLock()
	defer p.gate.RUnlock()

	if err := p.ctx.Err(); err != nil {
		ch <- Result{ID: id, Err: fmt.Errorf("job %s not scheduled: %w", id, err)}
		return ch
	}

	timer := time.NewTimer(p.config.SchedulingTimeout)
	defer timer.Stop()

	select {
	case p.jobs <- job:
		return ch
	case <-p.ctx.Done():
		ch <- Result{ID: id, Err: fmt.Errorf("job %s not scheduled: %w", id, p.ctx.Err())}
	case <-timer.C:
		ch <- Result{ID: id, Err: fmt.Errorf("job %s scheduling timeout after %v", id, p.config.SchedulingTimeout)}

		p.metrics.mu.Lock()
		p.metrics.SchedulingFailures++
		p.metrics.mu.Unlock()
	}

	return ch
}

func (p *Pool) Metrics() *Metrics {
	return p.metrics
}

func (p *Pool) startWorker(id int) {
	worker := &Worker{id: id, pool: p}

	p.metrics.mu.Lock()
	p.metrics.WorkerCount++
	p.metrics.mu.Unlock()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		worker.run()
	}()

	log.Debug("started worker", "worker", id)
}

// Close stops the workers and waits for them. Jobs still queued get an error Result.
func (p *Pool) Close() {
	if p == nil {
		return
	}

	p.once.Do(func() {
		p.cancel()
		p.wg.Wait()
		log.Debug("pool closed", "jobs", p.metrics.ExportMetrics()["job_count"])
	})
}
