package qsim

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Worker processes jobs
type Worker struct {
	id   int
	pool *Pool
}

func (w *Worker) run() {
	for {
		select {
		case <-w.pool.ctx.Done():
			return
		case job := <-w.pool.jobs:
			value, err := w.processJob(job)
			job.result <- Result{ID: job.ID, Value: value, Err: err}
		}
	}
}

func (w *Worker) processJob(job Job) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job %s panicked: %v", job.ID, r)
		}
		if err != nil {
			log.Warn("job failed", "worker", w.id, "job", job.ID, "err", err)
		}
		w.pool.metrics.recordJobExecution(job.StartTime, err == nil)
	}()

	return job.Fn()
}
