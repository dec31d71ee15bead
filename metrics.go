package qsim

import (
	"slices"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"
)

type Metrics struct {
	mu           sync.RWMutex
	WorkerCount  int
	JobQueueSize int
	TotalJobTime time.Duration
	JobCount     int64
	FailedJobs   int64

	AverageJobLatency time.Duration
	P95JobLatency     time.Duration
	P99JobLatency     time.Duration
	JobSuccessRate    float64

	SchedulingFailures int64

	latencies  []time.Duration
	windowSize int
}

func newMetrics() *Metrics {
	return &Metrics{
		latencies:  make([]time.Duration, 0, 1000), // last 1000 jobs
		windowSize: 1000,
	}
}

func (m *Metrics) recordJobExecution(startTime time.Time, success bool) {
	duration := time.Since(startTime)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.TotalJobTime += duration
	m.JobCount++
	if !success {
		m.FailedJobs++
	}
	m.JobSuccessRate = float64(m.JobCount-m.FailedJobs) / float64(m.JobCount)

	m.updateLatencyPercentiles(duration)
}

func (m *Metrics) updateLatencyPercentiles(duration time.Duration) {
	m.AverageJobLatency = m.TotalJobTime / time.Duration(m.JobCount)

	m.latencies = append(m.latencies, duration)
	if len(m.latencies) > m.windowSize {
		m.latencies = m.latencies[1:]
	}

	sorted := make([]float64, len(m.latencies))
	for i, latency := range m.latencies {
		sorted[i] = float64(latency)
	}
	slices.Sort(sorted)

	m.P95JobLatency = time.Duration(stat.Quantile(0.95, stat.Empirical, sorted, nil))
	m.P99JobLatency = time.Duration(stat.Quantile(0.99, stat.Empirical, sorted, nil))
}

func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"worker_count":        m.WorkerCount,
		"queue_size":          m.JobQueueSize,
		"job_count":           m.JobCount,
		"failed_jobs":         m.FailedJobs,
		"success_rate":        m.JobSuccessRate,
		"scheduling_failures": m.SchedulingFailures,
		"avg_latency":         m.AverageJobLatency.Milliseconds(),
		"p95_latency":         m.P95JobLatency.Milliseconds(),
		"p99_latency":         m.P99JobLatency.Milliseconds(),
	}
}
