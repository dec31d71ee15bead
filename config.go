package qsim

import (
	"runtime"
	"time"
)

type Config struct {
	// Workers is the number of pool workers sampling shot batches.
	Workers           int
	// BatchSize is the number of shots one pool job draws.
	BatchSize         int
	// ParallelDimension is the operator dimension from which rows are
	// filled and multiplied on several goroutines.
	ParallelDimension int
	SchedulingTimeout time.Duration
}

func NewConfig() *Config {
	return &Config{
		Workers:           runtime.GOMAXPROCS(0),
		BatchSize:         4096,
		ParallelDimension: 64,
		SchedulingTimeout: 10 * time.Second,
	}
}

// orDefault fills zero fields from NewConfig so a partial Config is usable.
func (c *Config) orDefault() *Config {
	def := NewConfig()
	if c == nil {
		return def
	}

	out := *c
	if out.Workers <= 0 {
		out.Workers = def.Workers
	}
	if out.BatchSize <= 0 {
		out.BatchSize = def.BatchSize
	}
	if out.ParallelDimension <= 0 {
		out.ParallelDimension = def.ParallelDimension
	}
	if out.SchedulingTimeout <= 0 {
		out.SchedulingTimeout = def.SchedulingTimeout
	}
	return &out
}
