package qsim

import "time"

// Job represents work to be done
type Job struct {
	ID        string
	Fn        func() (any, error)
	StartTime time.Time
	result    chan Result
}

// Result is what a Job produced, delivered once on the channel Schedule returned.
type Result struct {
	ID    string
	Value any
	Err   error
}
