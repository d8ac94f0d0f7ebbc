package model

import "time"

// Config carries the solver settings of a single Build call.
type Config struct {
	TimeLimit time.Duration
	Workers   int
	Seed      *int64 // makes the returned schedule reproducible when set
}

func DefaultConfig() Config {
	return Config{
		TimeLimit: 10 * time.Second,
		Workers:   8,
	}
}
