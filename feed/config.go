package feed

import (
	"time"
)

// Config holds trajectory service settings
type Config struct {
	Address      string
	ReadTimeout  time.Duration // idle limit between requests on one connection
	WriteTimeout time.Duration
	MaxSteps     int
}

// DefaultConfig returns the stock service settings
func DefaultConfig() *Config {
	return &Config{
		Address:      ":7777",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Second,
		MaxSteps:     4096,
	}
}
