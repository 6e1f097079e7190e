package arena

import (
	"sync/atomic"
)

//go:generate go tool mockgen -destination=./mocks/reporter_mock.go -package=mocks . HitReporter

// HitReporter receives one call per destroyed target
type HitReporter interface {
	RegisterHit()
}

// HitCounter is the hit tally handed to the world at construction
type HitCounter struct {
	hits atomic.Int64
}

func (c *HitCounter) RegisterHit() {
	c.hits.Add(1)
}

func (c *HitCounter) Hits() int64 {
	return c.hits.Load()
}
