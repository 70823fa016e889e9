package service

import (
	"strconv"
	"sync"
	"time"
)

// EventIDs hands out timestamp ids in Unix milliseconds. Ids from one
// generator strictly increase; two generators may collide.
type EventIDs struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewEventIDs() *EventIDs {
	return &EventIDs{now: time.Now}
}

func (g *EventIDs) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}
