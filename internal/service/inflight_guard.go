package service

import (
	"errors"
	"sync"
)

// ErrRequestInFlight is returned when the same actor already has a request
// outstanding for the same record.
var ErrRequestInFlight = errors.New("request already in progress")

// InFlightGuard refuses a second concurrent request from one actor for one
// record, the server-side form of disabling a row's button while it waits.
// Different actors are never coordinated; the backend arbitrates between them.
type InFlightGuard struct {
	mu      sync.Mutex
	pending map[string]struct{}
}

func NewInFlightGuard() *InFlightGuard {
	return &InFlightGuard{pending: make(map[string]struct{})}
}

// Acquire marks (actorID, recordID) busy. The returned release must be called
// once the request finishes.
func (g *InFlightGuard) Acquire(actorID, recordID string) (release func(), err error) {
	key := actorID + "\x00" + recordID

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.pending[key]; busy {
		return nil, ErrRequestInFlight
	}
	g.pending[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.pending, key)
			g.mu.Unlock()
		})
	}, nil
}
