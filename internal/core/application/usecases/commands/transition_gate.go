package commands

import (
	"errors"
	"sync"

	"railmeals/internal/core/domain/model/kernel"
)

// ErrTransitionInFlight is returned when a status transition is requested for
// an order that already has one unresolved. The first request must settle,
// whether it succeeds or fails, before the operator can submit another.
var ErrTransitionInFlight = errors.New("a status transition for this order is already in flight")

// TransitionGate serialises status transitions per order. Once a push request
// is sent there is no client-side abort, so the gate is the only protection
// against duplicate submissions racing each other to the upstream system.
//
// Transitions for different orders proceed independently; no ordering is
// enforced between them.
type TransitionGate struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewTransitionGate creates an empty gate.
func NewTransitionGate() *TransitionGate {
	return &TransitionGate{
		inFlight: make(map[string]struct{}),
	}
}

// Enter marks a transition for the order as in flight.
// Returns ErrTransitionInFlight when one is already unresolved.
func (g *TransitionGate) Enter(orderID kernel.UUID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := orderID.String()
	if _, busy := g.inFlight[key]; busy {
		return ErrTransitionInFlight
	}
	g.inFlight[key] = struct{}{}
	return nil
}

// Leave clears the in-flight mark for the order. Safe to call regardless of
// how the transition settled.
func (g *TransitionGate) Leave(orderID kernel.UUID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inFlight, orderID.String())
}
