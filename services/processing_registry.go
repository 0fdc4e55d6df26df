package services

import "sync"

// ProcessingRegistry tracks the friend request IDs that currently have an
// accept or reject mutation in flight. An ID is present iff its mutation has
// started and not yet settled, so the panel can disable that row's controls
// and a duplicate dispatch can be refused.
type ProcessingRegistry struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewProcessingRegistry() *ProcessingRegistry {
	return &ProcessingRegistry{inFlight: make(map[string]struct{})}
}

// Begin marks a request as in flight. It returns false when the request is
// already being processed, in which case nothing is recorded.
func (r *ProcessingRegistry) Begin(requestID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.inFlight[requestID]; ok {
		return false
	}
	r.inFlight[requestID] = struct{}{}
	return true
}

// Finish removes a request unconditionally. Safe to call for an ID that was
// never registered.
func (r *ProcessingRegistry) Finish(requestID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.inFlight, requestID)
}

// IsProcessing reports whether a mutation for the request is in flight.
func (r *ProcessingRegistry) IsProcessing(requestID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.inFlight[requestID]
	return ok
}

// Len returns the number of requests currently in flight.
func (r *ProcessingRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.inFlight)
}
