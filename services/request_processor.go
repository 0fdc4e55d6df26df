package services

import (
	"context"
	"errors"
	"log"

	"nutriquest_server/models"
)

// ErrRequestInFlight is returned when an accept or reject is dispatched for a
// request that already has a mutation in flight.
var ErrRequestInFlight = errors.New("friend request is already being processed")

// RequestMutator persists the status transition for a single request.
// FriendRequestService is the production implementation.
type RequestMutator interface {
	AcceptRequest(ctx context.Context, requestID string) error
	RejectRequest(ctx context.Context, requestID string) error
}

// RequestProcessor dispatches accept/reject mutations with registry
// bookkeeping. The request ID is registered strictly before the mutation and
// released strictly after it settles, success or failure, so a row can never
// stay stuck disabled and the same request cannot be submitted twice while in
// flight. Distinct request IDs process concurrently and independently.
type RequestProcessor struct {
	Registry *ProcessingRegistry
	Mutator  RequestMutator

	// OnRequestProcessed is invoked exactly once after a successful
	// mutation, with the dispatched request and the status it resolved to.
	// Optional; list refreshes and notifications hang off this hook.
	OnRequestProcessed func(request models.FriendRequest, status string)
}

// Accept resolves a pending request to accepted. The caller is expected to
// have verified the request is pending.
func (p *RequestProcessor) Accept(ctx context.Context, request models.FriendRequest) error {
	return p.dispatch(ctx, request, models.RequestStatusAccepted, p.Mutator.AcceptRequest)
}

// Reject resolves a pending request to rejected.
func (p *RequestProcessor) Reject(ctx context.Context, request models.FriendRequest) error {
	return p.dispatch(ctx, request, models.RequestStatusRejected, p.Mutator.RejectRequest)
}

func (p *RequestProcessor) dispatch(ctx context.Context, request models.FriendRequest, status string, mutate func(context.Context, string) error) error {
	if !p.Registry.Begin(request.RequestID) {
		return ErrRequestInFlight
	}
	defer p.Registry.Finish(request.RequestID)

	if err := mutate(ctx, request.RequestID); err != nil {
		log.Printf("❌ Failed to resolve request %s to %s: %v", request.RequestID, status, err)
		return err
	}

	if p.OnRequestProcessed != nil {
		p.OnRequestProcessed(request, status)
	}
	return nil
}
