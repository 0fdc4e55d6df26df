package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"nutriquest_server/models"
	"nutriquest_server/services"

	"github.com/gorilla/mux"
)

// RequestStore provides the request lookups and creation the handlers need.
// FriendRequestService is the production implementation.
type RequestStore interface {
	CreateRequest(ctx context.Context, sender, receiver models.UserRef, message string) (*models.FriendRequest, error)
	GetIncomingRequests(ctx context.Context, receiverID string) ([]models.FriendRequest, error)
	GetOutgoingRequests(ctx context.Context, senderID string) ([]models.FriendRequest, error)
	GetRequestByID(ctx context.Context, requestID string) (*models.FriendRequest, error)
}

// ProfileStore resolves the profile snapshots embedded into new requests.
type ProfileStore interface {
	GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error)
}

// FriendRequestController handles HTTP requests for the friend request panel
type FriendRequestController struct {
	Store     RequestStore
	Profiles  ProfileStore
	Processor *services.RequestProcessor
}

// SendRequestHandler creates a new pending friend request
func (c *FriendRequestController) SendRequestHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SenderID   string `json:"senderId"`
		ReceiverID string `json:"receiverId"`
		Message    string `json:"message,omitempty"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if payload.SenderID == "" || payload.ReceiverID == "" {
		http.Error(w, `{"error": "senderId and receiverId are required"}`, http.StatusBadRequest)
		return
	}

	sender, err := c.Profiles.GetUserProfile(r.Context(), payload.SenderID)
	if err != nil {
		http.Error(w, `{"error": "Sender profile not found"}`, http.StatusNotFound)
		return
	}
	receiver, err := c.Profiles.GetUserProfile(r.Context(), payload.ReceiverID)
	if err != nil {
		http.Error(w, `{"error": "Receiver profile not found"}`, http.StatusNotFound)
		return
	}

	request, err := c.Store.CreateRequest(r.Context(), sender.Ref(), receiver.Ref(), payload.Message)
	if err != nil {
		log.Printf("❌ Failed to create friend request: %v", err)
		http.Error(w, `{"error": "Failed to create friend request"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(request)
}

// GetIncomingRequestsHandler lists the requests addressed to a user
func (c *FriendRequestController) GetIncomingRequestsHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	requests, err := c.Store.GetIncomingRequests(r.Context(), userID)
	if err != nil {
		http.Error(w, `{"error": "Failed to fetch incoming requests"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(requests)
}

// GetOutgoingRequestsHandler lists the requests a user has sent
func (c *FriendRequestController) GetOutgoingRequestsHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	requests, err := c.Store.GetOutgoingRequests(r.Context(), userID)
	if err != nil {
		http.Error(w, `{"error": "Failed to fetch outgoing requests"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(requests)
}

// GetRequestsPanelHandler renders the two-tab panel view for a user
func (c *FriendRequestController) GetRequestsPanelHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	incoming, err := c.Store.GetIncomingRequests(r.Context(), userID)
	if err != nil {
		http.Error(w, `{"error": "Failed to fetch incoming requests"}`, http.StatusInternalServerError)
		return
	}
	outgoing, err := c.Store.GetOutgoingRequests(r.Context(), userID)
	if err != nil {
		http.Error(w, `{"error": "Failed to fetch outgoing requests"}`, http.StatusInternalServerError)
		return
	}

	panel := services.BuildRequestsPanel(incoming, outgoing, c.Processor.Registry, time.Now().UTC())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(panel)
}

// AcceptRequestHandler resolves a pending request to accepted
func (c *FriendRequestController) AcceptRequestHandler(w http.ResponseWriter, r *http.Request) {
	c.resolveRequest(w, r, c.Processor.Accept)
}

// RejectRequestHandler resolves a pending request to rejected
func (c *FriendRequestController) RejectRequestHandler(w http.ResponseWriter, r *http.Request) {
	c.resolveRequest(w, r, c.Processor.Reject)
}

// resolveRequest verifies the request is still pending before dispatching;
// the processor does not re-validate.
func (c *FriendRequestController) resolveRequest(w http.ResponseWriter, r *http.Request, dispatch func(context.Context, models.FriendRequest) error) {
	var payload struct {
		RequestID string `json:"requestId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.RequestID == "" {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	request, err := c.Store.GetRequestByID(r.Context(), payload.RequestID)
	if err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			http.Error(w, `{"error": "Friend request not found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error": "Failed to fetch friend request"}`, http.StatusInternalServerError)
		return
	}
	if request.Status != models.RequestStatusPending {
		http.Error(w, `{"error": "Friend request already resolved"}`, http.StatusConflict)
		return
	}

	if err := dispatch(r.Context(), *request); err != nil {
		switch {
		case errors.Is(err, services.ErrRequestInFlight):
			http.Error(w, `{"error": "Friend request is already being processed"}`, http.StatusConflict)
		case errors.Is(err, services.ErrRequestResolved):
			http.Error(w, `{"error": "Friend request already resolved"}`, http.StatusConflict)
		default:
			http.Error(w, `{"error": "Failed to process friend request"}`, http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Friend request processed successfully"})
}
