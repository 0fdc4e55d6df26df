package routes

import (
	"nutriquest_server/controllers"
	"nutriquest_server/services"

	"github.com/gorilla/mux"
)

// RegisterFriendRequestRoutes registers all friend-request routes under `/api/friends/requests`
func RegisterFriendRequestRoutes(router *mux.Router, requestService *services.FriendRequestService, profileService *services.UserProfileService, processor *services.RequestProcessor) {
	controller := &controllers.FriendRequestController{
		Store:     requestService,
		Profiles:  profileService,
		Processor: processor,
	}

	requestRouter := router.PathPrefix("/api/friends/requests").Subrouter()
	requestRouter.HandleFunc("", controller.SendRequestHandler).Methods("POST")                           // Send a request
	requestRouter.HandleFunc("/incoming/{userId}", controller.GetIncomingRequestsHandler).Methods("GET")  // Incoming list
	requestRouter.HandleFunc("/outgoing/{userId}", controller.GetOutgoingRequestsHandler).Methods("GET")  // Outgoing list
	requestRouter.HandleFunc("/panel/{userId}", controller.GetRequestsPanelHandler).Methods("GET")        // Rendered panel
	requestRouter.HandleFunc("/accept", controller.AcceptRequestHandler).Methods("POST")                  // Accept a request
	requestRouter.HandleFunc("/reject", controller.RejectRequestHandler).Methods("POST")                  // Reject a request
}
