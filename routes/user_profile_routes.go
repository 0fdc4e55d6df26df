package routes

import (
	"nutriquest_server/controllers"
	"nutriquest_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes registers all profile routes under `/api/profiles`
func RegisterUserProfileRoutes(router *mux.Router, profileService *services.UserProfileService) {
	controller := &controllers.UserProfileController{UserProfileService: profileService}

	profileRouter := router.PathPrefix("/api/profiles").Subrouter()
	profileRouter.HandleFunc("", controller.AddUserProfileHandler).Methods("POST")
	profileRouter.HandleFunc("/{userId}", controller.GetUserProfileHandler).Methods("GET")
	profileRouter.HandleFunc("/{userId}", controller.DeleteUserProfileHandler).Methods("DELETE")
}
