package routes

import (
	"nutriquest_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterAvatarRoutes sets up routes for avatar image storage
func RegisterAvatarRoutes(r *mux.Router) {
	r.HandleFunc("/api/avatars/upload-url", controllers.GenerateAvatarUploadURLHandler).Methods("POST")
	r.HandleFunc("/api/avatars/read-url", controllers.GetAvatarReadURLHandler).Methods("POST")
}
