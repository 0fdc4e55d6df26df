package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"nutriquest_server/models"
	"nutriquest_server/routes"
	"nutriquest_server/services"
	"nutriquest_server/socket"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize Services
	userProfileService := &services.UserProfileService{Dynamo: dynamoService}
	friendRequestService := &services.FriendRequestService{Dynamo: dynamoService}
	insightsService := &services.InsightsService{Dynamo: dynamoService}

	// Websocket hub for live request-processed notifications
	hub := socket.NewHub()

	processor := &services.RequestProcessor{
		Registry: services.NewProcessingRegistry(),
		Mutator:  friendRequestService,
		OnRequestProcessed: func(request models.FriendRequest, status string) {
			hub.Notify(request.SenderID, models.RequestProcessedNotification{
				Type:      models.NotificationTypeRequestProcessed,
				RequestID: request.RequestID,
				Status:    status,
				By:        request.Receiver,
			})
		},
	}

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to NutriQuest Social")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Websocket endpoint
	r.HandleFunc("/ws/{userId}", hub.ServeWS).Methods("GET")

	// Register routes
	routes.RegisterUserProfileRoutes(r, userProfileService)
	routes.RegisterFriendRequestRoutes(r, friendRequestService, userProfileService, processor)
	routes.RegisterInsightsRoutes(r, insightsService,
		func(userID string) {
			log.Printf("🔄 Insights refresh requested for %s", userID)
		},
		func(recommendation models.Recommendation) {
			log.Printf("💡 Recommendation clicked: %s (%s/%s)", recommendation.Title, recommendation.Priority, recommendation.Difficulty)
		},
	)
	routes.RegisterAvatarRoutes(r)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
