package routes

import (
	"nutriquest_server/controllers"
	"nutriquest_server/models"
	"nutriquest_server/services"

	"github.com/gorilla/mux"
)

// RegisterInsightsRoutes registers all insights routes under `/api/insights`
func RegisterInsightsRoutes(router *mux.Router, insightsService *services.InsightsService, onRefresh func(string), onRecommendationClick func(models.Recommendation)) {
	controller := &controllers.InsightsController{
		Insights:              insightsService,
		OnRefresh:             onRefresh,
		OnRecommendationClick: onRecommendationClick,
	}

	insightsRouter := router.PathPrefix("/api/insights").Subrouter()
	insightsRouter.HandleFunc("/{userId}", controller.GetInsightsHandler).Methods("GET")                         // Raw snapshot
	insightsRouter.HandleFunc("/{userId}/dashboard", controller.GetDashboardHandler).Methods("GET")              // Rendered dashboard
	insightsRouter.HandleFunc("/{userId}/refresh", controller.RefreshDashboardHandler).Methods("POST")           // Retry action
	insightsRouter.HandleFunc("/recommendations/click", controller.RecommendationClickHandler).Methods("POST")   // Click pass-through
}
