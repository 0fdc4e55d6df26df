package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"nutriquest_server/models"
	"nutriquest_server/services"

	"github.com/gorilla/mux"
)

// InsightsProvider produces insight snapshots. InsightsService is the
// production implementation.
type InsightsProvider interface {
	GetInsights(ctx context.Context, userID string) (*models.SocialInsights, error)
}

// InsightsController handles HTTP requests for the social insights dashboard
type InsightsController struct {
	Insights InsightsProvider

	// OnRefresh and OnRecommendationClick are pass-through hooks for the
	// embedding application. Both optional.
	OnRefresh             func(userID string)
	OnRecommendationClick func(recommendation models.Recommendation)
}

// GetInsightsHandler returns the raw snapshot for a user
func (c *InsightsController) GetInsightsHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	snapshot, err := c.Insights.GetInsights(r.Context(), userID)
	if err != nil {
		http.Error(w, `{"error": "Failed to fetch insights"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snapshot)
}

// GetDashboardHandler returns the rendered five-tab dashboard. A failed fetch
// still responds 200 with an error card carrying the retry affordance.
func (c *InsightsController) GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var dashboard services.DashboardView
	snapshot, err := c.Insights.GetInsights(r.Context(), userID)
	if err != nil {
		log.Printf("❌ Failed to fetch insights for %s: %v", userID, err)
		dashboard = services.BuildDashboard(nil, false, "Unable to load social insights")
	} else {
		dashboard = services.BuildDashboard(snapshot, false, "")
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dashboard)
}

// RefreshDashboardHandler re-fetches the snapshot after invoking the refresh
// hook. This is the retry action behind the dashboard's error card.
func (c *InsightsController) RefreshDashboardHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	if c.OnRefresh != nil {
		c.OnRefresh(userID)
	}

	c.GetDashboardHandler(w, r)
}

// RecommendationClickHandler forwards a recommendation click to the embedding
// application. No internal side effect.
func (c *InsightsController) RecommendationClickHandler(w http.ResponseWriter, r *http.Request) {
	var recommendation models.Recommendation
	if err := json.NewDecoder(r.Body).Decode(&recommendation); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if c.OnRecommendationClick != nil {
		c.OnRecommendationClick(recommendation)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Recommendation click recorded"})
}
