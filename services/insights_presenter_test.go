package services

import (
	"testing"

	"nutriquest_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrendIconAndColorAreTotal(t *testing.T) {
	tests := []struct {
		trend         string
		expectedIcon  string
		expectedColor string
	}{
		{trend: models.TrendIncreasing, expectedIcon: IconTrendUp, expectedColor: ColorGreen},
		{trend: models.TrendDecreasing, expectedIcon: IconTrendDown, expectedColor: ColorRed},
		{trend: models.TrendStable, expectedIcon: IconTrendFlat, expectedColor: ColorGray},
		{trend: "sideways-ish", expectedIcon: IconTrendFlat, expectedColor: ColorGray},
		{trend: "", expectedIcon: IconTrendFlat, expectedColor: ColorGray},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expectedIcon, TrendIcon(tt.trend), "icon for %q", tt.trend)
		assert.Equal(t, tt.expectedColor, TrendColor(tt.trend), "color for %q", tt.trend)
	}
}

func sampleSnapshot() *models.SocialInsights {
	return &models.SocialInsights{
		UserID:      "user-a",
		GeneratedAt: "2026-08-23T12:00:00Z",
		Growth: []models.InsightMetric{
			{Label: "New friends (7d)", Value: 4, ChangePct: 100, Trend: models.TrendIncreasing},
			{Label: "Total friends", Value: 12, Trend: models.TrendStable},
		},
		Engagement: []models.InsightMetric{
			{Label: "Requests received (7d)", Value: 2, ChangePct: -50, Trend: models.TrendDecreasing},
		},
		Content: []models.InsightMetric{
			{Label: "Shared meals (7d)", Value: 6, Trend: models.TrendIncreasing},
		},
		Network: []models.InsightMetric{
			{Label: "Pending invitations", Value: 1, Trend: models.TrendStable},
		},
		Recommendations: []models.Recommendation{
			{ID: "respond-pending", Title: "Respond to 1 pending friend request(s)", Priority: models.PriorityHigh, Difficulty: models.DifficultyEasy},
		},
	}
}

func TestBuildDashboardRendersFiveTabs(t *testing.T) {
	dashboard := BuildDashboard(sampleSnapshot(), false, "")

	assert.Equal(t, DashboardTabOverview, dashboard.ActiveTab)
	assert.Nil(t, dashboard.Error)
	require.Len(t, dashboard.Tabs, 5)

	names := make([]string, 0, 5)
	for _, tab := range dashboard.Tabs {
		names = append(names, tab.Name)
	}
	assert.Equal(t, []string{
		DashboardTabOverview,
		DashboardTabEngagement,
		DashboardTabGrowth,
		DashboardTabContent,
		DashboardTabNetwork,
	}, names)

	// Overview leads with the headline metric of each group.
	overview := dashboard.Tabs[0]
	require.Len(t, overview.Metrics, 4)
	assert.Equal(t, "New friends (7d)", overview.Metrics[0].Label)
	assert.Equal(t, IconTrendUp, overview.Metrics[0].Icon)
	assert.Equal(t, ColorGreen, overview.Metrics[0].Color)
	assert.Equal(t, "Requests received (7d)", overview.Metrics[1].Label)
	assert.Equal(t, ColorRed, overview.Metrics[1].Color)

	require.Len(t, dashboard.Recommendations, 1)
	assert.Equal(t, "respond-pending", dashboard.Recommendations[0].ID)
	assert.Equal(t, "2026-08-23T12:00:00Z", dashboard.GeneratedAt)
}

func TestBuildDashboardErrorCard(t *testing.T) {
	dashboard := BuildDashboard(nil, false, "Unable to load social insights")

	require.NotNil(t, dashboard.Error)
	assert.Equal(t, "Unable to load social insights", dashboard.Error.Message)
	assert.True(t, dashboard.Error.Retry)
	assert.Empty(t, dashboard.Tabs)
	assert.Empty(t, dashboard.Recommendations)
	assert.Equal(t, DashboardTabOverview, dashboard.ActiveTab)
}

func TestBuildDashboardLoadingDoesNotGateTheView(t *testing.T) {
	dashboard := BuildDashboard(sampleSnapshot(), true, "")

	// Loading only drives the refresh spinner; the tabs still render.
	assert.True(t, dashboard.Loading)
	assert.Len(t, dashboard.Tabs, 5)
}

func TestBuildDashboardNilSnapshot(t *testing.T) {
	dashboard := BuildDashboard(nil, false, "")

	assert.Nil(t, dashboard.Error)
	assert.Empty(t, dashboard.Tabs)
}

func TestBuildDashboardUnknownTrendsRenderNeutral(t *testing.T) {
	snapshot := &models.SocialInsights{
		Growth: []models.InsightMetric{{Label: "New friends (7d)", Value: 1, Trend: "volatile"}},
	}

	dashboard := BuildDashboard(snapshot, false, "")

	growthTab := dashboard.Tabs[2]
	require.Len(t, growthTab.Metrics, 1)
	assert.Equal(t, IconTrendFlat, growthTab.Metrics[0].Icon)
	assert.Equal(t, ColorGray, growthTab.Metrics[0].Color)
}
