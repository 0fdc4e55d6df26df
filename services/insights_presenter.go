package services

import "nutriquest_server/models"

// ✅ Dashboard Tabs (default is overview)
const (
	DashboardTabOverview   = "overview"
	DashboardTabEngagement = "engagement"
	DashboardTabGrowth     = "growth"
	DashboardTabContent    = "content"
	DashboardTabNetwork    = "network"
)

// ✅ Trend Icons
const (
	IconTrendUp   = "trending-up"
	IconTrendDown = "trending-down"
	IconTrendFlat = "minus"
)

// ✅ Trend Colors
const (
	ColorGreen = "green"
	ColorRed   = "red"
	ColorGray  = "gray"
)

// MetricView is a metric row with its trend iconography resolved.
type MetricView struct {
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	ChangePct float64 `json:"changePct"`
	Trend     string  `json:"trend"`
	Icon      string  `json:"icon"`
	Color     string  `json:"color"`
}

// DashboardTabView is one of the five dashboard tab views.
type DashboardTabView struct {
	Name    string       `json:"name"`
	Metrics []MetricView `json:"metrics"`
}

// ErrorCardView replaces the dashboard when the insights fetch failed.
type ErrorCardView struct {
	Message string `json:"message"`
	Retry   bool   `json:"retry"`
}

// DashboardView is the rendered insights dashboard.
type DashboardView struct {
	ActiveTab       string                  `json:"activeTab"`
	Loading         bool                    `json:"loading"` // drives the refresh spinner only, never gates the view
	Error           *ErrorCardView          `json:"error,omitempty"`
	Tabs            []DashboardTabView      `json:"tabs,omitempty"`
	Recommendations []models.Recommendation `json:"recommendations,omitempty"`
	GeneratedAt     string                  `json:"generatedAt,omitempty"`
}

// TrendIcon maps a trend to its icon. Total: stable and any unrecognized
// value get the neutral icon.
func TrendIcon(trend string) string {
	switch trend {
	case models.TrendIncreasing:
		return IconTrendUp
	case models.TrendDecreasing:
		return IconTrendDown
	default:
		return IconTrendFlat
	}
}

// TrendColor maps a trend to its color, with the same fallback as TrendIcon.
func TrendColor(trend string) string {
	switch trend {
	case models.TrendIncreasing:
		return ColorGreen
	case models.TrendDecreasing:
		return ColorRed
	default:
		return ColorGray
	}
}

// BuildDashboard renders an insights snapshot into the five-tab dashboard
// view. A non-empty errMsg yields an error card with a retry affordance
// instead of the tabs.
func BuildDashboard(snapshot *models.SocialInsights, loading bool, errMsg string) DashboardView {
	view := DashboardView{
		ActiveTab: DashboardTabOverview,
		Loading:   loading,
	}

	if errMsg != "" {
		view.Error = &ErrorCardView{Message: errMsg, Retry: true}
		return view
	}
	if snapshot == nil {
		return view
	}

	growth := renderMetrics(snapshot.Growth)
	engagement := renderMetrics(snapshot.Engagement)
	content := renderMetrics(snapshot.Content)
	network := renderMetrics(snapshot.Network)

	// Overview leads with the headline metric of every group.
	overview := make([]MetricView, 0, 4)
	for _, group := range [][]MetricView{growth, engagement, content, network} {
		if len(group) > 0 {
			overview = append(overview, group[0])
		}
	}

	view.Tabs = []DashboardTabView{
		{Name: DashboardTabOverview, Metrics: overview},
		{Name: DashboardTabEngagement, Metrics: engagement},
		{Name: DashboardTabGrowth, Metrics: growth},
		{Name: DashboardTabContent, Metrics: content},
		{Name: DashboardTabNetwork, Metrics: network},
	}
	view.Recommendations = snapshot.Recommendations
	view.GeneratedAt = snapshot.GeneratedAt
	return view
}

func renderMetrics(metrics []models.InsightMetric) []MetricView {
	views := make([]MetricView, 0, len(metrics))
	for _, metric := range metrics {
		views = append(views, MetricView{
			Label:     metric.Label,
			Value:     metric.Value,
			ChangePct: metric.ChangePct,
			Trend:     metric.Trend,
			Icon:      TrendIcon(metric.Trend),
			Color:     TrendColor(metric.Trend),
		})
	}
	return views
}
