package models

// InsightMetric is a single aggregated counter with its recent direction.
type InsightMetric struct {
	Label     string  `dynamodbav:"label" json:"label"`
	Value     float64 `dynamodbav:"value" json:"value"`
	ChangePct float64 `dynamodbav:"changePct" json:"changePct"`
	Trend     string  `dynamodbav:"trend" json:"trend"` // "increasing", "decreasing", "stable"
}

// Recommendation is a prioritized suggestion surfaced on the insights
// dashboard. Clicking one is a pass-through notification to the embedding app.
type Recommendation struct {
	ID          string `dynamodbav:"id" json:"id"`
	Title       string `dynamodbav:"title" json:"title"`
	Description string `dynamodbav:"description,omitempty" json:"description,omitempty"`
	Priority    string `dynamodbav:"priority" json:"priority"`     // "high", "medium", "low"
	Difficulty  string `dynamodbav:"difficulty" json:"difficulty"` // "easy", "medium", "hard"
}

// SocialInsights is an immutable point-in-time aggregation of a user's social
// metrics. Snapshots are read-only once generated; a fresh fetch produces a
// fresh snapshot.
type SocialInsights struct {
	UserID          string           `dynamodbav:"userId" json:"userId"` // Partition Key (PK)
	GeneratedAt     string           `dynamodbav:"generatedAt" json:"generatedAt"`
	Growth          []InsightMetric  `dynamodbav:"growth" json:"growth"`
	Engagement      []InsightMetric  `dynamodbav:"engagement" json:"engagement"`
	Content         []InsightMetric  `dynamodbav:"content" json:"content"`
	Network         []InsightMetric  `dynamodbav:"network" json:"network"`
	Recommendations []Recommendation `dynamodbav:"recommendations" json:"recommendations"`
}

// ✅ Define table name for precomputed insight snapshots
const SocialInsightsTable = "SocialInsights"
