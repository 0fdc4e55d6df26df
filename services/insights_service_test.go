package services

import (
	"testing"

	"nutriquest_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyTrend(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		expected string
	}{
		{name: "growth", current: 5, previous: 2, expected: models.TrendIncreasing},
		{name: "decline", current: 1, previous: 4, expected: models.TrendDecreasing},
		{name: "flat", current: 3, previous: 3, expected: models.TrendStable},
		{name: "both zero", current: 0, previous: 0, expected: models.TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyTrend(tt.current, tt.previous))
		})
	}
}

func TestChangePct(t *testing.T) {
	assert.Equal(t, 0.0, changePct(0, 0))
	assert.Equal(t, 100.0, changePct(5, 0))
	assert.Equal(t, 50.0, changePct(15, 10))
	assert.Equal(t, -50.0, changePct(5, 10))
}

func TestBuildRecommendations(t *testing.T) {
	t.Run("pending incoming drives a high priority item", func(t *testing.T) {
		recommendations := buildRecommendations(3, 0, 5)

		require.NotEmpty(t, recommendations)
		first := recommendations[0]
		assert.Equal(t, "respond-pending", first.ID)
		assert.Equal(t, models.PriorityHigh, first.Priority)
		assert.Equal(t, models.DifficultyEasy, first.Difficulty)
		assert.Contains(t, first.Title, "3 pending")
	})

	t.Run("fresh account is nudged to connect", func(t *testing.T) {
		recommendations := buildRecommendations(0, 0, 0)

		require.Len(t, recommendations, 1)
		assert.Equal(t, "first-friend", recommendations[0].ID)
		assert.Equal(t, models.PriorityMedium, recommendations[0].Priority)
	})

	t.Run("established account gets a challenge nudge", func(t *testing.T) {
		recommendations := buildRecommendations(0, 1, 4)

		require.Len(t, recommendations, 1)
		assert.Equal(t, "start-challenge", recommendations[0].ID)
		assert.Equal(t, models.DifficultyMedium, recommendations[0].Difficulty)
	})
}

func TestNewMetric(t *testing.T) {
	metric := newMetric("New friends (7d)", 4, 2)

	assert.Equal(t, "New friends (7d)", metric.Label)
	assert.Equal(t, 4.0, metric.Value)
	assert.Equal(t, 100.0, metric.ChangePct)
	assert.Equal(t, models.TrendIncreasing, metric.Trend)
}
