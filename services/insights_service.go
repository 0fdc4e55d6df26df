package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"nutriquest_server/models"
	"nutriquest_server/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// InsightsService produces SocialInsights snapshots. A precomputed snapshot
// stored by the analytics pipeline wins; when none exists the service
// computes a baseline snapshot from the friend request tables so the
// dashboard is never empty for a fresh account.
type InsightsService struct {
	Dynamo *DynamoService
}

// GetInsights returns the insights snapshot for a user.
func (s *InsightsService) GetInsights(ctx context.Context, userID string) (*models.SocialInsights, error) {
	snapshot, err := s.getStoredSnapshot(ctx, userID)
	if err == nil {
		return snapshot, nil
	}
	log.Printf("⚠️ No stored insights for %s, computing baseline: %v", userID, err)
	return s.computeSnapshot(ctx, userID)
}

func (s *InsightsService) getStoredSnapshot(ctx context.Context, userID string) (*models.SocialInsights, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	item, err := s.Dynamo.GetItem(ctx, models.SocialInsightsTable, key)
	if err != nil {
		return nil, err
	}

	var snapshot models.SocialInsights
	if err := attributevalue.UnmarshalMap(item, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (s *InsightsService) computeSnapshot(ctx context.Context, userID string) (*models.SocialInsights, error) {
	tableName := models.FriendRequest{}.TableName()

	incoming, err := s.Dynamo.QueryItemsWithQueryInput(ctx, &dynamodb.QueryInput{
		TableName:              &tableName,
		KeyConditionExpression: aws.String("receiverId = :userId"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate incoming requests: %w", err)
	}

	outgoing, err := s.Dynamo.QueryItemsWithQueryInput(ctx, &dynamodb.QueryInput{
		TableName:              &tableName,
		IndexName:              aws.String(models.SenderIndex),
		KeyConditionExpression: aws.String("senderId = :userId"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate outgoing requests: %w", err)
	}

	now := time.Now().UTC()
	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)

	var pendingIncoming, pendingOutgoing, friends int
	var friendsThisWeek, friendsLastWeek float64
	var receivedThisWeek, receivedLastWeek float64

	for _, item := range incoming {
		status := utils.ExtractString(item, "status")
		createdAt := utils.ExtractTime(item, "createdAt")
		switch status {
		case models.RequestStatusPending:
			pendingIncoming++
		case models.RequestStatusAccepted:
			friends++
			bumpWindow(createdAt, weekAgo, twoWeeksAgo, &friendsThisWeek, &friendsLastWeek)
		}
		bumpWindow(createdAt, weekAgo, twoWeeksAgo, &receivedThisWeek, &receivedLastWeek)
	}

	for _, item := range outgoing {
		status := utils.ExtractString(item, "status")
		createdAt := utils.ExtractTime(item, "createdAt")
		switch status {
		case models.RequestStatusPending:
			pendingOutgoing++
		case models.RequestStatusAccepted:
			friends++
			bumpWindow(createdAt, weekAgo, twoWeeksAgo, &friendsThisWeek, &friendsLastWeek)
		}
	}

	acceptanceRate := 0.0
	if resolved := len(incoming) - pendingIncoming; resolved > 0 {
		accepted := 0
		for _, item := range incoming {
			if utils.ExtractString(item, "status") == models.RequestStatusAccepted {
				accepted++
			}
		}
		acceptanceRate = float64(accepted) / float64(resolved) * 100
	}

	snapshot := &models.SocialInsights{
		UserID:      userID,
		GeneratedAt: now.Format(time.RFC3339),
		Growth: []models.InsightMetric{
			newMetric("New friends (7d)", friendsThisWeek, friendsLastWeek),
			newMetric("Total friends", float64(friends), float64(friends)-friendsThisWeek),
		},
		Engagement: []models.InsightMetric{
			newMetric("Requests received (7d)", receivedThisWeek, receivedLastWeek),
			{Label: "Acceptance rate %", Value: acceptanceRate, Trend: models.TrendStable},
		},
		Content: []models.InsightMetric{
			// Meal posts and reactions live in the content pipeline; the
			// baseline snapshot has nothing to count yet.
			{Label: "Shared meals (7d)", Value: 0, Trend: models.TrendStable},
		},
		Network: []models.InsightMetric{
			{Label: "Pending invitations", Value: float64(pendingIncoming), Trend: models.TrendStable},
			{Label: "Sent awaiting reply", Value: float64(pendingOutgoing), Trend: models.TrendStable},
		},
		Recommendations: buildRecommendations(pendingIncoming, pendingOutgoing, friends),
	}

	return snapshot, nil
}

func bumpWindow(createdAt time.Time, weekAgo, twoWeeksAgo time.Time, current, previous *float64) {
	if createdAt.IsZero() {
		return
	}
	if createdAt.After(weekAgo) {
		*current++
	} else if createdAt.After(twoWeeksAgo) {
		*previous++
	}
}

func newMetric(label string, current, previous float64) models.InsightMetric {
	return models.InsightMetric{
		Label:     label,
		Value:     current,
		ChangePct: changePct(current, previous),
		Trend:     classifyTrend(current, previous),
	}
}

// classifyTrend compares a metric's current window against the previous one.
func classifyTrend(current, previous float64) string {
	switch {
	case current > previous:
		return models.TrendIncreasing
	case current < previous:
		return models.TrendDecreasing
	default:
		return models.TrendStable
	}
}

func changePct(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

// buildRecommendations derives the prioritized suggestion list from the
// request counters.
func buildRecommendations(pendingIncoming, pendingOutgoing, friends int) []models.Recommendation {
	var recommendations []models.Recommendation

	if pendingIncoming > 0 {
		recommendations = append(recommendations, models.Recommendation{
			ID:          "respond-pending",
			Title:       fmt.Sprintf("Respond to %d pending friend request(s)", pendingIncoming),
			Description: "Friends keep each other accountable on their diet goals.",
			Priority:    models.PriorityHigh,
			Difficulty:  models.DifficultyEasy,
		})
	}
	if friends == 0 && pendingOutgoing == 0 {
		recommendations = append(recommendations, models.Recommendation{
			ID:          "first-friend",
			Title:       "Send your first friend request",
			Description: "Players with at least one friend log meals twice as often.",
			Priority:    models.PriorityMedium,
			Difficulty:  models.DifficultyEasy,
		})
	}
	if friends > 0 {
		recommendations = append(recommendations, models.Recommendation{
			ID:          "start-challenge",
			Title:       "Start a weekly challenge with a friend",
			Description: "Shared streaks earn bonus XP for both players.",
			Priority:    models.PriorityLow,
			Difficulty:  models.DifficultyMedium,
		})
	}

	return recommendations
}
