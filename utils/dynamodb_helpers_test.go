package utils

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
)

func TestExtractString(t *testing.T) {
	item := map[string]types.AttributeValue{
		"status": &types.AttributeValueMemberS{Value: "pending"},
		"count":  &types.AttributeValueMemberN{Value: "3"},
	}

	assert.Equal(t, "pending", ExtractString(item, "status"))
	assert.Equal(t, "", ExtractString(item, "missing"))
	assert.Equal(t, "", ExtractString(item, "count")) // wrong attribute type
}

func TestExtractTime(t *testing.T) {
	item := map[string]types.AttributeValue{
		"createdAt": &types.AttributeValueMemberS{Value: "2026-08-01T10:00:00Z"},
		"broken":    &types.AttributeValueMemberS{Value: "yesterday"},
	}

	expected := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	assert.True(t, expected.Equal(ExtractTime(item, "createdAt")))
	assert.True(t, ExtractTime(item, "broken").IsZero())
	assert.True(t, ExtractTime(item, "missing").IsZero())
}
