package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"nutriquest_server/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

var (
	// ErrRequestNotFound is returned when no request matches the given ID.
	ErrRequestNotFound = errors.New("friend request not found")

	// ErrRequestResolved is returned when an accept/reject hits a request
	// that already left the pending state. A request transitions exactly
	// once and never reverts.
	ErrRequestResolved = errors.New("friend request already resolved")
)

// FriendRequestService handles operations related to friend requests
type FriendRequestService struct {
	Dynamo *DynamoService
}

// CreateRequest stores a new pending request with profile snapshots of both
// sides. The message is optional and immutable once sent.
func (s *FriendRequestService) CreateRequest(ctx context.Context, sender, receiver models.UserRef, message string) (*models.FriendRequest, error) {
	request := models.FriendRequest{
		ReceiverID: receiver.UserID,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		RequestID:  uuid.New().String(),
		SenderID:   sender.UserID,
		Sender:     sender,
		Receiver:   receiver,
		Message:    message,
		Status:     models.RequestStatusPending,
	}

	if err := s.Dynamo.PutItem(ctx, models.FriendRequest{}.TableName(), request); err != nil {
		return nil, fmt.Errorf("failed to create friend request: %w", err)
	}

	log.Printf("✅ Friend request %s created: %s -> %s", request.RequestID, sender.UserID, receiver.UserID)
	return &request, nil
}

// GetIncomingRequests lists the requests addressed to a user, in storage
// order. The caller's ordering is preserved downstream, never re-sorted.
func (s *FriendRequestService) GetIncomingRequests(ctx context.Context, receiverID string) ([]models.FriendRequest, error) {
	keyCondition := "receiverId = :receiverId"
	expressionValues := map[string]types.AttributeValue{
		":receiverId": &types.AttributeValueMemberS{Value: receiverID},
	}

	items, err := s.Dynamo.QueryItems(ctx, models.FriendRequest{}.TableName(), keyCondition, expressionValues, nil, 0)
	if err != nil {
		return nil, err
	}

	var requests []models.FriendRequest
	err = attributevalue.UnmarshalListOfMaps(items, &requests)
	return requests, err
}

// GetOutgoingRequests lists the requests a user has sent
func (s *FriendRequestService) GetOutgoingRequests(ctx context.Context, senderID string) ([]models.FriendRequest, error) {
	tableName := models.FriendRequest{}.TableName()
	input := &dynamodb.QueryInput{
		TableName:              &tableName,
		IndexName:              aws.String(models.SenderIndex),
		KeyConditionExpression: aws.String("senderId = :senderId"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":senderId": &types.AttributeValueMemberS{Value: senderID},
		},
	}

	items, err := s.Dynamo.QueryItemsWithQueryInput(ctx, input)
	if err != nil {
		return nil, err
	}

	var requests []models.FriendRequest
	err = attributevalue.UnmarshalListOfMaps(items, &requests)
	return requests, err
}

// GetRequestByID resolves a request through the requestId GSI
func (s *FriendRequestService) GetRequestByID(ctx context.Context, requestID string) (*models.FriendRequest, error) {
	tableName := models.FriendRequest{}.TableName()
	input := &dynamodb.QueryInput{
		TableName:              &tableName,
		IndexName:              aws.String(models.RequestIDIndex),
		KeyConditionExpression: aws.String("requestId = :requestId"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":requestId": &types.AttributeValueMemberS{Value: requestID},
		},
	}

	items, err := s.Dynamo.QueryItemsWithQueryInput(ctx, input)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrRequestNotFound
	}

	var request models.FriendRequest
	if err := attributevalue.UnmarshalMap(items[0], &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// AcceptRequest transitions a pending request to accepted
func (s *FriendRequestService) AcceptRequest(ctx context.Context, requestID string) error {
	return s.resolveRequest(ctx, requestID, models.RequestStatusAccepted)
}

// RejectRequest transitions a pending request to rejected
func (s *FriendRequestService) RejectRequest(ctx context.Context, requestID string) error {
	return s.resolveRequest(ctx, requestID, models.RequestStatusRejected)
}

// resolveRequest performs the single allowed status transition. The update is
// conditional on the stored status still being pending, so a double submit
// that slips past the processing registry cannot flip a resolved request.
func (s *FriendRequestService) resolveRequest(ctx context.Context, requestID, status string) error {
	request, err := s.GetRequestByID(ctx, requestID)
	if err != nil {
		return err
	}

	updateExpression := "SET #s = :status"
	conditionExpression := "#s = :pending"
	key := map[string]types.AttributeValue{
		"receiverId": &types.AttributeValueMemberS{Value: request.ReceiverID},
		"createdAt":  &types.AttributeValueMemberS{Value: request.CreatedAt},
	}
	expressionValues := map[string]types.AttributeValue{
		":status":  &types.AttributeValueMemberS{Value: status},
		":pending": &types.AttributeValueMemberS{Value: models.RequestStatusPending},
	}
	expressionNames := map[string]string{
		"#s": "status",
	}

	_, err = s.Dynamo.UpdateItemWithCondition(ctx, models.FriendRequest{}.TableName(), updateExpression, conditionExpression, key, expressionValues, expressionNames)
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return ErrRequestResolved
		}
		return err
	}

	log.Printf("✅ Friend request %s resolved to %s", requestID, status)
	return nil
}
