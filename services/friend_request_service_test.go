package services

import (
	"context"
	"testing"

	"nutriquest_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamoClient struct {
	queryInputs []*dynamodb.QueryInput
	queryItems  []map[string]types.AttributeValue
	queryErr    error

	updateInputs []*dynamodb.UpdateItemInput
	updateErr    error
}

func (f *fakeDynamoClient) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queryInputs = append(f.queryInputs, params)
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return &dynamodb.QueryOutput{Items: f.queryItems}, nil
}

func (f *fakeDynamoClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamoClient) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{}, nil
}

func (f *fakeDynamoClient) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updateInputs = append(f.updateInputs, params)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeDynamoClient) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	return &dynamodb.DeleteItemOutput{}, nil
}

func marshalRequests(t *testing.T, requests ...models.FriendRequest) []map[string]types.AttributeValue {
	t.Helper()
	items := make([]map[string]types.AttributeValue, 0, len(requests))
	for _, request := range requests {
		item, err := attributevalue.MarshalMap(request)
		require.NoError(t, err)
		items = append(items, item)
	}
	return items
}

func pendingFriendRequest(id string) models.FriendRequest {
	return models.FriendRequest{
		ReceiverID: "user-b",
		CreatedAt:  "2026-08-23T08:00:00Z",
		RequestID:  id,
		SenderID:   "user-a",
		Sender:     models.UserRef{UserID: "user-a", DisplayName: "Ada Lovelace", Username: "ada"},
		Receiver:   models.UserRef{UserID: "user-b", DisplayName: "Ben Carter", Username: "benc"},
		Status:     models.RequestStatusPending,
	}
}

func TestGetIncomingRequestsQueriesBaseTable(t *testing.T) {
	client := &fakeDynamoClient{}
	client.queryItems = marshalRequests(t, pendingFriendRequest("req-1"), pendingFriendRequest("req-2"))
	service := &FriendRequestService{Dynamo: &DynamoService{Client: client}}

	requests, err := service.GetIncomingRequests(context.Background(), "user-b")
	require.NoError(t, err)

	require.Len(t, client.queryInputs, 1)
	input := client.queryInputs[0]
	assert.Equal(t, models.FriendRequestsTable, *input.TableName)
	assert.Equal(t, "receiverId = :receiverId", *input.KeyConditionExpression)
	assert.Nil(t, input.IndexName, "incoming requests query the base table, not a GSI")
	assert.Nil(t, input.Limit)

	// Storage order is preserved.
	require.Len(t, requests, 2)
	assert.Equal(t, "req-1", requests[0].RequestID)
	assert.Equal(t, "req-2", requests[1].RequestID)
}

func TestGetOutgoingRequestsUsesSenderIndex(t *testing.T) {
	client := &fakeDynamoClient{}
	client.queryItems = marshalRequests(t, pendingFriendRequest("req-1"))
	service := &FriendRequestService{Dynamo: &DynamoService{Client: client}}

	_, err := service.GetOutgoingRequests(context.Background(), "user-a")
	require.NoError(t, err)

	require.Len(t, client.queryInputs, 1)
	input := client.queryInputs[0]
	require.NotNil(t, input.IndexName)
	assert.Equal(t, models.SenderIndex, *input.IndexName)
	assert.Equal(t, "senderId = :senderId", *input.KeyConditionExpression)
}

func TestResolveRequestConditionFailureReturnsErrResolved(t *testing.T) {
	client := &fakeDynamoClient{}
	client.queryItems = marshalRequests(t, pendingFriendRequest("req-1"))
	client.updateErr = &types.ConditionalCheckFailedException{}
	service := &FriendRequestService{Dynamo: &DynamoService{Client: client}}

	err := service.AcceptRequest(context.Background(), "req-1")
	assert.ErrorIs(t, err, ErrRequestResolved)

	// The update was attempted against the pending condition.
	require.Len(t, client.updateInputs, 1)
	require.NotNil(t, client.updateInputs[0].ConditionExpression)
	assert.Equal(t, "#s = :pending", *client.updateInputs[0].ConditionExpression)
}

func TestGetRequestByIDNotFound(t *testing.T) {
	client := &fakeDynamoClient{}
	service := &FriendRequestService{Dynamo: &DynamoService{Client: client}}

	_, err := service.GetRequestByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrRequestNotFound)
}
