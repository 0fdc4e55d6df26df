package models

// UserRef is the profile snapshot embedded in a friend request so the panel
// can render a row without a second profile lookup.
type UserRef struct {
	UserID      string `dynamodbav:"userId" json:"userId"`
	DisplayName string `dynamodbav:"displayName" json:"displayName"`
	Username    string `dynamodbav:"username" json:"username"`
	AvatarURL   string `dynamodbav:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
}

// FriendRequest represents a pending social connection offer in DynamoDB
type FriendRequest struct {
	ReceiverID string  `dynamodbav:"receiverId" json:"receiverId"` // Partition Key (PK)
	CreatedAt  string  `dynamodbav:"createdAt" json:"createdAt"`   // Sort Key (SK) - RFC3339 creation timestamp
	RequestID  string  `dynamodbav:"requestId" json:"requestId"`   // Unique request ID (GSI for accept/reject lookups)
	SenderID   string  `dynamodbav:"senderId" json:"senderId"`     // GSI for outgoing lists
	Sender     UserRef `dynamodbav:"sender" json:"sender"`
	Receiver   UserRef `dynamodbav:"receiver" json:"receiver"`
	Message    string  `dynamodbav:"message,omitempty" json:"message,omitempty"` // Optional note, immutable once sent
	Status     string  `dynamodbav:"status" json:"status"`                       // "pending", "accepted", "rejected"
}

// ✅ Define table name for friend requests
const FriendRequestsTable = "FriendRequests"

// ✅ Define GSI Names (outgoing lists and lookup by request ID)
const (
	SenderIndex    = "senderId-index"
	RequestIDIndex = "requestId-index"
)

// TableName returns the DynamoDB table name
func (FriendRequest) TableName() string {
	return FriendRequestsTable
}
