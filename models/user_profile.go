package models

// UserProfile defines the structure for user profiles
type UserProfile struct {
	UserID      string   `dynamodbav:"userId" json:"userId"`
	DisplayName string   `dynamodbav:"displayName" json:"displayName"`
	Username    string   `dynamodbav:"username" json:"username"`
	AvatarURL   string   `dynamodbav:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	Bio         string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	DietGoals   []string `dynamodbav:"dietGoals,omitempty" json:"dietGoals,omitempty"`
	Level       int      `dynamodbav:"level,omitempty" json:"level,omitempty"`
}

// Ref returns the snapshot embedded into friend requests for this profile.
func (p UserProfile) Ref() UserRef {
	return UserRef{
		UserID:      p.UserID,
		DisplayName: p.DisplayName,
		Username:    p.Username,
		AvatarURL:   p.AvatarURL,
	}
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "UserProfiles"
