package dto

// UserSummary is the denormalized account view attached to projects,
// applications and messages. Name falls back to the email when the profile
// is empty, and to a placeholder when the account no longer exists.
type UserSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}
