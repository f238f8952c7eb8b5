package dto

import "time"

// UpdateProfileRequest upserts the caller's profile. AvatarURL, when set,
// updates the user record rather than the profile.
type UpdateProfileRequest struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Title       string   `json:"title"`
	Bio         string   `json:"bio"`
	Location    string   `json:"location"`
	Education   string   `json:"education"`
	Experience  string   `json:"experience"`
	Skills      []string `json:"skills"`
	Industry    string   `json:"industry"`
	GithubURL   string   `json:"githubUrl" validate:"omitempty,url"`
	LinkedinURL string   `json:"linkedinUrl" validate:"omitempty,url"`
	AvatarURL   string   `json:"avatarUrl" validate:"omitempty,url"`
}

// ProfileResponse is the combined user + profile view.
type ProfileResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	AvatarURL   string    `json:"avatarUrl"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Title       string    `json:"title"`
	Bio         string    `json:"bio"`
	Location    string    `json:"location"`
	Education   string    `json:"education"`
	Experience  string    `json:"experience"`
	Skills      []string  `json:"skills"`
	Industry    string    `json:"industry"`
	GithubURL   string    `json:"githubUrl"`
	LinkedinURL string    `json:"linkedinUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}
