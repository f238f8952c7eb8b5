package services

import (
	"cobrew_backend/internal/repositories"
	"cobrew_backend/internal/services/dto"

	"gorm.io/gorm"
)

// unknownUserLabel stands in when the counterpart account has been deleted.
// A failed lookup degrades the label, it never fails the whole request.
const unknownUserLabel = "Unknown User"

// buildUserSummary resolves an account id to its display fields for
// denormalized responses.
func buildUserSummary(db *gorm.DB, userRepo repositories.UserRepository, userID string) *dto.UserSummary {
	user, err := userRepo.FindByIDWithProfile(db, userID)
	if err != nil {
		return &dto.UserSummary{ID: userID, Name: unknownUserLabel}
	}
	return &dto.UserSummary{
		ID:        user.ID,
		Name:      user.DisplayName(),
		AvatarURL: user.AvatarURL,
	}
}
