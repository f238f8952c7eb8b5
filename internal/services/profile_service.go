package services

import (
	"cobrew_backend/internal/models"
	"cobrew_backend/internal/repositories"
	"cobrew_backend/internal/services/dto"
	"cobrew_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfileService interface {
	GetMyProfile(db *gorm.DB, userID string) (*dto.ProfileResponse, error)
	GetProfile(db *gorm.DB, userID string) (*dto.ProfileResponse, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
) ProfileService {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

func (s *ProfileServiceImpl) GetMyProfile(db *gorm.DB, userID string) (*dto.ProfileResponse, error) {
	return s.GetProfile(db, userID)
}

func (s *ProfileServiceImpl) GetProfile(db *gorm.DB, userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "profile", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "profile", "Profile not found")
		}
		return nil, apperrors.InternalError(err)
	}

	return profileResponse(user, profile), nil
}

// UpdateProfile upserts the caller's profile. A profile normally exists from
// registration; one is created here if it went missing.
func (s *ProfileServiceImpl) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "profile", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.AvatarURL != "" {
		if err := s.userRepo.UpdateAvatar(db, userID, req.AvatarURL); err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.AvatarURL = req.AvatarURL
	}

	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.InternalError(err)
		}
		profile = &models.Profile{UserID: userID}
	}

	profile.FirstName = req.FirstName
	profile.LastName = req.LastName
	profile.Title = req.Title
	profile.Bio = req.Bio
	profile.Location = req.Location
	profile.Education = req.Education
	profile.Experience = req.Experience
	profile.Industry = req.Industry
	profile.GithubURL = req.GithubURL
	profile.LinkedinURL = req.LinkedinURL
	profile.SetSkills(req.Skills)

	if profile.ID == "" {
		err = s.profileRepo.Create(db, profile)
	} else {
		err = s.profileRepo.Save(db, profile)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return profileResponse(user, profile), nil
}

func profileResponse(user *models.User, profile *models.Profile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:          user.ID,
		Email:       user.Email,
		AvatarURL:   user.AvatarURL,
		FirstName:   profile.FirstName,
		LastName:    profile.LastName,
		Title:       profile.Title,
		Bio:         profile.Bio,
		Location:    profile.Location,
		Education:   profile.Education,
		Experience:  profile.Experience,
		Skills:      profile.GetSkills(),
		Industry:    profile.Industry,
		GithubURL:   profile.GithubURL,
		LinkedinURL: profile.LinkedinURL,
		CreatedAt:   profile.CreatedAt,
	}
}
