package auth

import (
	"testing"

	"cobrew_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestIsOwner(t *testing.T) {
	project := &models.Project{CreatorID: "owner-1"}

	assert.True(t, IsOwner("owner-1", project))
	assert.False(t, IsOwner("someone-else", project))
	assert.False(t, IsOwner("owner-1", nil))
	assert.False(t, IsOwner("", &models.Project{CreatorID: "owner-1"}))
}

func TestIsApprovedApplicant(t *testing.T) {
	tests := []struct {
		name        string
		userID      string
		application *models.Application
		want        bool
	}{
		{
			name:        "approved applicant",
			userID:      "user-1",
			application: &models.Application{ApplicantID: "user-1", Status: models.ApplicationStatusApproved},
			want:        true,
		},
		{
			name:        "pending applicant",
			userID:      "user-1",
			application: &models.Application{ApplicantID: "user-1", Status: models.ApplicationStatusPending},
			want:        false,
		},
		{
			name:        "rejected applicant",
			userID:      "user-1",
			application: &models.Application{ApplicantID: "user-1", Status: models.ApplicationStatusRejected},
			want:        false,
		},
		{
			name:        "approved but different user",
			userID:      "user-2",
			application: &models.Application{ApplicantID: "user-1", Status: models.ApplicationStatusApproved},
			want:        false,
		},
		{
			name:        "no application on record",
			userID:      "user-1",
			application: nil,
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsApprovedApplicant(tt.userID, tt.application))
		})
	}
}

func TestCanReadMessages(t *testing.T) {
	project := &models.Project{CreatorID: "owner-1"}
	approved := &models.Application{ApplicantID: "collab-1", Status: models.ApplicationStatusApproved}
	pending := &models.Application{ApplicantID: "collab-2", Status: models.ApplicationStatusPending}

	// The owner needs no application.
	assert.True(t, CanReadMessages("owner-1", project, nil))
	assert.True(t, CanReadMessages("collab-1", project, approved))
	assert.False(t, CanReadMessages("collab-2", project, pending))
	assert.False(t, CanReadMessages("stranger", project, nil))
}

func TestCanApply(t *testing.T) {
	project := &models.Project{CreatorID: "owner-1"}

	assert.True(t, CanApply("someone-else", project))
	assert.False(t, CanApply("owner-1", project))
	assert.False(t, CanApply("someone-else", nil))
}

func TestCanViewApplication(t *testing.T) {
	project := &models.Project{CreatorID: "owner-1"}
	application := &models.Application{ApplicantID: "collab-1", Status: models.ApplicationStatusPending}

	assert.True(t, CanViewApplication("collab-1", application, project))
	assert.True(t, CanViewApplication("owner-1", application, project))
	assert.False(t, CanViewApplication("stranger", application, project))
	assert.False(t, CanViewApplication("owner-1", nil, project))
}

func TestCanDecideApplication(t *testing.T) {
	project := &models.Project{CreatorID: "owner-1"}

	assert.True(t, CanDecideApplication("owner-1", project))
	assert.False(t, CanDecideApplication("collab-1", project))
	assert.False(t, CanDecideApplication("owner-1", nil))
}
