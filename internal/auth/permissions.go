package auth

import (
	"cobrew_backend/internal/models"
)

// Authorization predicates over projects, applications and messages. These
// are pure functions over already-loaded records: callers resolve existence
// first (missing records are a 404 concern, not an authorization one), then
// evaluate the predicate on every request. Nothing here is cached and no
// decision is delegated to the client.

// IsOwner reports whether the user created the project.
func IsOwner(userID string, project *models.Project) bool {
	return project != nil && project.CreatorID == userID
}

// IsApprovedApplicant reports whether the application grants its applicant
// collaborator access. A nil application (no application on record) never
// does.
func IsApprovedApplicant(userID string, application *models.Application) bool {
	return application != nil &&
		application.ApplicantID == userID &&
		application.Status == models.ApplicationStatusApproved
}

// CanReadMessages gates both listing and posting of project messages; there
// is no separate write predicate. application is the caller's application on
// the project, or nil.
func CanReadMessages(userID string, project *models.Project, application *models.Application) bool {
	return IsOwner(userID, project) || IsApprovedApplicant(userID, application)
}

// CanApply reports whether the user may submit an application to the project.
// Owners cannot apply to their own projects. Duplicate submissions are not
// checked here: the storage unique index arbitrates them.
func CanApply(userID string, project *models.Project) bool {
	return project != nil && project.CreatorID != userID
}

// CanDecideApplication reports whether the user may approve or reject the
// application. Only the owner of the target project decides.
func CanDecideApplication(userID string, project *models.Project) bool {
	return IsOwner(userID, project)
}

// CanViewApplication reports whether the user may read the application:
// either its applicant or the owner of the project it targets.
func CanViewApplication(userID string, application *models.Application, project *models.Project) bool {
	if application == nil {
		return false
	}
	return application.ApplicantID == userID || IsOwner(userID, project)
}
