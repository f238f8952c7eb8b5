package services

import (
	"cobrew_backend/internal/auth"
	"cobrew_backend/internal/models"
	"cobrew_backend/internal/repositories"
	"cobrew_backend/internal/services/dto"
	"cobrew_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	SubmitApplication(db *gorm.DB, applicantID string, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error)
	ListApplications(db *gorm.DB, userID, listType string) ([]*dto.ApplicationListItem, error)
	GetApplication(db *gorm.DB, applicationID, callerID string) (*dto.ApplicationResponse, error)
	DecideApplication(db *gorm.DB, applicationID, callerID string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	projectRepo     repositories.ProjectRepository
	userRepo        repositories.UserRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	projectRepo repositories.ProjectRepository,
	userRepo repositories.UserRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		projectRepo:     projectRepo,
		userRepo:        userRepo,
	}
}

// SubmitApplication creates a pending application. Self-applications are a
// domain error; duplicates surface as a conflict from the storage unique
// index rather than a check-then-insert.
func (s *ApplicationServiceImpl) SubmitApplication(db *gorm.DB, applicantID string, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	project, err := s.findProject(db, req.ProjectID)
	if err != nil {
		return nil, err
	}

	if !auth.CanApply(applicantID, project) {
		return nil, apperrors.ErrOwnProjectApplication
	}

	application := &models.Application{
		ProjectID:    project.ID,
		ApplicantID:  applicantID,
		Introduction: req.Introduction,
		Experience:   req.Experience,
		Motivation:   req.Motivation,
		Status:       models.ApplicationStatusPending,
	}

	if err := s.applicationRepo.Create(db, application); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrConflict(err, "application", "You have already applied to this project")
		}
		return nil, apperrors.InternalError(err)
	}

	return s.buildApplicationResponse(db, application, project, applicantID), nil
}

// ListApplications returns either the applications the user submitted or the
// ones received against projects the user owns, newest first.
func (s *ApplicationServiceImpl) ListApplications(db *gorm.DB, userID, listType string) ([]*dto.ApplicationListItem, error) {
	switch listType {
	case dto.ApplicationListSubmitted:
		return s.listSubmitted(db, userID)
	case dto.ApplicationListReceived:
		return s.listReceived(db, userID)
	default:
		return nil, apperrors.NewBadRequestError("Please specify type parameter (submitted or received)")
	}
}

func (s *ApplicationServiceImpl) listSubmitted(db *gorm.DB, userID string) ([]*dto.ApplicationListItem, error) {
	applications, err := s.applicationRepo.ListByApplicant(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]*dto.ApplicationListItem, 0, len(applications))
	for i := range applications {
		app := &applications[i]
		item := &dto.ApplicationListItem{
			ID:        app.ID,
			Status:    string(app.Status),
			CreatedAt: app.CreatedAt,
		}

		project, err := s.projectRepo.FindByID(db, app.ProjectID)
		if err == nil {
			item.Project = &dto.ApplicationProjectSummary{
				ID:          project.ID,
				Title:       project.Title,
				Description: project.Description,
				Stage:       string(project.Stage),
			}
			item.Owner = buildUserSummary(db, s.userRepo, project.CreatorID)
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *ApplicationServiceImpl) listReceived(db *gorm.DB, userID string) ([]*dto.ApplicationListItem, error) {
	projects, err := s.projectRepo.ListByCreator(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	projectByID := make(map[string]*models.Project, len(projects))
	projectIDs := make([]string, 0, len(projects))
	for i := range projects {
		projectByID[projects[i].ID] = &projects[i]
		projectIDs = append(projectIDs, projects[i].ID)
	}

	applications, err := s.applicationRepo.ListByProjects(db, projectIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]*dto.ApplicationListItem, 0, len(applications))
	for i := range applications {
		app := &applications[i]
		item := &dto.ApplicationListItem{
			ID:        app.ID,
			Applicant: buildUserSummary(db, s.userRepo, app.ApplicantID),
			Status:    string(app.Status),
			CreatedAt: app.CreatedAt,
		}
		if project := projectByID[app.ProjectID]; project != nil {
			item.Project = &dto.ApplicationProjectSummary{
				ID:    project.ID,
				Title: project.Title,
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// GetApplication returns the full view for the applicant or the project
// owner. Existence is resolved before authorization, so a missing
// application is a 404 and a foreign one a 403.
func (s *ApplicationServiceImpl) GetApplication(db *gorm.DB, applicationID, callerID string) (*dto.ApplicationResponse, error) {
	application, project, err := s.findApplicationWithProject(db, applicationID)
	if err != nil {
		return nil, err
	}

	if !auth.CanViewApplication(callerID, application, project) {
		return nil, apperrors.ErrApplicationAccessDenied
	}

	return s.buildApplicationResponse(db, application, project, callerID), nil
}

// DecideApplication transitions a pending application to approved or
// rejected. Ownership is re-checked on every attempt; re-stating the current
// terminal value is an idempotent success, changing a decided application is
// a conflict.
func (s *ApplicationServiceImpl) DecideApplication(db *gorm.DB, applicationID, callerID string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error) {
	status := models.ApplicationStatus(req.Status)
	if !status.IsDecision() {
		return nil, apperrors.ErrInvalidStatus("application", "Invalid status value")
	}

	application, project, err := s.findApplicationWithProject(db, applicationID)
	if err != nil {
		return nil, err
	}

	if !auth.CanDecideApplication(callerID, project) {
		return nil, apperrors.ErrNotProjectOwner
	}

	if application.Status.IsTerminal() {
		if application.Status == status {
			return s.buildApplicationResponse(db, application, project, callerID), nil
		}
		return nil, apperrors.ErrApplicationDecided
	}

	if err := s.applicationRepo.UpdateStatus(db, application.ID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}
	application.Status = status

	return s.buildApplicationResponse(db, application, project, callerID), nil
}

func (s *ApplicationServiceImpl) findProject(db *gorm.DB, projectID string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(db, projectID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrNotFound(err, "project", "Project not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return project, nil
}

func (s *ApplicationServiceImpl) findApplicationWithProject(db *gorm.DB, applicationID string) (*models.Application, *models.Project, error) {
	application, err := s.applicationRepo.FindByID(db, applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, nil, apperrors.ErrNotFound(err, "application", "Application not found")
		}
		return nil, nil, apperrors.InternalError(err)
	}

	project, err := s.findProject(db, application.ProjectID)
	if err != nil {
		return nil, nil, err
	}
	return application, project, nil
}

func (s *ApplicationServiceImpl) buildApplicationResponse(db *gorm.DB, application *models.Application, project *models.Project, callerID string) *dto.ApplicationResponse {
	return &dto.ApplicationResponse{
		ID: application.ID,
		Project: &dto.ApplicationProjectSummary{
			ID:          project.ID,
			Title:       project.Title,
			Description: project.Description,
			Stage:       string(project.Stage),
			Owner:       buildUserSummary(db, s.userRepo, project.CreatorID),
		},
		Applicant:    buildUserSummary(db, s.userRepo, application.ApplicantID),
		Introduction: application.Introduction,
		Experience:   application.Experience,
		Motivation:   application.Motivation,
		Status:       string(application.Status),
		CreatedAt:    application.CreatedAt,
		IsOwner:      auth.IsOwner(callerID, project),
		IsApplicant:  application.ApplicantID == callerID,
	}
}
