package services

import (
	"strings"

	"cobrew_backend/internal/auth"
	"cobrew_backend/internal/models"
	"cobrew_backend/internal/repositories"
	"cobrew_backend/internal/services/dto"
	"cobrew_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProjectService interface {
	CreateProject(db *gorm.DB, creatorID string, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetProject(db *gorm.DB, projectID, callerID string) (*dto.ProjectResponse, error)
	ListProjects(db *gorm.DB, query *dto.ProjectListQuery, callerID string) ([]*dto.ProjectResponse, error)
	UpdateProject(db *gorm.DB, projectID, callerID string, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	DeleteProject(db *gorm.DB, projectID, callerID string) error
}

type ProjectServiceImpl struct {
	projectRepo     repositories.ProjectRepository
	applicationRepo repositories.ApplicationRepository
	userRepo        repositories.UserRepository
}

func NewProjectService(
	projectRepo repositories.ProjectRepository,
	applicationRepo repositories.ApplicationRepository,
	userRepo repositories.UserRepository,
) ProjectService {
	return &ProjectServiceImpl{
		projectRepo:     projectRepo,
		applicationRepo: applicationRepo,
		userRepo:        userRepo,
	}
}

func (s *ProjectServiceImpl) CreateProject(db *gorm.DB, creatorID string, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	project := &models.Project{
		Title:       req.Title,
		Description: req.Description,
		Stage:       models.ProjectStage(req.Stage),
		Category:    req.Category,
		CreatorID:   creatorID,
	}
	project.SetRolesNeeded(req.RolesNeeded)
	project.SetTags(req.Tags)

	if err := s.projectRepo.Create(db, project); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildProjectResponse(db, project, creatorID), nil
}

func (s *ProjectServiceImpl) GetProject(db *gorm.DB, projectID, callerID string) (*dto.ProjectResponse, error) {
	project, err := s.findProject(db, projectID)
	if err != nil {
		return nil, err
	}
	return s.buildProjectResponse(db, project, callerID), nil
}

// ListProjects applies the directory filters. The stage filter runs in SQL;
// free-text search and roles membership are evaluated here over the decoded
// JSON columns so the query stays portable across drivers. All supplied
// filters are ANDed.
func (s *ProjectServiceImpl) ListProjects(db *gorm.DB, query *dto.ProjectListQuery, callerID string) ([]*dto.ProjectResponse, error) {
	stage := models.ProjectStage(query.Stage)
	if query.Stage != "" && !models.ValidStage(stage) {
		return nil, apperrors.ErrInvalidStatus("project", "Invalid project stage")
	}

	projects, err := s.projectRepo.List(db, repositories.ProjectFilter{
		Stage: stage,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	results := make([]*dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		project := &projects[i]
		if query.Search != "" && !matchesSearch(project, query.Search) {
			continue
		}
		if len(query.Skills) > 0 && !matchesAnyRole(project, query.Skills) {
			continue
		}
		results = append(results, s.buildProjectResponse(db, project, callerID))
	}
	return results, nil
}

func (s *ProjectServiceImpl) UpdateProject(db *gorm.DB, projectID, callerID string, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.findProject(db, projectID)
	if err != nil {
		return nil, err
	}

	if !auth.IsOwner(callerID, project) {
		return nil, apperrors.ErrNotProjectOwner
	}

	project.Title = req.Title
	project.Description = req.Description
	project.Stage = models.ProjectStage(req.Stage)
	project.Category = req.Category
	project.SetRolesNeeded(req.RolesNeeded)
	project.SetTags(req.Tags)

	if err := s.projectRepo.Save(db, project); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildProjectResponse(db, project, callerID), nil
}

// DeleteProject removes the project and all of its applications as one
// transaction, so a failure midway leaves no orphaned applications behind.
func (s *ProjectServiceImpl) DeleteProject(db *gorm.DB, projectID, callerID string) error {
	project, err := s.findProject(db, projectID)
	if err != nil {
		return err
	}

	if !auth.IsOwner(callerID, project) {
		return apperrors.ErrNotProjectOwner
	}

	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.applicationRepo.DeleteByProject(tx, projectID); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.projectRepo.Delete(tx, projectID); err != nil {
		return apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ProjectServiceImpl) findProject(db *gorm.DB, projectID string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(db, projectID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrNotFound(err, "project", "Project not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return project, nil
}

func (s *ProjectServiceImpl) buildProjectResponse(db *gorm.DB, project *models.Project, callerID string) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		Stage:       string(project.Stage),
		Category:    project.Category,
		RolesNeeded: project.GetRolesNeeded(),
		Tags:        project.GetTags(),
		Premium:     project.Premium,
		CreatedAt:   project.CreatedAt,
		Owner:       buildUserSummary(db, s.userRepo, project.CreatorID),
		IsOwner:     callerID != "" && auth.IsOwner(callerID, project),
	}
}

// matchesSearch reports whether the term occurs, case-insensitively, in the
// title, description, category, tags or needed roles.
func matchesSearch(project *models.Project, term string) bool {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return true
	}

	if strings.Contains(strings.ToLower(project.Title), needle) ||
		strings.Contains(strings.ToLower(project.Description), needle) ||
		strings.Contains(strings.ToLower(project.Category), needle) {
		return true
	}
	for _, tag := range project.GetTags() {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	for _, role := range project.GetRolesNeeded() {
		if strings.Contains(strings.ToLower(role), needle) {
			return true
		}
	}
	return false
}

// matchesAnyRole reports whether any requested role is among the project's
// needed roles.
func matchesAnyRole(project *models.Project, requested []string) bool {
	needed := project.GetRolesNeeded()
	for _, want := range requested {
		for _, role := range needed {
			if strings.EqualFold(strings.TrimSpace(want), role) {
				return true
			}
		}
	}
	return false
}
