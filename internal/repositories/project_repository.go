package repositories

import (
	"errors"

	"cobrew_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProjectNotFound = errors.New("project not found")

// ProjectFilter narrows the directory listing at the storage layer. Free-text
// search and roles-membership filtering happen in the service, over the
// decoded JSON columns.
type ProjectFilter struct {
	Stage models.ProjectStage
}

type ProjectRepository interface {
	Create(db *gorm.DB, project *models.Project) error
	FindByID(db *gorm.DB, id string) (*models.Project, error)
	Save(db *gorm.DB, project *models.Project) error
	Delete(db *gorm.DB, id string) error
	List(db *gorm.DB, filter ProjectFilter) ([]models.Project, error)
	ListByCreator(db *gorm.DB, creatorID string) ([]models.Project, error)
}

type ProjectRepositoryImpl struct{}

func NewProjectRepository() ProjectRepository {
	return &ProjectRepositoryImpl{}
}

func (r *ProjectRepositoryImpl) Create(db *gorm.DB, project *models.Project) error {
	return db.Create(project).Error
}

func (r *ProjectRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Project, error) {
	var project models.Project
	if err := db.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl) Save(db *gorm.DB, project *models.Project) error {
	return db.Save(project).Error
}

func (r *ProjectRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Project{}, "id = ?", id).Error
}

func (r *ProjectRepositoryImpl) List(db *gorm.DB, filter ProjectFilter) ([]models.Project, error) {
	query := db.Model(&models.Project{})
	if filter.Stage != "" {
		query = query.Where("stage = ?", filter.Stage)
	}

	var projects []models.Project
	if err := query.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepositoryImpl) ListByCreator(db *gorm.DB, creatorID string) ([]models.Project, error) {
	var projects []models.Project
	if err := db.Where("creator_id = ?", creatorID).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}
