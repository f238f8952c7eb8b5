package repositories

import (
	"errors"

	"cobrew_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this project and applicant")
)

type ApplicationRepository interface {
	Create(db *gorm.DB, application *models.Application) error
	FindByID(db *gorm.DB, id string) (*models.Application, error)
	// FindForApplicant returns (nil, nil) when the user has no application on
	// the project; it is used by authorization checks where absence is a
	// normal outcome, not an error.
	FindForApplicant(db *gorm.DB, projectID, applicantID string) (*models.Application, error)
	UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error
	ListByApplicant(db *gorm.DB, applicantID string) ([]models.Application, error)
	ListByProjects(db *gorm.DB, projectIDs []string) ([]models.Application, error)
	DeleteByProject(db *gorm.DB, projectID string) error
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, application *models.Application) error {
	if err := db.Create(application).Error; err != nil {
		// The composite unique index on (project_id, applicant_id) arbitrates
		// concurrent duplicate submissions.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	var application models.Application
	if err := db.First(&application, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindForApplicant(db *gorm.DB, projectID, applicantID string) (*models.Application, error) {
	var application models.Application
	err := db.First(&application, "project_id = ? AND applicant_id = ?", projectID, applicantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error {
	return db.Model(&models.Application{}).Where("id = ?", id).Update("status", status).Error
}

func (r *ApplicationRepositoryImpl) ListByApplicant(db *gorm.DB, applicantID string) ([]models.Application, error) {
	var applications []models.Application
	err := db.Where("applicant_id = ?", applicantID).Order("created_at DESC").Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *ApplicationRepositoryImpl) ListByProjects(db *gorm.DB, projectIDs []string) ([]models.Application, error) {
	if len(projectIDs) == 0 {
		return nil, nil
	}
	var applications []models.Application
	err := db.Where("project_id IN ?", projectIDs).Order("created_at DESC").Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *ApplicationRepositoryImpl) DeleteByProject(db *gorm.DB, projectID string) error {
	return db.Delete(&models.Application{}, "project_id = ?", projectID).Error
}
