package repositories

import (
	"cobrew_backend/internal/models"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(db *gorm.DB, message *models.Message) error
	ListByProject(db *gorm.DB, projectID string) ([]models.Message, error)
}

type MessageRepositoryImpl struct{}

func NewMessageRepository() MessageRepository {
	return &MessageRepositoryImpl{}
}

func (r *MessageRepositoryImpl) Create(db *gorm.DB, message *models.Message) error {
	return db.Create(message).Error
}

func (r *MessageRepositoryImpl) ListByProject(db *gorm.DB, projectID string) ([]models.Message, error) {
	var messages []models.Message
	err := db.Where("project_id = ?", projectID).Order("created_at ASC").Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
