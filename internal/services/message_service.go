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

type MessageService interface {
	ListMessages(db *gorm.DB, projectID, callerID string) ([]*dto.MessageResponse, error)
	SendMessage(db *gorm.DB, projectID, callerID string, req *dto.SendMessageRequest) (*dto.MessageResponse, error)
}

type MessageServiceImpl struct {
	messageRepo     repositories.MessageRepository
	projectRepo     repositories.ProjectRepository
	applicationRepo repositories.ApplicationRepository
	userRepo        repositories.UserRepository
}

func NewMessageService(
	messageRepo repositories.MessageRepository,
	projectRepo repositories.ProjectRepository,
	applicationRepo repositories.ApplicationRepository,
	userRepo repositories.UserRepository,
) MessageService {
	return &MessageServiceImpl{
		messageRepo:     messageRepo,
		projectRepo:     projectRepo,
		applicationRepo: applicationRepo,
		userRepo:        userRepo,
	}
}

// ListMessages returns the project's messages in creation-time order. The
// same gate governs reading and posting.
func (s *MessageServiceImpl) ListMessages(db *gorm.DB, projectID, callerID string) ([]*dto.MessageResponse, error) {
	if err := s.authorize(db, projectID, callerID); err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.ListByProject(db, projectID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Senders repeat heavily within one thread; resolve each once.
	senders := make(map[string]*dto.UserSummary)
	results := make([]*dto.MessageResponse, 0, len(messages))
	for i := range messages {
		msg := &messages[i]
		sender, ok := senders[msg.SenderID]
		if !ok {
			sender = buildUserSummary(db, s.userRepo, msg.SenderID)
			senders[msg.SenderID] = sender
		}
		results = append(results, &dto.MessageResponse{
			ID:        msg.ID,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
			Sender:    sender,
			IsOwn:     msg.SenderID == callerID,
		})
	}
	return results, nil
}

// SendMessage appends one message to the project's log. Blank content is
// rejected before any persistence access.
func (s *MessageServiceImpl) SendMessage(db *gorm.DB, projectID, callerID string, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperrors.ErrEmptyMessage
	}

	if err := s.authorize(db, projectID, callerID); err != nil {
		return nil, err
	}

	message := &models.Message{
		ProjectID: projectID,
		SenderID:  callerID,
		Content:   req.Content,
	}
	if err := s.messageRepo.Create(db, message); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.MessageResponse{
		ID:        message.ID,
		Content:   message.Content,
		CreatedAt: message.CreatedAt,
		Sender:    buildUserSummary(db, s.userRepo, callerID),
		IsOwn:     true,
	}, nil
}

// authorize resolves existence first (missing project is a 404), then
// evaluates the messaging gate for the caller.
func (s *MessageServiceImpl) authorize(db *gorm.DB, projectID, callerID string) error {
	project, err := s.projectRepo.FindByID(db, projectID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return apperrors.ErrNotFound(err, "project", "Project not found")
		}
		return apperrors.InternalError(err)
	}

	if auth.IsOwner(callerID, project) {
		return nil
	}

	application, err := s.applicationRepo.FindForApplicant(db, projectID, callerID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !auth.CanReadMessages(callerID, project, application) {
		return apperrors.ErrMessageAccessDenied
	}
	return nil
}
