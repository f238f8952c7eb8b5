package dto

import "time"

type SendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

type MessageResponse struct {
	ID        string       `json:"id"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"createdAt"`
	Sender    *UserSummary `json:"sender"`
	IsOwn     bool         `json:"isOwn"`
}
