package models

// Message is a single chat entry scoped to a project. Messages are immutable
// and are listed in creation-time order.
type Message struct {
	BaseModel
	ProjectID string `gorm:"not null;index" json:"projectId"`
	SenderID  string `gorm:"not null" json:"senderId"`
	Content   string `gorm:"not null" json:"content"`
}
