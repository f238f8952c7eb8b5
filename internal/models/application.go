package models

// Application is a user's request to join a project. The composite unique
// index makes the storage layer the arbiter of duplicate submissions.
type Application struct {
	BaseModel
	ProjectID    string            `gorm:"not null;index;uniqueIndex:idx_project_applicant" json:"projectId"`
	ApplicantID  string            `gorm:"not null;index;uniqueIndex:idx_project_applicant" json:"applicantId"`
	Introduction string            `gorm:"not null" json:"introduction"`
	Experience   string            `gorm:"not null" json:"experience"`
	Motivation   string            `gorm:"not null" json:"motivation"`
	Status       ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
}
