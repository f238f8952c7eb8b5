package dto

import "time"

type CreateApplicationRequest struct {
	ProjectID    string `json:"projectId" validate:"required"`
	Introduction string `json:"introduction" validate:"required"`
	Experience   string `json:"experience" validate:"required"`
	Motivation   string `json:"motivation" validate:"required"`
}

// UpdateApplicationStatusRequest carries the owner's decision. Only
// "approved" and "rejected" are valid decision targets; the service rejects
// everything else before touching the record.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ApplicationListType selects between the two list views.
const (
	ApplicationListSubmitted = "submitted"
	ApplicationListReceived  = "received"
)

type ApplicationProjectSummary struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Stage       string       `json:"stage,omitempty"`
	Owner       *UserSummary `json:"owner,omitempty"`
}

// ApplicationListItem is one row of either list view. Owner is set in the
// submitted view, Applicant in the received view.
type ApplicationListItem struct {
	ID        string                     `json:"id"`
	Project   *ApplicationProjectSummary `json:"project"`
	Owner     *UserSummary               `json:"owner,omitempty"`
	Applicant *UserSummary               `json:"applicant,omitempty"`
	Status    string                     `json:"status"`
	CreatedAt time.Time                  `json:"createdAt"`
}

// ApplicationResponse is the full single-application view. IsOwner and
// IsApplicant are computed for the caller so the client never re-derives
// authorization logic.
type ApplicationResponse struct {
	ID           string                     `json:"id"`
	Project      *ApplicationProjectSummary `json:"project"`
	Applicant    *UserSummary               `json:"applicant"`
	Introduction string                     `json:"introduction"`
	Experience   string                     `json:"experience"`
	Motivation   string                     `json:"motivation"`
	Status       string                     `json:"status"`
	CreatedAt    time.Time                  `json:"createdAt"`
	IsOwner      bool                       `json:"isOwner"`
	IsApplicant  bool                       `json:"isApplicant"`
}
