package dto

import "time"

type CreateProjectRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Stage       string   `json:"stage" validate:"required,oneof=idea concept prototype mvp growth scaling"`
	Category    string   `json:"category" validate:"required"`
	RolesNeeded []string `json:"rolesNeeded"`
	Tags        []string `json:"tags"`
}

// UpdateProjectRequest replaces the editable fields wholesale, so it carries
// the same required set as creation.
type UpdateProjectRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Stage       string   `json:"stage" validate:"required,oneof=idea concept prototype mvp growth scaling"`
	Category    string   `json:"category" validate:"required"`
	RolesNeeded []string `json:"rolesNeeded"`
	Tags        []string `json:"tags"`
}

// ProjectListQuery holds the directory filters; all supplied filters are
// ANDed, unset ones impose no constraint.
type ProjectListQuery struct {
	Search string   `form:"search"`
	Stage  string   `form:"stage"`
	Skills []string `form:"skills"`
}

type ProjectResponse struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Stage       string       `json:"stage"`
	Category    string       `json:"category"`
	RolesNeeded []string     `json:"rolesNeeded"`
	Tags        []string     `json:"tags"`
	Premium     bool         `json:"premium"`
	CreatedAt   time.Time    `json:"createdAt"`
	Owner       *UserSummary `json:"owner"`
	IsOwner     bool         `json:"isOwner"`
}
