package models

type ApplicationStatus string
type ProjectStage string

const (
	// Application lifecycle: pending is the initial state, approved and
	// rejected are terminal. The "accepted" spelling used by early clients
	// is not recognized anywhere in this codebase.
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"

	ProjectStageIdea      ProjectStage = "idea"
	ProjectStageConcept   ProjectStage = "concept"
	ProjectStagePrototype ProjectStage = "prototype"
	ProjectStageMVP       ProjectStage = "mvp"
	ProjectStageGrowth    ProjectStage = "growth"
	ProjectStageScaling   ProjectStage = "scaling"
)

// IsTerminal reports whether the status admits no further transitions.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusApproved || s == ApplicationStatusRejected
}

// IsDecision reports whether the status is a valid decision target.
func (s ApplicationStatus) IsDecision() bool {
	return s == ApplicationStatusApproved || s == ApplicationStatusRejected
}

// ValidStage reports whether the stage is one of the six enumerated values.
// Stages form an ordered progression but transitions between them are not
// constrained.
func ValidStage(s ProjectStage) bool {
	switch s {
	case ProjectStageIdea, ProjectStageConcept, ProjectStagePrototype,
		ProjectStageMVP, ProjectStageGrowth, ProjectStageScaling:
		return true
	}
	return false
}
