package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatus(t *testing.T) {
	assert.False(t, ApplicationStatusPending.IsTerminal())
	assert.True(t, ApplicationStatusApproved.IsTerminal())
	assert.True(t, ApplicationStatusRejected.IsTerminal())

	assert.False(t, ApplicationStatusPending.IsDecision())
	assert.True(t, ApplicationStatusApproved.IsDecision())
	assert.True(t, ApplicationStatusRejected.IsDecision())

	// Unknown spellings are neither terminal nor decisions.
	assert.False(t, ApplicationStatus("accepted").IsDecision())
	assert.False(t, ApplicationStatus("APPROVED").IsDecision())
}

func TestValidStage(t *testing.T) {
	for _, stage := range []ProjectStage{
		ProjectStageIdea, ProjectStageConcept, ProjectStagePrototype,
		ProjectStageMVP, ProjectStageGrowth, ProjectStageScaling,
	} {
		assert.True(t, ValidStage(stage), string(stage))
	}

	assert.False(t, ValidStage(""))
	assert.False(t, ValidStage("unicorn"))
	assert.False(t, ValidStage("Idea"))
}
