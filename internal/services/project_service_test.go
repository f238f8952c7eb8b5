package services

import (
	"testing"

	"cobrew_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func filterFixture() *models.Project {
	project := &models.Project{
		Title:       "Craft Beer Marketplace",
		Description: "Connecting small breweries with local bars",
		Category:    "Marketplace",
	}
	project.SetTags([]string{"beer", "b2b"})
	project.SetRolesNeeded([]string{"Backend Developer", "Sales Lead"})
	return project
}

func TestMatchesSearch(t *testing.T) {
	project := filterFixture()

	tests := []struct {
		name string
		term string
		want bool
	}{
		{"empty term matches everything", "", true},
		{"whitespace only matches everything", "   ", true},
		{"title substring", "marketplace", true},
		{"title is case-insensitive", "CRAFT", true},
		{"description substring", "breweries", true},
		{"category", "market", true},
		{"tag", "b2b", true},
		{"role", "sales", true},
		{"no match", "fintech", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesSearch(project, tt.term))
		})
	}
}

func TestMatchesAnyRole(t *testing.T) {
	project := filterFixture()

	// Role matching is exact, not substring, but ignores case and padding.
	assert.True(t, matchesAnyRole(project, []string{"Backend Developer"}))
	assert.True(t, matchesAnyRole(project, []string{"backend developer"}))
	assert.True(t, matchesAnyRole(project, []string{"  Sales Lead  "}))
	assert.True(t, matchesAnyRole(project, []string{"Frontend Developer", "Sales Lead"}))
	assert.False(t, matchesAnyRole(project, []string{"Backend"}))
	assert.False(t, matchesAnyRole(project, []string{"Frontend Developer"}))
	assert.False(t, matchesAnyRole(project, nil))
}

func TestMatchesAnyRole_NoRolesListed(t *testing.T) {
	bare := &models.Project{Title: "No Roles Yet"}

	assert.False(t, matchesAnyRole(bare, []string{"Backend Developer"}))
}
