package models

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"
)

// Profile is the 1:1 supplemental record for a user. It is created empty at
// registration and upserted afterwards.
type Profile struct {
	BaseModel
	UserID      string         `gorm:"uniqueIndex;not null" json:"userId"`
	FirstName   string         `json:"firstName"`
	LastName    string         `json:"lastName"`
	Title       string         `json:"title"`
	Bio         string         `json:"bio"`
	Location    string         `json:"location"`
	Education   string         `json:"education"`
	Experience  string         `json:"experience"`
	Skills      datatypes.JSON `json:"skills"`
	Industry    string         `json:"industry"`
	GithubURL   string         `json:"githubUrl"`
	LinkedinURL string         `json:"linkedinUrl"`
}

func (p *Profile) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

func (p *Profile) GetSkills() []string {
	var skills []string
	if len(p.Skills) > 0 {
		_ = json.Unmarshal(p.Skills, &skills)
	}
	return skills
}

func (p *Profile) SetSkills(skills []string) {
	if skills == nil {
		skills = []string{}
	}
	data, _ := json.Marshal(skills)
	p.Skills = datatypes.JSON(data)
}
