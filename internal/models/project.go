package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type Project struct {
	BaseModel
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"not null" json:"description"`
	Stage       ProjectStage   `gorm:"type:varchar(20);not null" json:"stage"`
	Category    string         `gorm:"not null" json:"category"`
	RolesNeeded datatypes.JSON `json:"rolesNeeded"`
	Tags        datatypes.JSON `json:"tags"`
	CreatorID   string         `gorm:"not null;index" json:"creatorId"`
	Premium     bool           `gorm:"default:false" json:"premium"`

	// Relations
	Applications []Application `gorm:"foreignKey:ProjectID" json:"-"`
	Messages     []Message     `gorm:"foreignKey:ProjectID" json:"-"`
}

func (p *Project) GetRolesNeeded() []string {
	var roles []string
	if len(p.RolesNeeded) > 0 {
		_ = json.Unmarshal(p.RolesNeeded, &roles)
	}
	return roles
}

func (p *Project) SetRolesNeeded(roles []string) {
	if roles == nil {
		roles = []string{}
	}
	data, _ := json.Marshal(roles)
	p.RolesNeeded = datatypes.JSON(data)
}

func (p *Project) GetTags() []string {
	var tags []string
	if len(p.Tags) > 0 {
		_ = json.Unmarshal(p.Tags, &tags)
	}
	return tags
}

func (p *Project) SetTags(tags []string) {
	if tags == nil {
		tags = []string{}
	}
	data, _ := json.Marshal(tags)
	p.Tags = datatypes.JSON(data)
}
