package models

type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	AvatarURL    string `json:"avatarUrl"`

	// Relations
	Profile  *Profile  `gorm:"foreignKey:UserID" json:"-"`
	Projects []Project `gorm:"foreignKey:CreatorID" json:"-"`
}

// DisplayName returns what other users see next to this account. Profiles may
// be empty right after registration, so the email doubles as the name.
func (u *User) DisplayName() string {
	if u.Profile != nil {
		if name := u.Profile.FullName(); name != "" {
			return name
		}
	}
	return u.Email
}
