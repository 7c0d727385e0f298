package models

type Teacher struct {
	BaseModel
	Name      string  `gorm:"type:text;not null" json:"name"`
	Bio       string  `gorm:"type:text;not null" json:"bio"`
	AvatarURL *string `gorm:"type:text"          json:"avatarUrl"`
	Specialty string  `gorm:"type:text;not null" json:"specialty"`

	// Sessions keep their rows when the teacher is deleted; the reference is
	// nulled, never cascaded.
	Sessions []Session `gorm:"foreignKey:TeacherID;constraint:OnDelete:SET NULL" json:"sessions,omitempty"`
}

type TeacherRequest struct {
	Name      string  `json:"name"      validate:"required,min=1"`
	Bio       string  `json:"bio"       validate:"required,min=1"`
	AvatarURL *string `json:"avatarUrl"`
	Specialty string  `json:"specialty" validate:"required,min=1"`
}

// TeacherUpdateRequest makes every field optional without relaxing the
// per-field constraints of TeacherRequest.
type TeacherUpdateRequest struct {
	Name      *string `json:"name"      validate:"omitempty,min=1"`
	Bio       *string `json:"bio"       validate:"omitempty,min=1"`
	AvatarURL *string `json:"avatarUrl"`
	Specialty *string `json:"specialty" validate:"omitempty,min=1"`
}

func (r TeacherRequest) ToModel() Teacher {
	return Teacher{
		Name:      r.Name,
		Bio:       r.Bio,
		AvatarURL: r.AvatarURL,
		Specialty: r.Specialty,
	}
}

// Updates returns the non-nil fields as a GORM updates map.
func (r TeacherUpdateRequest) Updates() map[string]any {
	updates := make(map[string]any)
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Bio != nil {
		updates["bio"] = *r.Bio
	}
	if r.AvatarURL != nil {
		updates["avatar_url"] = *r.AvatarURL
	}
	if r.Specialty != nil {
		updates["specialty"] = *r.Specialty
	}
	return updates
}
