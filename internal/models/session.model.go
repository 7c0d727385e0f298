package models

const (
	CategoryMeditation = "meditation"
	CategorySleep      = "sleep"
	CategoryBreathwork = "breathwork"
	CategoryMusic      = "music"
)

type Session struct {
	BaseModel
	Title       string  `gorm:"type:text;not null"              json:"title"`
	Description string  `gorm:"type:text;not null"              json:"description"`
	Category    string  `gorm:"type:text;not null;index"        json:"category"`
	Duration    int     `gorm:"type:int;not null"               json:"duration"`
	AudioURL    *string `gorm:"type:text"                       json:"audioUrl"`
	ImageURL    *string `gorm:"type:text"                       json:"imageUrl"`
	TeacherID   *int    `gorm:"type:int;index"                  json:"teacherId"`
	IsPremium   bool    `gorm:"type:bool;default:false"         json:"isPremium"`
	PlayCount   int     `gorm:"type:int;default:0"              json:"playCount"`
	IsFeatured  bool    `gorm:"type:bool;default:false;index"   json:"isFeatured"`

	Teacher *Teacher `gorm:"foreignKey:TeacherID" json:"teacher"`
}

type SessionRequest struct {
	Title       string  `json:"title"       validate:"required,min=1"`
	Description string  `json:"description" validate:"required,min=1"`
	Category    string  `json:"category"    validate:"required,oneof=meditation sleep breathwork music"`
	Duration    int     `json:"duration"    validate:"required,min=1"`
	AudioURL    *string `json:"audioUrl"`
	ImageURL    *string `json:"imageUrl"`
	TeacherID   *int    `json:"teacherId"`
	IsPremium   bool    `json:"isPremium"`
	IsFeatured  bool    `json:"isFeatured"`
}

type SessionUpdateRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Category    *string `json:"category"    validate:"omitempty,oneof=meditation sleep breathwork music"`
	Duration    *int    `json:"duration"    validate:"omitempty,min=1"`
	AudioURL    *string `json:"audioUrl"`
	ImageURL    *string `json:"imageUrl"`
	TeacherID   *int    `json:"teacherId"`
	IsPremium   *bool   `json:"isPremium"`
	IsFeatured  *bool   `json:"isFeatured"`
}

// SessionFilters compose with logical AND; zero values mean "not filtered".
type SessionFilters struct {
	Category string
	Duration int
	Search   string
	Featured bool
}

func (f SessionFilters) Empty() bool {
	return f.Category == "" && f.Duration == 0 && f.Search == "" && !f.Featured
}

func (r SessionRequest) ToModel() Session {
	return Session{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Duration:    r.Duration,
		AudioURL:    r.AudioURL,
		ImageURL:    r.ImageURL,
		TeacherID:   r.TeacherID,
		IsPremium:   r.IsPremium,
		IsFeatured:  r.IsFeatured,
	}
}

func (r SessionUpdateRequest) Updates() map[string]any {
	updates := make(map[string]any)
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Category != nil {
		updates["category"] = *r.Category
	}
	if r.Duration != nil {
		updates["duration"] = *r.Duration
	}
	if r.AudioURL != nil {
		updates["audio_url"] = *r.AudioURL
	}
	if r.ImageURL != nil {
		updates["image_url"] = *r.ImageURL
	}
	if r.TeacherID != nil {
		updates["teacher_id"] = *r.TeacherID
	}
	if r.IsPremium != nil {
		updates["is_premium"] = *r.IsPremium
	}
	if r.IsFeatured != nil {
		updates["is_featured"] = *r.IsFeatured
	}
	return updates
}

// SessionPlayStat is the per-session slice of the usage report.
type SessionPlayStat struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	PlayCount int    `json:"playCount"`
}
