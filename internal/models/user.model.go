package models

import (
	"time"
)

type User struct {
	BaseModel
	Email           string     `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Password        string     `gorm:"type:text;not null"             json:"-"`
	Name            string     `gorm:"type:text;not null"             json:"name"`
	IsPremium       bool       `gorm:"type:bool;default:false"        json:"isPremium"`
	TotalMinutes    int        `gorm:"type:int;default:0"             json:"totalMinutes"`
	CurrentStreak   int        `gorm:"type:int;default:0"             json:"currentStreak"`
	LastSessionDate *time.Time `gorm:"type:timestamp"                 json:"lastSessionDate,omitempty"`
}

type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"     validate:"required,min=1"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserProfile is the API-facing user shape. The password hash never leaves
// the server, so responses are built from this instead of User.
type UserProfile struct {
	ID            int    `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	IsPremium     bool   `json:"isPremium"`
	TotalMinutes  int    `json:"totalMinutes"`
	CurrentStreak int    `json:"currentStreak"`
}

type AuthResponse struct {
	User  UserProfile `json:"user"`
	Token string      `json:"token"`
}

func (u *User) ToProfile() UserProfile {
	return UserProfile{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		IsPremium:     u.IsPremium,
		TotalMinutes:  u.TotalMinutes,
		CurrentStreak: u.CurrentStreak,
	}
}

// ApplyListening folds one listening event into the user's cumulative stats.
// Streak rules compare calendar days truncated to midnight: a gap of exactly
// one day extends the streak, a longer gap resets it to 1, a same-day repeat
// leaves it unchanged, and the first ever session starts it at 1.
func (u *User) ApplyListening(minutes int, now time.Time) {
	streak := u.CurrentStreak
	if u.LastSessionDate != nil {
		switch diff := DaysBetween(*u.LastSessionDate, now); {
		case diff == 1:
			streak++
		case diff > 1:
			streak = 1
		}
	} else {
		streak = 1
	}

	u.TotalMinutes += minutes
	u.CurrentStreak = streak
	u.LastSessionDate = &now
}

// TruncateToDay drops the time-of-day component, keeping the location.
func TruncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DaysBetween counts whole calendar days from a to b. Rounding absorbs the
// one-hour offsets that DST transitions introduce between midnights.
func DaysBetween(a, b time.Time) int {
	return int(TruncateToDay(b).Sub(TruncateToDay(a)).Round(24*time.Hour) / (24 * time.Hour))
}
