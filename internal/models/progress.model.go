package models

import (
	"time"
)

// UserProgress is an append-only listening log entry; rows are never updated
// or deleted, only aggregated.
type UserProgress struct {
	ID              int       `gorm:"type:int;primaryKey;autoIncrement"    json:"id"`
	UserID          int       `gorm:"type:int;not null;index"              json:"userId"`
	SessionID       int       `gorm:"type:int;not null;index"              json:"sessionId"`
	MinutesListened int       `gorm:"type:int;not null"                    json:"minutesListened"`
	CompletedAt     time.Time `gorm:"type:timestamp;not null;autoCreateTime" json:"completedAt"`
}

type ProgressRequest struct {
	SessionID       int `json:"sessionId"       validate:"required"`
	MinutesListened int `json:"minutesListened" validate:"min=0"`
}

type UserStats struct {
	TotalMinutes      int `json:"totalMinutes"`
	CurrentStreak     int `json:"currentStreak"`
	SessionsCompleted int `json:"sessionsCompleted"`
}

type UsageStats struct {
	UserCount int64             `json:"userCount"`
	Sessions  []SessionPlayStat `json:"sessions"`
}
