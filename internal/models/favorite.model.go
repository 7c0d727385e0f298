package models

// Favorite is a (user, session) join row. The composite unique index is the
// authoritative guard against duplicate favorites; toggling relies on it
// instead of a check-then-act sequence.
type Favorite struct {
	BaseModel
	UserID    int `gorm:"type:int;not null;uniqueIndex:idx_favorites_user_session" json:"userId"`
	SessionID int `gorm:"type:int;not null;uniqueIndex:idx_favorites_user_session" json:"sessionId"`
}

type FavoriteStatus struct {
	IsFavorite bool `json:"isFavorite"`
}
