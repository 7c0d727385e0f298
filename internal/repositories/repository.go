package repositories

import (
	"stillpoint/internal/database"
)

type Repository struct {
	User     UserRepository
	Teacher  TeacherRepository
	Session  SessionRepository
	Favorite FavoriteRepository
	Progress ProgressRepository
}

func New(db database.DB) Repository {
	return Repository{
		User:     NewUserRepository(db), // user repo fronts the valkey cache
		Teacher:  NewTeacherRepository(db),
		Session:  NewSessionRepository(db),
		Favorite: NewFavoriteRepository(db),
		Progress: NewProgressRepository(db),
	}
}
