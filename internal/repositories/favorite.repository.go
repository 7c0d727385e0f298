package repositories

import (
	"context"

	"stillpoint/internal/database"
	. "stillpoint/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepository interface {
	// ListForUser returns the user's favorited sessions in id order,
	// teacher preloaded.
	ListForUser(ctx context.Context, userID int) ([]Session, error)
	IsFavorite(ctx context.Context, userID, sessionID int) (bool, error)
	// Toggle flips the favorite state for the pair and reports the new
	// state. Delete-then-insert under the unique pair index keeps two
	// concurrent toggles from ever producing a duplicate row.
	Toggle(ctx context.Context, userID, sessionID int) (bool, error)
}

type favoriteRepository struct {
	db  database.DB
	log logger.Logger
}

func NewFavoriteRepository(db database.DB) FavoriteRepository {
	return &favoriteRepository{
		db:  db,
		log: logger.New("favoriteRepository"),
	}
}

func (r *favoriteRepository) ListForUser(ctx context.Context, userID int) ([]Session, error) {
	log := r.log.Function("ListForUser")

	var sessions []Session
	err := r.db.SQLWithContext(ctx).
		Joins("JOIN favorites ON favorites.session_id = sessions.id").
		Where("favorites.user_id = ?", userID).
		Preload("Teacher").
		Order("sessions.id").
		Find(&sessions).Error
	if err != nil {
		return nil, log.Err("failed to list favorites", err, "userID", userID)
	}

	return sessions, nil
}

func (r *favoriteRepository) IsFavorite(ctx context.Context, userID, sessionID int) (bool, error) {
	log := r.log.Function("IsFavorite")

	var count int64
	err := r.db.SQLWithContext(ctx).Model(&Favorite{}).
		Where("user_id = ? AND session_id = ?", userID, sessionID).
		Count(&count).Error
	if err != nil {
		return false, log.Err("failed to check favorite", err, "userID", userID, "sessionID", sessionID)
	}

	return count > 0, nil
}

func (r *favoriteRepository) Toggle(ctx context.Context, userID, sessionID int) (bool, error) {
	log := r.log.Function("Toggle")

	var favorited bool
	err := r.db.SQLWithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND session_id = ?", userID, sessionID).Delete(&Favorite{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			favorited = false
			return nil
		}

		favorite := Favorite{UserID: userID, SessionID: sessionID}
		err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&favorite).Error
		if err != nil {
			return err
		}

		favorited = true
		return nil
	})
	if err != nil {
		return false, log.Err("failed to toggle favorite", err, "userID", userID, "sessionID", sessionID)
	}

	return favorited, nil
}
