package repositories

import (
	"context"

	"stillpoint/internal/database"
	. "stillpoint/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

type ProgressRepository interface {
	// Create appends a progress record against the given transaction handle
	// so it commits atomically with the user's stats update.
	Create(ctx context.Context, tx *gorm.DB, progress *UserProgress) error
	CountForUser(ctx context.Context, userID int) (int64, error)
}

type progressRepository struct {
	db  database.DB
	log logger.Logger
}

func NewProgressRepository(db database.DB) ProgressRepository {
	return &progressRepository{
		db:  db,
		log: logger.New("progressRepository"),
	}
}

func (r *progressRepository) Create(
	ctx context.Context,
	tx *gorm.DB,
	progress *UserProgress,
) error {
	log := r.log.Function("Create")

	if err := tx.Create(progress).Error; err != nil {
		return log.Err("failed to record progress", err, "userID", progress.UserID)
	}

	return nil
}

func (r *progressRepository) CountForUser(ctx context.Context, userID int) (int64, error) {
	log := r.log.Function("CountForUser")

	var count int64
	err := r.db.SQLWithContext(ctx).Model(&UserProgress{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, log.Err("failed to count progress records", err, "userID", userID)
	}

	return count, nil
}
