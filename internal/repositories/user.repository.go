package repositories

import (
	"context"
	"errors"
	"strconv"
	"time"

	"stillpoint/internal/apperror"
	"stillpoint/internal/database"
	. "stillpoint/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

const (
	USER_CACHE_EXPIRY = 24 * time.Hour
	USER_CACHE_PREFIX = "user:"
)

type UserRepository interface {
	// GetByID and GetByEmail return (nil, nil) when no such user exists;
	// absence is a sentinel, not an error.
	GetByID(ctx context.Context, id int) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// Create persists the user; a duplicate email surfaces as a conflict
	// error from the unique index, the authoritative enforcement point.
	Create(ctx context.Context, user *User) error
	// UpdateListeningStats folds a listening event into the user's totals and
	// streak against the given transaction handle. Silently no-ops when the
	// user is absent.
	UpdateListeningStats(ctx context.Context, tx *gorm.DB, userID, minutes int, now time.Time) error
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	db  database.DB
	log logger.Logger
}

func NewUserRepository(db database.DB) UserRepository {
	return &userRepository{
		db:  db,
		log: logger.New("userRepository"),
	}
}

func (r *userRepository) GetByID(ctx context.Context, id int) (*User, error) {
	log := r.log.Function("GetByID")

	var user User
	if found := r.getCacheByID(ctx, id, &user); found {
		return &user, nil
	}

	err := r.db.SQLWithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, log.Err("failed to get user by id", err, "id", id)
	}

	r.addUserToCache(ctx, &user)

	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	log := r.log.Function("GetByEmail")

	var user User
	err := r.db.SQLWithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, log.Err("failed to get user by email", err, "email", email)
	}

	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *User) error {
	log := r.log.Function("Create")

	if err := r.db.SQLWithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.Conflict("Email already registered")
		}
		return log.Err("failed to create user", err, "email", user.Email)
	}

	return nil
}

func (r *userRepository) UpdateListeningStats(
	ctx context.Context,
	tx *gorm.DB,
	userID, minutes int,
	now time.Time,
) error {
	log := r.log.Function("UpdateListeningStats")

	var user User
	err := tx.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return log.Err("failed to load user for stats update", err, "userID", userID)
	}

	user.ApplyListening(minutes, now)

	err = tx.Model(&user).
		Select("total_minutes", "current_streak", "last_session_date").
		Updates(map[string]any{
			"total_minutes":     user.TotalMinutes,
			"current_streak":    user.CurrentStreak,
			"last_session_date": user.LastSessionDate,
		}).Error
	if err != nil {
		return log.Err("failed to update user stats", err, "userID", userID)
	}

	r.clearUserCache(ctx, userID)

	return nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	log := r.log.Function("Count")

	var count int64
	if err := r.db.SQLWithContext(ctx).Model(&User{}).Count(&count).Error; err != nil {
		return 0, log.Err("failed to count users", err)
	}

	return count, nil
}

func (r *userRepository) getCacheByID(ctx context.Context, userID int, user *User) bool {
	if r.db.Cache.User == nil {
		return false
	}

	cacheKey := USER_CACHE_PREFIX + strconv.Itoa(userID)
	found, err := database.NewCacheBuilder(r.db.Cache.User, cacheKey).WithContext(ctx).Get(user)
	if err != nil {
		r.log.Function("getCacheByID").
			Warn("failed to get user from cache", "userID", userID, "error", err)
		return false
	}

	return found
}

func (r *userRepository) addUserToCache(ctx context.Context, user *User) {
	if r.db.Cache.User == nil {
		return
	}

	cacheKey := USER_CACHE_PREFIX + strconv.Itoa(user.ID)
	if err := database.NewCacheBuilder(r.db.Cache.User, cacheKey).
		WithStruct(user).
		WithTTL(USER_CACHE_EXPIRY).
		WithContext(ctx).
		Set(); err != nil {
		r.log.Function("addUserToCache").
			Warn("failed to add user to cache", "userID", user.ID, "error", err)
	}
}

func (r *userRepository) clearUserCache(ctx context.Context, userID int) {
	if r.db.Cache.User == nil {
		return
	}

	cacheKey := USER_CACHE_PREFIX + strconv.Itoa(userID)
	if err := database.NewCacheBuilder(r.db.Cache.User, cacheKey).WithContext(ctx).Delete(); err != nil {
		r.log.Function("clearUserCache").
			Warn("failed to clear user cache", "userID", userID, "error", err)
	}
}
