package repositories

import (
	"context"
	"errors"
	"strings"

	"stillpoint/internal/database"
	. "stillpoint/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

const POPULAR_SESSION_LIMIT = 10

type SessionRepository interface {
	// GetAll lists sessions matching the filters, teacher preloaded, in
	// stable id order. Filters compose with AND.
	GetAll(ctx context.Context, filters SessionFilters) ([]Session, error)
	GetByID(ctx context.Context, id int) (*Session, error)
	GetByTeacher(ctx context.Context, teacherID int) ([]Session, error)
	Create(ctx context.Context, session *Session) error
	Update(ctx context.Context, id int, updates map[string]any) (*Session, error)
	Delete(ctx context.Context, id int) (bool, error)
	// IncrementPlayCount bumps the play counter in a single statement so
	// concurrent plays never lose an increment, then returns the fresh row.
	IncrementPlayCount(ctx context.Context, id int) (*Session, error)
	// GetDaily deterministically picks one session for the given day,
	// rotating through the catalog in id order.
	GetDaily(ctx context.Context, dayOfYear int) (*Session, error)
	GetFeatured(ctx context.Context) ([]Session, error)
	GetPopular(ctx context.Context) ([]Session, error)
	GetPlayCounts(ctx context.Context) ([]SessionPlayStat, error)
}

type sessionRepository struct {
	db  database.DB
	log logger.Logger
}

func NewSessionRepository(db database.DB) SessionRepository {
	return &sessionRepository{
		db:  db,
		log: logger.New("sessionRepository"),
	}
}

func (r *sessionRepository) GetAll(
	ctx context.Context,
	filters SessionFilters,
) ([]Session, error) {
	log := r.log.Function("GetAll")

	query := r.db.SQLWithContext(ctx).Preload("Teacher").Order("sessions.id")

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Duration > 0 {
		query = query.Where("duration = ?", filters.Duration)
	}
	if filters.Search != "" {
		term := "%" + strings.ToLower(filters.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}
	if filters.Featured {
		query = query.Where("is_featured = ?", true)
	}

	var sessions []Session
	if err := query.Find(&sessions).Error; err != nil {
		return nil, log.Err("failed to list sessions", err)
	}

	return sessions, nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id int) (*Session, error) {
	log := r.log.Function("GetByID")

	var session Session
	err := r.db.SQLWithContext(ctx).Preload("Teacher").First(&session, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, log.Err("failed to get session by id", err, "id", id)
	}

	return &session, nil
}

func (r *sessionRepository) GetByTeacher(ctx context.Context, teacherID int) ([]Session, error) {
	log := r.log.Function("GetByTeacher")

	var sessions []Session
	err := r.db.SQLWithContext(ctx).
		Where("teacher_id = ?", teacherID).
		Order("sessions.id").
		Find(&sessions).Error
	if err != nil {
		return nil, log.Err("failed to list sessions by teacher", err, "teacherID", teacherID)
	}

	return sessions, nil
}

func (r *sessionRepository) Create(ctx context.Context, session *Session) error {
	log := r.log.Function("Create")

	if err := r.db.SQLWithContext(ctx).Create(session).Error; err != nil {
		return log.Err("failed to create session", err, "title", session.Title)
	}

	return nil
}

func (r *sessionRepository) Update(
	ctx context.Context,
	id int,
	updates map[string]any,
) (*Session, error) {
	log := r.log.Function("Update")

	if len(updates) > 0 {
		res := r.db.SQLWithContext(ctx).Model(&Session{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, log.Err("failed to update session", res.Error, "id", id)
		}
		if res.RowsAffected == 0 {
			return nil, nil
		}
	}

	return r.GetByID(ctx, id)
}

func (r *sessionRepository) Delete(ctx context.Context, id int) (bool, error) {
	log := r.log.Function("Delete")

	res := r.db.SQLWithContext(ctx).Delete(&Session{}, "id = ?", id)
	if res.Error != nil {
		return false, log.Err("failed to delete session", res.Error, "id", id)
	}

	return res.RowsAffected > 0, nil
}

func (r *sessionRepository) IncrementPlayCount(ctx context.Context, id int) (*Session, error) {
	log := r.log.Function("IncrementPlayCount")

	res := r.db.SQLWithContext(ctx).Model(&Session{}).
		Where("id = ?", id).
		UpdateColumn("play_count", gorm.Expr("play_count + ?", 1))
	if res.Error != nil {
		return nil, log.Err("failed to increment play count", res.Error, "id", id)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	return r.GetByID(ctx, id)
}

func (r *sessionRepository) GetDaily(ctx context.Context, dayOfYear int) (*Session, error) {
	log := r.log.Function("GetDaily")

	var sessions []Session
	err := r.db.SQLWithContext(ctx).Preload("Teacher").Order("sessions.id").Find(&sessions).Error
	if err != nil {
		return nil, log.Err("failed to load sessions for daily pick", err)
	}
	if len(sessions) == 0 {
		return nil, nil
	}

	return &sessions[dayOfYear%len(sessions)], nil
}

func (r *sessionRepository) GetFeatured(ctx context.Context) ([]Session, error) {
	return r.GetAll(ctx, SessionFilters{Featured: true})
}

func (r *sessionRepository) GetPopular(ctx context.Context) ([]Session, error) {
	log := r.log.Function("GetPopular")

	var sessions []Session
	err := r.db.SQLWithContext(ctx).
		Preload("Teacher").
		Order("play_count DESC, sessions.id").
		Limit(POPULAR_SESSION_LIMIT).
		Find(&sessions).Error
	if err != nil {
		return nil, log.Err("failed to list popular sessions", err)
	}

	return sessions, nil
}

func (r *sessionRepository) GetPlayCounts(ctx context.Context) ([]SessionPlayStat, error) {
	log := r.log.Function("GetPlayCounts")

	var stats []SessionPlayStat
	err := r.db.SQLWithContext(ctx).Model(&Session{}).
		Select("id", "title", "play_count").
		Order("play_count DESC, id").
		Find(&stats).Error
	if err != nil {
		return nil, log.Err("failed to collect play counts", err)
	}

	return stats, nil
}
