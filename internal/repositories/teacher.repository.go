package repositories

import (
	"context"
	"errors"

	"stillpoint/internal/database"
	. "stillpoint/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

type TeacherRepository interface {
	GetAll(ctx context.Context) ([]Teacher, error)
	GetByID(ctx context.Context, id int) (*Teacher, error)
	// GetWithSessions returns the teacher with their sessions preloaded.
	GetWithSessions(ctx context.Context, id int) (*Teacher, error)
	Create(ctx context.Context, teacher *Teacher) error
	// Update applies a partial update and returns the updated row, or
	// (nil, nil) when the teacher is absent.
	Update(ctx context.Context, id int, updates map[string]any) (*Teacher, error)
	// Delete removes the teacher and nulls the reference on their sessions;
	// the sessions themselves are kept. Reports whether a row was removed.
	Delete(ctx context.Context, id int) (bool, error)
}

type teacherRepository struct {
	db  database.DB
	log logger.Logger
}

func NewTeacherRepository(db database.DB) TeacherRepository {
	return &teacherRepository{
		db:  db,
		log: logger.New("teacherRepository"),
	}
}

func (r *teacherRepository) GetAll(ctx context.Context) ([]Teacher, error) {
	log := r.log.Function("GetAll")

	var teachers []Teacher
	if err := r.db.SQLWithContext(ctx).Order("teachers.id").Find(&teachers).Error; err != nil {
		return nil, log.Err("failed to list teachers", err)
	}

	return teachers, nil
}

func (r *teacherRepository) GetByID(ctx context.Context, id int) (*Teacher, error) {
	log := r.log.Function("GetByID")

	var teacher Teacher
	err := r.db.SQLWithContext(ctx).First(&teacher, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, log.Err("failed to get teacher by id", err, "id", id)
	}

	return &teacher, nil
}

func (r *teacherRepository) GetWithSessions(ctx context.Context, id int) (*Teacher, error) {
	log := r.log.Function("GetWithSessions")

	var teacher Teacher
	err := r.db.SQLWithContext(ctx).
		Preload("Sessions", func(db *gorm.DB) *gorm.DB {
			return db.Order("sessions.id")
		}).
		First(&teacher, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, log.Err("failed to get teacher with sessions", err, "id", id)
	}

	return &teacher, nil
}

func (r *teacherRepository) Create(ctx context.Context, teacher *Teacher) error {
	log := r.log.Function("Create")

	if err := r.db.SQLWithContext(ctx).Create(teacher).Error; err != nil {
		return log.Err("failed to create teacher", err, "name", teacher.Name)
	}

	return nil
}

func (r *teacherRepository) Update(
	ctx context.Context,
	id int,
	updates map[string]any,
) (*Teacher, error) {
	log := r.log.Function("Update")

	if len(updates) > 0 {
		res := r.db.SQLWithContext(ctx).Model(&Teacher{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, log.Err("failed to update teacher", res.Error, "id", id)
		}
		if res.RowsAffected == 0 {
			return nil, nil
		}
	}

	return r.GetByID(ctx, id)
}

func (r *teacherRepository) Delete(ctx context.Context, id int) (bool, error) {
	log := r.log.Function("Delete")

	var removed bool
	err := r.db.SQLWithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Null the reference explicitly so the policy holds even when the
		// store is not enforcing the FK constraint.
		if err := tx.Model(&Session{}).
			Where("teacher_id = ?", id).
			Update("teacher_id", nil).Error; err != nil {
			return err
		}

		res := tx.Delete(&Teacher{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}

		removed = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, log.Err("failed to delete teacher", err, "id", id)
	}

	return removed, nil
}
