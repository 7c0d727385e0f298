package auth

import (
	"context"
	"testing"
	"time"

	"stillpoint/config"
	"stillpoint/internal/apperror"
	. "stillpoint/internal/models"
	"stillpoint/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// duplicateRaceRepo models the window where the pre-check misses an email
// that another request commits before our insert lands.
type duplicateRaceRepo struct{}

func (r *duplicateRaceRepo) GetByID(ctx context.Context, id int) (*User, error) {
	return nil, nil
}

func (r *duplicateRaceRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	return nil, nil
}

func (r *duplicateRaceRepo) Create(ctx context.Context, user *User) error {
	return apperror.Conflict("Email already registered")
}

func (r *duplicateRaceRepo) UpdateListeningStats(
	ctx context.Context,
	tx *gorm.DB,
	userID, minutes int,
	now time.Time,
) error {
	return nil
}

func (r *duplicateRaceRepo) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

func TestRegister_DuplicateRaceReadsAsValidation(t *testing.T) {
	tokenService, err := services.NewTokenService(config.Config{
		JWTSecret: "test-secret-at-least-16-chars",
	})
	require.NoError(t, err)

	controller := New(&duplicateRaceRepo{}, tokenService)

	_, err = controller.Register(context.Background(), RegisterRequest{
		Email:    "dup@example.com",
		Password: "secret123",
		Name:     "Dup",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrValidation)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "email", appErr.Field)
	assert.Equal(t, "Email already registered", appErr.Message)
}
