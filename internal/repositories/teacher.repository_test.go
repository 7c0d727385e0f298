package repositories

import (
	"context"
	"testing"

	. "stillpoint/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeacherRepository_CreateAndGet(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewTeacherRepository(db)
	ctx := context.Background()

	teacher := &Teacher{Name: "Sarah Chen", Bio: "Ambient", Specialty: "Soundscapes"}
	require.NoError(t, repo.Create(ctx, teacher))
	require.NotZero(t, teacher.ID)

	found, err := repo.GetByID(ctx, teacher.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Sarah Chen", found.Name)

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTeacherRepository_GetAllOrdered(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewTeacherRepository(db)
	ctx := context.Background()

	seedTeacher(t, db, "First")
	seedTeacher(t, db, "Second")

	teachers, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, teachers, 2)
	assert.Equal(t, "First", teachers[0].Name)
	assert.Equal(t, "Second", teachers[1].Name)
}

func TestTeacherRepository_GetWithSessions(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewTeacherRepository(db)
	ctx := context.Background()

	teacher := seedTeacher(t, db, "Elena")
	seedSession(t, db, Session{Title: "B Session", TeacherID: intPtr(teacher.ID)})
	seedSession(t, db, Session{Title: "A Session", TeacherID: intPtr(teacher.ID)})
	seedSession(t, db, Session{Title: "Unrelated"})

	found, err := repo.GetWithSessions(ctx, teacher.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Len(t, found.Sessions, 2)
	assert.Equal(t, "B Session", found.Sessions[0].Title)
	assert.Equal(t, "A Session", found.Sessions[1].Title)
}

func TestTeacherRepository_UpdatePartial(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewTeacherRepository(db)
	ctx := context.Background()

	teacher := seedTeacher(t, db, "Before")

	updated, err := repo.Update(ctx, teacher.ID, map[string]any{"name": "After"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "After", updated.Name)
	assert.Equal(t, teacher.Bio, updated.Bio)

	missing, err := repo.Update(ctx, 999, map[string]any{"name": "X"})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTeacherRepository_DeleteKeepsSessions(t *testing.T) {
	db := setupRepoDB(t)
	teacherRepo := NewTeacherRepository(db)
	sessionRepo := NewSessionRepository(db)
	ctx := context.Background()

	teacher := seedTeacher(t, db, "Departing")
	session := seedSession(t, db, Session{Title: "Orphaned", TeacherID: intPtr(teacher.ID)})

	removed, err := teacherRepo.Delete(ctx, teacher.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	// The session survives with its teacher reference nulled.
	kept, err := sessionRepo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, kept)
	assert.Nil(t, kept.TeacherID)
	assert.Nil(t, kept.Teacher)

	removed, err = teacherRepo.Delete(ctx, teacher.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}
