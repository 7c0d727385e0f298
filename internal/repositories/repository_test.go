package repositories

import (
	"testing"

	"stillpoint/internal/database"
	. "stillpoint/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func setupRepoDB(t *testing.T) database.DB {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	// A second pooled connection to :memory: would see an empty database,
	// so keep the pool at one connection.
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gormDB.AutoMigrate(
		&User{},
		&Teacher{},
		&Session{},
		&Favorite{},
		&UserProgress{},
	))

	return database.DB{SQL: gormDB}
}

func seedTeacher(t *testing.T, db database.DB, name string) Teacher {
	t.Helper()

	teacher := Teacher{Name: name, Bio: name + " bio", Specialty: "Ambient"}
	require.NoError(t, db.SQL.Create(&teacher).Error)
	return teacher
}

func seedSession(t *testing.T, db database.DB, session Session) Session {
	t.Helper()

	if session.Title == "" {
		session.Title = "Session"
	}
	if session.Description == "" {
		session.Description = "Description"
	}
	if session.Category == "" {
		session.Category = CategoryMeditation
	}
	if session.Duration == 0 {
		session.Duration = 10
	}
	require.NoError(t, db.SQL.Create(&session).Error)
	return session
}

func seedUser(t *testing.T, db database.DB, email string) User {
	t.Helper()

	user := User{Email: email, Password: "hash", Name: "Test User"}
	require.NoError(t, db.SQL.Create(&user).Error)
	return user
}

func intPtr(i int) *int {
	return &i
}
