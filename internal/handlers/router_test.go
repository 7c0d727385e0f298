package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stillpoint/config"
	"stillpoint/internal/app"
	"stillpoint/internal/controllers/auth"
	"stillpoint/internal/controllers/catalog"
	"stillpoint/internal/controllers/library"
	"stillpoint/internal/database"
	"stillpoint/internal/handlers/middleware"
	"stillpoint/internal/models"
	"stillpoint/internal/repositories"
	"stillpoint/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func setupTestServer(t *testing.T) (*fiber.App, *app.App) {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gormDB.AutoMigrate(
		&models.User{},
		&models.Teacher{},
		&models.Session{},
		&models.Favorite{},
		&models.UserProgress{},
	))

	db := database.DB{SQL: gormDB}
	cfg := config.Config{
		GeneralVersion: "test",
		Environment:    "test",
		ServerPort:     8080,
		JWTSecret:      "test-secret-at-least-16-chars",
	}

	tokenService, err := services.NewTokenService(cfg)
	require.NoError(t, err)
	transactionService := services.NewTransactionService(db)
	repos := repositories.New(db)
	mw := middleware.New(db, cfg, tokenService, repos)

	testApp := &app.App{
		Database:           db,
		Config:             cfg,
		Middleware:         mw,
		TokenService:       tokenService,
		TransactionService: transactionService,
		SchedulerService:   services.NewSchedulerService(),
		Repository:         repos,
		AuthController:     auth.New(repos.User, tokenService),
		CatalogController:  catalog.New(db, repos.Session, repos.Teacher),
		LibraryController: library.New(
			repos.User,
			repos.Session,
			repos.Favorite,
			repos.Progress,
			transactionService,
		),
	}

	fiberApp := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	fiberApp.Use(mw.TraceID())
	require.NoError(t, Router(fiberApp, testApp))

	return fiberApp, testApp
}

func doRequest(
	t *testing.T,
	fiberApp *fiber.App,
	method, path string,
	body any,
	token string,
) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := fiberApp.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func registerUser(
	t *testing.T,
	fiberApp *fiber.App,
	email string,
) (models.AuthResponse, string) {
	t.Helper()

	resp := doRequest(t, fiberApp, fiber.MethodPost, "/api/auth/register", fiber.Map{
		"email":    email,
		"password": "secret123",
		"name":     "Test User",
	}, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var authResp models.AuthResponse
	decodeBody(t, resp, &authResp)
	return authResp, authResp.Token
}

func createSession(
	t *testing.T,
	fiberApp *fiber.App,
	body fiber.Map,
) models.Session {
	t.Helper()

	if body == nil {
		body = fiber.Map{}
	}
	if _, ok := body["title"]; !ok {
		body["title"] = "Test Session"
	}
	if _, ok := body["description"]; !ok {
		body["description"] = "A session"
	}
	if _, ok := body["category"]; !ok {
		body["category"] = "meditation"
	}
	if _, ok := body["duration"]; !ok {
		body["duration"] = 10
	}

	resp := doRequest(t, fiberApp, fiber.MethodPost, "/api/sessions", body, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var session models.Session
	decodeBody(t, resp, &session)
	return session
}
