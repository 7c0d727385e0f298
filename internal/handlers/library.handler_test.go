package handlers

import (
	"testing"

	"stillpoint/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavorites_RequireAuth(t *testing.T) {
	fiberApp, _ := setupTestServer(t)

	resp := doRequest(t, fiberApp, fiber.MethodGet, "/api/favorites", nil, "")
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestFavorites_ToggleRoundTrip(t *testing.T) {
	fiberApp, _ := setupTestServer(t)

	_, token := registerUser(t, fiberApp, "fav@example.com")
	createSession(t, fiberApp, nil)

	var status models.FavoriteStatus

	resp := doRequest(t, fiberApp, fiber.MethodGet, "/api/favorites/1/check", nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &status)
	assert.False(t, status.IsFavorite)

	resp = doRequest(t, fiberApp, fiber.MethodPost, "/api/favorites/1", nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &status)
	assert.True(t, status.IsFavorite)

	resp = doRequest(t, fiberApp, fiber.MethodGet, "/api/favorites", nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var sessions []models.Session
	decodeBody(t, resp, &sessions)
	require.Len(t, sessions, 1)

	// Second toggle returns to the original state.
	resp = doRequest(t, fiberApp, fiber.MethodPost, "/api/favorites/1", nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &status)
	assert.False(t, status.IsFavorite)

	resp = doRequest(t, fiberApp, fiber.MethodGet, "/api/favorites", nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &sessions)
	assert.Empty(t, sessions)
}

func TestFavorites_UnknownSession(t *testing.T) {
	fiberApp, _ := setupTestServer(t)

	_, token := registerUser(t, fiberApp, "fav404@example.com")

	resp := doRequest(t, fiberApp, fiber.MethodPost, "/api/favorites/999", nil, token)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestFavorites_ScopedToUser(t *testing.T) {
	fiberApp, _ := setupTestServer(t)

	_, tokenA := registerUser(t, fiberApp, "a@example.com")
	_, tokenB := registerUser(t, fiberApp, "b@example.com")
	createSession(t, fiberApp, nil)

	resp := doRequest(t, fiberApp, fiber.MethodPost, "/api/favorites/1", nil, tokenA)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, fiberApp, fiber.MethodGet, "/api/favorites", nil, tokenB)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var sessions []models.Session
	decodeBody(t, resp, &sessions)
	assert.Empty(t, sessions)
}

func TestProgress_RecordAndStats(t *testing.T) {
	fiberApp, _ := setupTestServer(t)

	_, token := registerUser(t, fiberApp, "progress@example.com")
	createSession(t, fiberApp, nil)

	resp := doRequest(t, fiberApp, fiber.MethodPost, "/api/progress", fiber.Map{
		"sessionId":       1,
		"minutesListened": 15,
	}, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body map[string]bool
	decodeBody(t, resp, &body)
	assert.True(t, body["success"])

	resp = doRequest(t, fiberApp, fiber.MethodGet, "/api/progress/stats", nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stats models.UserStats
	decodeBody(t, resp, &stats)
	assert.Equal(t, 15, stats.TotalMinutes)
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 1, stats.SessionsCompleted)

	// A same-day second session adds minutes without extending the streak.
	resp = doRequest(t, fiberApp, fiber.MethodPost, "/api/progress", fiber.Map{
		"sessionId":       1,
		"minutesListened": 5,
	}, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doRequest(t, fiberApp, fiber.MethodGet, "/api/progress/stats", nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &stats)
	assert.Equal(t, 20, stats.TotalMinutes)
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 2, stats.SessionsCompleted)
}

func TestProgress_UnknownSession(t *testing.T) {
	fiberApp, _ := setupTestServer(t)

	_, token := registerUser(t, fiberApp, "p404@example.com")

	resp := doRequest(t, fiberApp, fiber.MethodPost, "/api/progress", fiber.Map{
		"sessionId":       999,
		"minutesListened": 10,
	}, token)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestProgress_RequiresSessionID(t *testing.T) {
	fiberApp, _ := setupTestServer(t)

	_, token := registerUser(t, fiberApp, "pval@example.com")

	resp := doRequest(t, fiberApp, fiber.MethodPost, "/api/progress", fiber.Map{
		"minutesListened": 10,
	}, token)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "sessionId", body["field"])
}

func TestStats_Usage(t *testing.T) {
	fiberApp, _ := setupTestServer(t)

	registerUser(t, fiberApp, "one@example.com")
	registerUser(t, fiberApp, "two@example.com")
	createSession(t, fiberApp, fiber.Map{"title": "Counted"})

	resp := doRequest(t, fiberApp, fiber.MethodPost, "/api/sessions/1/play", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, fiberApp, fiber.MethodGet, "/api/stats/usage", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var usage models.UsageStats
	decodeBody(t, resp, &usage)
	assert.EqualValues(t, 2, usage.UserCount)
	require.Len(t, usage.Sessions, 1)
	assert.Equal(t, "Counted", usage.Sessions[0].Title)
	assert.Equal(t, 1, usage.Sessions[0].PlayCount)
}
