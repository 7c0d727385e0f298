package handlers

import (
	"testing"

	"stillpoint/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessions_CRUD(t *testing.T) {
	fiberApp, _ := setupTestServer(t)

	created := createSession(t, fiberApp, fiber.Map{"title": "Morning Calm"})
	require.NotZero(t, created.ID)
	assert.Equal(t, "Morning Calm", created.Title)

	resp := doRequest(t, fiberApp, fiber.MethodGet, "/api/sessions/1", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var fetched models.Session
	decodeBody(t, resp, &fetched)
	assert.Equal(t, created.ID, fetched.ID)

	resp = doRequest(t, fiberApp, fiber.MethodPut, "/api/sessions/1", fiber.Map{
		"title": "Evening Calm",
	}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.Session
	decodeBody(t, resp, &updated)
	assert.Equal(t, "Evening Calm", updated.Title)
	assert.Equal(t, created.Duration, updated.Duration)

	resp = doRequest(t, fiberApp, fiber.MethodDelete, "/api/sessions/1", nil, "")
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, fiberApp, fiber.MethodGet, "/api/sessions/1", nil, "")
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSessions_NotFound(t *testing.T) {
	fiberApp, _ := setupTestServer(t)

	resp := doRequest(t, fiberApp, fiber.MethodGet, "/api/sessions/999", nil, "")
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Session not found", body["message"])
}

func TestSessions_CreateValidation(t *testing.T) {
	fiberApp, _ := setupTestServer(t)

	resp := doRequest(t, fiberApp, fiber.MethodPost, "/api/sessions", fiber.Map{
		"title":       "Bad Category",
		"description": "x",
		"category":    "yoga",
		"duration":    10,
	}, "")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "category", body["field"])
}

func TestSessions_ListFilters(t *testing.T) {
	fiberApp, _ := setupTestServer(t)

	createSession(t, fiberApp, fiber.Map{"title": "Calm", "category": "meditation", "isFeatured": true})
	createSession(t, fiberApp, fiber.Map{"title": "Sleepy", "category": "sleep", "duration": 30})

	resp := doRequest(t, fiberApp, fiber.MethodGet, "/api/sessions?category=sleep", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var sessions []models.Session
	decodeBody(t, resp, &sessions)
	require.Len(t, sessions, 1)
	assert.Equal(t, "Sleepy", sessions[0].Title)

	resp = doRequest(t, fiberApp, fiber.MethodGet, "/api/sessions?featured=true", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	decodeBody(t, resp, &sessions)
	require.Len(t, sessions, 1)
	assert.Equal(t, "Calm", sessions[0].Title)

	resp = doRequest(t, fiberApp, fiber.MethodGet, "/api/sessions?search=sleep", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	decodeBody(t, resp, &sessions)
	require.Len(t, sessions, 1)
	assert.Equal(t, "Sleepy", sessions[0].Title)
}

func TestSessions_PlayIncrementsCount(t *testing.T) {
	fiberApp, _ := setupTestServer(t)

	created := createSession(t, fiberApp, nil)

	for i := 1; i <= 3; i++ {
		resp := doRequest(t, fiberApp, fiber.MethodPost, "/api/sessions/1/play", nil, "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var session models.Session
		decodeBody(t, resp, &session)
		assert.Equal(t, created.ID, session.ID)
		assert.Equal(t, i, session.PlayCount)
	}

	resp := doRequest(t, fiberApp, fiber.MethodPost, "/api/sessions/999/play", nil, "")
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSessions_NestedTeacher(t *testing.T) {
	fiberApp, _ := setupTestServer(t)

	resp := doRequest(t, fiberApp, fiber.MethodPost, "/api/teachers", fiber.Map{
		"name":      "Elena Rodriguez",
		"bio":       "Ambient meditation",
		"specialty": "Pure Ambient",
	}, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var teacher models.Teacher
	decodeBody(t, resp, &teacher)

	createSession(t, fiberApp, fiber.Map{"title": "With Teacher", "teacherId": teacher.ID})

	listResp := doRequest(t, fiberApp, fiber.MethodGet, "/api/sessions", nil, "")
	require.Equal(t, fiber.StatusOK, listResp.StatusCode)

	var sessions []models.Session
	decodeBody(t, listResp, &sessions)
	require.Len(t, sessions, 1)
	require.NotNil(t, sessions[0].Teacher)
	assert.Equal(t, "Elena Rodriguez", sessions[0].Teacher.Name)
}
