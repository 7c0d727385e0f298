package handlers

import (
	"testing"

	"stillpoint/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	fiberApp, _ := setupTestServer(t)

	resp := doRequest(t, fiberApp, fiber.MethodGet, "/api/health", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestRegister_ReturnsUserAndToken(t *testing.T) {
	fiberApp, _ := setupTestServer(t)

	authResp, token := registerUser(t, fiberApp, "new@example.com")

	assert.NotEmpty(t, token)
	assert.Equal(t, "new@example.com", authResp.User.Email)
	assert.NotZero(t, authResp.User.ID)
}

func TestRegister_TokenResolvesToSameUser(t *testing.T) {
	fiberApp, _ := setupTestServer(t)

	authResp, token := registerUser(t, fiberApp, "me@example.com")

	resp := doRequest(t, fiberApp, fiber.MethodGet, "/api/auth/me", nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var profile models.UserProfile
	decodeBody(t, resp, &profile)
	assert.Equal(t, authResp.User.ID, profile.ID)
	assert.Equal(t, "me@example.com", profile.Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	fiberApp, _ := setupTestServer(t)

	registerUser(t, fiberApp, "dup@example.com")

	resp := doRequest(t, fiberApp, fiber.MethodPost, "/api/auth/register", fiber.Map{
		"email":    "dup@example.com",
		"password": "different456",
		"name":     "Other",
	}, "")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Email already registered", body["message"])
	assert.Equal(t, "email", body["field"])
}

func TestRegister_ValidationErrors(t *testing.T) {
	fiberApp, _ := setupTestServer(t)

	tests := []struct {
		name          string
		body          fiber.Map
		expectedField string
	}{
		{
			name:          "invalid email",
			body:          fiber.Map{"email": "nope", "password": "secret123", "name": "A"},
			expectedField: "email",
		},
		{
			name:          "short password",
			body:          fiber.Map{"email": "a@b.com", "password": "short", "name": "A"},
			expectedField: "password",
		},
		{
			name:          "missing name",
			body:          fiber.Map{"email": "a@b.com", "password": "secret123"},
			expectedField: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, fiberApp, fiber.MethodPost, "/api/auth/register", tt.body, "")
			require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			var body map[string]string
			decodeBody(t, resp, &body)
			assert.Equal(t, tt.expectedField, body["field"])
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestLogin_Succeeds(t *testing.T) {
	fiberApp, _ := setupTestServer(t)

	registerUser(t, fiberApp, "login@example.com")

	resp := doRequest(t, fiberApp, fiber.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "login@example.com",
		"password": "secret123",
	}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var authResp models.AuthResponse
	decodeBody(t, resp, &authResp)
	assert.NotEmpty(t, authResp.Token)
	assert.Equal(t, "login@example.com", authResp.User.Email)
}

func TestLogin_FailureModesShareOneMessage(t *testing.T) {
	fiberApp, _ := setupTestServer(t)

	registerUser(t, fiberApp, "known@example.com")

	wrongPassword := doRequest(t, fiberApp, fiber.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "known@example.com",
		"password": "wrongpass",
	}, "")
	require.Equal(t, fiber.StatusUnauthorized, wrongPassword.StatusCode)

	unknownEmail := doRequest(t, fiberApp, fiber.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "unknown@example.com",
		"password": "secret123",
	}, "")
	require.Equal(t, fiber.StatusUnauthorized, unknownEmail.StatusCode)

	var first, second map[string]string
	decodeBody(t, wrongPassword, &first)
	decodeBody(t, unknownEmail, &second)
	assert.Equal(t, first["message"], second["message"])
}

func TestMe_RequiresToken(t *testing.T) {
	fiberApp, _ := setupTestServer(t)

	missing := doRequest(t, fiberApp, fiber.MethodGet, "/api/auth/me", nil, "")
	require.Equal(t, fiber.StatusUnauthorized, missing.StatusCode)

	var body map[string]string
	decodeBody(t, missing, &body)
	assert.Equal(t, "Unauthorized", body["message"])

	invalid := doRequest(t, fiberApp, fiber.MethodGet, "/api/auth/me", nil, "garbage-token")
	require.Equal(t, fiber.StatusUnauthorized, invalid.StatusCode)

	decodeBody(t, invalid, &body)
	assert.Equal(t, "Invalid token", body["message"])
}
