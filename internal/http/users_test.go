package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipevault/recipevault/internal/auth"
	"github.com/recipevault/recipevault/internal/config"
	"github.com/recipevault/recipevault/internal/database"
	"github.com/recipevault/recipevault/internal/database/users"
)

func setupAPITest(t *testing.T) (*gin.Engine, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_api_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	authCfg := config.Auth{
		JWTSecret:  "test-secret-do-not-use",
		JWTExpiry:  time.Hour,
		BcryptCost: 4,
	}
	router := NewRouter(RouterConfig{
		DB:           db,
		AuthService:  auth.NewService(users.NewRepository(db.DB), authCfg),
		TokenManager: auth.NewTokenManager(authCfg),
		Version:      "test",
	})

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return router, cleanup
}

func doJSON(router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)
	return w
}

func decodeValidationError(t *testing.T, w *httptest.ResponseRecorder) ValidationErrorResponse {
	t.Helper()
	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestUsersController_Signup(t *testing.T) {
	t.Run("creates a user", func(t *testing.T) {
		router, cleanup := setupAPITest(t)
		defer cleanup()

		w := doJSON(router, "POST", "/api/users", `{"username":"alice","password":"correcthorsebattery"}`, "")

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			ID       uint   `json:"id"`
			Username string `json:"username"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "alice", resp.Username)
		assert.NotZero(t, resp.ID)
		assert.NotContains(t, w.Body.String(), "correcthorsebattery")
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("validation failures carry the offending field", func(t *testing.T) {
		router, cleanup := setupAPITest(t)
		defer cleanup()

		tests := []struct {
			name         string
			body         string
			wantLocation string
			wantMessage  string
		}{
			{
				name:         "missing password",
				body:         `{"username":"alice"}`,
				wantLocation: "password",
				wantMessage:  "Missing field",
			},
			{
				name:         "numeric username",
				body:         `{"username":42,"password":"correcthorsebattery"}`,
				wantLocation: "username",
				wantMessage:  "Incorrect field type: expected string",
			},
			{
				name:         "padded username",
				body:         `{"username":" bob","password":"correcthorsebattery"}`,
				wantLocation: "username",
				wantMessage:  "Cannot start or end with whitespace",
			},
			{
				name:         "short password",
				body:         `{"username":"bob","password":"shortpwd9"}`,
				wantLocation: "password",
				wantMessage:  "Must be at least 10 characters long",
			},
			{
				name:         "oversized password",
				body:         `{"username":"bob","password":"` + strings.Repeat("p", 73) + `"}`,
				wantLocation: "password",
				wantMessage:  "Must be at most 72 characters long",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w := doJSON(router, "POST", "/api/users", tt.body, "")

				assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
				resp := decodeValidationError(t, w)
				assert.Equal(t, 422, resp.Code)
				assert.Equal(t, "ValidationError", resp.Reason)
				assert.Equal(t, tt.wantLocation, resp.Location)
				assert.Equal(t, tt.wantMessage, resp.Message)
			})
		}
	})

	t.Run("duplicate username is a 422", func(t *testing.T) {
		router, cleanup := setupAPITest(t)
		defer cleanup()

		w := doJSON(router, "POST", "/api/users", `{"username":"alice","password":"correcthorsebattery"}`, "")
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(router, "POST", "/api/users", `{"username":"alice","password":"anotherlongpassword"}`, "")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		resp := decodeValidationError(t, w)
		assert.Equal(t, "Username already taken", resp.Message)
		assert.Equal(t, "username", resp.Location)
	})
}

func signupAndLogin(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := doJSON(router, "POST", "/api/users", `{"username":"`+username+`","password":"`+password+`"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, "POST", "/api/auth/login", `{"username":"`+username+`","password":"`+password+`"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		AuthToken string `json:"authToken"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AuthToken)
	return resp.AuthToken
}

func TestUsersController_ChangePassword(t *testing.T) {
	t.Run("rotates the password", func(t *testing.T) {
		router, cleanup := setupAPITest(t)
		defer cleanup()
		token := signupAndLogin(t, router, "alice", "correcthorsebattery")

		w := doJSON(router, "PUT", "/api/users/password",
			`{"currentPassword":"correcthorsebattery","newPassword":"brandnewpassword"}`, token)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Password updated successfully")

		// Old password no longer authenticates, new one does
		w = doJSON(router, "POST", "/api/auth/login", `{"username":"alice","password":"correcthorsebattery"}`, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		w = doJSON(router, "POST", "/api/auth/login", `{"username":"alice","password":"brandnewpassword"}`, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong current password rejected without mutation", func(t *testing.T) {
		router, cleanup := setupAPITest(t)
		defer cleanup()
		token := signupAndLogin(t, router, "alice", "correcthorsebattery")

		w := doJSON(router, "PUT", "/api/users/password",
			`{"currentPassword":"wronghorsebattery","newPassword":"brandnewpassword"}`, token)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		// Original password still works
		w = doJSON(router, "POST", "/api/auth/login", `{"username":"alice","password":"correcthorsebattery"}`, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("field validation before any store access", func(t *testing.T) {
		router, cleanup := setupAPITest(t)
		defer cleanup()
		token := signupAndLogin(t, router, "alice", "correcthorsebattery")

		tests := []struct {
			name         string
			body         string
			wantLocation string
		}{
			{name: "missing currentPassword", body: `{"newPassword":"brandnewpassword"}`, wantLocation: "currentPassword"},
			{name: "non-string newPassword", body: `{"currentPassword":"correcthorsebattery","newPassword":42}`, wantLocation: "newPassword"},
			{name: "empty newPassword", body: `{"currentPassword":"correcthorsebattery","newPassword":""}`, wantLocation: "newPassword"},
			{name: "short newPassword", body: `{"currentPassword":"correcthorsebattery","newPassword":"tooshort9"}`, wantLocation: "newPassword"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w := doJSON(router, "PUT", "/api/users/password", tt.body, token)

				assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
				resp := decodeValidationError(t, w)
				assert.Equal(t, tt.wantLocation, resp.Location)
			})
		}
	})

	t.Run("requires a bearer token", func(t *testing.T) {
		router, cleanup := setupAPITest(t)
		defer cleanup()

		w := doJSON(router, "PUT", "/api/users/password",
			`{"currentPassword":"correcthorsebattery","newPassword":"brandnewpassword"}`, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
