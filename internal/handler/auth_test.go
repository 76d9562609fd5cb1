package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"partsdesk/internal/config"
	"partsdesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("Rangwala"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{AdminUser: "Admin", AdminPasswordHash: string(hash)}
	h := NewAuthHandler(service.NewAuthService(cfg))

	r := gin.New()
	r.POST("/api/login", h.Login)
	return r
}

func postLogin(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginSuccess(t *testing.T) {
	r := setupAuthRouter(t)

	w := postLogin(r, `{"userId":"Admin","password":"Rangwala"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Admin", body["userId"])

	// No session of any kind is issued — the client keeps its own flag.
	assert.Empty(t, w.Header().Get("Set-Cookie"))
	assert.NotContains(t, body, "token")
	assert.NotContains(t, body, "access_token")
}

func TestLoginWrongPassword(t *testing.T) {
	r := setupAuthRouter(t)

	w := postLogin(r, `{"userId":"Admin","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid credentials", body["message"])
}

func TestLoginUnknownUserSameMessage(t *testing.T) {
	r := setupAuthRouter(t)

	w := postLogin(r, `{"userId":"someone","password":"Rangwala"}`)

	// Indistinguishable from a wrong password.
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid credentials", body["message"])
}

func TestLoginMalformedBody(t *testing.T) {
	r := setupAuthRouter(t)

	w := postLogin(r, `{"userId": `)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Server error. Please try again.", body["message"])
}
