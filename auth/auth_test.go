package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"suratguide/globals"
	"suratguide/logger"
	"suratguide/middleware"
)

func newLoginRouter(t *testing.T, hash string) (*httprouter.Router, *middleware.JWT) {
	t.Helper()
	j := middleware.NewJWT("0123456789abcdef0123")
	router := httprouter.New()
	router.POST("/api/auth/login", NewHandler(j, "admin", hash, time.Hour, logger.Nop()).Login)
	return router, j
}

func post(router http.Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body)))
	return rec
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	router, j := newLoginRouter(t, string(hash))

	rec := post(router, `{"username":"admin","password":"s3cret-pass"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	claims, err := j.ValidateJWT("Bearer " + body.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Contains(t, claims.Role, globals.AdminRole)

	assert.Equal(t, http.StatusUnauthorized, post(router, `{"username":"admin","password":"wrong"}`).Code)
	assert.Equal(t, http.StatusUnauthorized, post(router, `{"username":"root","password":"s3cret-pass"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(router, `{"username":"admin"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(router, `not json`).Code)
}

func TestLoginDisabled(t *testing.T) {
	router, _ := newLoginRouter(t, "")
	assert.Equal(t, http.StatusServiceUnavailable, post(router, `{"username":"admin","password":"x"}`).Code)
}
