package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suratguide/globals"
	"suratguide/logger"
)

const testSecret = "0123456789abcdef0123"

func protectedRouter(j *JWT) *httprouter.Router {
	router := httprouter.New()
	router.GET("/admin", j.Authenticate(globals.AdminRole, func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		name, _ := r.Context().Value(globals.UsernameKey).(string)
		_, _ = w.Write([]byte(name))
	}))
	return router
}

func call(router http.Handler, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate(t *testing.T) {
	j := NewJWT(testSecret)
	router := protectedRouter(j)

	admin, _, err := j.Issue("ops", []string{globals.AdminRole}, time.Hour)
	require.NoError(t, err)
	visitor, _, err := j.Issue("guest", []string{"visitor"}, time.Hour)
	require.NoError(t, err)
	expired, _, err := j.Issue("ops", []string{globals.AdminRole}, -time.Minute)
	require.NoError(t, err)
	forged, _, err := NewJWT("another-secret-of-length").Issue("ops", []string{globals.AdminRole}, time.Hour)
	require.NoError(t, err)

	rec := call(router, "Bearer "+admin)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ops", rec.Body.String())

	assert.Equal(t, http.StatusUnauthorized, call(router, "").Code)
	assert.Equal(t, http.StatusUnauthorized, call(router, admin).Code)
	assert.Equal(t, http.StatusUnauthorized, call(router, "Bearer "+expired).Code)
	assert.Equal(t, http.StatusUnauthorized, call(router, "Bearer "+forged).Code)
	assert.Equal(t, http.StatusForbidden, call(router, "Bearer "+visitor).Code)
}

func TestValidateJWTRejectsOtherAlgorithms(t *testing.T) {
	j := NewJWT(testSecret)
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Username: "ops", Role: []string{globals.AdminRole}})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = j.ValidateJWT("Bearer " + signed)
	assert.Error(t, err)
}

func TestValidateJWTWithoutSecret(t *testing.T) {
	_, err := NewJWT("").ValidateJWT("Bearer abc")
	assert.Error(t, err)
}

func TestSecurityHeadersAndLogging(t *testing.T) {
	var inner http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := Logging(logger.Nop())(SecurityHeaders(inner))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}
