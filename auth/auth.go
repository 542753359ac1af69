// Package auth issues admin tokens. There is a single administrator configured through
// the environment; visitors never log in.
package auth

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"

	"suratguide/globals"
	"suratguide/logger"
	"suratguide/middleware"
	"suratguide/utils"
)

type Handler struct {
	jwt          *middleware.JWT
	username     string
	passwordHash []byte
	ttl          time.Duration
	log          *logger.Logger
}

// NewHandler configures login for one admin account. An empty passwordHash disables
// login.
func NewHandler(jwt *middleware.JWT, username, passwordHash string, ttl time.Duration, log *logger.Logger) *Handler {
	return &Handler{
		jwt:          jwt,
		username:     username,
		passwordHash: []byte(passwordHash),
		ttl:          ttl,
		log:          log.With("handler", "auth"),
	}
}

type loginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=128"`
}

// POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if len(h.passwordHash) == 0 {
		utils.RespondWithError(w, http.StatusServiceUnavailable, "Admin login is disabled")
		return
	}

	var input loginRequest
	if err := utils.DecodeJSON(w, r, &input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := utils.Validate.Struct(input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(input.Username), []byte(h.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(h.passwordHash, []byte(input.Password))
	if !userOK || passErr != nil {
		h.log.Warn("failed admin login", "username", input.Username, "remote", r.RemoteAddr)
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, expires, err := h.jwt.Issue(h.username, []string{globals.AdminRole}, h.ttl)
	if err != nil {
		h.log.Error("issue token", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	h.log.Info("admin logged in", "username", h.username)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"token":      token,
		"expires_at": expires.UTC(),
	})
}
