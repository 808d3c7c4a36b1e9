package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/models"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/services"
)

// LoginObserver records login outcomes.
type LoginObserver interface {
	ObserveLogin(outcome string)
}

// UserHandler handles registration and login.
type UserHandler struct {
	service  services.AuthServiceProvider
	observer LoginObserver
}

// NewUserHandler creates a new UserHandler. observer may be nil.
func NewUserHandler(service services.AuthServiceProvider, observer LoginObserver) *UserHandler {
	return &UserHandler{service: service, observer: observer}
}

// AuthPayload defines the structure for login and registration requests.
type AuthPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MessageResponse acknowledges a successful registration.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Register handles new user registration.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload AuthPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	user, err := h.service.Register(r.Context(), payload.Email, payload.Password)
	if err != nil {
		RespondError(w, r, err)
		return
	}

	log.Info().Int64("user_id", user.ID).Str("email", user.Email).Msg("User registered")
	writeJSON(w, http.StatusOK, MessageResponse{Message: MsgRegisterOK})
}

// Login handles user authentication and JWT generation.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload AuthPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	token, err := h.service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		h.observe(loginOutcome(err))
		RespondError(w, r, err)
		return
	}

	h.observe("success")
	writeJSON(w, http.StatusOK, LoginResponse{Message: MsgLoginOK, Token: token})
}

func (h *UserHandler) observe(outcome string) {
	if h.observer != nil {
		h.observer.ObserveLogin(outcome)
	}
}

func loginOutcome(err error) string {
	switch {
	case errors.Is(err, models.ErrUserNotFound):
		return "unknown_email"
	case errors.Is(err, services.ErrInvalidCredential):
		return "bad_password"
	case errors.Is(err, services.ErrMissingCredentials):
		return "invalid_request"
	default:
		return "error"
	}
}
