package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/isdelr/tasks-api-be/internal/auth"
	"github.com/isdelr/tasks-api-be/internal/models"
	"github.com/isdelr/tasks-api-be/internal/services"
	"github.com/isdelr/tasks-api-be/internal/validation"
)

// UserHandler handles registration and login.
type UserHandler struct {
	service services.UserServiceProvider
	tokens  *auth.Manager
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider, tokens *auth.Manager) *UserHandler {
	return &UserHandler{service: service, tokens: tokens}
}

type registerResponse struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// credentials decodes and validates a username/password body.
func credentials(r *http.Request) (string, string, error) {
	body, err := decodeBody(r)
	if err != nil {
		return "", "", err
	}
	if errs := validation.Credentials.Validate(validation.Input{Body: body}); errs != nil {
		return "", "", errs
	}
	return body["username"].(string), body["password"].(string), nil
}

// Register handles new user registration.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	username, password, err := credentials(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	user, err := h.service.Register(r.Context(), username, password)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, registerResponse{Message: MsgUserRegistered, User: user})
}

// Login handles user authentication and JWT generation.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	username, password, err := credentials(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	user, err := h.service.Authenticate(r.Context(), username, password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	token, err := h.tokens.GenerateJWT(user)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to generate JWT")
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, loginResponse{Message: MsgUserLoggedIn, Token: token})
}
