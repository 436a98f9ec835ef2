package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/isdelr/tasks-api-be/internal/services"
	"github.com/isdelr/tasks-api-be/internal/validation"
)

// Response messages.
const (
	MsgInvalidBody          = "Invalid request body"
	MsgTaskCreated          = "Task created successfully"
	MsgTaskUpdated          = "Task updated successfully"
	MsgUserRegistered       = "User successfully registered"
	MsgUserLoggedIn         = "User successfully logged in"
	MsgSortFieldsRequired   = "sortBy and sortDirection are both required to sort tasks"
	MsgMissingUpdateFields  = "At least name, description, or completed is required to update the task"
	MsgTaskNotFound         = "Task not found"
	MsgTaskNotFoundToUpdate = "Task not found to update"
	MsgTaskNotFoundToDelete = "Task not found to delete"
	MsgUsernameTaken        = "Username already in use"
	MsgInvalidCredentials   = "Invalid credentials"
)

var errInvalidBody = errors.New("invalid request body")

// domainErrors maps every expected failure to its HTTP status and client message.
var domainErrors = []struct {
	err     error
	status  int
	message string
}{
	{services.ErrTaskNotFound, http.StatusNotFound, MsgTaskNotFound},
	{services.ErrTaskNotFoundForUpdate, http.StatusNotFound, MsgTaskNotFoundToUpdate},
	{services.ErrTaskNotFoundForDelete, http.StatusNotFound, MsgTaskNotFoundToDelete},
	{services.ErrMissingUpdateFields, http.StatusBadRequest, MsgMissingUpdateFields},
	{services.ErrUsernameTaken, http.StatusBadRequest, MsgUsernameTaken},
	{services.ErrInvalidCredentials, http.StatusUnauthorized, MsgInvalidCredentials},
	{errInvalidBody, http.StatusBadRequest, MsgInvalidBody},
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorsResponse struct {
	Errors validation.Errors `json:"errors"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func respondMessage(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, messageResponse{Message: msg})
}

// respondError writes the response for err: field errors, a mapped domain error, or a 500.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		respondJSON(w, http.StatusBadRequest, errorsResponse{Errors: fieldErrs})
		return
	}

	for _, de := range domainErrors {
		if errors.Is(err, de.err) {
			if de.status == http.StatusUnauthorized {
				log.Warn().Err(err).Str("path", r.URL.Path).Msg("Request rejected")
			}
			respondMessage(w, de.status, de.message)
			return
		}
	}

	log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("Request failed")
	respondJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

// decodeBody reads a JSON object body. An empty body decodes to an empty object so that
// field validation reports what is missing.
func decodeBody(r *http.Request) (map[string]any, error) {
	body := map[string]any{}
	if r.Body == nil {
		return body, nil
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, errInvalidBody
	}
	return body, nil
}
