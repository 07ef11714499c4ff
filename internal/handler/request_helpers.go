package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Maou3434/TOTS/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// It logs the operation and returns a standardized error response to the client.
//
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req RegisterTeamRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Register team"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	// Decode JSON body
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		http.Error(w, ErrMsgInvalidRequest, http.StatusBadRequest)
		return err
	}

	// Log the decoded request at debug level
	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	// Validate the request struct
	if err := GetValidator().ValidateStruct(req); err != nil {
		validationErrs := FormatValidationError(err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: validationErrs,
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// ParseIDParam parses a UUID route parameter. If the parameter is missing or
// malformed it writes a 400 response and reports false; the handler should
// return without writing anything else.
func ParseIDParam(r *http.Request, w http.ResponseWriter, paramName string) (uuid.UUID, bool) {
	log := logger.FromContext(r.Context())
	raw := chi.URLParam(r, paramName)
	id, err := uuid.Parse(raw)
	if err != nil {
		log.Warn(fmt.Sprintf("Invalid %s route parameter", paramName), "value", raw, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
		return uuid.Nil, false
	}
	return id, true
}

// GetQueryParam retrieves and validates a required query parameter from the request.
// If the parameter is missing or empty, it writes an error response and returns false.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	log := logger.FromContext(r.Context())
	value := r.URL.Query().Get(paramName)
	if value == "" {
		log.Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		http.Error(w, fmt.Sprintf(ErrMsgMissingQueryParam, paramName), http.StatusBadRequest)
		return "", false
	}
	return value, true
}

type ctxKey string

const teamIDKey ctxKey = "team_id"

// WithTeamID returns a context carrying the authenticated team's id.
// The session middleware sets it; handlers read it with TeamIDFromContext.
func WithTeamID(ctx context.Context, teamID uuid.UUID) context.Context {
	return context.WithValue(ctx, teamIDKey, teamID)
}

// TeamIDFromContext returns the authenticated team's id, or false if the
// request did not pass the session middleware.
func TeamIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(teamIDKey).(uuid.UUID)
	return id, ok
}

// requireTeamID extracts the authenticated team id or writes a 401.
func requireTeamID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	teamID, ok := TeamIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, ErrMsgUnauthorizedError)
		return uuid.Nil, false
	}
	return teamID, true
}
