// Package controllers holds the HTTP handlers. Each controller decodes
// and validates the request at the boundary, delegates to a service, and
// writes the JSON envelope. Unexpected errors are logged and collapsed
// into the fixed 500 response.
package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/logger"
	"github.com/shashiranjanraj/vastra/pkg/response"
)

var validate = validator.New()

// decodeJSON decodes the request body into dest. On malformed JSON it
// writes a 400 and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		response.BadRequest(w, "Invalid request body")
		return false
	}
	return true
}

// handleError maps service and repository errors onto the HTTP taxonomy.
// Anything unrecognised is logged and reported as the generic 500.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		response.BadRequest(w, ve.Message)
	case errors.Is(err, repositories.ErrDuplicateEmail):
		response.BadRequest(w, "Email already registered")
	case errors.Is(err, services.ErrInvalidCredentials):
		response.BadRequest(w, "Invalid credentials")
	default:
		logger.WithCtx(r.Context()).Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		response.Internal(w)
	}
}
