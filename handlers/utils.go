package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Fabken42/study-quiz/services"
)

// APIHandler exposes the engine's operations over HTTP.
type APIHandler struct {
	*services.Service
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writeJSON: failed to encode response: %v", err)
	}
}

// writeServiceError maps the engine's tagged errors onto status codes.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	var (
		validationErr   *services.ValidationError
		authErr         *services.AuthorizationError
		notFoundErr     *services.NotFoundError
		insufficientErr *services.InsufficientTermsError
	)

	switch {
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
	case errors.As(err, &insufficientErr):
		http.Error(w, insufficientErr.Error(), http.StatusBadRequest)
	case errors.As(err, &authErr):
		http.Error(w, authErr.Error(), http.StatusForbidden)
	case errors.As(err, &notFoundErr):
		http.Error(w, notFoundErr.Error(), http.StatusNotFound)
	default:
		log.Printf("%s: %v", op, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
