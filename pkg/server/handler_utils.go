package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/intentd/intentd/pkg/models"
)

// APIError represents an error response body.
type APIError struct {
	Error string `json:"error"`
}

const internalErrorMessage = "Internal Error, Sorry"

// encodeJSON encodes data into JSON and writes it to the response writer.
func encodeJSON(w http.ResponseWriter, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(data)
}

// decodeJSON decodes a JSON request body into the provided data struct.
func decodeJSON(r *http.Request, data interface{}) error {
	return json.NewDecoder(r.Body).Decode(&data)
}

// renderError maps an error to its response. Validation failures carry
// their message to the client as a 422; not-found yields an empty 404;
// anything else is logged and surfaced as a generic 500 so internal detail
// never leaks.
func renderError(w http.ResponseWriter, err error) {
	validationErr := &models.ValidationError{}
	if errors.As(err, &validationErr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(APIError{Error: validationErr.Message})
		return
	}
	if errors.Is(err, models.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	log.Error(err)
	http.Error(w, internalErrorMessage, http.StatusInternalServerError)
}

// renderBadRequest reports an unreadable request body.
func renderBadRequest(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), http.StatusBadRequest)
}
