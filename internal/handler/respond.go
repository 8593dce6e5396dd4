package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/homequest/homequest-go/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// decodeJSON decodes a capped request body, reporting oversized and
// malformed bodies to the client.
func decodeJSON(w http.ResponseWriter, r *http.Request, limit int64, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}

	return true
}

// isHomeValidationError reports whether err is a listing field
// validation failure that should map to a 400.
func isHomeValidationError(err error) bool {
	return errors.Is(err, service.ErrAddressRequired) ||
		errors.Is(err, service.ErrCityRequired) ||
		errors.Is(err, service.ErrInvalidPrice) ||
		errors.Is(err, service.ErrInvalidLandSize) ||
		errors.Is(err, service.ErrInvalidBedrooms) ||
		errors.Is(err, service.ErrInvalidBathrooms) ||
		errors.Is(err, service.ErrInvalidPropertyType) ||
		errors.Is(err, service.ErrListedDateRequired) ||
		errors.Is(err, service.ErrImageURLRequired)
}

// isSignupValidationError reports whether err is a signup field
// validation failure that should map to a 400.
func isSignupValidationError(err error) bool {
	return errors.Is(err, service.ErrNameRequired) ||
		errors.Is(err, service.ErrInvalidPhone) ||
		errors.Is(err, service.ErrInvalidEmail) ||
		errors.Is(err, service.ErrPasswordTooShort)
}
