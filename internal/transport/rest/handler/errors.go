package handler

import (
	"errors"
	"net/http"

	"creativestyle/internal/logger"
	"creativestyle/internal/repository"
	"creativestyle/internal/scoring"
)

// statusFor maps the error taxonomy onto HTTP codes. malformed is the code used
// for client-correctable input, which differs between writes and reads.
func statusFor(err error, malformed int) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, scoring.ErrMalformedInput):
		return malformed
	case errors.Is(err, scoring.ErrDataUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeServiceError(w http.ResponseWriter, log *logger.Logger, err error, malformed int) {
	status := statusFor(err, malformed)
	switch status {
	case http.StatusNotFound:
		writeError(w, status, "submission not found")
	case http.StatusServiceUnavailable:
		log.Error("response store unavailable", "error", err)
		writeError(w, status, "data temporarily unavailable")
	case http.StatusInternalServerError:
		log.Error("request failed", "error", err)
		writeError(w, status, "internal error")
	default:
		writeError(w, status, err.Error())
	}
}
