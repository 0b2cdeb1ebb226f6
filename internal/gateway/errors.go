// ABOUTME: External error taxonomy for the gateway HTTP boundary
// ABOUTME: Collapses internal failures to five fixed kinds, logging causes first

package gateway

import (
	"encoding/json"
	"net/http"
)

// ErrorKind is one of the five externally visible failure kinds. Every
// internal failure collapses to one of these at the HTTP boundary; no
// infrastructure detail crosses it.
type ErrorKind struct {
	status  int
	message string
}

var (
	// ErrInvalidToken covers every authorization failure.
	ErrInvalidToken = ErrorKind{http.StatusForbidden, "Invalid token"}

	// ErrNonExistingUser is returned for logins against unknown usernames.
	ErrNonExistingUser = ErrorKind{http.StatusBadRequest, "User doesn't exist"}

	// ErrWrongPassword is returned when the password does not match.
	ErrWrongPassword = ErrorKind{http.StatusForbidden, "Wrong password"}

	// ErrIncorrectRequest is the catch-all for validation, store and
	// downstream failures.
	ErrIncorrectRequest = ErrorKind{http.StatusBadRequest, "Incorrect request"}

	// ErrIncorrectDateFormat is returned for unparseable date fields.
	ErrIncorrectDateFormat = ErrorKind{http.StatusBadRequest, "Incorrect date format. Expected YYYY-MM-DD"}
)

// writeError emits the external representation of kind. The cause, when
// present, is logged before it is discarded; the response body never carries
// it.
func (g *Gateway) writeError(w http.ResponseWriter, kind ErrorKind, cause error) {
	if cause != nil {
		g.logger.Warn("request failed",
			"error", cause,
			"response", kind.message,
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(kind.status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": kind.message})
}

// writeJSON emits a 200 response with the given JSON body.
func (g *Gateway) writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}
