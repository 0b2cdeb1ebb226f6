// ABOUTME: Registration, login and profile-update handlers
// ABOUTME: Verifies credentials against the store and issues bearer tokens

package gateway

import (
	"errors"
	"net/http"
	"time"

	"github.com/taskgate/taskgate/internal/auth"
	"github.com/taskgate/taskgate/internal/store"
)

// AuthRequest is the JSON request body for POST /register and POST /login.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is the JSON response for POST /login.
type TokenResponse struct {
	Token string `json:"token"`
}

// ProfileRequest is the JSON request body for POST /update.
// All fields are optional; absent fields keep their stored value.
type ProfileRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	DateOfBirth *string `json:"date_of_birth"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
}

// handleRegister handles POST /register requests.
func (g *Gateway) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	g.logger.Info("handling register request")

	var req AuthRequest
	if err := decodeStrict(r.Body, &req); err != nil {
		g.writeError(w, ErrIncorrectRequest, err)
		return
	}
	if req.Username == "" || req.Password == "" {
		g.writeError(w, ErrIncorrectRequest, errors.New("username and password are required"))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		// A hashing fault means the runtime is broken; fail closed.
		g.writeError(w, ErrIncorrectRequest, err)
		return
	}

	// Duplicate usernames and transient store failures share one external
	// kind; the distinction survives only in the log.
	if err := g.store.CreateUser(r.Context(), req.Username, hash); err != nil {
		g.writeError(w, ErrIncorrectRequest, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// handleLogin handles POST /login requests.
// A successful login returns a bearer token valid for two hours.
func (g *Gateway) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	g.logger.Info("handling login request")

	var req AuthRequest
	if err := decodeStrict(r.Body, &req); err != nil {
		g.writeError(w, ErrIncorrectRequest, err)
		return
	}

	user, err := g.store.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Burn a comparison so timing doesn't reveal whether the
			// username exists.
			auth.BurnComparison(req.Password)
			g.writeError(w, ErrNonExistingUser, err)
			return
		}
		g.writeError(w, ErrIncorrectRequest, err)
		return
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		g.writeError(w, ErrWrongPassword, nil)
		return
	}

	token, err := g.verifier.Generate(user.Username, auth.TokenTTL)
	if err != nil {
		g.writeError(w, ErrIncorrectRequest, err)
		return
	}

	g.writeJSON(w, TokenResponse{Token: token})
}

// handleUpdate handles POST /update requests for the authenticated user.
// date_of_birth must be YYYY-MM-DD; an unparseable date rejects the request
// before any store mutation.
func (g *Gateway) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	g.logger.Info("handling update request")

	identity := auth.MustFromContext(r.Context())

	var req ProfileRequest
	if err := decodeStrict(r.Body, &req); err != nil {
		g.writeError(w, ErrIncorrectRequest, err)
		return
	}

	if req.DateOfBirth != nil {
		if _, err := time.Parse("2006-01-02", *req.DateOfBirth); err != nil {
			g.writeError(w, ErrIncorrectDateFormat, err)
			return
		}
	}

	update := store.ProfileUpdate{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
	if err := g.store.UpdateProfile(r.Context(), identity.Username, update); err != nil {
		g.writeError(w, ErrIncorrectRequest, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
