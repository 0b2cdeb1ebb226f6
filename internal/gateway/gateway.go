// ABOUTME: Gateway orchestrator wiring the HTTP server, credential store and upstream client
// ABOUTME: Owns route registration and graceful shutdown

package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/taskgate/taskgate/internal/auth"
	"github.com/taskgate/taskgate/internal/config"
	"github.com/taskgate/taskgate/internal/store"
	"github.com/taskgate/taskgate/internal/upstream"
)

// shutdownTimeout bounds how long graceful shutdown waits for in-flight
// requests to drain.
const shutdownTimeout = 10 * time.Second

// Gateway serves the user-facing HTTP API. It holds the process-wide shared
// state: the credential store handle, the token verifier wrapping the signing
// key, and the single upstream connection. The store and verifier are
// read-only after construction; the upstream client carries its own lock.
type Gateway struct {
	config     *config.Config
	store      store.Store
	verifier   *auth.JWTVerifier
	upstream   *upstream.Client
	httpServer *http.Server
	logger     *slog.Logger
}

// New creates a Gateway over an already-connected store and upstream client.
func New(cfg *config.Config, st store.Store, verifier *auth.JWTVerifier, up *upstream.Client, logger *slog.Logger) *Gateway {
	return &Gateway{
		config:   cfg,
		store:    st,
		verifier: verifier,
		upstream: up,
		logger:   logger.With("component", "gateway"),
	}
}

// Routes builds the HTTP handler with all gateway endpoints registered.
// Task and profile-update endpoints run behind the auth middleware; the
// handler body never executes for a rejected request.
func (g *Gateway) Routes() http.Handler {
	mux := http.NewServeMux()
	protect := auth.Middleware(g.verifier)

	mux.HandleFunc("/", g.handleRoot)
	mux.HandleFunc("/health", g.handleHealth)
	mux.HandleFunc("/register", g.handleRegister)
	mux.HandleFunc("/login", g.handleLogin)

	mux.Handle("/update", protect(http.HandlerFunc(g.handleUpdate)))
	mux.Handle("/createTask", protect(http.HandlerFunc(g.handleCreateTask)))
	mux.Handle("/getTask", protect(http.HandlerFunc(g.handleGetTask)))
	mux.Handle("/updateTask", protect(http.HandlerFunc(g.handleUpdateTask)))
	mux.Handle("/deleteTask", protect(http.HandlerFunc(g.handleDeleteTask)))
	mux.Handle("/getTaskPage", protect(http.HandlerFunc(g.handleGetTaskPage)))

	return mux
}

// Run starts the HTTP server and blocks until ctx is cancelled or the server
// fails. Shutdown is graceful: in-flight requests get shutdownTimeout to
// finish.
func (g *Gateway) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", g.config.Server.HTTPAddr)
	if err != nil {
		return err
	}

	g.httpServer = &http.Server{Handler: g.Routes()}

	errCh := make(chan error, 1)
	go func() {
		errCh <- g.httpServer.Serve(ln)
	}()

	g.logger.Info("listening", "http_addr", ln.Addr().String())

	select {
	case <-ctx.Done():
		g.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return g.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// handleRoot handles GET / with a plain-text banner.
func (g *Gateway) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	g.logger.Info("handling root request")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Task gateway API"))
}

// handleHealth handles GET /health.
func (g *Gateway) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	g.writeJSON(w, map[string]string{"status": "ok"})
}

// decodeStrict decodes a JSON request body, rejecting unknown fields.
func decodeStrict(body io.Reader, v any) error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
