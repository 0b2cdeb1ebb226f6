// ABOUTME: Entry point for the taskgate server
// ABOUTME: Authenticates users and proxies task operations to the tasks service

package main

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/sethvargo/go-retry"

	"github.com/taskgate/taskgate/internal/auth"
	"github.com/taskgate/taskgate/internal/config"
	"github.com/taskgate/taskgate/internal/gateway"
	"github.com/taskgate/taskgate/internal/store"
	"github.com/taskgate/taskgate/internal/upstream"
)

// Version is set by goreleaser at build time.
var version = "dev"

const banner = `
 _            _                 _
| |_ __ _ ___| | ____ _ __ _ __| |_ ___
| __/ _' / __| |/ / _' |/ _' | __/ _ \
| || (_| \__ \   < (_| | (_| | ||  __/
 \__\__,_|___/_|\_\__, |\__,_|\__\___|
                  |___/
`

// getConfigPath returns the path to the gateway config file.
// Priority: TASKGATE_CONFIG env var > ./taskgate.yaml
func getConfigPath() string {
	if envPath := os.Getenv("TASKGATE_CONFIG"); envPath != "" {
		return envPath
	}
	return "taskgate.yaml"
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: taskgate <command>")
		fmt.Println()
		fmt.Println("Commands:")
		fmt.Println("  serve   Start the gateway server")
		fmt.Println("  health  Check gateway health")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(ctx)
	case "health":
		err = runHealth(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(ctx context.Context) error {
	configPath := getConfigPath()

	cyan := color.New(color.FgCyan)
	cyan.Print(banner)
	gray := color.New(color.FgHiBlack)
	gray.Printf("    version: %s\n\n", version)

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := setupLogger(cfg.Logging)
	slog.SetDefault(logger)

	green := color.New(color.FgGreen)
	green.Print("    ▶ ")
	fmt.Printf("Config:   %s\n", configPath)
	green.Print("    ▶ ")
	fmt.Printf("HTTP:     %s\n", cfg.Server.HTTPAddr)
	green.Print("    ▶ ")
	fmt.Printf("Upstream: %s\n", cfg.Upstream.Addr)
	fmt.Println()

	key := cfg.SigningKey()
	if key == nil {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return fmt.Errorf("generating signing key: %w", err)
		}
		logger.Warn("no signing key configured, generated an ephemeral one; tokens will not survive a restart")
	}
	verifier := auth.NewJWTVerifier(key)

	policy := upstream.RetryPolicy{
		Interval:    cfg.Upstream.RetryInterval,
		MaxAttempts: uint64(cfg.Upstream.RetryMaxAttempts),
	}

	// Both dependencies gate request serving: the gateway is useless
	// without either one, so startup blocks until each is reachable.
	st, err := openStore(ctx, cfg.Database.Path, policy, logger)
	if err != nil {
		return fmt.Errorf("opening credential store: %w", err)
	}
	defer st.Close()

	up, err := upstream.Dial(ctx, cfg.Upstream.Addr, policy, logger.With("component", "upstream"))
	if err != nil {
		return err
	}
	defer up.Close()

	logger.Info("starting taskgate",
		"config", configPath,
		"http_addr", cfg.Server.HTTPAddr,
		"upstream", cfg.Upstream.Addr,
	)

	gw := gateway.New(cfg, st, verifier, up, logger)
	return gw.Run(ctx)
}

// openStore opens the credential database, retrying per the policy.
// Same readiness gate as the upstream dial.
func openStore(ctx context.Context, path string, policy upstream.RetryPolicy, logger *slog.Logger) (*store.SQLiteStore, error) {
	b := retry.NewConstant(policy.Interval)
	if policy.MaxAttempts > 0 {
		b = retry.WithMaxRetries(policy.MaxAttempts-1, b)
	}

	var st *store.SQLiteStore
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		s, err := store.NewSQLiteStore(path)
		if err != nil {
			logger.Error("couldn't open credential store, retrying", "path", path, "error", err)
			return retry.RetryableError(err)
		}
		st = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return st, nil
}

func setupLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func runHealth(ctx context.Context) error {
	cfg, err := config.Load(getConfigPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	url := fmt.Sprintf("http://%s/health", cfg.Server.HTTPAddr)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unhealthy: status %d", resp.StatusCode)
	}

	fmt.Println("healthy")
	return nil
}
