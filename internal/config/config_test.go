// ABOUTME: Tests for configuration loading, env expansion, defaults, and validation

package config

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writeConfig writes a temp config file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "taskgate.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  http_addr: "127.0.0.1:8080"
database:
  path: "/tmp/users.db"
upstream:
  addr: "tasks:50051"
  retry_interval: "250ms"
  retry_max_attempts: 5
auth:
  jwt_key: "deadbeef"
logging:
  level: "debug"
  format: "json"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.HTTPAddr != "127.0.0.1:8080" {
		t.Errorf("HTTPAddr = %q", cfg.Server.HTTPAddr)
	}
	if cfg.Database.Path != "/tmp/users.db" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if cfg.Upstream.Addr != "tasks:50051" {
		t.Errorf("Upstream.Addr = %q", cfg.Upstream.Addr)
	}
	if cfg.Upstream.RetryInterval != 250*time.Millisecond {
		t.Errorf("RetryInterval = %v", cfg.Upstream.RetryInterval)
	}
	if cfg.Upstream.RetryMaxAttempts != 5 {
		t.Errorf("RetryMaxAttempts = %d", cfg.Upstream.RetryMaxAttempts)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}

	want, _ := hex.DecodeString("deadbeef")
	if string(cfg.SigningKey()) != string(want) {
		t.Errorf("SigningKey() = %x, want deadbeef", cfg.SigningKey())
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
database:
  path: "/tmp/users.db"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.HTTPAddr != "0.0.0.0:3000" {
		t.Errorf("default HTTPAddr = %q", cfg.Server.HTTPAddr)
	}
	if cfg.Upstream.Addr != "tasks_service:50051" {
		t.Errorf("default Upstream.Addr = %q", cfg.Upstream.Addr)
	}
	if cfg.Upstream.RetryInterval != time.Second {
		t.Errorf("default RetryInterval = %v", cfg.Upstream.RetryInterval)
	}
	if cfg.Upstream.RetryMaxAttempts != 0 {
		t.Errorf("default RetryMaxAttempts = %d", cfg.Upstream.RetryMaxAttempts)
	}
	if cfg.SigningKey() != nil {
		t.Errorf("SigningKey() = %x, want nil", cfg.SigningKey())
	}
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_TASKGATE_DB", "/tmp/expanded.db")

	path := writeConfig(t, `
database:
  path: "${TEST_TASKGATE_DB}"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.Path != "/tmp/expanded.db" {
		t.Errorf("Database.Path = %q, want expanded value", cfg.Database.Path)
	}
}

func TestLoad_JWTKeyFromEnv(t *testing.T) {
	t.Setenv("TASKGATE_JWT_KEY", "cafe")

	path := writeConfig(t, `
database:
  path: "/tmp/users.db"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want, _ := hex.DecodeString("cafe")
	if string(cfg.SigningKey()) != string(want) {
		t.Errorf("SigningKey() = %x, want cafe", cfg.SigningKey())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Load() should fail for a missing file")
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing database path",
			content: "server:\n  http_addr: \"127.0.0.1:8080\"\n",
			wantErr: "database.path",
		},
		{
			name: "non-hex jwt key",
			content: `
database:
  path: "/tmp/users.db"
auth:
  jwt_key: "not-hex!"
`,
			wantErr: "hex-encoded",
		},
		{
			name: "bad retry interval",
			content: `
database:
  path: "/tmp/users.db"
upstream:
  retry_interval: "soon"
`,
			wantErr: "retry_interval",
		},
		{
			name: "negative retry attempts",
			content: `
database:
  path: "/tmp/users.db"
upstream:
  retry_max_attempts: -1
`,
			wantErr: "retry_max_attempts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() should have failed")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
