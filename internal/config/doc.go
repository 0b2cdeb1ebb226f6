// Package config handles configuration loading for taskgate.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable expansion.
// The package provides validation and sensible defaults.
//
// # Configuration File
//
// Default locations (in order):
//
//  1. Path from TASKGATE_CONFIG environment variable
//  2. ./taskgate.yaml (current directory)
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	auth:
//	  jwt_key: "${TASKGATE_JWT_KEY}"
//
// Syntax: ${VAR_NAME}
//
// # Configuration Sections
//
// Server settings:
//
//	server:
//	  http_addr: "0.0.0.0:3000"
//
// Credential database:
//
//	database:
//	  path: "/var/lib/taskgate/users.db"
//
// Downstream tasks service:
//
//	upstream:
//	  addr: "tasks_service:50051"
//	  retry_interval: "1s"
//	  retry_max_attempts: 0   # 0 = retry until reachable
//
// Token signing (hex-encoded HS256 key; omit to generate an ephemeral key
// at startup, which invalidates tokens across restarts):
//
//	auth:
//	  jwt_key: "${TASKGATE_JWT_KEY}"
//
// Logging:
//
//	logging:
//	  level: "info"    # debug, info, warn, error
//	  format: "text"   # text or json
package config
