// Package gateway implements the user-facing HTTP API of taskgate.
//
// # Endpoints
//
// Open: GET / (banner), GET /health, POST /register, POST /login.
// Behind the auth middleware: POST /update plus the five task proxy
// operations (/createTask, /getTask, /updateTask, /deleteTask,
// /getTaskPage), which translate one inbound request into one RPC on the
// shared upstream connection and back.
//
// # Error boundary
//
// Every failure collapses to one of five external kinds (errors.go) before
// it leaves the process. The internal cause is logged at the boundary, so
// the coarse external contract costs no diagnostics.
//
// # Request bodies
//
// All bodies are JSON with unknown fields rejected. Date fields use
// YYYY-MM-DD.
package gateway
