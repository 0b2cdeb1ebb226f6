// Package upstream manages the gateway's single outbound connection to the
// remote tasks service.
//
// Dial turns the unreliable "connect once" primitive into a startup readiness
// gate: it retries at a fixed interval (optionally capped) until the gRPC
// channel reports READY. The retry policy is injected so tests can run with
// near-zero intervals.
//
// All remote calls go through one Client guarded by one mutex. Serializing
// the calls makes correctness trivial at the cost of the downstream link
// being a throughput ceiling; a pool of connections would lift that ceiling
// without changing this package's interface.
package upstream
