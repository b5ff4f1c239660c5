// Package api implements the HTTP surface of securipass.
//
// New(store, generator, cfg) returns a Handler that serves:
//
//	GET  /          — HTML page: educational tip, generation count, history
//	POST /generate  — {"length"} → {"password", "new_count", "new_history"}
//	POST /evaluate  — {"password"} → {"force", "feedback", "score"}
//	GET  /healthz   — {"status": "ok"}
//	GET  /metrics   — Prometheus text exposition
//
// Request handling:
//   - "length" is sanitized, never rejected: missing or unparsable values and
//     values below generator.min_length become generator.default_length;
//     values above generator.max_length are clamped.
//   - A non-string "password" is evaluated as "".
//   - An empty body counts as {}; invalid JSON is answered with 400.
//   - Wrong methods get 405; every JSON response has Content-Type
//     application/json and every response an X-Request-ID header.
//
// JSON types are defined in types.go. No external HTTP framework is used.
package api
