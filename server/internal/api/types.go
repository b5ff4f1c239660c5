package api

// GenerateResponse is the payload for POST /generate.
type GenerateResponse struct {
	Password   string   `json:"password"`
	NewCount   int      `json:"new_count"`
	NewHistory []string `json:"new_history"`
}

// EvaluateResponse is the payload for POST /evaluate.
type EvaluateResponse struct {
	Force    string   `json:"force"`
	Feedback []string `json:"feedback"`
	Score    int      `json:"score"`
}

// StateResponse is the session state pushed to WebSocket clients.
type StateResponse struct {
	GeneratedCount int      `json:"generated_count"`
	History        []string `json:"history"`
	UpdatedAt      string   `json:"updated_at,omitempty"` // RFC3339
}

// HealthResponse is the payload for GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// generateRequest is the body of POST /generate. Length is left untyped so
// numbers, numeric strings and junk can all be sanitized rather than rejected.
type generateRequest struct {
	Length any `json:"length"`
}

// evaluateRequest is the body of POST /evaluate. A non-string Password is
// evaluated as the empty string.
type evaluateRequest struct {
	Password any `json:"password"`
}

// errorResponse is a generic JSON error body.
type errorResponse struct {
	Error string `json:"error"`
}
