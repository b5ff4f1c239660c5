package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/common/expfmt"

	"github.com/Orsy-git/securiPass/server/internal/config"
	"github.com/Orsy-git/securiPass/server/internal/password"
	"github.com/Orsy-git/securiPass/server/internal/store"
)

// maxBodyBytes bounds the size of a JSON request body.
const maxBodyBytes = 64 << 10

// Handler is the HTTP handler for the page, the JSON API and /metrics.
// It generates and evaluates passwords and records generations in the store.
type Handler struct {
	store   *store.Store
	gen     *password.Generator
	cfg     atomic.Pointer[config.Config]
	metrics *metrics
	mux     *http.ServeMux
	root    http.Handler
}

// New creates a Handler wired to the given store and generator and registers
// all routes. cfg supplies the length policy and the home page tip; it can be
// swapped later with Reload.
func New(st *store.Store, gen *password.Generator, cfg *config.Config) *Handler {
	h := &Handler{
		store:   st,
		gen:     gen,
		metrics: newMetrics(),
		mux:     http.NewServeMux(),
	}
	h.cfg.Store(cfg)

	h.mux.HandleFunc("/", h.home)
	h.mux.HandleFunc("/generate", h.generate)
	h.mux.HandleFunc("/evaluate", h.evaluate)
	h.mux.HandleFunc("/healthz", h.health)
	h.mux.HandleFunc("/metrics", h.metricsText)

	h.root = withRequestLog(h.mux)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.root.ServeHTTP(w, r)
}

// Reload swaps in a new configuration. Requests already running keep the
// configuration they started with.
func (h *Handler) Reload(cfg *config.Config) {
	h.cfg.Store(cfg)
	slog.Info("api: configuration applied",
		"default_length", cfg.Generator.DefaultLength,
		"min_length", cfg.Generator.MinLength,
		"max_length", cfg.Generator.MaxLength,
		"tip_title", cfg.Tip.Title,
	)
}

// --- route handlers ---------------------------------------------------------

// generate serves POST /generate — a new password plus the updated session state.
func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req generateRequest
	if err := decodeBody(w, r, &req); err != nil {
		jsonErr(w, http.StatusBadRequest, err.Error())
		return
	}

	length := sanitizeLength(req.Length, h.cfg.Load().Generator)
	pw := h.gen.Generate(length)
	count, history := h.store.RecordGeneration(pw)
	h.metrics.observeGeneration(len(pw))

	jsonResp(w, http.StatusOK, GenerateResponse{
		Password:   pw,
		NewCount:   count,
		NewHistory: history,
	})
}

// evaluate serves POST /evaluate — the strength label, feedback and score.
func (h *Handler) evaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req evaluateRequest
	if err := decodeBody(w, r, &req); err != nil {
		jsonErr(w, http.StatusBadRequest, err.Error())
		return
	}

	pw, _ := req.Password.(string)
	res := password.Evaluate(pw)
	h.metrics.observeEvaluation(res.Label)

	jsonResp(w, http.StatusOK, EvaluateResponse{
		Force:    res.Label,
		Feedback: res.Feedback,
		Score:    res.Score,
	})
}

// health serves GET /healthz.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	jsonResp(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// metricsText serves GET /metrics in the Prometheus text format.
func (h *Handler) metricsText(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	w.Header().Set("Content-Type", string(expfmt.NewFormat(expfmt.TypeTextPlain)))
	w.WriteHeader(http.StatusOK)
	if err := h.metrics.writeText(w, h.store); err != nil {
		slog.Error("api: write metrics", "err", err)
	}
}

// BuildState returns the session state as pushed to WebSocket clients.
func BuildState(st *store.Store) StateResponse {
	snap := st.Snapshot()
	resp := StateResponse{
		GeneratedCount: snap.GeneratedCount,
		History:        snap.History,
	}
	if !snap.UpdatedAt.IsZero() {
		resp.UpdatedAt = snap.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

// --- helpers ----------------------------------------------------------------

// decodeBody decodes a JSON object body into v. An empty body leaves v
// untouched so every field takes its default.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return errors.New("invalid JSON body")
	}
	return nil
}

func jsonResp(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonErr(w http.ResponseWriter, code int, msg string) {
	jsonResp(w, code, errorResponse{Error: msg})
}
