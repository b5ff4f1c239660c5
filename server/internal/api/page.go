package api

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTmpl = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// pageData is the data rendered into index.html.
type pageData struct {
	TipTitle       string
	TipContent     string
	GeneratedCount int
	History        []string
}

// home serves GET / — the HTML page seeded with the tip and session state.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		jsonErr(w, http.StatusNotFound, "not found")
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	cfg := h.cfg.Load()
	snap := h.store.Snapshot()
	data := pageData{
		TipTitle:       cfg.Tip.Title,
		TipContent:     cfg.Tip.Content,
		GeneratedCount: snap.GeneratedCount,
		History:        snap.History,
	}

	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, data); err != nil {
		slog.Error("api: render index", "err", err)
		jsonErr(w, http.StatusInternalServerError, "render failed")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck
}
