// Package web serves the Collatz page over HTTP.
package web

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ardanlabs/collatz/page"
)

// PageHandler serves the rendered page.
type PageHandler struct {
	Page   *page.Page
	Logger *slog.Logger
}

// ServeHTTP writes the page. If the sequence could not be computed the page
// carries the error message and the status is 500.
func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	if !allowed(w, r) {
		return
	}

	var buf bytes.Buffer
	if err := h.Page.Render(&buf); err != nil {
		h.Logger.Error("render", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if err := h.Page.Err(); err != nil {
		h.Logger.Error("sequence", "number", h.Page.Component().Number(), "error", err)
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := buf.WriteTo(w); err != nil {
		h.Logger.Warn("write page", "error", err)
	}
}

// SequenceReply is the JSON body served by SequenceHandler.
type SequenceReply struct {
	Number   int64   `json:"number"`
	Sequence []int64 `json:"sequence"`
	Steps    int     `json:"steps"`
	Max      int64   `json:"max"`
}

// SequenceHandler serves the page's sequence as JSON.
type SequenceHandler struct {
	Page   *page.Page
	Logger *slog.Logger
}

// ServeHTTP writes the sequence as JSON, or a 500 with the error message when
// it could not be computed.
func (h *SequenceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !allowed(w, r) {
		return
	}

	c := h.Page.Component()
	if err := c.Err(); err != nil {
		h.Logger.Error("sequence", "number", c.Number(), "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	seq := c.Sequence()
	reply := SequenceReply{
		Number:   c.Number(),
		Sequence: seq,
		Steps:    seq.Steps(),
		Max:      seq.Max(),
	}

	w.Header().Set("Content-Type", "application/json")
	if r.Method == http.MethodHead {
		return
	}
	if err := json.NewEncoder(w).Encode(reply); err != nil {
		h.Logger.Warn("json encode", "error", err)
	}
}

// NewMux routes "/" to the page and "/sequence" to its JSON form.
func NewMux(p *page.Page, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/", &PageHandler{Page: p, Logger: logger})
	mux.Handle("/sequence", &SequenceHandler{Page: p, Logger: logger})
	return mux
}

func allowed(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "only GET", http.StatusMethodNotAllowed)
		return false
	}
	return true
}
