package mockbackend

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"nathanbeddoewebdev/bwdash/internal/domain"

	"github.com/charmbracelet/log"
)

const maxBodyBytes = 1 << 16

type bandwidthRequest struct {
	From      *int64 `json:"from"`
	To        *int64 `json:"to"`
	Aggregate string `json:"aggregate,omitempty"`
}

// Handler serves POST /bandwidth.
type Handler struct {
	gen    *Generator
	token  string
	logger *log.Logger
	mux    *http.ServeMux
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithToken requires "Authorization: Bearer <token>" on every request.
func WithToken(token string) HandlerOption {
	return func(h *Handler) { h.token = token }
}

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) HandlerOption {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// NewHandler returns the HTTP handler for gen.
func NewHandler(gen *Generator, opts ...HandlerOption) *Handler {
	h := &Handler{gen: gen, logger: log.New(io.Discard), mux: http.NewServeMux()}
	for _, opt := range opts {
		opt(h)
	}
	h.mux.HandleFunc("POST /bandwidth", h.bandwidth)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) bandwidth(w http.ResponseWriter, r *http.Request) {
	if h.token != "" && r.Header.Get("Authorization") != "Bearer "+h.token {
		h.fail(w, http.StatusUnauthorized, "missing or invalid bearer token")
		return
	}

	var req bandwidthRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.fail(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.From == nil || req.To == nil {
		h.fail(w, http.StatusBadRequest, "from and to are required")
		return
	}
	if *req.From >= *req.To {
		h.fail(w, http.StatusBadRequest, "from must be before to")
		return
	}

	if strings.TrimSpace(req.Aggregate) == "" {
		resp := h.gen.Series(*req.From, *req.To)
		h.logger.Debug("served series", "from", *req.From, "to", *req.To, "points", resp.Len())
		writeJSON(w, resp)
		return
	}

	fn, err := domain.ParseAggregateFunc(req.Aggregate)
	if err != nil {
		h.fail(w, http.StatusBadRequest, err.Error())
		return
	}
	resp := h.gen.Aggregate(*req.From, *req.To, fn)
	h.logger.Debug("served aggregate", "from", *req.From, "to", *req.To, "fn", fn)
	writeJSON(w, resp)
}

func (h *Handler) fail(w http.ResponseWriter, status int, msg string) {
	h.logger.Warn("rejected request", "status", status, "reason", msg)
	http.Error(w, msg, status)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
