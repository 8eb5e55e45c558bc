// Package server exposes the solver's tool interface over HTTP.
//
//	POST /tool   — execute a tool call
//	GET  /schema — tool schema for agent registration
//	GET  /health — liveness check
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/njchilds90/gosolve"
	"github.com/njchilds90/gosolve/internal/cache"
)

const (
	DefaultMaxBodyBytes = 1 << 20 // 1 MiB

	cacheHeader = "X-Cache"
)

type Handler struct {
	solver       *gosolve.Solver
	cache        cache.Repository
	logger       *slog.Logger
	maxBodyBytes int64
	now          func() time.Time
	mux          *http.ServeMux
}

type HandlerOption func(*Handler)

// WithCache enables response caching for the cacheable tools.
func WithCache(repo cache.Repository) HandlerOption {
	return func(h *Handler) { h.cache = repo }
}

func WithLogger(logger *slog.Logger) HandlerOption {
	return func(h *Handler) { h.logger = logger }
}

func WithMaxBodyBytes(n int64) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

func NewHandler(solver *gosolve.Solver, opts ...HandlerOption) *Handler {
	h := &Handler{
		solver:       solver,
		logger:       slog.Default(),
		maxBodyBytes: DefaultMaxBodyBytes,
		now:          time.Now,
		mux:          http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.mux.HandleFunc("/tool", h.handleTool)
	h.mux.HandleFunc("/schema", h.handleSchema)
	h.mux.HandleFunc("/health", h.handleHealth)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) handleTool(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("panic in /tool", "panic", rec, "stack", string(debug.Stack()))
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
	}()

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req gosolve.ToolRequest
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if dec.More() {
		writeError(w, http.StatusBadRequest, "invalid JSON: trailing data")
		return
	}

	key, cacheable := h.cacheKey(req)
	if cacheable {
		if cached, ok := h.lookup(r, key); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set(cacheHeader, "HIT")
			_, _ = w.Write(cached)
			return
		}
	}

	start := h.now()
	resp := h.solver.HandleToolCall(req)
	h.logger.Info("tool call",
		"tool", req.Tool,
		"error", resp.Error,
		"duration", h.now().Sub(start),
	)

	body, err := json.Marshal(resp)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("json.Marshal() > %v", err))
		return
	}
	body = append(body, '\n')

	if cacheable && resp.Error == "" {
		if err := h.cache.Set(r.Context(), key, string(body)); err != nil {
			h.logger.Warn("cache write failed", "tool", req.Tool, "error", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if cacheable {
		w.Header().Set(cacheHeader, "MISS")
	}
	_, _ = w.Write(body)
}

// cacheKey reports the key of a cacheable request. Requests whose params
// are not plain strings bypass the cache.
func (h *Handler) cacheKey(req gosolve.ToolRequest) (string, bool) {
	if h.cache == nil || !gosolve.CacheableTools[req.Tool] {
		return "", false
	}
	latex, ok := req.Params["latex"].(string)
	if !ok {
		return "", false
	}
	mode := ""
	if raw, present := req.Params["mode"]; present {
		if mode, ok = raw.(string); !ok {
			return "", false
		}
	}
	return cache.Key(req.Tool, mode, latex), true
}

func (h *Handler) lookup(r *http.Request, key string) ([]byte, bool) {
	cached, ok, err := h.cache.Get(r.Context(), key)
	if err != nil {
		h.logger.Warn("cache read failed", "key", key, "error", err)
		return nil, false
	}
	if !ok || !json.Valid(bytes.TrimSpace([]byte(cached))) {
		return nil, false
	}
	return []byte(cached), true
}

func (h *Handler) handleSchema(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, gosolve.MCPToolSpec())
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "ok",
		"time":   h.now().UTC().Format(time.RFC3339),
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
