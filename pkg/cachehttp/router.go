package cachehttp

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/lrukit/pkg/cache"
	"github.com/dmitrymomot/lrukit/pkg/logger"
	"github.com/dmitrymomot/lrukit/pkg/requestid"
)

// maxBodySize caps PUT bodies.
const maxBodySize = 1 << 20

// Option configures the router.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	metrics http.Handler
}

// WithLogger sets the request logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetricsHandler mounts h at GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(o *options) { o.metrics = h }
}

type statsResponse struct {
	cache.Stats
	HitRatio float64 `json:"hit_ratio"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handler[V any] struct {
	cache *cache.LRUCache[string, V]
	log   *slog.Logger
}

// NewRouter builds the HTTP surface for c.
func NewRouter[V any](c *cache.LRUCache[string, V], opts ...Option) chi.Router {
	o := &options{logger: logger.Discard()}
	for _, opt := range opts {
		opt(o)
	}

	h := &handler[V]{cache: c, log: o.logger.With(logger.Component("cachehttp"))}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	})
	r.Get("/stats", h.stats)
	r.Route("/entries", func(r chi.Router) {
		r.Get("/", h.list)
		r.Delete("/", h.clear)
		r.Get("/{key}", h.get)
		r.Put("/{key}", h.put)
		r.Delete("/{key}", h.remove)
	})
	if o.metrics != nil {
		r.Method(http.MethodGet, "/metrics", o.metrics)
	}

	return r
}

func (h *handler[V]) stats(w http.ResponseWriter, r *http.Request) {
	s := h.cache.Stats()
	h.writeJSON(w, r, http.StatusOK, statsResponse{Stats: s, HitRatio: s.HitRatio()})
}

func (h *handler[V]) list(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.cache.Snapshot())
}

func (h *handler[V]) clear(w http.ResponseWriter, r *http.Request) {
	h.cache.Clear()
	h.log.InfoContext(r.Context(), "cache cleared")
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler[V]) get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	v, ok := h.cache.Get(key)
	if !ok {
		h.writeError(w, r, http.StatusNotFound, ErrNotFound)
		return
	}
	h.writeJSON(w, r, http.StatusOK, v)
}

func (h *handler[V]) put(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var v V
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	err := dec.Decode(&v)
	if err == nil {
		err = expectEOF(dec)
	}
	if err != nil {
		h.log.WarnContext(r.Context(), "rejected cache value", logger.Key(key), logger.Error(err))
		h.writeError(w, r, http.StatusBadRequest, errors.Join(ErrInvalidBody, err))
		return
	}

	h.cache.Put(key, v)
	h.log.DebugContext(r.Context(), "cache entry stored", logger.Key(key))
	w.WriteHeader(http.StatusNoContent)
}

// expectEOF rejects anything after the first JSON value.
func expectEOF(dec *json.Decoder) error {
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON value")
	}
	return nil
}

func (h *handler[V]) remove(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	v, ok := h.cache.Remove(key)
	if !ok {
		h.writeError(w, r, http.StatusNotFound, ErrNotFound)
		return
	}
	h.log.DebugContext(r.Context(), "cache entry removed", logger.Key(key))
	h.writeJSON(w, r, http.StatusOK, v)
}

func (h *handler[V]) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.ErrorContext(r.Context(), "failed to encode response", logger.Error(err))
	}
}

func (h *handler[V]) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	h.writeJSON(w, r, status, errorResponse{Error: err.Error()})
}
