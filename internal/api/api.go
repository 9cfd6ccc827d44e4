// Package api exposes the device classifier over HTTP.
//
//	GET    /v1/profile     classification of the calling client
//	PUT    /v1/signals     store signals reported by the browser, return the profile
//	DELETE /v1/signals     forget stored signals
//	POST   /v1/classify    classify an explicit set of signals
//	GET    /v1/thresholds  active swipe thresholds
//	GET    /health/live
//	GET    /health/ready
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/swipekit/pkg/device"
	"github.com/dmitrymomot/swipekit/pkg/httpserver"
	"github.com/dmitrymomot/swipekit/pkg/logger"
	"github.com/dmitrymomot/swipekit/pkg/requestid"
	"github.com/dmitrymomot/swipekit/pkg/signalstore"
)

const (
	DefaultCookieName = "swipekit_cid"
	maxBodyBytes      = 8 << 10
)

// Handler serves the HTTP API.
type Handler struct {
	classifier   *device.Classifier
	store        signalstore.Store
	log          *slog.Logger
	checks       []httpserver.Check
	cookieName   string
	cookieTTL    time.Duration
	secureCookie bool
}

// Option configures a Handler.
type Option func(*Handler)

func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithCookie sets the client id cookie name, lifetime and Secure flag.
func WithCookie(name string, ttl time.Duration, secure bool) Option {
	return func(h *Handler) {
		if name != "" {
			h.cookieName = name
		}
		h.cookieTTL = ttl
		h.secureCookie = secure
	}
}

// WithReadinessChecks adds dependency checks to /health/ready.
func WithReadinessChecks(checks ...httpserver.Check) Option {
	return func(h *Handler) { h.checks = append(h.checks, checks...) }
}

// New creates a Handler. classifier and store are required.
func New(classifier *device.Classifier, store signalstore.Store, opts ...Option) *Handler {
	if classifier == nil || store == nil {
		panic("api: classifier and store are required")
	}
	h := &Handler{
		classifier: classifier,
		store:      store,
		log:        slog.New(slog.DiscardHandler),
		cookieName: DefaultCookieName,
		cookieTTL:  30 * 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Router returns the routes of the API.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)
	// Classify before logging so the request log line carries the device attrs.
	r.Use(device.Middleware(h.classifier, h.lookup))
	r.Use(h.logRequests)

	r.Get("/health/live", httpserver.Liveness())
	r.Get("/health/ready", httpserver.Readiness(h.log, h.checks...))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/profile", h.getProfile)
		r.Put("/signals", h.putSignals)
		r.Delete("/signals", h.deleteSignals)
		r.Post("/classify", h.classify)
		r.Get("/thresholds", h.getThresholds)
	})

	return r
}

// profileResponse is returned by the profile endpoints.
type profileResponse struct {
	device.Profile
	Signals device.Signals `json:"signals"`
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	p, ok := device.ProfileFromContext(r.Context())
	if !ok {
		p = h.classifier.Profile(device.FromRequest(r))
	}
	h.log.DebugContext(r.Context(), "profile served")
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) putSignals(w http.ResponseWriter, r *http.Request) {
	sig, err := decodeSignals(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	// Reported values win; headers fill identifiers the body left out.
	sig = device.Merge(sig, device.FromRequest(r))

	id := h.ensureClientID(w, r)
	if err := h.store.Save(r.Context(), id, sig); err != nil {
		h.log.ErrorContext(r.Context(), "failed to store signals", logger.ClientID(id), logger.Error(err))
		writeError(w, err)
		return
	}

	p := h.classifier.Profile(sig)
	h.log.DebugContext(r.Context(), "signals stored",
		logger.ClientID(id),
		slog.Bool("mobile", p.Mobile),
		slog.Bool("touch", p.Touch),
	)
	writeJSON(w, http.StatusOK, profileResponse{Profile: p, Signals: sig})
}

func (h *Handler) deleteSignals(w http.ResponseWriter, r *http.Request) {
	if id, ok := h.clientID(r); ok {
		if err := h.store.Delete(r.Context(), id); err != nil {
			h.log.ErrorContext(r.Context(), "failed to delete signals", logger.ClientID(id), logger.Error(err))
			writeError(w, err)
			return
		}
	}
	h.setClientCookie(w, "", -1)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) classify(w http.ResponseWriter, r *http.Request) {
	sig, err := decodeSignals(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profileResponse{Profile: h.classifier.Profile(sig), Signals: sig})
}

func (h *Handler) getThresholds(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.classifier.Thresholds())
}

// lookup feeds stored signals to device.Middleware.
func (h *Handler) lookup(r *http.Request) (device.Signals, bool) {
	id, ok := h.clientID(r)
	if !ok {
		return device.Signals{}, false
	}
	sig, err := h.store.Get(r.Context(), id)
	if err != nil {
		if !errors.Is(err, signalstore.ErrNotFound) {
			h.log.WarnContext(r.Context(), "signal lookup failed", logger.ClientID(id), logger.Error(err))
		}
		return device.Signals{}, false
	}
	return sig, true
}

func decodeSignals(w http.ResponseWriter, r *http.Request) (device.Signals, error) {
	var sig device.Signals
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&sig); err != nil {
		return device.Signals{}, badRequest(errors.New("invalid JSON body"))
	}

	if p := sig.Problems(); len(p) > 0 {
		return device.Signals{}, ValidationError(p)
	}
	return sig, nil
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.log.InfoContext(r.Context(), "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.Duration(time.Since(start).Milliseconds()),
		)
	})
}
