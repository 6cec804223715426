package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/elizabethaxley/astrobotany/internal/database"
	"github.com/elizabethaxley/astrobotany/internal/garden"
	"github.com/elizabethaxley/astrobotany/internal/handler"
	"github.com/elizabethaxley/astrobotany/internal/leaderboard"
	"github.com/elizabethaxley/astrobotany/internal/logger"
	"github.com/elizabethaxley/astrobotany/internal/metrics"
	"github.com/elizabethaxley/astrobotany/internal/plant"
	"github.com/elizabethaxley/astrobotany/internal/session"
	"github.com/elizabethaxley/astrobotany/internal/store"
	"github.com/elizabethaxley/astrobotany/internal/user"
)

// Services bundles everything the HTTP surface needs.
type Services struct {
	User        user.Service
	Plant       plant.Service
	Garden      garden.Service
	Store       store.Service
	Leaderboard leaderboard.Service
	Sessions    *session.Store
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
	services   Services
}

// NewServer creates a new Server instance
func NewServer(port int, trustedProxies []string, dbPool database.Pool, services Services) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(IdentityMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.HTTPMiddleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/register", handler.HandleRegisterUser(services.User))

		// Owner plant routes
		plantHandler := handler.NewPlantHandler(services.Plant)
		r.Route("/plant", func(r chi.Router) {
			r.Get("/", plantHandler.Observe)
			r.Get("/info", plantHandler.Info)
			r.Post("/water", plantHandler.Water)
			r.Post("/fertilize", plantHandler.Fertilize)
			r.Post("/shake", plantHandler.Shake)
			r.Post("/search", plantHandler.Search)
			r.Post("/name", plantHandler.Rename)
			r.Post("/harvest", plantHandler.Harvest)
		})

		// Garden social routes
		gardenHandler := handler.NewGardenHandler(services.Garden, services.Plant, services.User, services.Sessions)
		r.Route("/garden", func(r chi.Router) {
			r.Get("/", gardenHandler.List)
			r.Route("/{userID}", func(r chi.Router) {
				r.Get("/plant", gardenHandler.ViewPlant)
				r.Post("/water", gardenHandler.Water)
				r.Post("/search", gardenHandler.Search)
				r.Post("/postcard/subject", gardenHandler.DraftPostcardSubject)
				r.Post("/postcard/send", gardenHandler.SendPostcard)
			})
		})

		// Mailbox routes
		mailboxHandler := handler.NewMailboxHandler(services.Garden)
		r.Route("/mailbox", func(r chi.Router) {
			r.Get("/", mailboxHandler.List)
			r.Get("/{id}", mailboxHandler.Read)
		})

		// Store routes
		storeHandler := handler.NewStoreHandler(services.Store)
		r.Route("/store", func(r chi.Router) {
			r.Get("/", storeHandler.Browse)
			r.Post("/purchase/{itemID}", storeHandler.Purchase)
			r.Post("/confirm", storeHandler.Confirm)
		})

		r.Get("/inventory", handler.HandleGetInventory(services.User))
		r.Get("/leaderboard", handler.HandleGetLeaderboard(services.Leaderboard))
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:   dbPool,
		services: services,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// The fingerprint is an identity credential; keep it out of the
		// logs.
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, handler.HeaderClientFingerprint) || strings.EqualFold(k, "Authorization") {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
