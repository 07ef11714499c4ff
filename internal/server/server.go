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
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Maou3434/TOTS/internal/battle"
	"github.com/Maou3434/TOTS/internal/database"
	"github.com/Maou3434/TOTS/internal/dungeon"
	"github.com/Maou3434/TOTS/internal/forge"
	"github.com/Maou3434/TOTS/internal/gamedata"
	"github.com/Maou3434/TOTS/internal/handler"
	"github.com/Maou3434/TOTS/internal/logger"
	"github.com/Maou3434/TOTS/internal/metrics"
	"github.com/Maou3434/TOTS/internal/team"
)

type Server struct {
	httpServer     *http.Server
	dbPool         database.Pool
	teamService    team.Service
	dungeonService dungeon.Service
	forgeService   forge.Service
	battleService  battle.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, teamService team.Service, dungeonService dungeon.Service, forgeService forge.Service, battleService battle.Service, tables *gamedata.Tables) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
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
		// Public routes: account creation, login and the static catalogs
		r.Post("/team/register", handler.HandleRegisterTeam(teamService))
		r.Post("/team/login", handler.HandleLogin(teamService))
		r.Get("/dungeons", handler.HandleListDungeons(dungeonService))
		r.Get("/gamedata", handler.HandleGetGamedata(tables))

		// Team routes, authenticated by session token
		r.Group(func(r chi.Router) {
			r.Use(SessionMiddleware(teamService))

			r.Route("/team", func(r chi.Router) {
				r.Post("/logout", handler.HandleLogout(teamService))
				r.Get("/roster", handler.HandleGetRoster(teamService))
				r.Get("/inventory", handler.HandleGetInventory(teamService))
				r.Get("/attempts", handler.HandleListAttempts(dungeonService))
				r.Post("/equip", handler.HandleEquip(teamService))
				r.Post("/unequip", handler.HandleUnequip(teamService))
			})

			r.Post("/dungeons/attempt", handler.HandleSubmitAttempt(dungeonService))

			r.Route("/merge", func(r chi.Router) {
				r.Post("/request", handler.HandleSubmitMerge(forgeService))
				r.Get("/requests", handler.HandleListMerges(forgeService))
			})

			r.Post("/battle/simulate", handler.HandleSimulate(battleService))
		})

		// Admin routes, authenticated by API key
		r.Route("/admin", func(r chi.Router) {
			r.Use(APIKeyMiddleware(apiKey, trustedProxies, detector))

			r.Route("/attempts", func(r chi.Router) {
				r.Get("/pending", handler.HandleListPendingAttempts(dungeonService))
				r.Post("/{id}/review", handler.HandleReviewAttempt(dungeonService))
			})

			r.Route("/merges", func(r chi.Router) {
				r.Get("/pending", handler.HandleListPendingMerges(forgeService))
				r.Post("/{id}/review", handler.HandleReviewMerge(forgeService))
			})
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:         dbPool,
		teamService:    teamService,
		dungeonService: dungeonService,
		forgeService:   forgeService,
		battleService:  battleService,
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
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
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
