package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/SkinTrade_Go/docs"
	"github.com/osse101/SkinTrade_Go/internal/auth"
	"github.com/osse101/SkinTrade_Go/internal/cases"
	"github.com/osse101/SkinTrade_Go/internal/catalog"
	"github.com/osse101/SkinTrade_Go/internal/economy"
	"github.com/osse101/SkinTrade_Go/internal/eventlog"
	"github.com/osse101/SkinTrade_Go/internal/handler"
	"github.com/osse101/SkinTrade_Go/internal/logger"
	"github.com/osse101/SkinTrade_Go/internal/metrics"
	"github.com/osse101/SkinTrade_Go/internal/middleware"
	"github.com/osse101/SkinTrade_Go/internal/opening"
	"github.com/osse101/SkinTrade_Go/internal/profile"
	"github.com/osse101/SkinTrade_Go/internal/session"
	"github.com/osse101/SkinTrade_Go/internal/sse"
)

// Options are the HTTP settings taken from config
type Options struct {
	Addr              string
	MaxBodyBytes      int64
	TrustedProxies    []string
	RateLimitRequests int
	RateLimitWindow   time.Duration
	SteamReturnURL    string
}

// Services are the components the routes call into
type Services struct {
	Catalog  catalog.Service
	Cases    *cases.Registry
	Sessions *session.Store
	Tokens   *auth.TokenManager
	Economy  economy.Service
	TopUp    *economy.TopUp
	Opening  *opening.Service
	Profile  *profile.Service
	Activity eventlog.Service
	Hub      *sse.Hub
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer wires the router
func NewServer(opts Options, svc Services) *Server {
	r := chi.NewRouter()

	detector := NewSuspiciousActivityDetector(opts.RateLimitRequests, opts.RateLimitWindow)

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(handler.HealthCheckFunc(func(context.Context) error {
		if svc.Cases.Len() == 0 {
			return errors.New("no cases loaded")
		}
		return nil
	})))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	requireSession := middleware.SessionAuth(svc.Tokens, svc.Sessions)
	optionalSession := middleware.OptionalSession(svc.Tokens, svc.Sessions)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Get("/steam", handler.HandleSteamLogin(opts.SteamReturnURL))
			r.Post("/login", handler.HandleLogin(svc.Sessions, svc.Tokens, time.Now))
			r.With(requireSession).Post("/logout", handler.HandleLogout(svc.Sessions))
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", handler.HandleCatalog(svc.Catalog))
			r.Get("/tabs", handler.HandleCatalogTabs(svc.Catalog))
			r.Get("/{id}", handler.HandleGetSkin(svc.Catalog))
		})

		r.Route("/cases", func(r chi.Router) {
			r.With(optionalSession).Get("/", handler.HandleListCases(svc.Cases, svc.Economy))
			r.With(optionalSession).Get("/{id}", handler.HandleGetCase(svc.Cases, svc.Economy))
			r.With(requireSession).Post("/{id}/open", handler.HandleOpenCase(svc.Opening))
		})

		r.Route("/balance", func(r chi.Router) {
			r.Get("/topup", handler.HandleTopUpOptions(svc.TopUp))

			r.Group(func(r chi.Router) {
				r.Use(requireSession)
				r.Get("/", handler.HandleBalance(svc.Economy))
				r.Post("/topup", handler.HandleTopUp(svc.TopUp))
				r.Get("/topup/qr", handler.HandleTopUpQR(svc.TopUp))
			})
		})

		// everything below belongs to a session
		r.Group(func(r chi.Router) {
			r.Use(requireSession)

			r.Get("/spins/pending", handler.HandlePendingSpin(svc.Opening))
			r.Get("/spins/{id}", handler.HandleGetSpin(svc.Opening))

			r.Route("/inventory", func(r chi.Router) {
				r.Get("/", handler.HandleInventory(svc.Economy))
				r.Post("/quote", handler.HandleQuote(svc.Economy))
				r.Post("/sell", handler.HandleSell(svc.Economy))
				r.Post("/sell-all", handler.HandleSellAll(svc.Economy))
			})

			r.Get("/profile", handler.HandleProfile(svc.Profile))
			r.Get("/activity", handler.HandleActivity(svc.Activity))
			r.Get("/events", sse.Handler(svc.Hub, middleware.SessionFromRequest))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	httpServer := &http.Server{
		Addr:              opts.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	// Event streams never go idle, so Shutdown would wait on them until its deadline.
	if svc.Hub != nil {
		httpServer.RegisterOnShutdown(svc.Hub.Stop)
	}

	return &Server{
		httpServer: httpServer,
		router:     r,
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
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

// Flush keeps the event stream working through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func sanitizeHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		out[k] = v
		for _, sensitive := range SensitiveHeaders {
			if strings.EqualFold(k, sensitive) {
				out[k] = []string{RedactedValue}
				break
			}
		}
	}
	return out
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
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

		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

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
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen on %s: %w", s.httpServer.Addr, err)
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
