package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iwvelando/accounting-tutor/internal/auth"
	"github.com/iwvelando/accounting-tutor/internal/navigation"
	"github.com/iwvelando/accounting-tutor/internal/topic"
	"github.com/iwvelando/accounting-tutor/pkg/constants"
	"github.com/iwvelando/accounting-tutor/pkg/metrics"
)

//go:embed templates/*.html
var templateFiles embed.FS

// RequestIDHeader carries the request identifier in and out of the server.
const RequestIDHeader = "X-Request-ID"

const shutdownTimeout = 5 * time.Second

type contextKey struct{}

// Options are the dependencies of the HTTP handler.
type Options struct {
	Logger      *zap.Logger
	Catalog     *topic.Catalog
	Gateway     *auth.Gateway // nil disables the auth endpoints
	Metrics     *metrics.Manager
	MaxBodySize int64
	Version     string
}

type handler struct {
	logger      *zap.Logger
	catalog     *topic.Catalog
	selector    *navigation.Selector
	gateway     *auth.Gateway
	metrics     *metrics.Manager
	templates   *template.Template
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the web UI, the
// calculator and auth APIs, and the metrics endpoint.
func NewHandler(opts Options) http.Handler {
	h := &handler{
		logger:      opts.Logger,
		catalog:     opts.Catalog,
		gateway:     opts.Gateway,
		metrics:     opts.Metrics,
		maxBodySize: opts.MaxBodySize,
		version:     opts.Version,
	}
	if h.logger == nil {
		h.logger = zap.NewNop()
	}
	if h.catalog == nil {
		h.catalog = topic.Default()
	}
	if h.metrics == nil {
		h.metrics = metrics.NewManager()
	}
	if h.maxBodySize <= 0 {
		h.maxBodySize = constants.DefaultMaxBodySizeBytes
	}
	if h.version == "" {
		h.version = "dev"
	}
	h.selector = navigation.NewSelector(h.catalog)
	h.templates = template.Must(template.New("pages").Funcs(templateFuncs).ParseFS(templateFiles, "templates/*.html"))

	mux := http.NewServeMux()
	route := func(pattern, endpoint string, fn http.HandlerFunc) {
		mux.Handle(pattern, h.metrics.Middleware(endpoint, fn))
	}

	// Calculator API
	route("GET /api/modules", "modules", h.handleModules)
	route("GET /api/modules/{module}", "module", h.handleModule)
	route("POST /api/modules/{module}/{mode}/evaluate", "evaluate", h.handleEvaluate)
	route("POST /api/modules/{module}/{mode}/export", "export", h.handleExport)

	// Auth API
	route("POST /api/auth/signin", "auth_signin", h.handleSignIn)
	route("POST /api/auth/signin/provider", "auth_signin_provider", h.handleSignInProvider)
	route("POST /api/auth/signout", "auth_signout", h.handleSignOut)
	route("POST /api/auth/password-reset", "auth_password_reset", h.handlePasswordReset)

	route("GET /api/version", "version", h.handleVersion)
	route("GET /healthz", "healthz", h.handleHealth)
	mux.Handle("GET /metrics", h.metrics.Handler())

	// Web UI
	route("GET /{$}", "landing", h.handleLanding)
	route("GET /modules/{module}", "page", h.handleModulePage)

	return h.withRequestID(mux)
}

// New returns an http.Server for cfg serving handler.
func New(cfg *Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Address,
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}
}

// Run serves until ctx is cancelled and then shuts the server down gracefully.
func Run(ctx context.Context, logger *zap.Logger, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server",
			zap.String("op", "server.Run"),
			zap.String("address", srv.Addr),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down HTTP server", zap.String("op", "server.Run"))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	return nil
}

// withRequestID tags every request with an identifier, reusing the caller's
// when one is supplied.
func (h *handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey{}, id)))
	})
}

func requestID(r *http.Request) string {
	id, _ := r.Context().Value(contextKey{}).(string)
	return id
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// decodeBody reads a size-limited JSON request body into dst. An empty body
// leaves dst untouched.
func (h *handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) (int, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			return http.StatusRequestEntityTooLarge, fmt.Errorf("request body exceeds limit of %d bytes", h.maxBodySize)
		case errors.Is(err, io.EOF):
			return 0, nil
		default:
			return http.StatusBadRequest, fmt.Errorf("failed to decode request: %w", err)
		}
	}
	return 0, nil
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.String("request_id", requestID(r)),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
