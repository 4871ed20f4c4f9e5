package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/ghostmap"
	"github.com/aretw0/ghostmap/internal/logging"
	"github.com/aretw0/ghostmap/internal/parser"
	"github.com/aretw0/ghostmap/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultMaxBodyBytes bounds the size of a puzzle upload.
const DefaultMaxBodyBytes = 4 << 20

// DefaultRequestTimeout bounds how long one request may walk.
const DefaultRequestTimeout = 30 * time.Second

// SolveRequest is the body of POST /v1/solve.
type SolveRequest struct {
	Input string `json:"input"`
	Part  int    `json:"part"`
}

// SolveResponse carries the answer as a decimal string; part 2 answers can
// exceed what JSON numbers represent exactly.
type SolveResponse struct {
	Part        int    `json:"part"`
	Answer      string `json:"answer"`
	Fingerprint string `json:"fingerprint"`
}

// SummaryRequest is the body of POST /v1/summary.
type SummaryRequest struct {
	Input string `json:"input"`
}

// Config configures the handler.
type Config struct {
	// SolverOptions are applied to every solver built for a request.
	SolverOptions []ghostmap.Option
	// Metrics, when set, is mounted on GET /metrics.
	Metrics      http.Handler
	Logger       *slog.Logger
	MaxBodyBytes int64
	// RequestTimeout cancels the walks of a request that runs longer.
	// Zero selects DefaultRequestTimeout.
	RequestTimeout time.Duration
}

// Server holds the request handlers.
type Server struct {
	opts     []ghostmap.Option
	logger   *slog.Logger
	maxBytes int64
	timeout  time.Duration
}

// NewHandler creates the HTTP API.
func NewHandler(cfg Config) http.Handler {
	s := &Server{
		opts:     cfg.SolverOptions,
		logger:   cfg.Logger,
		maxBytes: cfg.MaxBodyBytes,
		timeout:  cfg.RequestTimeout,
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	if s.maxBytes <= 0 {
		s.maxBytes = DefaultMaxBodyBytes
	}
	if s.timeout <= 0 {
		s.timeout = DefaultRequestTimeout
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.GetHealth)
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}
	r.Route("/v1", func(r chi.Router) {
		r.Post("/solve", s.Solve)
		r.Post("/summary", s.Summary)
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Solve handles the POST /v1/solve request.
func (s *Server) Solve(w http.ResponseWriter, r *http.Request) {
	var body SolveRequest
	if err := s.decode(w, r, &body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("Solve: Invalid request body", "error", err)
		return
	}
	if body.Part != 1 && body.Part != 2 {
		http.Error(w, fmt.Sprintf("part must be 1 or 2, got %d", body.Part), http.StatusBadRequest)
		return
	}

	solver, err := ghostmap.FromInput(body.Input, s.opts...)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid puzzle: %v", err), statusFor(err))
		s.logger.Warn("Solve: Invalid puzzle", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	resp := SolveResponse{Part: body.Part, Fingerprint: solver.Fingerprint()}
	if body.Part == 1 {
		steps, err := solver.Steps(ctx)
		if err != nil {
			s.fail(w, "Solve", err)
			return
		}
		resp.Answer = fmt.Sprint(steps)
	} else {
		result, err := solver.Ghosts(ctx)
		if err != nil {
			s.fail(w, "Solve", err)
			return
		}
		resp.Answer = result.String()
	}

	s.respond(w, "Solve", resp)
}

// Summary handles the POST /v1/summary request.
func (s *Server) Summary(w http.ResponseWriter, r *http.Request) {
	var body SummaryRequest
	if err := s.decode(w, r, &body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("Summary: Invalid request body", "error", err)
		return
	}

	solver, err := ghostmap.FromInput(body.Input, s.opts...)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid puzzle: %v", err), statusFor(err))
		return
	}
	s.respond(w, "Summary", solver.Summary())
}

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.respond(w, "Health", map[string]string{"status": "ok", "version": ghostmap.Version})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	status := statusFor(err)
	http.Error(w, fmt.Sprintf("%s error: %v", op, err), status)
	if status >= http.StatusInternalServerError {
		s.logger.Error(op+" failed", "error", err)
		return
	}
	s.logger.Info(op+" rejected", "error", err, "status", status)
}

func (s *Server) respond(w http.ResponseWriter, op string, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error(op+" response encode failed", "error", err)
	}
}

// statusFor maps solver errors: bad input is 400, a well-formed puzzle with
// no answer is 422.
func statusFor(err error) int {
	switch {
	case errors.Is(err, parser.ErrSyntax),
		errors.Is(err, domain.ErrMalformedGraph),
		errors.Is(err, domain.ErrDuplicateNode),
		errors.Is(err, domain.ErrInvalidLabel),
		errors.Is(err, domain.ErrEmptyInstructionSequence),
		errors.Is(err, domain.ErrInvalidInstruction):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrStepBudgetExceeded),
		errors.Is(err, domain.ErrPeriodicityNotFound),
		errors.Is(err, domain.ErrNoStartNodes),
		errors.Is(err, domain.ErrUnknownLabel),
		errors.Is(err, domain.ErrNoSynchronization),
		errors.Is(err, domain.ErrOverflow):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ListenAndServe serves handler on addr until ctx is cancelled, then shuts
// down gracefully.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("HTTP Server listening", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		logger.Info("Shutdown signal received, shutting down server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}
