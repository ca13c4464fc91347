// Package api - Thin HTTP layer over the pricing engine
// The API is ONLY responsible for: input decoding, scenario evaluation, output serialization.
package api

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"service-pricing/core/output"
	"service-pricing/core/scenario"
	"service-pricing/core/types"
	"service-pricing/internal/config"
	"service-pricing/internal/errors"
	"service-pricing/internal/logging"
)

// maxRequestBytes bounds the body of POST /quotes
const maxRequestBytes = 1 << 20

// Server is the API server
type Server struct {
	handler  *Handler
	mux      *http.ServeMux
	version  string
	currency types.Currency
	log      *zap.Logger
}

// NewServer creates a new API server
func NewServer(version string, cfg *config.Config) *Server {
	s := &Server{
		handler:  NewHandler(cfg.Pricing.StrictInputs),
		mux:      http.NewServeMux(),
		version:  version,
		currency: cfg.Pricing.Currency,
		log:      logging.Named("api"),
	}

	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /quotes", s.handleQuote)
	s.mux.HandleFunc("GET /kinds", s.handleKinds)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleQuote handles POST /quotes
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			s.writeError(w, ErrorBody{
				Code:    "REQUEST_TOO_LARGE",
				Message: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
			}, http.StatusRequestEntityTooLarge)
			return
		}
		s.writeError(w, ErrorBody{Code: "INVALID_JSON", Message: err.Error()}, http.StatusBadRequest)
		return
	}

	sc, err := s.handler.toScenario(&req)
	if err != nil {
		s.writeError(w, ErrorBody{
			Code:    "VALIDATION_ERROR",
			Message: err.Error(),
			Field:   errors.Field(err),
		}, http.StatusBadRequest)
		return
	}

	result := output.NewResult("api", s.currency, []*scenario.Result{scenario.Evaluate(sc)})

	s.log.Info("quote evaluated",
		zap.String("id", result.ID),
		zap.Stringer("kind", sc.Quote.Kind()),
		zap.Duration("duration", time.Since(start)),
	)
	s.writeJSON(w, result, http.StatusOK)
}

// handleKinds handles GET /kinds
func (s *Server) handleKinds(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"kinds": kindInfos(),
	}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "service-pricing",
		"api_version": "v1",
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Warn("failed to write response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, body ErrorBody, status int) {
	fields := []zap.Field{
		zap.Int("status", status),
		zap.String("code", body.Code),
		zap.String("message", body.Message),
	}
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", fields...)
	} else {
		s.log.Debug("request rejected", fields...)
	}
	s.writeJSON(w, ErrorResponse{Error: body}, status)
}

// ServeHTTP implements http.Handler. A panicking handler is answered with a
// 500 instead of dropping the connection.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		if rec == http.ErrAbortHandler {
			panic(rec)
		}
		err := errors.Internal("handler panicked on "+r.Method+" "+r.URL.Path, fmt.Errorf("%v", rec))
		s.writeError(w, ErrorBody{Code: string(err.Type), Message: err.Message}, http.StatusInternalServerError)
	}()
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}
