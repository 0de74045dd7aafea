package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"quotes-service/internal/domain"
	"quotes-service/internal/infrastructure/http/openapi"
	"quotes-service/internal/infrastructure/logx"

	"go.uber.org/zap"
)

const (
	msgQuotesRetrieved = "Quotes retrieved successfully"
	msgQuoteNotFound   = "Quote not found"
	msgFetchFailed     = "Failed to fetch quotes"
	msgRouteNotFound   = "Route not found"
	msgHealthy         = "Backend and database are running"
	msgUnhealthy       = "Backend running but database connection failed"
)

// QuoteService is the part of the resolver the HTTP layer depends on.
type QuoteService interface {
	Resolve(ctx context.Context, symbolID, convertID string, window time.Duration) (domain.Observation, error)
	Healthy(ctx context.Context) bool
}

type Server struct {
	svc       QuoteService
	window    time.Duration
	log       *zap.Logger
	now       func() time.Time
	devErrors bool
	cors      []string
}

var _ openapi.ServerInterface = (*Server)(nil)

type ServerOption func(*Server)

// WithFreshnessWindow sets the maximum age of a stored quote served as-is.
func WithFreshnessWindow(d time.Duration) ServerOption { return func(s *Server) { s.window = d } }
func WithLogger(l *zap.Logger) ServerOption            { return func(s *Server) { s.log = l } }

// WithDevErrors exposes panic messages in 500 responses.
func WithDevErrors(on bool) ServerOption { return func(s *Server) { s.devErrors = on } }

// WithCORSOrigins sets the browser origins allowed to call the API.
func WithCORSOrigins(origins []string) ServerOption { return func(s *Server) { s.cors = origins } }

func NewServer(svc QuoteService, opts ...ServerOption) *Server {
	s := &Server{svc: svc, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logx.L()
	}
	return s
}

func (s *Server) GetQuote(w http.ResponseWriter, r *http.Request, symbolID string, convertID string) {
	obs, err := s.svc.Resolve(r.Context(), symbolID, convertID, s.window)
	res := classify(obs, err)
	if res.kind != resultOK {
		logx.FromBase(r.Context(), s.log).Warn("quote_request_failed",
			zap.String("symbol_id", symbolID),
			zap.String("convert_id", convertID),
			zap.Error(err),
		)
	}
	res.write(w)
}

func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := openapi.HealthEnvelope{
		Status:    openapi.HealthEnvelopeStatusOK,
		Message:   msgHealthy,
		Timestamp: s.now().UTC(),
	}
	if !s.svc.Healthy(r.Context()) {
		resp.Status = openapi.HealthEnvelopeStatusERROR
		resp.Message = msgUnhealthy
	}
	writeJSON(w, http.StatusOK, resp)
}

type resultKind int

const (
	resultOK resultKind = iota
	resultNotFound
	resultRouteNotFound
	resultFailure
)

// quoteResult is the outcome of one quote request before it is rendered.
type quoteResult struct {
	kind    resultKind
	obs     domain.Observation
	message string
}

func classify(obs domain.Observation, err error) quoteResult {
	switch {
	case err == nil:
		return quoteResult{kind: resultOK, obs: obs}
	case errors.Is(err, domain.ErrQuoteNotFound):
		return quoteResult{kind: resultNotFound}
	// blank ids answer like an empty path segment
	case errors.Is(err, domain.ErrInvalidPair):
		return quoteResult{kind: resultRouteNotFound}
	default:
		msg := err.Error()
		if msg == "" {
			msg = "Unknown error"
		}
		return quoteResult{kind: resultFailure, message: msg}
	}
}

func (res quoteResult) write(w http.ResponseWriter) {
	switch res.kind {
	case resultOK:
		writeJSON(w, http.StatusOK, openapi.QuoteEnvelope{
			Status:  openapi.OK,
			Message: msgQuotesRetrieved,
			Data: openapi.Quote{
				SymbolId:    res.obs.SymbolID,
				ConvertId:   res.obs.ConvertID,
				Quote:       res.obs.Price,
				RequestedAt: res.obs.ObservedAt,
			},
		})
	case resultNotFound:
		writeError(w, http.StatusNotFound, msgQuoteNotFound, msgQuoteNotFound)
	case resultRouteNotFound:
		writeError(w, http.StatusNotFound, msgRouteNotFound, msgRouteNotFound)
	default:
		writeError(w, http.StatusInternalServerError, msgFetchFailed, res.message)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, title, message string) {
	writeJSON(w, status, openapi.ErrorEnvelope{
		Status:  openapi.Error,
		Error:   title,
		Message: message,
	})
}
