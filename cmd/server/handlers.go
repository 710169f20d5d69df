package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"quickstocks/internal/provider"
)

// maxBatch caps the number of symbols in one quotes request.
const maxBatch = 100

// dataService is the part of dataservice.Service the API exposes.
type dataService interface {
	ProvideQuote(ctx context.Context, symbol provider.Symbol) (provider.Quote, error)
	ProvideQuotes(ctx context.Context, symbols []provider.Symbol) (map[provider.Symbol]provider.Quote, error)
	ProvideLogo(ctx context.Context, symbol provider.Symbol) (provider.Logo, error)
	ProvideIndex(ctx context.Context, symbol provider.Symbol) (provider.Index, error)
	ProvideHistory(ctx context.Context, symbol provider.Symbol) (provider.History, error)
	SearchSymbols(ctx context.Context, query string) ([]provider.Symbol, error)
	SupportedIndices() []provider.Index
}

// purger empties caches.
type purger interface {
	Purge()
}

type api struct {
	svc     dataService
	cache   purger
	timeout time.Duration
	log     *zap.Logger
}

type quotesResponse struct {
	Quotes map[provider.Symbol]provider.Quote `json:"quotes"`
}

type indicesResponse struct {
	Indices []provider.Index `json:"indices"`
}

type searchResponse struct {
	Query   string            `json:"query"`
	Symbols []provider.Symbol `json:"symbols"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// routes builds the router. The admin route is only registered when a
// purger is configured.
func (a *api) routes() http.Handler {
	r := mux.NewRouter()
	r.Use(observe(a.log))

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)
	// withGzip already compresses every response.
	r.Handle("/metrics", promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
		DisableCompression: true,
	})).Methods(http.MethodGet)

	s := r.PathPrefix("/api").Subrouter()
	s.HandleFunc("/quotes", a.handleGetQuotes).Methods(http.MethodGet)
	s.HandleFunc("/quotes", a.handlePostQuotes).Methods(http.MethodPost)
	s.HandleFunc("/quotes/{symbol}", a.handleQuote).Methods(http.MethodGet)
	s.HandleFunc("/logos/{symbol}", a.handleLogo).Methods(http.MethodGet)
	s.HandleFunc("/indices", a.handleIndices).Methods(http.MethodGet)
	s.HandleFunc("/indices/{symbol}", a.handleIndex).Methods(http.MethodGet)
	s.HandleFunc("/history/{symbol}", a.handleHistory).Methods(http.MethodGet)
	s.HandleFunc("/search", a.handleSearch).Methods(http.MethodGet)
	if a.cache != nil {
		s.HandleFunc("/admin/cache/purge", a.handlePurge).Methods(http.MethodPost)
	}

	return withJSONHeaders(withGzip(recoverPanic(a.log)(limitBody(r))))
}

func (a *api) context(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), a.timeout)
}

func symbolVar(r *http.Request) provider.Symbol {
	return provider.Symbol(strings.TrimSpace(mux.Vars(r)["symbol"]))
}

func (a *api) handleQuote(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := a.context(r)
	defer cancel()
	q, err := a.svc.ProvideQuote(ctx, symbolVar(r))
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (a *api) handleGetQuotes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("symbols")
	if strings.TrimSpace(q) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing symbols query param"})
		return
	}
	a.writeQuotes(w, r, splitCSV(q))
}

type postBody struct {
	Symbols []string `json:"symbols"`
}

func (a *api) handlePostQuotes(w http.ResponseWriter, r *http.Request) {
	var b postBody
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&b); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if len(b.Symbols) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "symbols cannot be empty"})
		return
	}
	a.writeQuotes(w, r, b.Symbols)
}

func (a *api) writeQuotes(w http.ResponseWriter, r *http.Request, raw []string) {
	if len(raw) > maxBatch {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "too many symbols"})
		return
	}
	symbols := make([]provider.Symbol, 0, len(raw))
	for _, s := range raw {
		symbols = append(symbols, provider.Symbol(s))
	}
	ctx, cancel := a.context(r)
	defer cancel()
	quotes, err := a.svc.ProvideQuotes(ctx, symbols)
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quotesResponse{Quotes: quotes})
}

func (a *api) handleLogo(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := a.context(r)
	defer cancel()
	logo, err := a.svc.ProvideLogo(ctx, symbolVar(r))
	if err != nil {
		a.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", logo.ContentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(logo.Data)
}

func (a *api) handleIndices(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, indicesResponse{Indices: a.svc.SupportedIndices()})
}

func (a *api) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := a.context(r)
	defer cancel()
	idx, err := a.svc.ProvideIndex(ctx, symbolVar(r))
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, idx)
}

func (a *api) handleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := a.context(r)
	defer cancel()
	h, err := a.svc.ProvideHistory(ctx, symbolVar(r))
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h)
}

func (a *api) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	ctx, cancel := a.context(r)
	defer cancel()
	symbols, err := a.svc.SearchSymbols(ctx, query)
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{Query: query, Symbols: symbols})
}

func (a *api) handlePurge(w http.ResponseWriter, _ *http.Request) {
	a.cache.Purge()
	a.log.Info("cache purged")
	w.WriteHeader(http.StatusNoContent)
}

// statusFor maps an error to the HTTP status a client should see.
func statusFor(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	}
	switch provider.KindOf(err) {
	case provider.KindDeclined:
		return http.StatusNotFound
	case provider.KindNetworking, provider.KindParsing:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (a *api) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		a.log.Warn("request failed", zap.Int("status", status), zap.Error(err))
	}
	writeJSON(w, status, errorResponse{Error: err.Error(), Kind: provider.KindOf(err).String()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
