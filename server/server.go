// SPDX-License-Identifier: MIT

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/absorb/absorption"
	"github.com/katalvlaran/absorb/batch"
	"github.com/katalvlaran/absorb/chain"
	"github.com/katalvlaran/absorb/chainfile"
)

// MaxBodyBytes caps request bodies.
const MaxBodyBytes = 4 << 20

// Server holds the dependencies of the HTTP handlers.
type Server struct {
	runner   *batch.Runner
	logger   *log.Logger
	gatherer prometheus.Gatherer
}

// Option configures a Server.
type Option func(*Server)

// WithRunner sets the runner used for single-start solves.
func WithRunner(r *batch.Runner) Option {
	return func(s *Server) {
		if r != nil {
			s.runner = r
		}
	}
}

// WithLogger sets the request and error logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithGatherer sets the metrics source served on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		if g != nil {
			s.gatherer = g
		}
	}
}

// New returns a Server with an uncached runner, the default logger and the
// default Prometheus gatherer, adjusted by opts.
func New(opts ...Option) *Server {
	s := &Server{
		logger:   log.Default(),
		gatherer: prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.runner == nil {
		s.runner = batch.NewRunner(batch.WithLogger(s.logger))
	}

	return s
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok\n"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	r.Route("/v1", func(r chi.Router) {
		r.Post("/solve", s.handleSolve)
		r.Post("/classify", s.handleClassify)
	})

	return r
}

// ListenAndServe serves on addr until ctx is done, then shuts down with a
// five second grace period.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
			return fmt.Errorf("server: shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		began := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(began).Round(time.Microsecond),
			"id", middleware.GetReqID(r.Context()))
	})
}

// readDocument decodes the body as a JSON chain document and returns the raw
// bytes for any extra fields.
func readDocument(w http.ResponseWriter, r *http.Request) (*chainfile.Document, []byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", chainfile.ErrDecode, err)
	}
	doc, err := chainfile.Decode(bytes.NewReader(body), chainfile.FormatJSON)
	if err != nil {
		return nil, nil, err
	}

	return doc, body, nil
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	doc, body, err := readDocument(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	var params solveParams
	if err := json.Unmarshal(body, &params); err != nil {
		s.writeError(w, fmt.Errorf("%w: %w", chainfile.ErrDecode, err))
		return
	}
	c, err := doc.Chain()
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := SolveResponse{Name: doc.Name}
	if params.All {
		all, err := absorption.SolveAll(c)
		if err != nil {
			s.writeError(w, err)
			return
		}
		cl := chain.Classify(c)
		for _, res := range all {
			resp.All = append(resp.All, NewDistribution(doc, cl, res.Start, res.Sequence()))
		}
		s.writeJSON(w, http.StatusOK, resp)
		return
	}

	job := batch.NewJob(doc.Name, c)
	if params.Start != nil {
		job.Start = *params.Start
	}
	out := s.runner.Solve(r.Context(), job)
	if out.Err != nil {
		s.writeError(w, out.Err)
		return
	}
	cl := chain.Classify(c)
	start := job.Start
	switch {
	case cl.IsTrivial():
		start = -1
	case start < 0:
		start = cl.Transient[0]
	}
	d := NewDistribution(doc, cl, start, out.Sequence)
	d.Cached = out.Cached
	resp.Distribution = &d
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	doc, _, err := readDocument(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	c, err := doc.Chain()
	if err != nil {
		s.writeError(w, err)
		return
	}
	cl := chain.Classify(c)
	s.writeJSON(w, http.StatusOK, ClassifyResponse{
		Name:      doc.Name,
		Transient: states(doc, cl.Transient),
		Absorbing: states(doc, cl.Absorbing),
	})
}

func states(doc *chainfile.Document, idx []int) []State {
	out := make([]State, len(idx))
	for i, k := range idx {
		out[i] = State{Index: k, Label: doc.Label(k)}
	}

	return out
}

// NewDistribution renders a flat sequence against the classification it was
// solved from. start < 0 marks a trivial result.
func NewDistribution(doc *chainfile.Document, cl chain.Classification, start int, seq []*big.Int) Distribution {
	d := Distribution{
		Sequence:      make([]string, len(seq)),
		Probabilities: []Probability{},
	}
	for i, v := range seq {
		d.Sequence[i] = v.String()
	}
	den := seq[len(seq)-1]
	d.Denominator = den.String()
	if start < 0 {
		return d
	}
	d.Start = &State{Index: start, Label: doc.Label(start)}
	for i, a := range cl.Absorbing {
		p := new(big.Rat).SetFrac(seq[i], den)
		approx, _ := p.Float64()
		d.Probabilities = append(d.Probabilities, Probability{
			State:     State{Index: a, Label: doc.Label(a)},
			Numerator: seq[i].String(),
			Fraction:  p.RatString(),
			Approx:    approx,
		})
	}

	return d
}

// statusOf maps domain errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, absorption.ErrUnreachableAbsorption):
		return http.StatusUnprocessableEntity
	case errors.Is(err, chain.ErrInvalidChain),
		errors.Is(err, absorption.ErrStartNotTransient),
		errors.Is(err, chainfile.ErrDecode),
		errors.Is(err, chainfile.ErrLabelCount):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusOf(err)
	resp := ErrorResponse{Error: err.Error()}
	var ue *absorption.UnreachableError
	if errors.As(err, &ue) {
		resp.Unreachable = ue.States
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	} else {
		s.logger.Debug("request rejected", "status", status, "err", err)
	}
	s.writeJSON(w, status, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}
