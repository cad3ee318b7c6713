// SPDX-License-Identifier: MIT

package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/absorb/batch"
	"github.com/katalvlaran/absorb/cache"
	"github.com/katalvlaran/absorb/server"
)

const reference = `{
  "name": "reference",
  "states": ["s0", "s1", "s2", "s3", "s4", "s5", "s6"],
  "weights": [
    [0, 6, 0, 0, 0, 3, 0],
    [3, 0, 5, 1, 0, 1, 1],
    [0, 1, 0, 0, 0, 0, 0],
    [0, 3, 0, 0, 0, 0, 0],
    [0, 0, 0, 0, 0, 0, 0],
    [0, 0, 0, 0, 0, 0, 0],
    [0, 0, 0, 0, 0, 0, 0]
  ]
}`

type ServerSuite struct {
	suite.Suite
	handler http.Handler
	reg     *prometheus.Registry
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	logger := log.New(&bytes.Buffer{})
	s.reg = prometheus.NewRegistry()
	m, err := batch.NewMetrics(s.reg)
	s.Require().NoError(err)
	runner := batch.NewRunner(
		batch.WithCache(cache.NewMemoryCache()),
		batch.WithMetrics(m),
		batch.WithLogger(logger),
	)
	s.handler = server.New(
		server.WithRunner(runner),
		server.WithLogger(logger),
		server.WithGatherer(s.reg),
	).Handler()
}

func (s *ServerSuite) post(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func (s *ServerSuite) TestSolveReference() {
	w := s.post("/v1/solve", reference)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Require().Equal("application/json", w.Header().Get("Content-Type"))

	var resp server.SolveResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().Equal("reference", resp.Name)
	s.Require().NotNil(resp.Distribution)
	s.Require().Equal([]string{"0", "7", "2", "9"}, resp.Sequence)
	s.Require().Equal("9", resp.Denominator)
	s.Require().Equal(&server.State{Index: 0, Label: "s0"}, resp.Start)
	s.Require().Len(resp.Probabilities, 3)
	s.Require().Equal("s5", resp.Probabilities[1].Label)
	s.Require().Equal("7/9", resp.Probabilities[1].Fraction)
	s.Require().False(resp.Cached)

	again := s.post("/v1/solve", reference)
	s.Require().NoError(json.Unmarshal(again.Body.Bytes(), &resp))
	s.Require().True(resp.Cached)
	s.Require().Equal([]string{"0", "7", "2", "9"}, resp.Sequence)
}

func (s *ServerSuite) TestSolveStartAndAll() {
	withStart := strings.Replace(reference, `"name"`, `"start": 2, "name"`, 1)
	w := s.post("/v1/solve", withStart)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp server.SolveResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().Equal(2, resp.Start.Index)
	s.Require().Equal([]string{"0", "2", "1", "3"}, resp.Sequence)

	all := strings.Replace(reference, `"name"`, `"all": true, "name"`, 1)
	w = s.post("/v1/solve", all)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	resp = server.SolveResponse{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().Nil(resp.Distribution)
	s.Require().Len(resp.All, 4)
	s.Require().Equal("s3", resp.All[3].Start.Label)
}

func (s *ServerSuite) TestSolveTrivial() {
	w := s.post("/v1/solve", `{"weights": [[0, 0], [0, 0]]}`)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp server.SolveResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().Equal([]string{"1"}, resp.Sequence)
	s.Require().Nil(resp.Start)
	s.Require().Empty(resp.Probabilities)
}

func (s *ServerSuite) TestSolveErrors() {
	cases := []struct {
		name   string
		body   string
		status int
	}{
		{"bad json", `{`, http.StatusBadRequest},
		{"negative weight", `{"weights": [[0, -1], [0, 0]]}`, http.StatusBadRequest},
		{"fractional weight", `{"weights": [[0, 0.5], [0, 0]]}`, http.StatusBadRequest},
		{"label count", `{"states": ["a"], "weights": [[0, 1], [0, 0]]}`, http.StatusBadRequest},
		{"absorbing start", `{"start": 1, "weights": [[0, 1], [0, 0]]}`, http.StatusBadRequest},
		{"unreachable", `{"weights": [[0, 1, 1], [0, 1, 0], [0, 0, 0]]}`, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			w := s.post("/v1/solve", tc.body)
			s.Require().Equal(tc.status, w.Code, w.Body.String())
			var resp server.ErrorResponse
			s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
			s.Require().NotEmpty(resp.Error)
			if tc.status == http.StatusUnprocessableEntity {
				s.Require().Equal([]int{1}, resp.Unreachable)
			}
		})
	}
}

func (s *ServerSuite) TestClassify() {
	w := s.post("/v1/classify", reference)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp server.ClassifyResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().Len(resp.Transient, 4)
	s.Require().Equal([]server.State{
		{Index: 4, Label: "s4"},
		{Index: 5, Label: "s5"},
		{Index: 6, Label: "s6"},
	}, resp.Absorbing)
}

func (s *ServerSuite) TestHealthAndMetrics() {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Require().Equal("ok\n", w.Body.String())

	s.post("/v1/solve", reference)
	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w = httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Require().Contains(w.Body.String(), `absorb_solves_total{outcome="ok"} 1`)
}

func TestMethodNotAllowed(t *testing.T) {
	h := server.New(server.WithLogger(log.New(&bytes.Buffer{}))).Handler()
	req := httptest.NewRequest(http.MethodGet, "/v1/solve", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
