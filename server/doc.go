// SPDX-License-Identifier: MIT

// Package server exposes the solver over HTTP.
//
// Routes:
//
//	POST /v1/solve     chain document (+ optional "start", "all") → distribution
//	POST /v1/classify  chain document → transient and absorbing states
//	GET  /healthz      liveness
//	GET  /metrics      Prometheus exposition
//
// Request bodies are JSON chain documents as read by package chainfile.
// Malformed chains answer 400; chains where some transient state cannot be
// absorbed answer 422 with the offending states.
package server
