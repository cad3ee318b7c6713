// SPDX-License-Identifier: MIT

package server

// State is one labelled chain state.
type State struct {
	Index int    `json:"index"`
	Label string `json:"label"`
}

// Probability is the exact chance of ending in one absorbing state.
type Probability struct {
	State
	Numerator string  `json:"numerator"`
	Fraction  string  `json:"fraction"`
	Approx    float64 `json:"approx"`
}

// Distribution is the solved row of one start state.
type Distribution struct {
	Start         *State        `json:"start,omitempty"`
	Sequence      []string      `json:"sequence"`
	Denominator   string        `json:"denominator"`
	Probabilities []Probability `json:"probabilities"`
	Cached        bool          `json:"cached,omitempty"`
}

// SolveResponse answers POST /v1/solve. Exactly one of Distribution (single
// start) or All (every transient start) is set.
type SolveResponse struct {
	Name string `json:"name,omitempty"`
	*Distribution
	All []Distribution `json:"all,omitempty"`
}

// ClassifyResponse answers POST /v1/classify.
type ClassifyResponse struct {
	Name      string  `json:"name,omitempty"`
	Transient []State `json:"transient"`
	Absorbing []State `json:"absorbing"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error       string `json:"error"`
	Unreachable []int  `json:"unreachable,omitempty"`
}

// solveParams are the request fields beyond the chain document.
type solveParams struct {
	Start *int `json:"start"`
	All   bool `json:"all"`
}
