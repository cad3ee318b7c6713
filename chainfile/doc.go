// SPDX-License-Identifier: MIT

// Package chainfile reads and writes chain documents: a weight matrix with
// an optional name and optional state labels, in JSON, YAML or TOML.
//
//	name: demo
//	states: [start, mid, win, lose]
//	weights:
//	  - [0, 2, 1, 0]
//	  - [1, 0, 0, 3]
//	  - [0, 0, 0, 0]
//	  - [0, 0, 0, 0]
//
// The format is picked from the file extension (.json, .yaml/.yml, .toml).
// Weights must be whole numbers that fit in int64; fractional, textual or
// negative values are rejected with an error matching chain.ErrInvalidChain.
package chainfile
