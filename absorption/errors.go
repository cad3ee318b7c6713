// SPDX-License-Identifier: MIT

package absorption

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/absorb/chain"
)

// Sentinel errors for absorption analysis.
var (
	// ErrInvalidChain aliases chain.ErrInvalidChain so callers of this package
	// can match malformed-input failures without importing chain.
	ErrInvalidChain = chain.ErrInvalidChain

	// ErrUnreachableAbsorption is returned when some transient state has no
	// path to any absorbing state, i.e. (I − Q) is singular.
	ErrUnreachableAbsorption = errors.New("absorption: some transient state cannot reach any absorbing state")

	// ErrStartNotTransient is returned when WithStart names a state that is
	// absorbing or outside the chain.
	ErrStartNotTransient = errors.New("absorption: start state is not transient")
)

// UnreachableError lists the transient states that cannot reach absorption.
// States is empty when the condition was detected only from a singular
// system (reachability check disabled). It matches ErrUnreachableAbsorption.
type UnreachableError struct {
	States []int
}

// Error implements error.
func (e *UnreachableError) Error() string {
	if len(e.States) == 0 {
		return ErrUnreachableAbsorption.Error()
	}

	return fmt.Sprintf("%s: states %v", ErrUnreachableAbsorption, e.States)
}

// Unwrap returns ErrUnreachableAbsorption.
func (e *UnreachableError) Unwrap() error { return ErrUnreachableAbsorption }
