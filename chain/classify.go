// SPDX-License-Identifier: MIT

package chain

// Classification partitions the states of a chain.
// Transient and Absorbing are disjoint, cover [0, n) exactly once, and are
// each sorted by increasing original index. Output column k of an absorption
// result refers to Absorbing[k], so this order is part of the contract.
type Classification struct {
	Transient []int
	Absorbing []int
}

// Classify marks state i transient iff its row has at least one positive
// entry, otherwise absorbing. It cannot fail on a validated chain.
//
// Complexity: O(n²).
func Classify(c *Chain) Classification {
	cl := Classification{
		Transient: make([]int, 0, c.n),
		Absorbing: make([]int, 0, c.n),
	}
	var i, j int
	for i = 0; i < c.n; i++ {
		transient := false
		for j = 0; j < c.n; j++ {
			if c.w[i*c.n+j] > 0 {
				transient = true
				break
			}
		}
		if transient {
			cl.Transient = append(cl.Transient, i)
		} else {
			cl.Absorbing = append(cl.Absorbing, i)
		}
	}

	return cl
}

// IsTrivial reports whether there are no transient states at all.
func (cl Classification) IsTrivial() bool { return len(cl.Transient) == 0 }

// Positions maps every state to its position inside Transient or Absorbing.
// transient[i] is true when state i is transient; pos[i] is its index in the
// corresponding slice.
func (cl Classification) Positions() (pos []int, transient []bool) {
	n := len(cl.Transient) + len(cl.Absorbing)
	pos = make([]int, n)
	transient = make([]bool, n)
	for k, s := range cl.Transient {
		pos[s] = k
		transient[s] = true
	}
	for k, s := range cl.Absorbing {
		pos[s] = k
	}

	return pos, transient
}
