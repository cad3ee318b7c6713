// SPDX-License-Identifier: MIT

package builder

import "fmt"

// RandomSparse links each transient state i to each j ≠ i with probability
// p. Pairs are visited in row-major order, drawing the edge before its
// weight.
func RandomSparse(p float64) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := checkProbability(MethodRandomSparse, p, cfg); err != nil {
			return err
		}
		n := d.Order()
		for _, i := range d.transient() {
			for j := 0; j < n; j++ {
				if j == i || !draw(p, cfg) {
					continue
				}
				w, err := cfg.weight(MethodRandomSparse)
				if err != nil {
					return err
				}
				d.add(i, j, w)
			}
		}

		return nil
	}
}

// RandomDAG links each transient state i to each j > i with probability p.
// On its own it always yields an acyclic chain.
func RandomDAG(p float64) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := checkProbability(MethodRandomDAG, p, cfg); err != nil {
			return err
		}
		n := d.Order()
		for _, i := range d.transient() {
			for j := i + 1; j < n; j++ {
				if !draw(p, cfg) {
					continue
				}
				w, err := cfg.weight(MethodRandomDAG)
				if err != nil {
					return err
				}
				d.add(i, j, w)
			}
		}

		return nil
	}
}

func checkProbability(method string, p float64, cfg builderConfig) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", method, p, ErrInvalidProbability)
	}
	if cfg.rng == nil && p > 0 && p < 1 {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}

func draw(p float64, cfg builderConfig) bool {
	switch p {
	case 0:
		return false
	case 1:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
