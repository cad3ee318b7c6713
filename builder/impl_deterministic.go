// SPDX-License-Identifier: MIT

package builder

import "fmt"

const minRuinStates = 3

// Ruin links every interior state i of 0..n-1 to i+1 with weight up and to
// i-1 with weight down: the gambler's ruin walk. States 0 and n-1 are left
// untouched, so with no other constructor writing them they absorb.
func Ruin(up, down int64) Constructor {
	return func(d *Draft, _ builderConfig) error {
		n := d.Order()
		if n < minRuinStates {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRuin, n, minRuinStates, ErrTooFewStates)
		}
		if up < 1 || down < 1 {
			return fmt.Errorf("%s: up=%d down=%d: %w", MethodRuin, up, down, ErrInvalidWeight)
		}
		for i := 1; i < n-1; i++ {
			d.add(i, i-1, down)
			d.add(i, i+1, up)
		}

		return nil
	}
}

// Cycle links the transient states into a ring in index order.
func Cycle() Constructor {
	return func(d *Draft, cfg builderConfig) error {
		ts := d.transient()
		if len(ts) < 2 {
			return fmt.Errorf("%s: %d transient states < 2: %w", MethodCycle, len(ts), ErrTooFewStates)
		}
		for k, i := range ts {
			w, err := cfg.weight(MethodCycle)
			if err != nil {
				return err
			}
			d.add(i, ts[(k+1)%len(ts)], w)
		}

		return nil
	}
}

// Complete links every transient state to every other state.
func Complete() Constructor {
	return func(d *Draft, cfg builderConfig) error {
		n := d.Order()
		for _, i := range d.transient() {
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				w, err := cfg.weight(MethodComplete)
				if err != nil {
					return err
				}
				d.add(i, j, w)
			}
		}

		return nil
	}
}

// Exits links every transient state to every absorbing state, which makes
// absorption reachable from everywhere.
func Exits() Constructor {
	return func(d *Draft, cfg builderConfig) error {
		ts := d.transient()
		for _, i := range ts {
			for a := range d.absorbing {
				if !d.absorbing[a] {
					continue
				}
				w, err := cfg.weight(MethodExits)
				if err != nil {
					return err
				}
				d.add(i, a, w)
			}
		}

		return nil
	}
}
