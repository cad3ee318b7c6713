// SPDX-License-Identifier: MIT

package cache

import "errors"

// ErrCorrupt is returned by Get when a stored value is not a valid sequence.
var ErrCorrupt = errors.New("cache: corrupt entry")
