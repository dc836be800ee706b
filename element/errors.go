// SPDX-License-Identifier: MIT

package element

import "errors"

// ErrBadSpecies indicates an empty or whitespace-only species symbol.
var ErrBadSpecies = errors.New("element: invalid species symbol")
