// SPDX-License-Identifier: MIT

package config

import "errors"

// ErrInvalidJob wraps every job validation failure.
var ErrInvalidJob = errors.New("invalid job")

// ErrNoMatch indicates a substitution pattern matching no file.
var ErrNoMatch = errors.New("pattern matches no file")
