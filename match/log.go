// SPDX-License-Identifier: MIT
// Package: vf3go/match
package match

import (
	"reflect"

	"github.com/rs/zerolog"
)

var zeroLogger zerolog.Logger

// normalizeLogger maps an unset Options.Logger / ParallelOptions.Logger
// (the zero value) to zerolog.Nop(), so callers who never set a logger
// get a logger that is genuinely disabled rather than one whose writer
// happens to be nil.
func normalizeLogger(l zerolog.Logger) zerolog.Logger {
	if reflect.DeepEqual(l, zeroLogger) {
		return zerolog.Nop()
	}

	return l
}
