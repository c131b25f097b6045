// Package bacelog is the structured-logging seam shared by the prover and
// verifier, a thin wrapper over zerolog matching the
// logger.Logger().With().Str(...).Logger() call sites this codebase's other
// backends use.
package bacelog

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	once sync.Once
	base zerolog.Logger
)

// L returns the package-level logger, with "component"="bace" already bound.
func L() zerolog.Logger {
	once.Do(func() {
		base = zerolog.New(os.Stderr).With().Timestamp().Str("component", "bace").Logger()
	})
	return base
}
