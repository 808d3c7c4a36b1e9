package testutil

import (
	"github.com/rs/zerolog"
)

// QuietLogs raises the global log level so test output stays readable.
func QuietLogs() {
	zerolog.SetGlobalLevel(zerolog.Disabled)
}
