package core

import (
	"github.com/rs/zerolog/log"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// init initializes the logging configuration for the package based on the
// SRTREE_LOG environment variable. The tree is silent on success by design
// (diagnostics flow through error return values), so logging defaults to
// disabled and is strictly an opt-in instrumentation channel.
func init() {
	// Get the SRTREE_LOG environment variable, trim spaces, and convert to lowercase.
	debugMode := strings.TrimSpace(strings.ToLower(os.Getenv("SRTREE_LOG")))

	switch debugMode {
	case "full", "all":
		// Set the logging level to DEBUG if SRTREE_LOG is set to "full" or "all".
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		// Set the logger output to the console.
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	default:
		// Disabled by default: the library must not log on the success path.
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}
}
