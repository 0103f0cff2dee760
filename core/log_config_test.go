package core

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
)

func initLogging() {
	logLevel := os.Getenv("SRTREE_LOG")
	switch logLevel {
	case "full", "all":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}
}

func loggingLevel() zerolog.Level {
	return zerolog.GlobalLevel()
}

func TestLoggingDisabledByDefault(t *testing.T) {
	os.Unsetenv("SRTREE_LOG")
	initLogging()
	if loggingLevel() != zerolog.Disabled {
		t.Errorf("expected logging level to be Disabled by default, got %v", loggingLevel())
	}
}

func TestLoggingDebug(t *testing.T) {
	os.Setenv("SRTREE_LOG", "full")
	defer os.Unsetenv("SRTREE_LOG")
	initLogging()
	if loggingLevel() != zerolog.DebugLevel {
		t.Errorf("expected logging level to be Debug, got %v", loggingLevel())
	}
}

func TestLoggingInfo(t *testing.T) {
	os.Setenv("SRTREE_LOG", "info")
	defer os.Unsetenv("SRTREE_LOG")
	initLogging()
	if loggingLevel() != zerolog.InfoLevel {
		t.Errorf("expected logging level to be Info, got %v", loggingLevel())
	}
}
