package core

import (
	"github.com/rs/zerolog/log"
	"os"
	"strconv"
	"time"
)

// GetSeed returns a seed for random number generation, read from the
// SRTREE_SEED environment variable when present. It has no bearing on tree
// construction itself (bulk loading is deterministic given input order and
// the selection algorithm); it serves callers that need reproducible random
// point sets. The tree package and its property tests do not call it (those
// tests use fixed seeds).
func GetSeed() int64 {
	seedStr := os.Getenv("SRTREE_SEED")
	if seedStr != "" {
		if seed, err := strconv.ParseInt(seedStr, 10, 64); err == nil {
			log.Debug().Msgf("using seed from SRTREE_SEED value: %d", seed)
			return seed
		}
		log.Debug().Msgf("failed to parse SRTREE_SEED value: %s", seedStr)
	}

	seed := time.Now().UnixNano()
	log.Debug().Msgf("using current time as seed: %d", seed)
	return seed
}
