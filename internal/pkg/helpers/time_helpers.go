package helpers

import (
	"time"

	"github.com/yigit/relcatalog/internal/pkg/logger"
)

// ParseDuration parses a config duration such as "1h" or "90s". Empty or
// malformed values yield fallback; malformed ones are logged.
func ParseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		logger.Warn().Err(err).Str("value", value).Dur("fallback", fallback).Msg("Invalid duration, using fallback")
		return fallback
	}
	return d
}
