package ai

import (
	"time"

	"dutchghostwriter/backend/pkg/logger"
)

func logCall(provider, result string, start time.Time, args ...any) {
	attrs := []any{
		"module", "ai",
		"action", "complete",
		"resource", provider,
		"result", result,
		"duration_ms", time.Since(start).Milliseconds(),
	}
	attrs = append(attrs, args...)
	if result == "ok" {
		logger.Debug("ai call", attrs...)
		return
	}
	logger.Warn("ai call", attrs...)
}
