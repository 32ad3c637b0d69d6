package logger

import (
	"strings"

	"go.uber.org/zap"
)

// Structured log field keys shared across packages.
const (
	FieldMatcher     = "matcher"
	FieldCandidateID = "candidate_id"
	FieldTaskID      = "task_id"
	FieldRunID       = "run_id"
	FieldProvider    = "provider"
	FieldModel       = "model"
	FieldRequestID   = "request_id"
)

// StringFields turns key/value pairs into zap fields, trimming whitespace
// and dropping pairs with an empty key or value.
func StringFields(kv ...string) []zap.Field {
	out := make([]zap.Field, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, value := strings.TrimSpace(kv[i]), strings.TrimSpace(kv[i+1])
		if key == "" || value == "" {
			continue
		}
		out = append(out, zap.String(key, value))
	}
	return out
}

// WithFields attaches fields to logger, tolerating a nil logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(fields) == 0 {
		return logger
	}
	return logger.With(fields...)
}

// RankingFields describe one ranking run.
func RankingFields(runID, taskID string) []zap.Field {
	return StringFields(FieldRunID, runID, FieldTaskID, taskID)
}

// ProviderFields describe an embedding provider.
func ProviderFields(provider, model string) []zap.Field {
	return StringFields(FieldProvider, provider, FieldModel, model)
}
