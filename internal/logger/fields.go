package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	FieldFileName = "file_name"
	FieldMIMEType = "mime_type"
	FieldFileSize = "file_size"
)

// StringFields turns alternating key, value arguments into zap string fields.
// Pairs with a blank value are dropped, as is a trailing key without a value.
func StringFields(pairs ...string) []zap.Field {
	result := make([]zap.Field, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		key, value := strings.TrimSpace(pairs[i]), strings.TrimSpace(pairs[i+1])
		if key == "" || value == "" {
			continue
		}
		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields scopes l to a component, e.g. the directory a watcher observes.
func WithFields(l *zap.Logger, fields ...zap.Field) *zap.Logger {
	l = OrNop(l)
	if len(fields) == 0 {
		return l
	}

	return l.With(fields...)
}

// FileFields describes a resume by name, MIME type and size. A file without a
// declared type still logs its size.
func FileFields(name, mimeType string, size int64) []zap.Field {
	fields := StringFields(FieldFileName, name, FieldMIMEType, mimeType)
	return append(fields, zap.Int64(FieldFileSize, size))
}
