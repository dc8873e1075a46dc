// Package ctxutil provides utilities for injecting and retrieving metadata via go context.
package ctxutil

import (
	"context"

	"go.uber.org/zap"
)

// fieldsKey is unexported so only this package can read or replace the fields
type fieldsKey struct{}

// WithZapFields returns a context carrying fields in addition to any fields
// already attached to ctx, along with the combined list for immediate use.
func WithZapFields(ctx context.Context, fields ...zap.Field) (context.Context, []zap.Field) {
	if ctx == nil {
		ctx = context.Background()
	}
	existing := ZapFields(ctx)
	combined := make([]zap.Field, 0, len(existing)+len(fields))
	combined = append(combined, existing...)
	combined = append(combined, fields...)
	return context.WithValue(ctx, fieldsKey{}, combined), combined
}

// ZapFields retrieves the zap fields from the context
func ZapFields(ctx context.Context) []zap.Field {
	if ctx == nil {
		return nil
	}
	if fields, ok := ctx.Value(fieldsKey{}).([]zap.Field); ok {
		return fields
	}
	return nil
}

// Logger returns base decorated with the fields carried by ctx
func Logger(ctx context.Context, base *zap.Logger) *zap.Logger {
	fields := ZapFields(ctx)
	if len(fields) == 0 {
		return base
	}
	return base.With(fields...)
}
