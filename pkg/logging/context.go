package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// contextKey is a private type so context keys cannot collide.
type contextKey int

const loggerKey contextKey = iota

// WithLogger adds a logger to the context. A nil logger stores the
// default logger.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from context, or returns the default
// logger when none was attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*zerolog.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// Ctx is a shorter alias for FromContext.
func Ctx(ctx context.Context) *zerolog.Logger {
	return FromContext(ctx)
}

// WithField returns a context whose logger carries one extra field.
func WithField(ctx context.Context, key string, value any) context.Context {
	logger := FromContext(ctx).With()
	logger = addFieldToContext(logger, key, value)
	child := logger.Logger()
	return WithLogger(ctx, &child)
}

// WithFields returns a context whose logger carries all given fields.
func WithFields(ctx context.Context, fields map[string]any) context.Context {
	logger := FromContext(ctx).With()
	for key, value := range fields {
		logger = addFieldToContext(logger, key, value)
	}
	child := logger.Logger()
	return WithLogger(ctx, &child)
}

// addFieldToContext adds one typed field to a zerolog context.
func addFieldToContext(lctx zerolog.Context, key string, value any) zerolog.Context {
	switch v := value.(type) {
	case string:
		return lctx.Str(key, v)
	case int:
		return lctx.Int(key, v)
	case int64:
		return lctx.Int64(key, v)
	case float64:
		return lctx.Float64(key, v)
	case bool:
		return lctx.Bool(key, v)
	case error:
		if key == "error" || key == "err" {
			return lctx.Err(v)
		}
		return lctx.Str(key, v.Error())
	default:
		return lctx.Interface(key, v)
	}
}

// WithSpecies adds the species index to the logger.
func WithSpecies(ctx context.Context, species int) context.Context {
	return WithField(ctx, "species", species)
}

// WithStage adds the pipeline stage name to the logger.
func WithStage(ctx context.Context, stage string) context.Context {
	return WithField(ctx, "stage", stage)
}

// WithTable adds the table file path to the logger.
func WithTable(ctx context.Context, path string) context.Context {
	return WithField(ctx, "table", path)
}

// WithOperation adds an operation name to the logger.
func WithOperation(ctx context.Context, operation string) context.Context {
	return WithField(ctx, "operation", operation)
}
