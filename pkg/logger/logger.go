package logger

import (
	"context"
	"time"
)

// Logger is what every component logs through; main wires the zap-backed one.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)

	// WithContext returns a logger carrying the fields stored in ctx by
	// ContextWithFields.
	WithContext(ctx context.Context) Logger

	WithFields(fields ...Field) Logger

	// Sync flushes any buffered log entries
	Sync() error
}

type Field struct {
	Key   string
	Value interface{}
}

func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Strings(key string, values []string) Field {
	return Field{Key: key, Value: values}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value}
}

func Error(err error) Field {
	return Field{Key: "error", Value: err}
}

func Any(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Domain keys shared by the client, services and sinks.
func SalesOrder(id string) Field {
	return String("sales_order", id)
}

func EstimateID(id string) Field {
	return String("estimate_id", id)
}

type ctxKey struct{}

// ContextWithFields attaches fields to ctx; loggers derived with WithContext
// include them.
func ContextWithFields(ctx context.Context, fields ...Field) context.Context {
	existing := FieldsFromContext(ctx)
	merged := make([]Field, 0, len(existing)+len(fields))
	merged = append(merged, existing...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, ctxKey{}, merged)
}

func FieldsFromContext(ctx context.Context) []Field {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(ctxKey{}).([]Field)
	return fields
}
