package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxField string

const (
	requestIDField ctxField = "request_id"
	deviceIDField  ctxField = "device_id"
)

// ctxFields lists the values FromCtx copies onto the logger, in order.
var ctxFields = []ctxField{requestIDField, deviceIDField}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDField, requestID)
}

func RequestIDFrom(ctx context.Context) string {
	return stringFrom(ctx, requestIDField)
}

// WithDeviceID tags the context with the storefront client's device.
func WithDeviceID(ctx context.Context, deviceID string) context.Context {
	return context.WithValue(ctx, deviceIDField, deviceID)
}

func DeviceIDFrom(ctx context.Context) string {
	return stringFrom(ctx, deviceIDField)
}

func stringFrom(ctx context.Context, f ctxField) string {
	s, _ := ctx.Value(f).(string)
	return s
}

// FromCtx returns the global logger with every request field found in ctx.
func FromCtx(ctx context.Context) *zap.Logger {
	fields := make([]zap.Field, 0, len(ctxFields))
	for _, f := range ctxFields {
		if v := stringFrom(ctx, f); v != "" {
			fields = append(fields, zap.String(string(f), v))
		}
	}
	if len(fields) == 0 {
		return L()
	}
	return L().With(fields...)
}
