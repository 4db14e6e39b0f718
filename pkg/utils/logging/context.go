package logging

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/dsfetch/pkg/domain/types"
)

type ctxFetchIDKey struct{}

// CtxFetchID returns fetch ID from context. If fetch ID is not set, return new fetch ID and context with it
func CtxFetchID(ctx context.Context) (types.FetchID, context.Context) {
	if id, ok := ctx.Value(ctxFetchIDKey{}).(types.FetchID); ok {
		return id, ctx
	}

	newID := types.NewFetchID()
	return newID, context.WithValue(ctx, ctxFetchIDKey{}, newID)
}

type ctxLoggerKey struct{}

// With returns a new context with logger
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns logger from context. If logger is not set, return default logger
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return Default()
}
