// Package net provides utilities for working with request contexts
package net

import (
	"context"

	"layoffs/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey uint8

const keyClientID ctxKey = iota

// WithRequestID stores reqID where chi's RequestID middleware would
func WithRequestID(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// WithClientID annotates ctx with the anonymous dashboard client id
// the id also shows up on logger.C lines
func WithClientID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	ctx = logger.WithClientID(ctx, id)
	return context.WithValue(ctx, keyClientID, id)
}

// ClientID returns the client id on the context if present
func ClientID(ctx context.Context) string {
	v, _ := ctx.Value(keyClientID).(string)
	return v
}
