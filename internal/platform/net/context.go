// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const keySubject ctxKey = "subject"

// WithRequestID stores reqID where chimw.GetReqID can find it
func WithRequestID(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// WithSubject annotates context with the authenticated token subject
func WithSubject(ctx context.Context, sub string) context.Context {
	if sub == "" {
		return ctx
	}
	return context.WithValue(ctx, keySubject, sub)
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// Subject returns the authenticated subject on the context if present
func Subject(ctx context.Context) string {
	if v, ok := ctx.Value(keySubject).(string); ok {
		return v
	}
	return ""
}
