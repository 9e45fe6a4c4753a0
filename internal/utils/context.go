// Package utils provides general-purpose helpers shared by the transport
// packages: typed context keys, JSON response writing, trace id generation
// and the resty client wrapper used for outbound peer calls.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// CallRuleCtxKey stores the name of the classifier rule that flagged the
// request as an internal call. It is set only after the token was verified.
var CallRuleCtxKey = contextKey("callRule")

// TraceIDCtxKey stores the trace id assigned to the request.
var TraceIDCtxKey = contextKey("traceID")

// WithCallRule returns a copy of ctx carrying rule.
func WithCallRule(ctx context.Context, rule string) context.Context {
	return context.WithValue(ctx, CallRuleCtxKey, rule)
}

// GetCallRuleFromContext returns the verified call rule, if any.
//
//	rule, ok := utils.GetCallRuleFromContext(r.Context())
//	if !ok {
//	    // the request was not verified as an internal call
//	}
func GetCallRuleFromContext(ctx context.Context) (string, bool) {
	rule, ok := ctx.Value(CallRuleCtxKey).(string)
	return rule, ok
}

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the request trace id, if any.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
