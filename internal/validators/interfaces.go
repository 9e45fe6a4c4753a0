// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound request payloads before handlers act on
// them.
//
// A [Validator] accepts a value and an optional list of field names. With no
// fields every rule for the value's type runs; with fields only those rules
// run. Unknown types return [ErrUnsupportedType] and unknown fields return
// [ErrUnknownField].
package validators

import "context"

// Validator validates a value, optionally limited to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
