// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound data at the catalog server boundary
// before it reaches storage.
//
// A Validator accepts any supported model and an optional list of field
// names. With no fields it checks the model's default field set; with fields
// it checks only those, returning ErrUnknownField for names it does not know.
package validators

import "context"

// Validator validates obj, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
