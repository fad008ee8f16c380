// Package ir provides the canonical record types handed to callers that
// store solved problems and graded answers.
//
// This package imports nothing internal. Records are built from sealed value
// types (no floats, no null) and serialised with MarshalCanonical, which
// gives a byte-stable encoding used for content-addressed identifiers.
//
// Key design constraints:
//   - int64 for every number; rationals are stored as numerator/denominator
//   - all JSON keys use snake_case
//   - identifiers are SHA-256 over a versioned domain prefix
package ir
