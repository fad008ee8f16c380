// Package testutil holds deterministic stand-ins used by tests and by the
// scenario harness: a resettable step clock, predictable run IDs and a
// logger that drops everything.
package testutil
