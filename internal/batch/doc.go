// Package batch solves every problem in a lesson with a bounded worker pool.
//
// Each run gets a run ID from a RunIDGenerator (UUIDv7 by default). Outcomes
// are reported in problem order regardless of which worker finished first,
// so the same lesson always yields the same report apart from the run ID.
//
// Problems are independent: a failing equation is recorded on its outcome
// and does not stop the run. Only context cancellation aborts a run.
package batch
