// Package harness runs equation conformance scenarios.
//
// A scenario is a YAML file listing equations with what each should produce
// (solution, check value, side coefficients, or an error code) and optional
// answers to grade. The harness solves every case in order, stamping each
// with a step from a deterministic clock, and records a trace:
//
//	name: two_step
//	description: Two-step equations
//	cases:
//	  - equation: "2x+3=7"
//	    expect: { solution: "2", check: "7", left: [2, 3], right: [0, 7] }
//	  - equation: "x+y=2"
//	    expect: { code: VARIABLES, error: "one type of variable" }
//	assertions:
//	  - type: round_trip
//	  - type: solved_count
//	    count: 1
//
// Assertions then run over the whole trace. The trace is serialised with
// ir.MarshalCanonical so it can be compared byte for byte against a golden
// file (see RunWithGolden and Snapshot).
package harness
