// Package lesson loads problem sets ("lessons") from CUE or YAML files.
//
// A lesson is a name and an ordered list of equations:
//
//	name: "Two-step equations"
//	problems: [
//		"2x+3=7",
//		"5 = 2(x-1) + 1",
//	]
//
// The same document may be written as YAML. Both formats are unified with
// the embedded #Lesson CUE schema, which bounds the name to 1..128 runes and
// each equation to 3..128 characters drawn from letters, digits, spaces and
// "+ - * ( ) =". The schema does not parse equations; see package parse.
package lesson
