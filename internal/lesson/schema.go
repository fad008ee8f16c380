package lesson

import (
	"cuelang.org/go/cue"
)

// schemaSource defines the lesson document shape.
const schemaSource = `
import (
	"list"
	"strings"
)

#Equation: string & =~"^[ A-Za-z0-9+*()=-]+$" & strings.MinRunes(3) & strings.MaxRunes(128)

#Lesson: {
	name:         string & strings.MinRunes(1) & strings.MaxRunes(128)
	description?: string
	problems:     list.MinItems(1) & [...#Equation]
}
`

// schema compiles #Lesson in ctx.
func schema(ctx *cue.Context) (cue.Value, error) {
	v := ctx.CompileString(schemaSource, cue.Filename("lesson_schema.cue"))
	if err := v.Err(); err != nil {
		return cue.Value{}, err
	}
	return v.LookupPath(cue.ParsePath("#Lesson")), nil
}
