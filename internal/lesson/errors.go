package lesson

import (
	"fmt"

	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// Error codes for lesson loading.
const (
	ErrCodeNotFound    = "L001" // path does not exist
	ErrCodeRead        = "L002" // file could not be read
	ErrCodeUnsupported = "L003" // unknown file extension
	ErrCodeSyntax      = "L004" // CUE or YAML syntax error
	ErrCodeSchema      = "L005" // document does not satisfy #Lesson
	ErrCodeNoFiles     = "L006" // directory holds no lesson files
)

// LoadError describes a lesson file that could not be loaded.
type LoadError struct {
	Code    string
	Path    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Path, e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// fromCUE converts the first CUE error in err to a LoadError, keeping its
// position when one is recorded.
func fromCUE(code, path string, err error) *LoadError {
	le := &LoadError{Code: code, Path: path, Message: err.Error()}
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return le
	}
	first := errs[0]
	le.Message = first.Error()
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		le.Pos = positions[0]
	}
	return le
}
