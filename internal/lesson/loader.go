package lesson

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

// Lesson is an ordered set of equations. Problem numbers start at 1.
type Lesson struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Problems    []string `json:"problems"`

	// Source is the file the lesson was loaded from, if any.
	Source string `json:"-"`
}

// LoadMode controls how errors are handled when loading a directory.
type LoadMode int

const (
	// LoadModeFailFast stops on the first error encountered.
	LoadModeFailFast LoadMode = iota
	// LoadModeCollectAll collects all errors before returning.
	LoadModeCollectAll
)

// LoadFile loads a single .cue, .yaml or .yml lesson file.
func LoadFile(path string) (*Lesson, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, &LoadError{Code: ErrCodeNotFound, Path: path, Message: "lesson file not found"}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeRead, Path: path, Message: err.Error()}
	}

	ctx := cuecontext.New()
	var doc cue.Value
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".cue":
		doc = ctx.CompileBytes(data, cue.Filename(path))
		if err := doc.Err(); err != nil {
			return nil, fromCUE(ErrCodeSyntax, path, err)
		}
	case ".yaml", ".yml":
		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, &LoadError{Code: ErrCodeSyntax, Path: path, Message: err.Error()}
		}
		doc = ctx.Encode(raw)
		if err := doc.Err(); err != nil {
			return nil, fromCUE(ErrCodeSyntax, path, err)
		}
	default:
		return nil, &LoadError{Code: ErrCodeUnsupported, Path: path, Message: fmt.Sprintf("unsupported lesson file extension %q", ext)}
	}

	l, err := decode(ctx, doc, path)
	if err != nil {
		return nil, err
	}
	l.Source = path
	return l, nil
}

func decode(ctx *cue.Context, doc cue.Value, path string) (*Lesson, error) {
	def, err := schema(ctx)
	if err != nil {
		return nil, fromCUE(ErrCodeSchema, path, err)
	}
	v := def.Unify(doc)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fromCUE(ErrCodeSchema, path, err)
	}
	var l Lesson
	if err := v.Decode(&l); err != nil {
		return nil, fromCUE(ErrCodeSchema, path, err)
	}
	return &l, nil
}

// LoadDir loads every lesson file under dir, in lexical path order.
// With LoadModeFailFast it returns after the first failing file; with
// LoadModeCollectAll it loads what it can and returns every error.
func LoadDir(dir string, mode LoadMode) ([]*Lesson, []error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Path: dir, Message: "lessons directory not found"}}
	}
	if !info.IsDir() {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Path: dir, Message: "not a directory"}}
	}

	files, err := FindFiles(dir)
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeRead, Path: dir, Message: fmt.Sprintf("error scanning directory: %v", err)}}
	}
	if len(files) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeNoFiles, Path: dir, Message: "no lesson files found"}}
	}

	var lessons []*Lesson
	var errs []error
	for _, f := range files {
		l, err := LoadFile(f)
		if err != nil {
			errs = append(errs, err)
			if mode == LoadModeFailFast {
				return lessons, errs
			}
			continue
		}
		lessons = append(lessons, l)
	}
	return lessons, errs
}

// FindFiles walks dir and returns all .cue, .yaml and .yml paths.
func FindFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".cue", ".yaml", ".yml":
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
