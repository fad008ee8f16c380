package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikeyrichardson/kybur/internal/testutil"
)

// runLessonCommand runs lesson with a fixed run ID.
func runLessonCommand(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	opts := &RootOptions{Format: format, RunIDs: testutil.FixedRunID("run-1")}
	cmd := NewLessonCommand(opts)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLessonJSONGolden(t *testing.T) {
	out, err := runLessonCommand(t, "json", "testdata/lessons/warmup.cue")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	newGoldie(t).Assert(t, "lesson_json", []byte(out))
}

func TestLessonText(t *testing.T) {
	out, err := runLessonCommand(t, "text", "testdata/lessons/warmup.cue")
	require.Error(t, err)

	assert.Contains(t, out, "Lesson: Warm-up (run run-1)")
	assert.Contains(t, out, "1. 2x+3=7  =>  x = 2  [660d8b86f8e6]")
	assert.Contains(t, out, "2. x+1  =>  ✗ EQUALS: Equation must contain an equals sign")
	assert.Contains(t, out, "3. 2(x+1)=3x-4  =>  x = 6")
	assert.Contains(t, out, "Summary: 2 solved, 1 rejected")
}

func TestLessonAllSolved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "review.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Review\nproblems:\n  - \"x = 4\"\n  - \"3y = 2\"\n"), 0o644))

	out, err := runLessonCommand(t, "text", "--workers", "2", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2. 3y = 2  =>  y = 2/3")
	assert.Contains(t, out, "Summary: 2 solved, 0 rejected")
}

func TestLessonMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.cue")
	b := filepath.Join(dir, "b.yml")
	require.NoError(t, os.WriteFile(a, []byte("name: \"A\"\nproblems: [\"x=1\"]\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("name: B\nproblems: [\"x=2\"]\n"), 0o644))

	out, err := runLessonCommand(t, "text", a, b)
	require.NoError(t, err)
	assert.Contains(t, out, "Lesson: A")
	assert.Contains(t, out, "Lesson: B")
	assert.Contains(t, out, "Summary: 2 solved, 0 rejected")
}

func TestLessonRunIDPerLesson(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.yaml")
	b := filepath.Join(dir, "b.yaml")
	require.NoError(t, os.WriteFile(a, []byte("name: A\nproblems: [\"x=1\"]\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("name: B\nproblems: [\"x=2\"]\n"), 0o644))

	opts := &RootOptions{Format: "text", RunIDs: testutil.NewRunIDSequence("lesson")}
	cmd := NewLessonCommand(opts)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{a, b})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Lesson: A (run lesson-0001)")
	assert.Contains(t, out.String(), "Lesson: B (run lesson-0002)")
}

func TestLessonLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		out, err := runLessonCommand(t, "text", filepath.Join(t.TempDir(), "missing.cue"))
		require.Error(t, err)
		assert.Equal(t, ExitCommandError, GetExitCode(err))
		assert.Contains(t, out, "Error [E005]")
	})

	t.Run("schema violation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.cue")
		require.NoError(t, os.WriteFile(path, []byte("name: \"Bad\"\nproblems: [\"x%2=1\"]\n"), 0o644))

		out, err := runLessonCommand(t, "text", path)
		require.Error(t, err)
		assert.Equal(t, ExitFailure, GetExitCode(err))
		assert.Contains(t, out, "Error [E006]")
	})
}
