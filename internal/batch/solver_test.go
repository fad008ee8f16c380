package batch

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikeyrichardson/kybur/internal/lesson"
	"github.com/mikeyrichardson/kybur/internal/parse"
	"github.com/mikeyrichardson/kybur/internal/testutil"
)

func newTestSolver(opts ...Option) *Solver {
	base := []Option{
		WithRunIDGenerator(testutil.FixedRunID("run-1")),
		WithLogger(testutil.DiscardLogger()),
	}
	return New(append(base, opts...)...)
}

func TestSolveLesson(t *testing.T) {
	l := &lesson.Lesson{
		Name: "Warm-up",
		Problems: []string{
			"2x+3=7",
			"x+1",
			"2(x+1)=3x-4",
			"x^2=4",
		},
	}

	report, err := newTestSolver(WithWorkers(2)).SolveLesson(context.Background(), l)
	require.NoError(t, err)

	assert.Equal(t, "run-1", report.RunID)
	assert.Equal(t, "Warm-up", report.Lesson)
	require.Len(t, report.Outcomes, 4)
	assert.Equal(t, 2, report.Solved())
	assert.Equal(t, 2, report.Failed())

	first := report.Outcomes[0]
	require.True(t, first.OK())
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, "x", first.Problem.Variable)
	assert.Equal(t, int64(2), first.Problem.SolutionNumerator)
	assert.Equal(t, int64(1), first.Problem.SolutionDenominator)
	assert.Equal(t, "660d8b86f8e61ffa691236e5a51d46061751d10464c40829b68f862a71078001", first.ProblemID)

	second := report.Outcomes[1]
	assert.False(t, second.OK())
	assert.Equal(t, 2, second.Number)
	assert.Equal(t, parse.CodeEquals, second.Code)
	assert.Equal(t, "Equation must contain an equals sign", second.Error)

	third := report.Outcomes[2]
	require.True(t, third.OK())
	assert.Equal(t, int64(6), third.Problem.SolutionNumerator)
	assert.Equal(t, int64(14), third.Problem.LeftSideNumerator)

	fourth := report.Outcomes[3]
	assert.Equal(t, parse.CodeInput, fourth.Code)
}

func TestSolveLessonOrderIndependentOfWorkers(t *testing.T) {
	l := &lesson.Lesson{Name: "Many"}
	for i := range 40 {
		if i%3 == 0 {
			l.Problems = append(l.Problems, "x+1")
		} else {
			l.Problems = append(l.Problems, "3x = 2x + 5")
		}
	}

	serial, err := newTestSolver(WithWorkers(1)).SolveLesson(context.Background(), l)
	require.NoError(t, err)
	parallel, err := newTestSolver(WithWorkers(8)).SolveLesson(context.Background(), l)
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)
	for i, o := range parallel.Outcomes {
		assert.Equal(t, i+1, o.Number)
	}
}

func TestSolveLessonNormalizesInput(t *testing.T) {
	l := &lesson.Lesson{Name: "Wide", Problems: []string{"２x＋３＝７"}}

	report, err := newTestSolver().SolveLesson(context.Background(), l)
	require.NoError(t, err)
	require.True(t, report.Outcomes[0].OK(), report.Outcomes[0].Error)
	assert.Equal(t, int64(2), report.Outcomes[0].Problem.SolutionNumerator)
	assert.Equal(t, "２x＋３＝７", report.Outcomes[0].Problem.Text)
}

func TestSolveTextKeepsSubmittedText(t *testing.T) {
	res, err := SolveText("２x + ３ = ７", parse.DefaultLimits)
	require.NoError(t, err)
	assert.Equal(t, "２x + ３ = ７", res.Text)
	assert.Equal(t, parse.Fraction{Num: 2, Den: 1}, res.Solution())
	assert.NoError(t, res.Verify())
}

func TestSolveLessonLimits(t *testing.T) {
	l := &lesson.Lesson{Name: "Short", Problems: []string{"x=1"}}

	report, err := newTestSolver(WithLimits(parse.Limits{MinLength: 5})).SolveLesson(context.Background(), l)
	require.NoError(t, err)
	assert.Equal(t, parse.CodeInput, report.Outcomes[0].Code)
	assert.Contains(t, report.Outcomes[0].Error, "at least 5")
}

func TestSolveLessonCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := &lesson.Lesson{Name: "Canceled", Problems: []string{"x=1", "x=2"}}
	_, err := newTestSolver().SolveLesson(ctx, l)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolveLessonEmpty(t *testing.T) {
	report, err := newTestSolver().SolveLesson(context.Background(), &lesson.Lesson{Name: "Empty"})
	require.NoError(t, err)
	assert.Empty(t, report.Outcomes)
	assert.Equal(t, 0, report.Solved())
}

func TestNewDefaults(t *testing.T) {
	s := New(WithWorkers(0))
	assert.GreaterOrEqual(t, s.workers, 1)
	assert.Equal(t, parse.DefaultLimits, s.limits)
}

func TestUUIDv7Generator(t *testing.T) {
	gen := UUIDv7Generator{}
	a := gen.Generate()
	b := gen.Generate()

	assert.NotEqual(t, a, b)
	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}
