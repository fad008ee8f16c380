package batch

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mikeyrichardson/kybur/internal/ir"
	"github.com/mikeyrichardson/kybur/internal/lesson"
	"github.com/mikeyrichardson/kybur/internal/parse"
)

// Outcome is the result of solving one lesson problem.
// Exactly one of Problem and Error is set.
type Outcome struct {
	Number    int             `json:"number"`
	Text      string          `json:"text"`
	Problem   *ir.Problem     `json:"problem,omitempty"`
	ProblemID string          `json:"problem_id,omitempty"`
	Code      parse.ErrorCode `json:"code,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// OK reports whether the problem was solved.
func (o Outcome) OK() bool {
	return o.Problem != nil
}

// Report collects the outcomes of one run, in problem order.
type Report struct {
	RunID    string    `json:"run_id"`
	Lesson   string    `json:"lesson"`
	Outcomes []Outcome `json:"outcomes"`
}

// Solved returns the number of problems that produced a solution.
func (r *Report) Solved() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.OK() {
			n++
		}
	}
	return n
}

// Failed returns the number of problems that were rejected.
func (r *Report) Failed() int {
	return len(r.Outcomes) - r.Solved()
}

// Solver runs lessons through parse.Solve.
//
// Thread-safety: a Solver is safe for concurrent use if its RunIDGenerator is.
type Solver struct {
	workers int
	limits  parse.Limits
	ids     RunIDGenerator
	logger  *slog.Logger
}

// Option configures a Solver.
type Option func(*Solver)

// WithWorkers sets the maximum number of problems solved at once.
// Values below 1 select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(s *Solver) { s.workers = n }
}

// WithLimits sets the input length bounds checked before solving.
func WithLimits(l parse.Limits) Option {
	return func(s *Solver) { s.limits = l }
}

// WithRunIDGenerator replaces the UUIDv7 run ID source.
func WithRunIDGenerator(g RunIDGenerator) Option {
	return func(s *Solver) { s.ids = g }
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) { s.logger = l }
}

// New creates a Solver.
func New(opts ...Option) *Solver {
	s := &Solver{
		limits: parse.DefaultLimits,
		ids:    UUIDv7Generator{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.workers < 1 {
		s.workers = runtime.GOMAXPROCS(0)
	}
	return s
}

// SolveLesson solves every problem in l. Per-problem failures are recorded
// on their outcomes; the returned error is non-nil only if ctx is done
// before the run completes.
func (s *Solver) SolveLesson(ctx context.Context, l *lesson.Lesson) (*Report, error) {
	report := &Report{
		RunID:    s.ids.Generate(),
		Lesson:   l.Name,
		Outcomes: make([]Outcome, len(l.Problems)),
	}
	log := s.logger.With("run_id", report.RunID, "lesson", l.Name)
	log.Debug("solving lesson", "problems", len(l.Problems), "workers", s.workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, text := range l.Problems {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// Each goroutine owns its slot.
			report.Outcomes[i] = s.solveOne(l.Name, i+1, text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("solve lesson %q: %w", l.Name, err)
	}

	log.Info("lesson solved", "solved", report.Solved(), "failed", report.Failed())
	return report, nil
}

func (s *Solver) solveOne(name string, number int, text string) Outcome {
	out := Outcome{Number: number, Text: text}

	res, err := SolveText(text, s.limits)
	if err != nil {
		out.Code = parse.CodeOf(err)
		out.Error = err.Error()
		s.logger.Debug("problem rejected", "lesson", name, "number", number, "code", out.Code)
		return out
	}

	p := ToProblem(name, number, res)
	id, err := ir.ProblemID(p)
	if err != nil {
		out.Code = parse.CodeInput
		out.Error = err.Error()
		return out
	}
	out.Problem = &p
	out.ProblemID = id
	return out
}

// SolveText normalizes text, checks it against limits and solves it. The
// result keeps text as submitted; Result.Verify folds it again.
func SolveText(text string, limits parse.Limits) (*parse.Result, error) {
	normalized := parse.Normalize(text)
	if err := parse.CheckInput(normalized, limits); err != nil {
		return nil, err
	}
	res, err := parse.Solve(normalized)
	if err != nil {
		return nil, err
	}
	res.Text = text
	return res, nil
}

// ToProblem converts a solved equation into its stored record.
func ToProblem(lessonName string, number int, res *parse.Result) ir.Problem {
	return ir.Problem{
		Lesson:              lessonName,
		Number:              int64(number),
		Text:                res.Text,
		Variable:            res.Variable,
		LeftCoefficient:     res.LeftCoefficient,
		LeftConstant:        res.LeftConstant,
		RightCoefficient:    res.RightCoefficient,
		RightConstant:       res.RightConstant,
		SolutionNumerator:   res.SolutionNumerator,
		SolutionDenominator: res.SolutionDenominator,
		LeftSideNumerator:   res.LeftSideNumerator,
		LeftSideDenominator: res.LeftSideDenominator,
	}
}
