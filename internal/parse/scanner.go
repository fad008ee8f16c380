package parse

import (
	"math/big"
	"strings"
	"unicode"

	"github.com/mikeyrichardson/kybur/internal/poly"
)

// start marks the beginning of input in scanner.prev.
const start rune = 0

// Expression is a scanned side of an equation.
type Expression struct {
	Poly poly.Polynomial

	// Variable is the single letter seen during the scan, or 0 when the
	// expression is a constant.
	Variable rune
}

// Scan reduces an expression such as "2(x+1)-3x" to a polynomial.
// Whitespace is ignored. Implicit multiplication is allowed between a digit
// run or letter and a following letter or "(", and between ")" and "(".
func Scan(text string) (poly.Polynomial, error) {
	expr, err := ScanExpression(text)
	if err != nil {
		return poly.Polynomial{}, err
	}
	return expr.Poly, nil
}

// ScanExpression is Scan, also reporting the variable letter it found.
func ScanExpression(text string) (Expression, error) {
	s := &scanner{
		text:       stripSpace(text),
		sum:        poly.Zero(),
		product:    poly.One(),
		digitStart: -1,
	}
	if err := s.run(); err != nil {
		return Expression{}, err
	}
	return Expression{Poly: s.sum, Variable: s.variable}, nil
}

// scanner is the working state of one pass over an expression.
// sum holds closed terms at the current depth; product is the open term.
type scanner struct {
	text     string
	variable rune

	sum      poly.Polynomial
	product  poly.Polynomial
	sums     []poly.Polynomial
	products []poly.Polynomial

	depth      int
	digitStart int
	prev       rune
}

func (s *scanner) run() error {
	for i, r := range s.text {
		var err error
		switch {
		case s.prev == start:
			err = s.first(i, r)
		case r == '(':
			err = s.open(i)
		case r == ')':
			err = s.close(i)
		case r == '+':
			err = s.plus(i)
		case r == '-':
			err = s.minus(i)
		case r == '*':
			err = s.times(i)
		case isLetter(r):
			err = s.letter(i, r)
		case isDigit(r):
			err = s.digit(i, r)
		default:
			err = illegalChar(r)
		}
		if err != nil {
			return err
		}
		s.prev = r
	}
	return s.finish()
}

func (s *scanner) first(i int, r rune) error {
	switch {
	case r == ')' || r == '+' || r == '*':
		return newError(CodeSyntax, "Can't start an expression with %c", r)
	case r == '-':
		s.product = s.product.Scale(-1)
	case r == '(':
		return s.open(i)
	case isLetter(r):
		return s.noteVariable(r)
	case isDigit(r):
		s.digitStart = i
	default:
		return illegalChar(r)
	}
	return nil
}

func (s *scanner) open(i int) error {
	if err := s.closeFactor(i); err != nil {
		return err
	}
	s.sums = append(s.sums, s.sum)
	s.products = append(s.products, s.product)
	s.sum = poly.Zero()
	s.product = poly.One()
	s.depth++
	return nil
}

func (s *scanner) close(i int) error {
	if s.depth == 0 {
		return errUnbalanced()
	}
	if isOperator(s.prev) {
		return illegalSequence(s.prev, ')')
	}
	if err := s.closeFactor(i); err != nil {
		return err
	}
	group := s.sum.Add(s.product)
	n := len(s.products) - 1
	s.product = s.products[n].Mult(group)
	s.sum = s.sums[n]
	s.products = s.products[:n]
	s.sums = s.sums[:n]
	s.depth--
	return nil
}

func (s *scanner) plus(i int) error {
	if isOperator(s.prev) {
		return illegalSequence(s.prev, '+')
	}
	if err := s.closeTerm(i); err != nil {
		return err
	}
	s.product = poly.One()
	return nil
}

func (s *scanner) minus(i int) error {
	if isOperator(s.prev) {
		// Sign flip on the open term.
		s.product = s.product.Scale(-1)
		return nil
	}
	if err := s.closeTerm(i); err != nil {
		return err
	}
	s.product = poly.One().Scale(-1)
	return nil
}

func (s *scanner) times(i int) error {
	if isOperator(s.prev) {
		return illegalSequence(s.prev, '*')
	}
	return s.closeFactor(i)
}

func (s *scanner) letter(i int, r rune) error {
	if s.prev == ')' {
		return illegalSequence(s.prev, r)
	}
	if err := s.noteVariable(r); err != nil {
		return err
	}
	return s.closeFactor(i)
}

func (s *scanner) digit(i int, r rune) error {
	if s.prev == ')' || isLetter(s.prev) {
		return illegalSequence(s.prev, r)
	}
	if s.digitStart < 0 {
		s.digitStart = i
	}
	return nil
}

func (s *scanner) finish() error {
	if s.prev == start {
		return newError(CodeSyntax, "Expression has no content")
	}
	if isOperator(s.prev) {
		return newError(CodeSyntax, "Can't end an expression with %c", s.prev)
	}
	if err := s.closeFactor(len(s.text)); err != nil {
		return err
	}
	if s.depth != 0 {
		return errUnbalanced()
	}
	s.sum = s.sum.Add(s.product)
	return nil
}

// closeFactor folds the factor that ended at index end into the open term:
// a trailing letter multiplies by x, a digit run scales by its value.
func (s *scanner) closeFactor(end int) error {
	switch {
	case isLetter(s.prev):
		s.product = s.product.Mult(poly.X())
	case isDigit(s.prev):
		run := s.text[s.digitStart:end]
		n, ok := new(big.Int).SetString(run, 10)
		if !ok {
			return newError(CodeSyntax, "Malformed number: %s", run)
		}
		s.product = s.product.ScaleBig(n)
		s.digitStart = -1
	}
	return nil
}

// closeTerm finishes the open term and adds it to sum.
func (s *scanner) closeTerm(i int) error {
	if err := s.closeFactor(i); err != nil {
		return err
	}
	s.sum = s.sum.Add(s.product)
	return nil
}

func (s *scanner) noteVariable(r rune) error {
	if s.variable == 0 {
		s.variable = r
		return nil
	}
	if s.variable != r {
		return errVariables(s.variable, r)
	}
	return nil
}

func errUnbalanced() *ParseError {
	return newError(CodeSyntax, "The parentheses are not balanced")
}

func errVariables(a, b rune) *ParseError {
	return newError(CodeVariables, "Equation may only contain one type of variable, but contained %c and %c", a, b)
}

func illegalSequence(a, b rune) *ParseError {
	return newError(CodeSyntax, "Illegal character sequence: %c%c", a, b)
}

func illegalChar(r rune) *ParseError {
	return newError(CodeSyntax, "Expression contains an illegal character: %q. Only digits, variables, and + - * ( ) are allowed", r)
}

// isOperator reports whether r leaves a term open: "(" or a binary operator.
func isOperator(r rune) bool {
	return r == '(' || r == '+' || r == '-' || r == '*'
}

func isLetter(r rune) bool {
	return r < unicode.MaxASCII && unicode.IsLetter(r)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func stripSpace(text string) string {
	return strings.Join(strings.Fields(text), "")
}
