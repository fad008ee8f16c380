package poly

import (
	"math/big"
	"strconv"
	"strings"
)

// Polynomial is an immutable integer polynomial in one implicit variable.
// Coefficients are arbitrary precision, so sums and products never wrap.
// The zero value behaves as Zero.
type Polynomial struct {
	coefs []*big.Int
}

// New creates a Polynomial from coefficients in ascending power order.
// An empty argument list yields the zero polynomial.
func New(coefs ...int64) Polynomial {
	if len(coefs) == 0 {
		return Zero()
	}
	out := make([]*big.Int, len(coefs))
	for i, c := range coefs {
		out[i] = big.NewInt(c)
	}
	return Polynomial{coefs: out}
}

// FromBig creates a Polynomial from arbitrary-precision coefficients. The
// arguments are copied.
func FromBig(coefs ...*big.Int) Polynomial {
	if len(coefs) == 0 {
		return Zero()
	}
	return Polynomial{coefs: clone(coefs)}
}

// Zero returns the additive identity [0].
func Zero() Polynomial {
	return New(0)
}

// One returns the multiplicative identity [1].
func One() Polynomial {
	return New(1)
}

// X returns the variable polynomial [0, 1].
func X() Polynomial {
	return New(0, 1)
}

// Degree returns len(coefficients) - 1.
func (p Polynomial) Degree() int {
	if len(p.coefs) == 0 {
		return 0
	}
	return len(p.coefs) - 1
}

// Coefficients returns a copy of the coefficients in ascending power order.
func (p Polynomial) Coefficients() []*big.Int {
	if len(p.coefs) == 0 {
		return []*big.Int{new(big.Int)}
	}
	return clone(p.coefs)
}

// Int64s returns the coefficients as int64 values. ok is false if any of
// them is out of range.
func (p Polynomial) Int64s() (coefs []int64, ok bool) {
	for _, c := range p.Coefficients() {
		if !c.IsInt64() {
			return nil, false
		}
		coefs = append(coefs, c.Int64())
	}
	return coefs, true
}

// Coefficient returns a copy of the coefficient of x^power, or 0 when no
// slot exists.
func (p Polynomial) Coefficient(power int) *big.Int {
	if power < 0 || power >= len(p.coefs) {
		return new(big.Int)
	}
	return new(big.Int).Set(p.coefs[power])
}

// Add returns the pointwise sum. The result has as many slots as the longer
// operand.
func (p Polynomial) Add(q Polynomial) Polynomial {
	a, b := p.Coefficients(), q.Coefficients()
	if len(a) < len(b) {
		a, b = b, a
	}
	for i, c := range b {
		a[i].Add(a[i], c)
	}
	return Polynomial{coefs: a}
}

// Scale multiplies every coefficient by k. The length is preserved, so
// scaling by 0 yields a zero polynomial of the same degree.
func (p Polynomial) Scale(k int64) Polynomial {
	return p.ScaleBig(big.NewInt(k))
}

// ScaleBig is Scale with an arbitrary-precision factor.
func (p Polynomial) ScaleBig(k *big.Int) Polynomial {
	out := p.Coefficients()
	for _, c := range out {
		c.Mul(c, k)
	}
	return Polynomial{coefs: out}
}

// Mult returns the product of p and q (full convolution).
func (p Polynomial) Mult(q Polynomial) Polynomial {
	a, b := p.Coefficients(), q.Coefficients()
	out := make([]*big.Int, len(a)+len(b)-1)
	for i := range out {
		out[i] = new(big.Int)
	}
	term := new(big.Int)
	for i, x := range a {
		for j, y := range b {
			out[i+j].Add(out[i+j], term.Mul(x, y))
		}
	}
	return Polynomial{coefs: out}
}

// Equal reports whether p and q have identical coefficient slots.
// [1] and [1, 0] are not equal.
func (p Polynomial) Equal(q Polynomial) bool {
	a, b := p.Coefficients(), q.Coefficients()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}
	return true
}

// String renders ascending terms, e.g. "3x^0 + 2x^1".
func (p Polynomial) String() string {
	var b strings.Builder
	for i, c := range p.Coefficients() {
		if i > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(c.String())
		b.WriteString("x^")
		b.WriteString(strconv.Itoa(i))
	}
	return b.String()
}

func clone(coefs []*big.Int) []*big.Int {
	out := make([]*big.Int, len(coefs))
	for i, c := range coefs {
		out[i] = new(big.Int).Set(c)
	}
	return out
}
