package poly

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ints returns p's coefficients as int64s, failing if any is out of range.
func ints(t *testing.T, p Polynomial) []int64 {
	t.Helper()
	coefs, ok := p.Int64s()
	require.True(t, ok, "coefficients of %v exceed int64", p)
	return coefs
}

func samples() []Polynomial {
	return []Polynomial{
		Zero(),
		One(),
		X(),
		New(3, 2),
		New(-4, 0, 7),
		New(1, -1, 1, -1),
	}
}

func TestPrimitives(t *testing.T) {
	assert.Equal(t, []int64{0}, ints(t, Zero()))
	assert.Equal(t, 0, Zero().Degree())
	assert.Equal(t, []int64{1}, ints(t, One()))
	assert.Equal(t, []int64{0, 1}, ints(t, X()))
	assert.Equal(t, 1, X().Degree())
}

func TestNewEmptyIsZero(t *testing.T) {
	assert.True(t, New().Equal(Zero()))
}

func TestZeroValueBehavesAsZero(t *testing.T) {
	var p Polynomial
	assert.Equal(t, 0, p.Degree())
	assert.Equal(t, []int64{0}, ints(t, p))
	assert.True(t, p.Add(X()).Equal(X()))
}

func TestNewCopiesInput(t *testing.T) {
	in := []int64{1, 2}
	p := New(in...)
	in[0] = 99
	assert.Equal(t, []int64{1, 2}, ints(t, p))

	out := p.Coefficients()
	out[1].SetInt64(42)
	p.Coefficient(0).SetInt64(7)
	assert.Equal(t, []int64{1, 2}, ints(t, p))
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b Polynomial
		want []int64
	}{
		{"same length", New(1, 2), New(3, 4), []int64{4, 6}},
		{"shorter left", New(5), New(1, 2, 3), []int64{6, 2, 3}},
		{"shorter right", New(1, 2, 3), New(5), []int64{6, 2, 3}},
		{"cancelling keeps slots", New(0, 1), New(0, -1), []int64{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ints(t, tt.a.Add(tt.b)))
		})
	}
}

func TestAddDoesNotMutate(t *testing.T) {
	a := New(1, 2)
	b := New(10, 20, 30)
	_ = a.Add(b)
	_ = b.Add(a)
	assert.Equal(t, []int64{1, 2}, ints(t, a))
	assert.Equal(t, []int64{10, 20, 30}, ints(t, b))
}

func TestAddCommutativeAssociative(t *testing.T) {
	ps := samples()
	for _, a := range ps {
		for _, b := range ps {
			assert.True(t, a.Add(b).Equal(b.Add(a)), "%v + %v", a, b)
			for _, c := range ps {
				assert.True(t, a.Add(b).Add(c).Equal(a.Add(b.Add(c))), "(%v + %v) + %v", a, b, c)
			}
		}
	}
}

func TestScale(t *testing.T) {
	for _, p := range samples() {
		assert.True(t, p.Scale(1).Equal(p))

		zeroed := p.Scale(0)
		assert.Equal(t, p.Degree(), zeroed.Degree())
		for _, c := range zeroed.Coefficients() {
			assert.Zero(t, c.Sign())
		}
	}
	assert.Equal(t, []int64{-3, -6}, ints(t, New(1, 2).Scale(-3)))
}

func TestMult(t *testing.T) {
	tests := []struct {
		name string
		a, b Polynomial
		want []int64
	}{
		{"identity", One(), New(3, 2), []int64{3, 2}},
		{"times x", New(3, 2), X(), []int64{0, 3, 2}},
		{"binomials", New(1, 1), New(-1, 1), []int64{-1, 0, 1}},
		{"constant by x", New(2), X(), []int64{0, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Mult(tt.b)
			assert.Equal(t, tt.want, ints(t, got))
			assert.Equal(t, tt.a.Degree()+tt.b.Degree(), got.Degree())
		})
	}
}

func TestMultDistributesOverAdd(t *testing.T) {
	ps := samples()
	for _, a := range ps {
		for _, b := range ps {
			for _, c := range ps {
				left := a.Mult(b.Add(c))
				right := a.Mult(b).Add(a.Mult(c))
				// Slot counts can differ; compare values power by power.
				n := max(left.Degree(), right.Degree())
				for i := 0; i <= n; i++ {
					require.Zero(t, left.Coefficient(i).Cmp(right.Coefficient(i)), "%v * (%v + %v) at x^%d", a, b, c, i)
				}
			}
		}
	}
}

func TestCoefficientOutOfRange(t *testing.T) {
	p := New(3, 2)
	assert.Equal(t, int64(3), p.Coefficient(0).Int64())
	assert.Equal(t, int64(2), p.Coefficient(1).Int64())
	assert.Zero(t, p.Coefficient(2).Sign())
	assert.Zero(t, p.Coefficient(-1).Sign())
}

func TestRebuildFromCoefficients(t *testing.T) {
	for _, p := range samples() {
		assert.True(t, FromBig(p.Coefficients()...).Equal(p))
	}
}

func TestEqualIsSlotSensitive(t *testing.T) {
	assert.False(t, New(1).Equal(New(1, 0)))
	assert.True(t, New(1, 0).Equal(New(1, 0)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "3x^0 + 2x^1", New(3, 2).String())
	assert.Equal(t, "0x^0", Zero().String())
	assert.Equal(t, "-1x^0 + 0x^1 + 1x^2", New(-1, 0, 1).String())
}

func TestArithmeticDoesNotWrap(t *testing.T) {
	two32 := New(1 << 32)
	square := two32.Mult(two32).Mult(X())
	want, _ := new(big.Int).SetString("18446744073709551616", 10)
	assert.Zero(t, square.Coefficient(1).Cmp(want))

	_, ok := square.Int64s()
	assert.False(t, ok)

	// Cancelling an out-of-range term leaves an exact, in-range result.
	back := square.Add(square.Scale(-1)).Add(New(5))
	assert.Equal(t, []int64{5, 0}, ints(t, back))

	top := New(9223372036854775807).Add(One())
	_, ok = top.Int64s()
	assert.False(t, ok)
	assert.Equal(t, "9223372036854775808x^0", top.String())
}

func TestFromBigCopiesInput(t *testing.T) {
	c := big.NewInt(4)
	p := FromBig(c, big.NewInt(1))
	c.SetInt64(99)
	assert.Equal(t, []int64{4, 1}, ints(t, p))
	assert.True(t, FromBig().Equal(Zero()))
}
