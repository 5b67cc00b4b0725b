package value

import (
	"math"
	"math/big"
)

// Int is a Python int. Magnitude is unbounded and exact.
type Int struct {
	n big.Int
}

func NewInt(n *big.Int) Int {
	var v Int
	v.n.Set(n)
	return v
}

func NewInt64(n int64) Int {
	var v Int
	v.n.SetInt64(n)
	return v
}

func (n Int) Kind() Kind {
	return IntKind
}

// Int returns a copy of the underlying integer so the Value stays
// immutable.
func (n Int) Int() *big.Int {
	return new(big.Int).Set(&n.n)
}

func (n Int) Int64() (int64, bool) {
	if n.n.IsInt64() {
		return n.n.Int64(), true
	}
	return 0, false
}

// Float64 converts the integer to a float, reporting false when the
// magnitude does not fit.
func (n Int) Float64() (float64, bool) {
	f, _ := new(big.Float).SetInt(&n.n).Float64()
	if math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func (n Int) Cmp(right Int) int {
	return n.n.Cmp(&right.n)
}

func (n Int) Neg() Int {
	var v Int
	v.n.Neg(&n.n)
	return v
}

func (n Int) NativeValue() any {
	return n.Int()
}

func (n Int) String() string {
	return Format(n)
}

// Float is a Python float.
type Float float64

func (f Float) Kind() Kind {
	return FloatKind
}

func (f Float) Float64() float64 {
	return (float64)(f)
}

func (f Float) NativeValue() any {
	return (float64)(f)
}

func (f Float) String() string {
	return Format(f)
}

// Complex is a Python complex number.
type Complex complex128

func NewComplex(re, im float64) Complex {
	return Complex(complex(re, im))
}

func (c Complex) Kind() Kind {
	return ComplexKind
}

func (c Complex) Real() float64 {
	return real(complex128(c))
}

func (c Complex) Imag() float64 {
	return imag(complex128(c))
}

func (c Complex) NativeValue() any {
	return (complex128)(c)
}

func (c Complex) String() string {
	return Format(c)
}
