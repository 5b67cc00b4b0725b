package value

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/hexops/autogold/v2"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		input  Value
		expect autogold.Value
	}{
		{input: Null{}, expect: autogold.Expect("None")},
		{input: True, expect: autogold.Expect("True")},
		{input: False, expect: autogold.Expect("False")},
		{input: NewInt64(-42), expect: autogold.Expect("-42")},
		{input: Float(1.5), expect: autogold.Expect("1.5")},
		{input: Float(1000), expect: autogold.Expect("1000.0")},
		{input: Float(1e30), expect: autogold.Expect("1e+30")},
		{input: Float(math.Inf(-1)), expect: autogold.Expect("-inf")},
		{input: Float(math.NaN()), expect: autogold.Expect("nan")},
		{input: String("hi"), expect: autogold.Expect(`"hi"`)},
		{input: String("a\"b\\c"), expect: autogold.Expect(`"a\"b\\c"`)},
		{input: String("a\n\t\x00é"), expect: autogold.Expect(`"a\n\t\x00é"`)},
		{input: String("a b"), expect: autogold.Expect(`"a b"`)},
		{input: String("\U0001f600"), expect: autogold.Expect(`"😀"`)},
		{input: String("\U000e0001"), expect: autogold.Expect(`"\U000e0001"`)},
		{input: NewBytes([]byte{'h', 'i', 0x00, 0xff}), expect: autogold.Expect(`b"hi\x00\xff"`)},
		{input: Tuple{}, expect: autogold.Expect("()")},
		{input: Tuple{NewInt64(1)}, expect: autogold.Expect("(1,)")},
		{input: Tuple{NewInt64(1), NewInt64(2)}, expect: autogold.Expect("(1, 2)")},
		{input: List{String("a"), List{}}, expect: autogold.Expect(`["a", []]`)},
		{input: Set{}, expect: autogold.Expect("set()")},
		{input: Set{NewInt64(1), NewInt64(2)}, expect: autogold.Expect("{1, 2}")},
		{input: Dict{}, expect: autogold.Expect("{}")},
		{
			input:  Dict{}.Put(String("k"), List{NewInt64(1)}).Put(NewInt64(2), Null{}),
			expect: autogold.Expect(`{"k": [1], 2: None}`),
		},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%s%d", t.Name(), i), func(t *testing.T) {
			test.expect.Equal(t, Format(test.input))
		})
	}
}

func TestFormatComplex(t *testing.T) {
	negZero := math.Copysign(0, -1)
	tests := []struct {
		input  Complex
		expect autogold.Value
	}{
		{input: NewComplex(0, 5), expect: autogold.Expect("5.0j")},
		{input: NewComplex(0, -5), expect: autogold.Expect("0.0-5.0j")},
		{input: NewComplex(0, negZero), expect: autogold.Expect("0.0-0.0j")},
		{input: NewComplex(2, 3), expect: autogold.Expect("2.0+3.0j")},
		{input: NewComplex(2, -3), expect: autogold.Expect("2.0-3.0j")},
		{input: NewComplex(-2, 3), expect: autogold.Expect("-2.0+3.0j")},
		{input: NewComplex(negZero, -5), expect: autogold.Expect("-0.0-5.0j")},
		{input: NewComplex(2, 0), expect: autogold.Expect("2.0+0.0j")},
		{input: NewComplex(2, negZero), expect: autogold.Expect("2.0-0.0j")},
		{input: NewComplex(math.Inf(1), math.NaN()), expect: autogold.Expect("inf+nanj")},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%s%d", t.Name(), i), func(t *testing.T) {
			test.expect.Equal(t, Format(test.input))
		})
	}
}

func TestFormatBigInt(t *testing.T) {
	n, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	if !ok {
		t.Fatal("SetString failed")
	}
	got := Format(NewInt(n))
	autogold.Expect("123456789012345678901234567890").Equal(t, got)
}
