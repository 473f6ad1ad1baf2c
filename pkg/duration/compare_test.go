package duration

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare_Total(t *testing.T) {
	all := samples()
	for _, a := range all {
		for _, b := range all {
			c := a.Compare(b)
			assert.Equal(t, -c, b.Compare(a), "Compare(%v, %v) is not antisymmetric", a, b)
			assert.Equal(t, c == 0, a == b)
			assert.Equal(t, c < 0, a.Less(b))

			// Field-wise order agrees with the total span.
			want := a.WholeNanoseconds().Cmp(b.WholeNanoseconds())
			assert.Equal(t, want, c, "Compare(%v, %v)", a, b)
		}
	}
}

func TestCompare_Sort(t *testing.T) {
	ds := []Duration{Second, Min, Zero, Max, Nanosecond.Neg(), Millisecond}
	slices.SortFunc(ds, Compare)
	assert.Equal(t, []Duration{Min, Nanosecond.Neg(), Zero, Millisecond, Second, Max}, ds)
}

func TestMinMaxOf(t *testing.T) {
	assert.Equal(t, Second.Neg(), MinOf(Second, Second.Neg()))
	assert.Equal(t, Second, MaxOf(Second, Second.Neg()))
	assert.Equal(t, Min, MinOf(Min, Max))
	assert.Equal(t, Max, MaxOf(Min, Max))
}

func TestClamp(t *testing.T) {
	lo, hi := Seconds(-1), Seconds(1)
	assert.Equal(t, lo, Min.Clamp(lo, hi))
	assert.Equal(t, hi, Max.Clamp(lo, hi))
	assert.Equal(t, Millisecond, Millisecond.Clamp(lo, hi))
	assert.Equal(t, Second, Minute.Clamp(Second, Second))

	assert.PanicsWithValue(t, "duration: Clamp called with lo > hi", func() {
		Zero.Clamp(hi, lo)
	})
}

func TestSum(t *testing.T) {
	assert.Equal(t, Zero, Sum())
	assert.Equal(t, Seconds(62), Sum(Second, Second, Minute))
	assert.Equal(t, New(0, 999_999_999), Sum(Second, Nanosecond.Neg()))
	assert.PanicsWithValue(t, msgOverflowAdd, func() { Sum(Max, Nanosecond) })
}

func TestSumSeq(t *testing.T) {
	ds := []Duration{Hour, Minute, Second, Millisecond}
	assert.Equal(t, New(3661, 1_000_000), SumSeq(slices.Values(ds)))
	assert.Equal(t, Zero, SumSeq(slices.Values([]Duration(nil))))
}

func TestCheckedSum(t *testing.T) {
	got, ok := CheckedSum(Day, Hour.Neg())
	assert.True(t, ok)
	assert.Equal(t, Hours(23), got)

	// Left to right: the overflow happens before the negative term.
	_, ok = CheckedSum(Max, Nanosecond, Nanosecond.Neg())
	assert.False(t, ok)

	got, ok = CheckedSum()
	assert.True(t, ok)
	assert.Equal(t, Zero, got)
}
