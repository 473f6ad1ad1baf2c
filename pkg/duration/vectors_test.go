package duration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mash-protocol/mash-time/internal/vectors"
)

func fromPair(p vectors.Pair) Duration {
	return newUnchecked(p.Seconds, p.Nanoseconds)
}

// apply runs a vector's operation and reports the result the way the
// checked family does. Saturating ops always succeed.
func apply(t *testing.T, c vectors.Case) (Duration, bool) {
	t.Helper()

	a, b := fromPair(c.A), fromPair(c.B)
	switch c.Op {
	case vectors.OpNew:
		return normalize(c.A.Seconds, int64(c.A.Nanoseconds))
	case vectors.OpCheckedAdd:
		return a.CheckedAdd(b)
	case vectors.OpCheckedSub:
		return a.CheckedSub(b)
	case vectors.OpCheckedMul:
		return a.CheckedMul(c.Scalar)
	case vectors.OpCheckedDiv:
		return a.CheckedDiv(c.Scalar)
	case vectors.OpSaturatingAdd:
		return a.SaturatingAdd(b), true
	case vectors.OpSaturatingSub:
		return a.SaturatingSub(b), true
	case vectors.OpSaturatingMul:
		return a.SaturatingMul(c.Scalar), true
	}
	t.Fatalf("unhandled op %q", c.Op)
	return Duration{}, false
}

func TestVectors(t *testing.T) {
	suites, err := vectors.LoadAll()
	require.NoError(t, err)
	require.NotEmpty(t, suites)

	for name, suite := range suites {
		t.Run(name, func(t *testing.T) {
			for _, c := range suite.Cases {
				t.Run(c.Name, func(t *testing.T) {
					got, ok := apply(t, c)
					if c.Fails {
						assert.False(t, ok, "expected failure, got %v", got)
						return
					}
					require.True(t, ok, "unexpected failure")
					assertCanonical(t, got)
					assert.Equal(t, fromPair(c.Want), got)
				})
			}
		})
	}
}

// The panicking forms must agree with the checked vectors.
func TestVectors_OperatorsAgree(t *testing.T) {
	suite, err := vectors.Load("checked")
	require.NoError(t, err)

	for _, c := range suite.Cases {
		a, b := fromPair(c.A), fromPair(c.B)
		var op func() Duration
		var msg string
		switch c.Op {
		case vectors.OpCheckedAdd:
			op, msg = func() Duration { return a.Add(b) }, msgOverflowAdd
		case vectors.OpCheckedSub:
			op, msg = func() Duration { return a.Sub(b) }, msgOverflowSub
		case vectors.OpCheckedMul:
			op, msg = func() Duration { return a.Mul(c.Scalar) }, msgOverflowMul
		case vectors.OpCheckedDiv:
			op, msg = func() Duration { return a.Div(c.Scalar) }, msgOverflowDiv
			if c.Scalar == 0 {
				msg = msgDivideByZero
			}
		default:
			continue
		}

		t.Run(c.Name, func(t *testing.T) {
			if c.Fails {
				assert.PanicsWithValue(t, msg, func() { op() })
				return
			}
			assert.Equal(t, fromPair(c.Want), op())
		})
	}
}

func TestVectors_NewPanics(t *testing.T) {
	suite, err := vectors.Load("normalization")
	require.NoError(t, err)

	for _, c := range suite.Cases {
		t.Run(c.Name, func(t *testing.T) {
			build := func() { New(c.A.Seconds, c.A.Nanoseconds) }
			if c.Fails {
				assert.PanicsWithValue(t, msgOverflowConstructing, build)
				return
			}
			assert.Equal(t, fromPair(c.Want), New(c.A.Seconds, c.A.Nanoseconds))
		})
	}
}
