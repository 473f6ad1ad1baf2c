package unsigned

import (
	"math"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Carry(t *testing.T) {
	d := New(1, 2_500_000_000)
	assert.Equal(t, uint64(3), d.Secs())
	assert.Equal(t, uint32(500_000_000), d.SubsecNanos())

	assert.Equal(t, New(5, 0), New(4, 1_000_000_000))
}

func TestNew_CarryOverflowPanics(t *testing.T) {
	assert.PanicsWithValue(t, "overflow in unsigned.New", func() {
		New(math.MaxUint64, 1_000_000_000)
	})
	assert.NotPanics(t, func() {
		New(math.MaxUint64, 999_999_999)
	})
}

func TestFromStd(t *testing.T) {
	d, err := FromStd(1500 * time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, New(1, 500_000_000), d)

	_, err = FromStd(-time.Nanosecond)
	assert.ErrorIs(t, err, ErrNegative)
}

func TestStd(t *testing.T) {
	std, err := New(2, 250_000_000).Std()
	require.NoError(t, err)
	assert.Equal(t, 2250*time.Millisecond, std)

	maxStd, err := FromStd(time.Duration(math.MaxInt64))
	require.NoError(t, err)
	std, err = maxStd.Std()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(math.MaxInt64), std)

	_, err = New(maxStd.Secs(), maxStd.SubsecNanos()+1).Std()
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = New(math.MaxUint64, 0).Std()
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestAsSecsF64(t *testing.T) {
	assert.Equal(t, 1.5, New(1, 500_000_000).AsSecsF64())
	assert.Equal(t, 0.0, Duration{}.AsSecsF64())
}

func TestIsZero(t *testing.T) {
	assert.True(t, Duration{}.IsZero())
	assert.False(t, New(0, 1).IsZero())
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b Duration
		want int
	}{
		{New(1, 0), New(1, 0), 0},
		{New(1, 0), New(2, 0), -1},
		{New(2, 0), New(1, 999_999_999), 1},
		{New(1, 5), New(1, 6), -1},
		{New(math.MaxUint64, 0), New(0, 0), 1},
	}

	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "1.5s", New(1, 500_000_000).String())
	assert.Equal(t, "0s", Duration{}.String())
	assert.Equal(t, "18446744073709551615s", New(math.MaxUint64, 0).String())
	assert.Equal(t, "18446744073709551615.000000001s", New(math.MaxUint64, 1).String())
}

func TestCBORRoundTrip(t *testing.T) {
	in := New(90, 123)
	data, err := cbor.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x82, 0x18, 0x5a, 0x18, 0x7b}, data)

	var out Duration
	require.NoError(t, cbor.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestUnmarshalCBOR_Rejects(t *testing.T) {
	var d Duration

	// [0, 1000000000]
	err := d.UnmarshalCBOR([]byte{0x82, 0x00, 0x1a, 0x3b, 0x9a, 0xca, 0x00})
	assert.ErrorIs(t, err, ErrOverflow)

	// [-1, 0]
	assert.Error(t, d.UnmarshalCBOR([]byte{0x82, 0x20, 0x00}))
}
