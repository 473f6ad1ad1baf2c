package unsigned

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/mash-protocol/mash-time/internal/wire"
)

// Conversion errors.
var (
	ErrNegative = errors.New("negative duration")
	ErrOverflow = errors.New("duration overflow")
)

const nanosPerSecond = 1_000_000_000

// Duration is an unsigned span of time with nanosecond precision.
// The zero value is a zero-length span.
type Duration struct {
	secs  uint64
	nanos uint32
}

// New creates a Duration from whole seconds and nanoseconds. Nanoseconds of
// a second or more carry into the seconds. It panics if the carry overflows.
func New(secs uint64, nanos uint32) Duration {
	if nanos < nanosPerSecond {
		return Duration{secs: secs, nanos: nanos}
	}
	extra := uint64(nanos / nanosPerSecond)
	if secs > math.MaxUint64-extra {
		panic("overflow in unsigned.New")
	}
	return Duration{secs: secs + extra, nanos: nanos % nanosPerSecond}
}

// FromStd converts a standard library duration. Negative values are rejected.
func FromStd(d time.Duration) (Duration, error) {
	if d < 0 {
		return Duration{}, fmt.Errorf("%w: %v", ErrNegative, d)
	}
	return Duration{
		secs:  uint64(d / time.Second),
		nanos: uint32(d % time.Second),
	}, nil
}

// Std converts to a standard library duration. Values beyond the int64
// nanosecond range return ErrOverflow.
func (d Duration) Std() (time.Duration, error) {
	const maxSecs = uint64(math.MaxInt64 / nanosPerSecond)
	if d.secs > maxSecs {
		return 0, fmt.Errorf("%w: %d seconds exceeds time.Duration", ErrOverflow, d.secs)
	}
	total := d.secs*nanosPerSecond + uint64(d.nanos)
	if total > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d seconds exceeds time.Duration", ErrOverflow, d.secs)
	}
	return time.Duration(total), nil
}

// Secs returns the number of whole seconds.
func (d Duration) Secs() uint64 {
	return d.secs
}

// SubsecNanos returns the fractional part in nanoseconds, in [0, 10^9).
func (d Duration) SubsecNanos() uint32 {
	return d.nanos
}

// AsSecsF64 returns the duration as floating point seconds.
func (d Duration) AsSecsF64() float64 {
	return float64(d.secs) + float64(d.nanos)/nanosPerSecond
}

// IsZero reports whether the duration is zero.
func (d Duration) IsZero() bool {
	return d.secs == 0 && d.nanos == 0
}

// Compare returns -1, 0 or +1 depending on whether d is shorter than,
// equal to, or longer than other.
func (d Duration) Compare(other Duration) int {
	switch {
	case d.secs < other.secs:
		return -1
	case d.secs > other.secs:
		return 1
	case d.nanos < other.nanos:
		return -1
	case d.nanos > other.nanos:
		return 1
	}
	return 0
}

// String formats the duration like time.Duration, falling back to a
// seconds form outside its range.
func (d Duration) String() string {
	if std, err := d.Std(); err == nil {
		return std.String()
	}
	if d.nanos == 0 {
		return fmt.Sprintf("%ds", d.secs)
	}
	return fmt.Sprintf("%d.%09ds", d.secs, d.nanos)
}

// MarshalCBOR encodes the duration as a [secs, nanos] array.
func (d Duration) MarshalCBOR() ([]byte, error) {
	return wire.EncodePair(d.secs, d.nanos)
}

// UnmarshalCBOR decodes a [secs, nanos] array. The nanosecond field must be
// below one second.
func (d *Duration) UnmarshalCBOR(data []byte) error {
	secs, nanos, err := wire.DecodePair[uint64, uint32](data)
	if err != nil {
		return err
	}
	if nanos >= nanosPerSecond {
		return fmt.Errorf("%w: %d nanoseconds is not below one second", ErrOverflow, nanos)
	}
	*d = Duration{secs: secs, nanos: nanos}
	return nil
}
