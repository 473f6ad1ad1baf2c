package duration

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/mash-protocol/mash-time/pkg/unsigned"
)

// ErrConversionRange reports that a value cannot be represented in the
// target type, by sign or by width.
var ErrConversionRange = errors.New("conversion out of range")

// FromUnsigned converts an unsigned duration. Seconds beyond MaxInt64
// return ErrConversionRange.
func FromUnsigned(u unsigned.Duration) (Duration, error) {
	if u.Secs() > math.MaxInt64 {
		return Duration{}, fmt.Errorf("%w: %d seconds exceeds int64", ErrConversionRange, u.Secs())
	}
	return newUnchecked(int64(u.Secs()), int32(u.SubsecNanos())), nil
}

// Unsigned converts to an unsigned duration. Negative durations return
// ErrConversionRange.
func (d Duration) Unsigned() (unsigned.Duration, error) {
	if d.seconds < 0 || d.nanoseconds < 0 {
		return unsigned.Duration{}, fmt.Errorf("%w: negative duration %v", ErrConversionRange, d)
	}
	return unsigned.New(uint64(d.seconds), uint32(d.nanoseconds)), nil
}

// EqualUnsigned reports whether d and u are the same span.
func (d Duration) EqualUnsigned(u unsigned.Duration) bool {
	return d.CompareUnsigned(u) == 0
}

// CompareUnsigned compares d with u without converting. An unsigned value
// beyond MaxInt64 seconds is always greater.
func (d Duration) CompareUnsigned(u unsigned.Duration) int {
	if u.Secs() > math.MaxInt64 {
		return -1
	}
	return d.Compare(newUnchecked(int64(u.Secs()), int32(u.SubsecNanos())))
}

// AddUnsigned returns d+u. It panics if u does not fit in a Duration or the
// sum overflows.
func (d Duration) AddUnsigned(u unsigned.Duration) Duration {
	return d.Add(mustFromUnsigned(u))
}

// SubUnsigned returns d-u. It panics if u does not fit in a Duration or the
// difference overflows.
func (d Duration) SubUnsigned(u unsigned.Duration) Duration {
	return d.Sub(mustFromUnsigned(u))
}

// RatioUnsigned returns d/u as a float64.
func (d Duration) RatioUnsigned(u unsigned.Duration) float64 {
	return d.AsSecondsF64() / u.AsSecsF64()
}

func mustFromUnsigned(u unsigned.Duration) Duration {
	v, err := FromUnsigned(u)
	if err != nil {
		panic(msgOverflowUnsigned)
	}
	return v
}

// FromStd converts a standard library duration. Every time.Duration fits.
func FromStd(std time.Duration) Duration {
	return Nanoseconds(int64(std))
}

// Std converts to a standard library duration. Spans beyond roughly ±292
// years return ErrConversionRange.
func (d Duration) Std() (time.Duration, error) {
	ns, ok := mulInt64(d.seconds, nanosPerSecond)
	if ok {
		ns, ok = addInt64(ns, int64(d.nanoseconds))
	}
	if !ok {
		return 0, fmt.Errorf("%w: %v exceeds time.Duration", ErrConversionRange, d)
	}
	return time.Duration(ns), nil
}

// CompareStd compares d with a standard library duration.
func (d Duration) CompareStd(std time.Duration) int {
	return d.Compare(FromStd(std))
}
