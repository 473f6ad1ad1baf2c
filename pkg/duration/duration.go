package duration

import (
	"math"

	"github.com/mash-protocol/mash-time/pkg/unsigned"
)

// Unit factors.
const (
	nanosPerMicrosecond = 1_000
	nanosPerMillisecond = 1_000_000
	nanosPerSecond      = 1_000_000_000

	secondsPerMinute = 60
	secondsPerHour   = 3_600
	secondsPerDay    = 86_400
	secondsPerWeek   = 604_800
)

// Panic messages.
const (
	msgOverflowConstructing = "overflow constructing duration"
	msgOverflowAdd          = "overflow when adding durations"
	msgOverflowSub          = "overflow when subtracting durations"
	msgOverflowNeg          = "overflow when negating duration"
	msgOverflowMul          = "overflow when multiplying duration"
	msgOverflowDiv          = "overflow when dividing duration"
	msgDivideByZero         = "division of duration by zero"
	msgOverflowUnsigned     = "overflow converting unsigned duration"
)

// Duration is a signed span of time with nanosecond precision.
// The zero value is Zero.
type Duration struct {
	// Number of whole seconds.
	seconds int64

	// Nanoseconds within the second. The sign always matches seconds.
	nanoseconds int32
}

// Common durations.
var (
	Zero        = Seconds(0)
	Nanosecond  = Nanoseconds(1)
	Microsecond = Microseconds(1)
	Millisecond = Milliseconds(1)
	Second      = Seconds(1)
	Minute      = Minutes(1)
	Hour        = Hours(1)
	Day         = Days(1)
	Week        = Weeks(1)

	// Min is the most negative duration. Subtracting any positive duration
	// from it overflows.
	Min = newUnchecked(math.MinInt64, -999_999_999)

	// Max is the most positive duration. Adding any positive duration to
	// it overflows.
	Max = newUnchecked(math.MaxInt64, 999_999_999)
)

// newUnchecked builds a Duration without normalizing. The caller guarantees
// the invariant.
func newUnchecked(seconds int64, nanoseconds int32) Duration {
	return Duration{seconds: seconds, nanoseconds: nanoseconds}
}

// New creates a Duration from seconds and nanoseconds. Nanoseconds of ±10^9
// or more carry into the seconds, and a nanosecond sign that disagrees with
// the seconds is borrowed away, so New(1, -1) is 999,999,999ns.
// It panics if the carry overflows the seconds.
func New(seconds int64, nanoseconds int32) Duration {
	d, ok := normalize(seconds, int64(nanoseconds))
	if !ok {
		panic(msgOverflowConstructing)
	}
	return d
}

// normalize folds whole seconds out of nanoseconds and reconciles the sign.
func normalize(seconds, nanoseconds int64) (Duration, bool) {
	seconds, ok := addInt64(seconds, nanoseconds/nanosPerSecond)
	if !ok {
		return Duration{}, false
	}
	nanoseconds %= nanosPerSecond

	switch {
	case seconds > 0 && nanoseconds < 0:
		seconds--
		nanoseconds += nanosPerSecond
	case seconds < 0 && nanoseconds > 0:
		seconds++
		nanoseconds -= nanosPerSecond
	}
	return newUnchecked(seconds, int32(nanoseconds)), true
}

// IsZero reports whether the duration is exactly zero.
func (d Duration) IsZero() bool {
	return d.seconds == 0 && d.nanoseconds == 0
}

// IsNegative reports whether the duration is below zero.
func (d Duration) IsNegative() bool {
	return d.seconds < 0 || d.nanoseconds < 0
}

// IsPositive reports whether the duration is above zero.
func (d Duration) IsPositive() bool {
	return d.seconds > 0 || d.nanoseconds > 0
}

// Abs returns the absolute value. Min saturates to Max.
func (d Duration) Abs() Duration {
	if d.seconds == math.MinInt64 {
		return Max
	}
	return newUnchecked(absInt64(d.seconds), absInt32(d.nanoseconds))
}

// UnsignedAbs returns the exact magnitude as an unsigned duration.
// Unlike Abs it does not saturate.
func (d Duration) UnsignedAbs() unsigned.Duration {
	return unsigned.New(unsignedAbs(d.seconds), uint32(absInt32(d.nanoseconds)))
}
