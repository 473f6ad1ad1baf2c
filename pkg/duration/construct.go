package duration

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// Weeks creates a Duration of the given number of weeks.
// It panics if the seconds overflow.
func Weeks(weeks int64) Duration {
	return Seconds(mustScale(weeks, secondsPerWeek))
}

// Days creates a Duration of the given number of 86,400-second days.
// It panics if the seconds overflow.
func Days(days int64) Duration {
	return Seconds(mustScale(days, secondsPerDay))
}

// Hours creates a Duration of the given number of hours.
// It panics if the seconds overflow.
func Hours(hours int64) Duration {
	return Seconds(mustScale(hours, secondsPerHour))
}

// Minutes creates a Duration of the given number of minutes.
// It panics if the seconds overflow.
func Minutes(minutes int64) Duration {
	return Seconds(mustScale(minutes, secondsPerMinute))
}

// Seconds creates a Duration of the given number of seconds.
func Seconds(seconds int64) Duration {
	return newUnchecked(seconds, 0)
}

// Milliseconds creates a Duration of the given number of milliseconds.
func Milliseconds(milliseconds int64) Duration {
	return newUnchecked(
		milliseconds/1_000,
		int32(milliseconds%1_000*nanosPerMillisecond),
	)
}

// Microseconds creates a Duration of the given number of microseconds.
func Microseconds(microseconds int64) Duration {
	return newUnchecked(
		microseconds/1_000_000,
		int32(microseconds%1_000_000*nanosPerMicrosecond),
	)
}

// Nanoseconds creates a Duration of the given number of nanoseconds.
func Nanoseconds(nanoseconds int64) Duration {
	return newUnchecked(
		nanoseconds/nanosPerSecond,
		int32(nanoseconds%nanosPerSecond),
	)
}

var bigNanosPerSecond = big.NewInt(nanosPerSecond)

// NanosecondsBig creates a Duration from an arbitrarily wide nanosecond
// count, such as the result of WholeNanoseconds arithmetic. Counts whose
// seconds do not fit in an int64 return ErrConversionRange.
func NanosecondsBig(nanoseconds *big.Int) (Duration, error) {
	seconds, rem := new(big.Int).QuoRem(nanoseconds, bigNanosPerSecond, new(big.Int))
	if !seconds.IsInt64() {
		return Duration{}, fmt.Errorf("%w: %s nanoseconds", ErrConversionRange, nanoseconds)
	}
	return newUnchecked(seconds.Int64(), int32(rem.Int64())), nil
}

// SecondsDecimal creates a Duration from an exact decimal number of seconds.
// Digits below one nanosecond are truncated toward zero. Values outside the
// Duration range return ErrConversionRange.
func SecondsDecimal(seconds decimal.Decimal) (Duration, error) {
	if d, err := NanosecondsBig(seconds.Shift(9).BigInt()); err == nil {
		return d, nil
	}
	return Duration{}, fmt.Errorf("%w: %s seconds", ErrConversionRange, seconds)
}

// Float is the set of floating point scalar types.
type Float interface {
	~float32 | ~float64
}

// SecondsF64 creates a Duration from float seconds. The fractional part is
// scaled to nanoseconds in float64 precision and truncated.
// It panics on NaN or if the value does not fit.
func SecondsF64(seconds float64) Duration {
	return mustSecondsFloat(seconds, "passed NaN to SecondsF64")
}

// SecondsF32 creates a Duration from float seconds in float32 precision.
// See SecondsF64 for the rounding caveat. It panics on NaN or if the value
// does not fit.
func SecondsF32(seconds float32) Duration {
	return mustSecondsFloat(seconds, "passed NaN to SecondsF32")
}

// CheckedSecondsF64 is SecondsF64 reporting ok == false instead of panicking.
func CheckedSecondsF64(seconds float64) (Duration, bool) {
	return secondsFloat(seconds)
}

// CheckedSecondsF32 is SecondsF32 reporting ok == false instead of panicking.
func CheckedSecondsF32(seconds float32) (Duration, bool) {
	return secondsFloat(seconds)
}

// SaturatingSecondsF64 is SecondsF64 clamping to Min or Max instead of
// panicking. NaN becomes Zero.
func SaturatingSecondsF64(seconds float64) Duration {
	return saturatingSecondsFloat(seconds)
}

// SaturatingSecondsF32 is SecondsF32 clamping to Min or Max instead of
// panicking. NaN becomes Zero.
func SaturatingSecondsF32(seconds float32) Duration {
	return saturatingSecondsFloat(seconds)
}

// secondsFloat converts float seconds, doing the fractional scaling in the
// precision of T. It fails on NaN and on values outside the int64 seconds
// range.
func secondsFloat[T Float](seconds T) (Duration, bool) {
	wide := float64(seconds)
	if math.IsNaN(wide) || wide >= 0x1p63 || wide < -0x1p63 {
		return Duration{}, false
	}
	whole := T(math.Trunc(wide))
	frac := seconds - whole
	return normalize(int64(whole), int64(frac*nanosPerSecond))
}

func mustSecondsFloat[T Float](seconds T, nanMsg string) Duration {
	if math.IsNaN(float64(seconds)) {
		panic(nanMsg)
	}
	d, ok := secondsFloat(seconds)
	if !ok {
		panic(msgOverflowConstructing)
	}
	return d
}

func saturatingSecondsFloat[T Float](seconds T) Duration {
	if math.IsNaN(float64(seconds)) {
		return Zero
	}
	d, ok := secondsFloat(seconds)
	if !ok {
		if seconds < 0 {
			return Min
		}
		return Max
	}
	return d
}

// mustScale multiplies a unit count by its seconds factor. It panics on
// overflow.
func mustScale(n, factor int64) int64 {
	v, ok := mulInt64(n, factor)
	if !ok {
		panic(msgOverflowConstructing)
	}
	return v
}
