package duration

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// WholeWeeks returns the number of whole weeks, truncated toward zero.
func (d Duration) WholeWeeks() int64 {
	return d.seconds / secondsPerWeek
}

// WholeDays returns the number of whole days, truncated toward zero.
func (d Duration) WholeDays() int64 {
	return d.seconds / secondsPerDay
}

// WholeHours returns the number of whole hours, truncated toward zero.
func (d Duration) WholeHours() int64 {
	return d.seconds / secondsPerHour
}

// WholeMinutes returns the number of whole minutes, truncated toward zero.
func (d Duration) WholeMinutes() int64 {
	return d.seconds / secondsPerMinute
}

// WholeSeconds returns the number of whole seconds.
func (d Duration) WholeSeconds() int64 {
	return d.seconds
}

// WholeMilliseconds returns the number of whole milliseconds. The count can
// exceed 64 bits.
func (d Duration) WholeMilliseconds() *big.Int {
	return wholeUnits(d.seconds, 1_000, int64(d.nanoseconds/nanosPerMillisecond))
}

// WholeMicroseconds returns the number of whole microseconds. The count can
// exceed 64 bits.
func (d Duration) WholeMicroseconds() *big.Int {
	return wholeUnits(d.seconds, 1_000_000, int64(d.nanoseconds/nanosPerMicrosecond))
}

// WholeNanoseconds returns the total number of nanoseconds. The count can
// exceed 64 bits.
func (d Duration) WholeNanoseconds() *big.Int {
	return wholeUnits(d.seconds, nanosPerSecond, int64(d.nanoseconds))
}

// wholeUnits computes seconds*perSecond + sub in arbitrary precision.
func wholeUnits(seconds, perSecond, sub int64) *big.Int {
	n := big.NewInt(seconds)
	n.Mul(n, big.NewInt(perSecond))
	return n.Add(n, big.NewInt(sub))
}

// SubsecMilliseconds returns the fractional second in whole milliseconds,
// in [-999, 999].
func (d Duration) SubsecMilliseconds() int16 {
	return int16(d.nanoseconds / nanosPerMillisecond)
}

// SubsecMicroseconds returns the fractional second in whole microseconds,
// in [-999_999, 999_999].
func (d Duration) SubsecMicroseconds() int32 {
	return d.nanoseconds / nanosPerMicrosecond
}

// SubsecNanoseconds returns the fractional second in nanoseconds,
// in [-999_999_999, 999_999_999].
func (d Duration) SubsecNanoseconds() int32 {
	return d.nanoseconds
}

// AsSecondsF64 returns the duration as float64 seconds.
func (d Duration) AsSecondsF64() float64 {
	return asSecondsFloat[float64](d)
}

// AsSecondsF32 returns the duration as float32 seconds.
func (d Duration) AsSecondsF32() float32 {
	return asSecondsFloat[float32](d)
}

func asSecondsFloat[T Float](d Duration) T {
	return T(d.seconds) + T(d.nanoseconds)/nanosPerSecond
}

// AsSecondsDecimal returns the exact number of seconds as a decimal.
func (d Duration) AsSecondsDecimal() decimal.Decimal {
	return decimal.New(d.seconds, 0).Add(decimal.New(int64(d.nanoseconds), -9))
}
