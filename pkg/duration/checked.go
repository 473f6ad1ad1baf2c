package duration

import "math"

// carry applies the carry rules to a seconds field that has just been
// combined and a nanosecond sum in (-2*10^9, 2*10^9). overflow is +1 or -1
// when the carry itself leaves the int64 seconds range.
func carry(seconds int64, nanoseconds int32) (d Duration, overflow int) {
	switch {
	case nanoseconds >= nanosPerSecond || seconds < 0 && nanoseconds > 0:
		if seconds == math.MaxInt64 {
			return Duration{}, 1
		}
		return newUnchecked(seconds+1, nanoseconds-nanosPerSecond), 0
	case nanoseconds <= -nanosPerSecond || seconds > 0 && nanoseconds < 0:
		if seconds == math.MinInt64 {
			return Duration{}, -1
		}
		return newUnchecked(seconds-1, nanoseconds+nanosPerSecond), 0
	}
	return newUnchecked(seconds, nanoseconds), 0
}

// CheckedAdd returns d+rhs, or ok == false if the result overflows.
func (d Duration) CheckedAdd(rhs Duration) (Duration, bool) {
	seconds, ok := addInt64(d.seconds, rhs.seconds)
	if !ok {
		return Duration{}, false
	}
	sum, overflow := carry(seconds, d.nanoseconds+rhs.nanoseconds)
	return sum, overflow == 0
}

// CheckedSub returns d-rhs, or ok == false if the result overflows.
func (d Duration) CheckedSub(rhs Duration) (Duration, bool) {
	seconds, ok := subInt64(d.seconds, rhs.seconds)
	if !ok {
		return Duration{}, false
	}
	diff, overflow := carry(seconds, d.nanoseconds-rhs.nanoseconds)
	return diff, overflow == 0
}

// CheckedMul returns d*rhs, or ok == false if the result overflows.
func (d Duration) CheckedMul(rhs int32) (Duration, bool) {
	return d.checkedScale(int64(rhs))
}

// CheckedDiv returns d/rhs truncated toward zero, or ok == false if rhs is
// zero or the result overflows (Min divided by -1).
func (d Duration) CheckedDiv(rhs int32) (Duration, bool) {
	return d.checkedDivide(int64(rhs))
}

// CheckedNeg returns -d, or ok == false for Min.
func (d Duration) CheckedNeg() (Duration, bool) {
	if d.seconds == math.MinInt64 {
		return Duration{}, false
	}
	return newUnchecked(-d.seconds, -d.nanoseconds), true
}

// checkedScale multiplies by a scalar of at most 32 bits magnitude, which
// keeps the nanosecond product inside an int64.
func (d Duration) checkedScale(n int64) (Duration, bool) {
	totalNanos := int64(d.nanoseconds) * n
	extraSeconds := totalNanos / nanosPerSecond
	nanoseconds := int32(totalNanos % nanosPerSecond)

	seconds, ok := mulInt64(d.seconds, n)
	if !ok {
		return Duration{}, false
	}
	seconds, ok = addInt64(seconds, extraSeconds)
	if !ok {
		return Duration{}, false
	}
	return newUnchecked(seconds, nanoseconds), true
}

// checkedDivide divides by a scalar of at most 32 bits magnitude. The
// seconds remainder is carried into nanosecond units and divided on its own,
// then added to the divided nanosecond field, so the two truncations can
// leave the result one nanosecond short of the exact quotient.
func (d Duration) checkedDivide(n int64) (Duration, bool) {
	if n == 0 || d.seconds == math.MinInt64 && n == -1 {
		return Duration{}, false
	}
	seconds := d.seconds / n
	remainder := d.seconds - seconds*n
	carried, ok := mulInt64(remainder, nanosPerSecond)
	if !ok {
		return Duration{}, false
	}
	nanoseconds := int64(d.nanoseconds)/n + carried/n
	return newUnchecked(seconds, int32(nanoseconds)), true
}
