package duration

// SaturatingAdd returns d+rhs, clamped to Min or Max on overflow.
func (d Duration) SaturatingAdd(rhs Duration) Duration {
	seconds, ok := addInt64(d.seconds, rhs.seconds)
	if !ok {
		// Both operands share a sign when the seconds overflow.
		if d.seconds > 0 {
			return Max
		}
		return Min
	}
	return saturate(carry(seconds, d.nanoseconds+rhs.nanoseconds))
}

// SaturatingSub returns d-rhs, clamped to Min or Max on overflow.
func (d Duration) SaturatingSub(rhs Duration) Duration {
	seconds, ok := subInt64(d.seconds, rhs.seconds)
	if !ok {
		// 0 - MinInt64 overflows upward too.
		if d.seconds >= 0 {
			return Max
		}
		return Min
	}
	return saturate(carry(seconds, d.nanoseconds-rhs.nanoseconds))
}

// SaturatingMul returns d*rhs, clamped to Min or Max on overflow. The
// clamp direction is the sign of the product.
func (d Duration) SaturatingMul(rhs int32) Duration {
	product, ok := d.checkedScale(int64(rhs))
	if ok {
		return product
	}
	// Overflow needs non-zero seconds and scalar, so the signs are defined.
	if (d.seconds < 0) == (rhs < 0) {
		return Max
	}
	return Min
}

func saturate(d Duration, overflow int) Duration {
	switch {
	case overflow > 0:
		return Max
	case overflow < 0:
		return Min
	}
	return d
}
