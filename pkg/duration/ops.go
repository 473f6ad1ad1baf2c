package duration

// Integer is the set of integer scalar types accepted by MulInt and DivInt.
// Every member widens to int64 without the nanosecond product overflowing.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~uint8 | ~uint16 | ~uint32
}

// Add returns d+rhs. It panics on overflow.
func (d Duration) Add(rhs Duration) Duration {
	sum, ok := d.CheckedAdd(rhs)
	if !ok {
		panic(msgOverflowAdd)
	}
	return sum
}

// Sub returns d-rhs. It panics on overflow.
func (d Duration) Sub(rhs Duration) Duration {
	diff, ok := d.CheckedSub(rhs)
	if !ok {
		panic(msgOverflowSub)
	}
	return diff
}

// Neg returns -d. It panics for Min, whose negation is not representable.
func (d Duration) Neg() Duration {
	neg, ok := d.CheckedNeg()
	if !ok {
		panic(msgOverflowNeg)
	}
	return neg
}

// Mul returns d*rhs. It panics on overflow.
func (d Duration) Mul(rhs int32) Duration {
	return MulInt(d, rhs)
}

// Div returns d/rhs truncated toward zero. It panics if rhs is zero or the
// result overflows.
func (d Duration) Div(rhs int32) Duration {
	return DivInt(d, rhs)
}

// MulInt returns d*n for any integer scalar of up to 32 bits.
// It panics on overflow.
func MulInt[T Integer](d Duration, n T) Duration {
	product, ok := d.checkedScale(int64(n))
	if !ok {
		panic(msgOverflowMul)
	}
	return product
}

// DivInt returns d/n truncated toward zero for any integer scalar of up to
// 32 bits. It panics if n is zero or the result overflows.
func DivInt[T Integer](d Duration, n T) Duration {
	if n == 0 {
		panic(msgDivideByZero)
	}
	quotient, ok := d.checkedDivide(int64(n))
	if !ok {
		panic(msgOverflowDiv)
	}
	return quotient
}

// MulFloat returns d*f computed on float seconds in the precision of T.
// The result carries the float rounding error. It panics on NaN or if the
// product does not fit.
func MulFloat[T Float](d Duration, f T) Duration {
	return mustSecondsFloat(asSecondsFloat[T](d)*f, "NaN when multiplying duration")
}

// DivFloat returns d/f computed on float seconds in the precision of T.
// The result carries the float rounding error. It panics on NaN or if the
// quotient does not fit, which includes division by zero.
func DivFloat[T Float](d Duration, f T) Duration {
	return mustSecondsFloat(asSecondsFloat[T](d)/f, "NaN when dividing duration")
}

// Ratio returns d/other as a float64. It is a float division, so dividing
// by Zero yields ±Inf or NaN.
func (d Duration) Ratio(other Duration) float64 {
	return d.AsSecondsF64() / other.AsSecondsF64()
}
