// Package duration implements a signed span of time with nanosecond
// resolution.
//
// A Duration is a whole number of seconds (int64) and a sub-second
// nanosecond count (int32). Unlike time.Duration it covers the full int64
// seconds range, roughly ±292 billion years, and unlike the unsigned
// package it may be negative.
//
// # Normalization
//
// Every Duration is kept in canonical form: the nanosecond field has a
// magnitude below 10^9 and its sign is zero or matches the seconds field.
// New folds and reconciles arbitrary pairs. Because the form is canonical,
// == compares durations by value and Compare orders them field-wise.
//
// # Arithmetic Families
//
// Four families combine durations:
//   - Checked (CheckedAdd, CheckedSub, CheckedMul, CheckedDiv, CheckedNeg)
//     return ok == false on overflow or division by zero.
//   - Saturating (SaturatingAdd, SaturatingSub, SaturatingMul) clamp to
//     Min or Max.
//   - Operators (Add, Sub, Neg, Mul, Div, MulInt, DivInt) panic on overflow.
//   - Floating point (MulFloat, DivFloat, Ratio) go through float seconds
//     and inherit the precision of the float type.
//
// # Precision
//
// SecondsF64, SecondsF32 and the float operators round like the float
// type does. A fractional input such as 0.1 is not exactly representable,
// so the nanosecond field may be off by one from the decimal value. Use
// SecondsDecimal and AsSecondsDecimal for exact decimal conversions.
//
// # Interop
//
// Conversions to the unsigned representation and to time.Duration are
// range checked and report ErrConversionRange. A Duration encodes to CBOR as
// the array [seconds, nanoseconds], and logs as a seconds/nanoseconds group
// through slog.LogValuer or zerolog.LogObjectMarshaler.
package duration
