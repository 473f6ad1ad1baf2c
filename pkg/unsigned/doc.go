// Package unsigned implements a sign-less nanosecond duration.
//
// A Duration here is a whole number of seconds (uint64) plus a sub-second
// nanosecond count (uint32, always less than 10^9). It is the foreign shape
// that the signed duration package converts to and from: same resolution,
// no negative values, and a wider whole-second range than a signed 64-bit
// field.
//
// # Relationship to time.Duration
//
// The standard library duration is a signed int64 nanosecond count and
// covers roughly ±292 years. FromStd rejects negative values and Std rejects
// values beyond that range.
package unsigned
