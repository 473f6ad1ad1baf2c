package duration

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// String returns the exact duration as its non-zero units, largest first,
// such as "1d2h3m4s5ms6µs7ns" or "-1s500ms". Zero is "0s". A day is 86,400
// seconds. The format is for humans and is not stable.
func (d Duration) String() string {
	if d.IsZero() {
		return "0s"
	}

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}

	abs := d.UnsignedAbs()
	seconds := abs.Secs()
	nanoseconds := uint64(abs.SubsecNanos())

	item := func(value uint64, unit string) {
		if value == 0 {
			return
		}
		b.WriteString(strconv.FormatUint(value, 10))
		b.WriteString(unit)
	}
	item(seconds/secondsPerDay, "d")
	item(seconds/secondsPerHour%24, "h")
	item(seconds/secondsPerMinute%60, "m")
	item(seconds%secondsPerMinute, "s")
	item(nanoseconds/nanosPerMillisecond, "ms")
	item(nanoseconds/nanosPerMicrosecond%1_000, "µs")
	item(nanoseconds%nanosPerMicrosecond, "ns")

	return b.String()
}

// LogValue implements slog.LogValuer, logging the raw fields as a group.
func (d Duration) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("seconds", d.seconds),
		slog.Int64("nanoseconds", int64(d.nanoseconds)),
	)
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler with the same
// fields as LogValue.
func (d Duration) MarshalZerologObject(e *zerolog.Event) {
	e.Int64("seconds", d.seconds).Int32("nanoseconds", d.nanoseconds)
}
