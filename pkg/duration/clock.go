package duration

import (
	"math"
	"time"
)

// Clock supplies the current time. Readings from time.Now carry a monotonic
// component, which Between prefers.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed since t.
func Since(t time.Time) Duration {
	return Between(t, time.Now())
}

// Between returns end - start. Within the time.Duration range the monotonic
// readings are used when both times have one; beyond it the wall clock
// seconds are subtracted. It panics if the difference overflows.
func Between(start, end time.Time) Duration {
	if std := end.Sub(start); std != math.MaxInt64 && std != math.MinInt64 {
		return FromStd(std)
	}
	seconds, ok := subInt64(end.Unix(), start.Unix())
	if !ok {
		panic(msgOverflowSub)
	}
	d, ok := normalize(seconds, int64(end.Nanosecond())-int64(start.Nanosecond()))
	if !ok {
		panic(msgOverflowSub)
	}
	return d
}

// maxUnixSeconds is the largest Unix second a time.Time can hold. time.Time
// counts seconds from January 1 of year 1, 62135596800 seconds before the
// Unix epoch.
const maxUnixSeconds = math.MaxInt64 - 62_135_596_800

// AddTo returns t+d. Spans beyond the time.Duration range are added on the
// wall clock in t's location, dropping any monotonic reading. It panics if
// the result lies beyond the range of time.Time.
func (d Duration) AddTo(t time.Time) time.Time {
	seconds, ok := addInt64(t.Unix(), d.seconds)
	if !ok {
		panic(msgOverflowAdd)
	}
	nanoseconds := int64(t.Nanosecond()) + int64(d.nanoseconds)
	switch {
	case nanoseconds < 0:
		nanoseconds += nanosPerSecond
		seconds, ok = subInt64(seconds, 1)
	case nanoseconds >= nanosPerSecond:
		nanoseconds -= nanosPerSecond
		seconds, ok = addInt64(seconds, 1)
	}
	if !ok || seconds > maxUnixSeconds {
		panic(msgOverflowAdd)
	}

	if std, err := d.Std(); err == nil {
		return t.Add(std)
	}
	return time.Unix(seconds, nanoseconds).In(t.Location())
}
