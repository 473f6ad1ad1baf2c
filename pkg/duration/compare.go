package duration

import "iter"

// Compare returns -1, 0 or +1 depending on whether d is shorter than,
// equal to, or longer than other.
func (d Duration) Compare(other Duration) int {
	switch {
	case d.seconds < other.seconds:
		return -1
	case d.seconds > other.seconds:
		return 1
	case d.nanoseconds < other.nanoseconds:
		return -1
	case d.nanoseconds > other.nanoseconds:
		return 1
	}
	return 0
}

// Compare is the function form of Duration.Compare, usable with
// slices.SortFunc.
func Compare(a, b Duration) int {
	return a.Compare(b)
}

// Less reports whether d is shorter than other.
func (d Duration) Less(other Duration) bool {
	return d.Compare(other) < 0
}

// MinOf returns the shorter of a and b.
func MinOf(a, b Duration) Duration {
	if b.Less(a) {
		return b
	}
	return a
}

// MaxOf returns the longer of a and b.
func MaxOf(a, b Duration) Duration {
	if a.Less(b) {
		return b
	}
	return a
}

// Clamp restricts d to [lo, hi]. It panics if lo is longer than hi.
func (d Duration) Clamp(lo, hi Duration) Duration {
	if hi.Less(lo) {
		panic("duration: Clamp called with lo > hi")
	}
	return MinOf(MaxOf(d, lo), hi)
}

// Sum adds up durations left to right. It returns Zero for no arguments and
// panics on overflow.
func Sum(ds ...Duration) Duration {
	total := Zero
	for _, d := range ds {
		total = total.Add(d)
	}
	return total
}

// SumSeq is Sum over an iterator.
func SumSeq(seq iter.Seq[Duration]) Duration {
	total := Zero
	for d := range seq {
		total = total.Add(d)
	}
	return total
}

// CheckedSum is Sum reporting ok == false instead of panicking.
func CheckedSum(ds ...Duration) (Duration, bool) {
	total := Zero
	for _, d := range ds {
		var ok bool
		if total, ok = total.CheckedAdd(d); !ok {
			return Duration{}, false
		}
	}
	return total, true
}
