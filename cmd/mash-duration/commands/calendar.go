package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mash-protocol/mash-time/pkg/duration"
)

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q (want RFC3339): %w", s, err)
	}
	return t, nil
}

// RunBetween prints the span from start to end, both RFC3339 timestamps.
func RunBetween(start, end string, format string, w io.Writer) error {
	from, err := parseTime(start)
	if err != nil {
		return err
	}
	to, err := parseTime(end)
	if err != nil {
		return err
	}
	return writeReport(w, duration.Between(from, to), format)
}

// ShiftReport is the machine-readable result of a shift.
type ShiftReport struct {
	Time  string `json:"time"`
	Shift Report `json:"shift"`
}

// RunShift prints t moved by a decimal number of seconds.
func RunShift(t string, seconds string, format string, w io.Writer) error {
	from, err := parseTime(t)
	if err != nil {
		return err
	}
	value, err := decimal.NewFromString(strings.TrimSuffix(seconds, "s"))
	if err != nil {
		return fmt.Errorf("invalid seconds %q: %w", seconds, err)
	}
	d, err := duration.SecondsDecimal(value)
	if err != nil {
		return err
	}
	to, err := shift(from, d)
	if err != nil {
		return fmt.Errorf("shifting %s by %v: %w", t, d, err)
	}

	switch format {
	case FormatJSON:
		r, err := newReport(d)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ShiftReport{Time: to.Format(time.RFC3339Nano), Shift: r})
	case FormatText, "":
		fmt.Fprintln(w, to.Format(time.RFC3339Nano))
		return nil
	}
	return fmt.Errorf("unknown format %q (want text or json)", format)
}

// shift turns the AddTo overflow panic into an error.
func shift(t time.Time, d duration.Duration) (to time.Time, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return d.AddTo(t), nil
}
