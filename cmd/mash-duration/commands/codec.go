// Package commands implements the mash-duration CLI commands.
package commands

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mash-protocol/mash-time/pkg/duration"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Report is the machine-readable view of a duration.
type Report struct {
	Duration    string `json:"duration"`
	Seconds     int64  `json:"seconds"`
	Nanoseconds int32  `json:"nanoseconds"`
	Decimal     string `json:"decimal"`
	CBOR        string `json:"cbor"`
	Std         string `json:"std,omitempty"`
}

func newReport(d duration.Duration) (Report, error) {
	data, err := d.MarshalCBOR()
	if err != nil {
		return Report{}, fmt.Errorf("failed to encode duration: %w", err)
	}
	r := Report{
		Duration:    d.String(),
		Seconds:     d.WholeSeconds(),
		Nanoseconds: d.SubsecNanoseconds(),
		Decimal:     d.AsSecondsDecimal().String(),
		CBOR:        hex.EncodeToString(data),
	}
	if std, err := d.Std(); err == nil {
		r.Std = std.String()
	}
	return r, nil
}

// writeReport renders d to w in the given format.
func writeReport(w io.Writer, d duration.Duration, format string) error {
	r, err := newReport(d)
	if err != nil {
		return err
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatText, "":
		fmt.Fprintf(w, "duration:    %s\n", r.Duration)
		fmt.Fprintf(w, "seconds:     %d\n", r.Seconds)
		fmt.Fprintf(w, "nanoseconds: %d\n", r.Nanoseconds)
		fmt.Fprintf(w, "decimal:     %ss\n", r.Decimal)
		fmt.Fprintf(w, "cbor:        %s\n", r.CBOR)
		if r.Std != "" {
			fmt.Fprintf(w, "std:         %s\n", r.Std)
		} else {
			fmt.Fprintln(w, "std:         out of range")
		}
		return nil
	}
	return fmt.Errorf("unknown format %q (want text or json)", format)
}

// RunEncode parses a decimal number of seconds and prints its encoding.
func RunEncode(seconds string, format string, w io.Writer) error {
	value, err := decimal.NewFromString(strings.TrimSuffix(seconds, "s"))
	if err != nil {
		return fmt.Errorf("invalid seconds %q: %w", seconds, err)
	}
	d, err := duration.SecondsDecimal(value)
	if err != nil {
		return err
	}
	return writeReport(w, d, format)
}

// RunDecode decodes a hex CBOR pair and prints the duration.
func RunDecode(encoded string, format string, w io.Writer) error {
	data, err := hex.DecodeString(strings.ReplaceAll(encoded, " ", ""))
	if err != nil {
		return fmt.Errorf("invalid hex: %w", err)
	}
	var d duration.Duration
	if err := d.UnmarshalCBOR(data); err != nil {
		return err
	}
	return writeReport(w, d, format)
}
