// Command mash-duration inspects signed durations and their wire encoding.
//
// Usage:
//
//	mash-duration <command> [flags] <args>
//
// Commands:
//
//	encode   Encode a decimal number of seconds
//	decode   Decode a hex CBOR [seconds, nanoseconds] pair
//	between  Show the span between two RFC3339 timestamps
//	shift    Move an RFC3339 timestamp by a number of seconds
//
// Examples:
//
//	# Encode one and a half seconds backwards
//	mash-duration encode -- -1.5
//
//	# Decode a pair captured off the wire
//	mash-duration decode 82011a1dcd6500
//
//	# Span between two timestamps, as JSON
//	mash-duration between -format json 2024-01-01T00:00:00Z 2024-03-01T12:30:00Z
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mash-protocol/mash-time/cmd/mash-duration/commands"
)

const usage = `mash-duration - signed duration inspector

Usage:
  mash-duration <command> [flags] <args>

Commands:
  encode   Encode a decimal number of seconds
  decode   Decode a hex CBOR [seconds, nanoseconds] pair
  between  Show the span between two RFC3339 timestamps
  shift    Move an RFC3339 timestamp by a number of seconds

Use "mash-duration <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "encode":
		runEncode(args)
	case "decode":
		runDecode(args)
	case "between":
		runBetween(args)
	case "shift":
		runShift(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// newFlagSet builds a subcommand flag set with the shared -format flag.
func newFlagSet(name, synopsis, args string) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `mash-duration %s - %s

Usage:
  mash-duration %s [flags] %s

Flags:
`, name, synopsis, name, args)
		fs.PrintDefaults()
	}
	format := fs.String("format", commands.FormatText, "Output format (text, json)")
	return fs, format
}

func parseArgs(fs *flag.FlagSet, args []string, n int, what string) []string {
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < n {
		fmt.Fprintf(os.Stderr, "Error: %s required\n", what)
		fs.Usage()
		os.Exit(1)
	}
	return fs.Args()
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runEncode(args []string) {
	fs, format := newFlagSet("encode", "Encode a decimal number of seconds", "<seconds>")
	rest := parseArgs(fs, args, 1, "seconds")
	exitOnError(commands.RunEncode(rest[0], *format, os.Stdout))
}

func runDecode(args []string) {
	fs, format := newFlagSet("decode", "Decode a hex CBOR [seconds, nanoseconds] pair", "<hex>")
	rest := parseArgs(fs, args, 1, "hex pair")
	exitOnError(commands.RunDecode(rest[0], *format, os.Stdout))
}

func runBetween(args []string) {
	fs, format := newFlagSet("between", "Show the span between two RFC3339 timestamps", "<start> <end>")
	rest := parseArgs(fs, args, 2, "start and end times")
	exitOnError(commands.RunBetween(rest[0], rest[1], *format, os.Stdout))
}

func runShift(args []string) {
	fs, format := newFlagSet("shift", "Move an RFC3339 timestamp by a number of seconds", "<time> <seconds>")
	rest := parseArgs(fs, args, 2, "time and seconds")
	exitOnError(commands.RunShift(rest[0], rest[1], *format, os.Stdout))
}
