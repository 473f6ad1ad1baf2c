// Package wire holds the CBOR codec shared by the duration types.
//
// A duration crosses the wire as a two-element array of whole seconds and
// a sub-second nanosecond count, the same shape for the signed and the
// unsigned representation.
package wire

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder mode for duration pairs.
// Configured for deterministic encoding.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for duration pairs.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:        cbor.SortCanonical,
		IndefLength: cbor.IndefLengthForbidden,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	// Pairs are fixed-size; anything indefinite or oversized is malformed
	decOpts := cbor.DecOptions{
		IndefLength:      cbor.IndefLengthForbidden,
		MaxArrayElements: 16,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// Seconds is the set of whole-second field types.
type Seconds interface {
	~int64 | ~uint64
}

// Nanos is the set of sub-second field types.
type Nanos interface {
	~int32 | ~uint32
}

// pair is the array form of a duration on the wire.
type pair[S Seconds, N Nanos] struct {
	_           struct{} `cbor:",toarray"`
	Seconds     S
	Nanoseconds N
}

// EncodePair encodes a seconds/nanoseconds pair as a CBOR array.
func EncodePair[S Seconds, N Nanos](seconds S, nanoseconds N) ([]byte, error) {
	return encMode.Marshal(pair[S, N]{Seconds: seconds, Nanoseconds: nanoseconds})
}

// DecodePair decodes a CBOR array into a seconds/nanoseconds pair.
// Range checks beyond the field widths are left to the caller.
func DecodePair[S Seconds, N Nanos](data []byte) (S, N, error) {
	var p pair[S, N]
	if err := decMode.Unmarshal(data, &p); err != nil {
		return 0, 0, fmt.Errorf("failed to decode duration pair: %w", err)
	}
	return p.Seconds, p.Nanoseconds, nil
}
