package duration

import (
	"errors"
	"fmt"

	"github.com/mash-protocol/mash-time/internal/wire"
)

// ErrInvalidWire reports an encoded duration that is malformed or not in
// canonical form.
var ErrInvalidWire = errors.New("invalid duration encoding")

// MarshalCBOR encodes the duration as a [seconds, nanoseconds] array.
func (d Duration) MarshalCBOR() ([]byte, error) {
	return wire.EncodePair(d.seconds, d.nanoseconds)
}

// UnmarshalCBOR decodes a [seconds, nanoseconds] array. The pair must
// already be canonical; New is not applied, so a decoded value encodes back
// to the same bytes.
func (d *Duration) UnmarshalCBOR(data []byte) error {
	seconds, nanoseconds, err := wire.DecodePair[int64, int32](data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidWire, err)
	}
	if !canonical(seconds, nanoseconds) {
		return fmt.Errorf("%w: [%d, %d] is not normalized", ErrInvalidWire, seconds, nanoseconds)
	}
	*d = newUnchecked(seconds, nanoseconds)
	return nil
}

// canonical reports whether the pair already satisfies the invariant.
func canonical(seconds int64, nanoseconds int32) bool {
	if nanoseconds <= -nanosPerSecond || nanoseconds >= nanosPerSecond {
		return false
	}
	return !(seconds > 0 && nanoseconds < 0) && !(seconds < 0 && nanoseconds > 0)
}
