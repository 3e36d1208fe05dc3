// Package hexdecode converts hex strings like "A489B1" into bytes like [0xA4, 0x89, 0xB1].
//
// Odd-length strings are treated as if they had an implicit leading zero, so "489B1"
// results in [0x04, 0x89, 0xB1].
//
// NOTE: Decode and DecodeInto are PERMISSIVE: any character outside [0-9a-fA-F] is
// silently decoded as a zero nibble, so "ZZ" results in [0x00]. Use DecodeStrict or a
// strict Decoder in order to get errors.ErrInvalidHexDigit instead.
package hexdecode

import (
	"github.com/cockroachdb/errors"
	"github.com/indigo-web/strutils/config"
	strerrors "github.com/indigo-web/strutils/errors"
	"github.com/indigo-web/strutils/internal/hexconv"
)

// DecodedLen returns the number of bytes n hex digits are decoded into.
func DecodedLen(n int) int {
	return (n + 1) / 2
}

// Decode decodes the hex string permissively.
func Decode(hex string) []byte {
	dst := make([]byte, DecodedLen(len(hex)))
	decode(dst, hex)

	return dst
}

// DecodeInto decodes the hex string permissively into dst, returning the number of bytes
// written. The dst must be at least DecodedLen(len(hex)) bytes long, otherwise
// errors.ErrShortBuffer is returned and dst is left untouched.
func DecodeInto(dst []byte, hex string) (int, error) {
	n := DecodedLen(len(hex))
	if len(dst) < n {
		return 0, errors.Wrapf(strerrors.ErrShortBuffer, "need %d bytes, got %d", n, len(dst))
	}

	decode(dst, hex)

	return n, nil
}

// DecodeStrict decodes the hex string, failing with errors.ErrInvalidHexDigit on the
// first non-hex character.
func DecodeStrict(hex string) ([]byte, error) {
	dst := make([]byte, DecodedLen(len(hex)))
	if offset := decodeStrict(dst, hex); offset != -1 {
		return nil, errors.Wrapf(
			strerrors.ErrInvalidHexDigit, "%#02x at offset %d", hex[offset], offset,
		)
	}

	return dst, nil
}

// Decoder decodes hex strings either strictly or permissively, depending on the config.
type Decoder struct {
	strict bool
}

func NewDecoder(cfg config.Hex) Decoder {
	return Decoder{strict: cfg.Strict}
}

// Decode never fails unless the decoder is strict.
func (d Decoder) Decode(hex string) ([]byte, error) {
	if d.strict {
		return DecodeStrict(hex)
	}

	return Decode(hex), nil
}

func decode(dst []byte, hex string) {
	i, j := 0, 0
	if len(hex)%2 == 1 {
		dst[0] = hexconv.Nibble(hex[0])
		i, j = 1, 1
	}

	for ; i < len(hex); i, j = i+2, j+1 {
		dst[j] = hexconv.Nibble(hex[i])<<4 | hexconv.Nibble(hex[i+1])
	}
}

// decodeStrict returns the offset of the first invalid character, or -1 if there's none.
func decodeStrict(dst []byte, hex string) int {
	i, j := 0, 0
	if len(hex)%2 == 1 {
		x := hexconv.Halfbyte[hex[0]]
		if x == 0xFF {
			return 0
		}

		dst[0] = x
		i, j = 1, 1
	}

	for ; i < len(hex); i, j = i+2, j+1 {
		x, y := hexconv.Halfbyte[hex[i]], hexconv.Halfbyte[hex[i+1]]
		if x|y == 0xFF {
			if x == 0xFF {
				return i
			}

			return i + 1
		}

		dst[j] = x<<4 | y
	}

	return -1
}
