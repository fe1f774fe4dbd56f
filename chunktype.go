package pngmsg

import "fmt"

// ChunkType is the 4-byte type code of a PNG chunk. The case of each
// byte carries meaning: bit 5 (0x20) of each of the four bytes encodes
// the ancillary, private, reserved and safe-to-copy properties laid
// out in the PNG chunk naming conventions.
//
// A ChunkType built directly from bytes may be invalid; validity is a
// reported property, not a construction-time constraint, so that
// malformed chunks can still be listed. ParseChunkType is the strict
// path used for user-supplied type strings.
type ChunkType [4]byte

const propertyBit = 0x20

// ParseChunkType parses a user-supplied type string. It returns
// ErrInvalidChunkType unless s is exactly four ASCII letters.
func ParseChunkType(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, fmt.Errorf("%w: expected 4 bytes, got %d", ErrInvalidChunkType, len(s))
	}
	var t ChunkType
	for i := 0; i < 4; i++ {
		if !isASCIILetter(s[i]) {
			return ChunkType{}, fmt.Errorf("%w: %q contains a non-letter byte", ErrInvalidChunkType, s)
		}
		t[i] = s[i]
	}
	return t, nil
}

func isASCIILetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// Bytes returns the raw 4 type bytes.
func (t ChunkType) Bytes() [4]byte { return t }

func (t ChunkType) String() string { return string(t[:]) }

// IsValid reports whether all four bytes are ASCII letters and the
// reserved bit is clear.
func (t ChunkType) IsValid() bool {
	for _, b := range t {
		if !isASCIILetter(b) {
			return false
		}
	}
	return t.IsReservedBitValid()
}

// IsCritical reports whether the chunk is critical to displaying the
// image (bit 5 of the first byte clear).
func (t ChunkType) IsCritical() bool { return t[0]&propertyBit == 0 }

// IsPublic reports whether the type is defined by the PNG spec or a
// registered extension (bit 5 of the second byte clear).
func (t ChunkType) IsPublic() bool { return t[1]&propertyBit == 0 }

// IsPrivate is the complement of IsPublic.
func (t ChunkType) IsPrivate() bool { return !t.IsPublic() }

// IsReservedBitValid reports whether bit 5 of the third byte is clear,
// as the PNG spec requires.
func (t ChunkType) IsReservedBitValid() bool { return t[2]&propertyBit == 0 }

// IsSafeToCopy reports whether editors that do not understand the
// chunk may carry it over unchanged (bit 5 of the fourth byte set).
func (t ChunkType) IsSafeToCopy() bool { return t[3]&propertyBit != 0 }
