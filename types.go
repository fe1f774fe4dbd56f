package pngmsg

import "fmt"

// Signature is the 8-byte signature that begins every PNG datastream.
var Signature = [8]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

const (
	chunkHeaderSize = 8 // u32 data length + 4-byte chunk type
	chunkFooterSize = 4 // u32 CRC-32 of type+data
	chunkOverhead   = chunkHeaderSize + chunkFooterSize

	// pngMaxChunkDataLen is the PNG specification's cap on a single
	// chunk's data length (2^31-1).
	pngMaxChunkDataLen = 1<<31 - 1
)

// Compression selects the codec used for an embedded message payload.
type Compression uint8

const (
	CompNone Compression = 0x0
	CompZIP  Compression = 0x1
	CompZSTD Compression = 0x2
	CompLZ4  Compression = 0x3
	CompBR   Compression = 0x4
)

func (c Compression) String() string {
	switch c {
	case CompNone:
		return "none"
	case CompZIP:
		return "zip"
	case CompZSTD:
		return "zstd"
	case CompLZ4:
		return "lz4"
	case CompBR:
		return "brotli"
	}
	return fmt.Sprintf("compression(%d)", uint8(c))
}

// ParseCompression maps a codec name as accepted on the command line
// to its Compression value.
func ParseCompression(s string) (Compression, error) {
	switch s {
	case "none", "":
		return CompNone, nil
	case "zip":
		return CompZIP, nil
	case "zstd":
		return CompZSTD, nil
	case "lz4":
		return CompLZ4, nil
	case "brotli", "br":
		return CompBR, nil
	}
	return 0, fmt.Errorf("%w: unknown compression %q", ErrInvalidPayload, s)
}

// Compressed message payloads are wrapped in a small envelope so that
// extraction can tell them apart from plain text:
//
//	[4-byte magic][1-byte method][u64 BE uncompressed length][compressed bytes]
//
// The magic's first byte (0xFE) can never start a well-formed UTF-8
// sequence, so an uncompressed text message is never mistaken for an
// envelope.
var envelopeMagic = [4]byte{0xFE, 'P', 'M', 'E'}

const envelopeHeaderSize = 4 + 1 + 8
