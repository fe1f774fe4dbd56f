package pngmsg

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// Chunk is one length-prefixed, typed, checksummed unit of a PNG
// datastream. A Chunk is immutable once built; editing a chunk is
// modeled as remove-then-append on the owning Png.
type Chunk struct {
	chunkType ChunkType
	data      []byte
	crc       uint32
}

// NewChunk builds a chunk from a type and a data buffer, computing the
// CRC over type+data. The data is copied.
func NewChunk(t ChunkType, data []byte) Chunk {
	d := make([]byte, len(data))
	copy(d, data)
	return Chunk{chunkType: t, data: d, crc: crcOf(t, d)}
}

// ParseChunk parses a single chunk frame from b. It fails with
// ErrTruncated if b is shorter than the declared length demands and
// ErrCRCMismatch if the stored checksum disagrees with recomputation.
// Trailing bytes after the frame are ignored.
func ParseChunk(b []byte) (Chunk, error) {
	return readChunk(bytes.NewReader(b), defaultLimits())
}

// Length is the length of the chunk's data, as stored in the frame's
// length field.
func (c Chunk) Length() uint32 { return uint32(len(c.data)) }

// Type is the chunk's 4-byte type code.
func (c Chunk) Type() ChunkType { return c.chunkType }

// Data returns a copy of the chunk's data bytes.
func (c Chunk) Data() []byte {
	d := make([]byte, len(c.data))
	copy(d, c.data)
	return d
}

// CRC is the chunk's CRC-32 checksum over type+data.
func (c Chunk) CRC() uint32 { return c.crc }

// DataAsString reinterprets the chunk data as UTF-8 text. It returns
// ErrInvalidUTF8 when the data is not valid text.
func (c Chunk) DataAsString() (string, error) {
	if !utf8.Valid(c.data) {
		return "", fmt.Errorf("%w: chunk %q", ErrInvalidUTF8, c.chunkType.String())
	}
	return string(c.data), nil
}

// Bytes serializes the chunk's full wire frame:
// length, type, data, CRC.
func (c Chunk) Bytes() []byte {
	var buf bytes.Buffer
	buf.Grow(chunkOverhead + len(c.data))
	// bytes.Buffer writes cannot fail
	_ = writeChunk(&buf, c)
	return buf.Bytes()
}

func (c Chunk) String() string {
	return fmt.Sprintf("%s length=%d crc=%d", c.chunkType.String(), len(c.data), c.crc)
}
