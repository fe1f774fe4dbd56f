package pngmsg

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Png is an ordered sequence of chunks representing a whole PNG file.
// The order is the on-disk chunk order and is preserved verbatim on
// re-encoding. The conventional IHDR-first/IEND-last layout is not
// enforced beyond preserving whatever was parsed.
type Png struct {
	chunks []Chunk
}

// New builds a Png from chunks, in order. The fixed signature is
// implied and emitted by Encode.
func New(chunks ...Chunk) *Png {
	p := &Png{chunks: make([]Chunk, len(chunks))}
	copy(p.chunks, chunks)
	return p
}

// Decode reads a PNG datastream from r.
//
// The decoding process:
//  1. Reads and verifies the 8-byte signature
//  2. Parses chunk frames until the stream is exhausted
//
// Any chunk parse failure aborts the whole-file parse and is returned
// as-is. Decode returns ErrInvalidSignature if the stream does not
// start with the PNG magic bytes, ErrTruncated if a chunk declares
// more data than remains, ErrCRCMismatch on checksum disagreement, and
// ErrLimitExceeded when a size limit is exceeded.
//
// Use ReadOption functions to customize behavior:
//   - WithReadLimits(l): set custom size limits
func Decode(r io.Reader, opts ...ReadOption) (*Png, error) {
	cfg := readConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	br := bufio.NewReader(r)
	var sig [8]byte
	if _, err := io.ReadFull(br, sig[:]); err != nil {
		return nil, fmt.Errorf("%w: signature: %v", ErrTruncated, err)
	}
	if sig != Signature {
		return nil, ErrInvalidSignature
	}

	p := &Png{}
	for {
		if _, err := br.Peek(1); err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if len(p.chunks) >= cfg.limits.MaxChunks {
			return nil, fmt.Errorf("%w: more than %d chunks", ErrLimitExceeded, cfg.limits.MaxChunks)
		}
		c, err := readChunk(br, cfg.limits)
		if err != nil {
			return nil, err
		}
		p.chunks = append(p.chunks, c)
	}
	return p, nil
}

// Encode writes p's full datastream to w: signature followed by each
// chunk's frame in sequence order. For any Png produced by Decode the
// output is byte-identical to the input.
func Encode(w io.Writer, p *Png) error {
	if _, err := w.Write(Signature[:]); err != nil {
		return err
	}
	for _, c := range p.chunks {
		if err := writeChunk(w, c); err != nil {
			return err
		}
	}
	return nil
}

// Bytes serializes the whole file into memory.
func (p *Png) Bytes() []byte {
	n := len(Signature)
	for _, c := range p.chunks {
		n += chunkOverhead + len(c.data)
	}
	var buf bytes.Buffer
	buf.Grow(n)
	// bytes.Buffer writes cannot fail
	_ = Encode(&buf, p)
	return buf.Bytes()
}

// AppendChunk adds c at the end of the sequence. Multiple chunks of
// the same type are permitted, matching PNG's allowance for repeated
// ancillary chunks.
func (p *Png) AppendChunk(c Chunk) {
	p.chunks = append(p.chunks, c)
}

// RemoveFirstChunk removes the first chunk whose type matches typeStr
// and returns it. It returns ErrChunkNotFound when no chunk of that
// type exists.
func (p *Png) RemoveFirstChunk(typeStr string) (Chunk, error) {
	for i, c := range p.chunks {
		if c.chunkType.String() == typeStr {
			p.chunks = append(p.chunks[:i], p.chunks[i+1:]...)
			return c, nil
		}
	}
	return Chunk{}, fmt.Errorf("%w: %q", ErrChunkNotFound, typeStr)
}

// ChunkByType returns the first chunk whose type matches typeStr,
// without mutating the sequence.
func (p *Png) ChunkByType(typeStr string) (Chunk, bool) {
	for _, c := range p.chunks {
		if c.chunkType.String() == typeStr {
			return c, true
		}
	}
	return Chunk{}, false
}

// Chunks returns a copy of the chunk sequence in file order.
func (p *Png) Chunks() []Chunk {
	out := make([]Chunk, len(p.chunks))
	copy(out, p.chunks)
	return out
}
