package pngmsg

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// ChunkInfo summarizes one chunk for listing.
type ChunkInfo struct {
	Type       string
	Length     uint32
	CRC        uint32
	Critical   bool
	Public     bool
	SafeToCopy bool
	Valid      bool
}

func (ci ChunkInfo) String() string {
	class := "ancillary"
	if ci.Critical {
		class = "critical"
	}
	visibility := "private"
	if ci.Public {
		visibility = "public"
	}
	copyable := "unsafe-to-copy"
	if ci.SafeToCopy {
		copyable = "safe-to-copy"
	}
	validity := "valid"
	if !ci.Valid {
		validity = "invalid"
	}
	return fmt.Sprintf("%-4s length=%-8d crc=%08x %s %s %s %s",
		ci.Type, ci.Length, ci.CRC, class, visibility, copyable, validity)
}

// EmbedMessage hides message inside png under a chunk of the given
// type and returns the rewritten file. The new chunk is appended at
// the end of the sequence; all existing chunks are preserved
// byte-for-byte. The result is built entirely in memory, so a failure
// never leaves a partially rewritten file behind.
//
// Use WriteOption functions to customize behavior:
//   - WithCompression(comp): compress the message payload
//   - WithWriteLimits(l): set custom size limits
//
// EmbedMessage returns ErrInvalidChunkType unless typeStr is exactly
// four ASCII letters, and ErrInvalidUTF8 if message is not valid text.
func EmbedMessage(png []byte, typeStr, message string, opts ...WriteOption) ([]byte, error) {
	cfg := writeConfig{limits: defaultLimits(), compression: CompNone}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	t, err := ParseChunkType(typeStr)
	if err != nil {
		return nil, err
	}
	if !utf8.ValidString(message) {
		return nil, fmt.Errorf("%w: message", ErrInvalidUTF8)
	}
	if uint64(len(message)) > cfg.limits.MaxMessageLen {
		return nil, fmt.Errorf("%w: message length %d", ErrLimitExceeded, len(message))
	}

	payload, err := sealMessage(cfg.compression, []byte(message))
	if err != nil {
		return nil, err
	}
	p, err := Decode(bytes.NewReader(png), WithReadLimits(cfg.limits))
	if err != nil {
		return nil, err
	}
	p.AppendChunk(NewChunk(t, payload))
	return p.Bytes(), nil
}

// ExtractMessage looks up the first chunk of the given type and
// returns its message text. An absent chunk is a legitimate query
// outcome, reported as ok=false with a nil error, not a failure.
// Compressed payloads (see WithCompression) are detected and unpacked
// transparently.
func ExtractMessage(png []byte, typeStr string, opts ...ReadOption) (msg string, ok bool, err error) {
	cfg := readConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	t, err := ParseChunkType(typeStr)
	if err != nil {
		return "", false, err
	}
	p, err := Decode(bytes.NewReader(png), WithReadLimits(cfg.limits))
	if err != nil {
		return "", false, err
	}
	c, found := p.ChunkByType(t.String())
	if !found {
		return "", false, nil
	}
	data, err := openMessage(c.data, cfg.limits.MaxMessageUncompressed)
	if err != nil {
		return "", true, err
	}
	if !utf8.Valid(data) {
		return "", true, fmt.Errorf("%w: chunk %q", ErrInvalidUTF8, t.String())
	}
	return string(data), true, nil
}

// RemoveMessage removes the first chunk of the given type and returns
// the rewritten file along with the removed chunk. It returns
// ErrChunkNotFound when no chunk of that type exists.
func RemoveMessage(png []byte, typeStr string, opts ...ReadOption) ([]byte, Chunk, error) {
	cfg := readConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	t, err := ParseChunkType(typeStr)
	if err != nil {
		return nil, Chunk{}, err
	}
	p, err := Decode(bytes.NewReader(png), WithReadLimits(cfg.limits))
	if err != nil {
		return nil, Chunk{}, err
	}
	removed, err := p.RemoveFirstChunk(t.String())
	if err != nil {
		return nil, Chunk{}, err
	}
	return p.Bytes(), removed, nil
}

// ListChunks parses png and returns one ChunkInfo per chunk, in file
// order.
func ListChunks(png []byte, opts ...ReadOption) ([]ChunkInfo, error) {
	p, err := Decode(bytes.NewReader(png), opts...)
	if err != nil {
		return nil, err
	}
	infos := make([]ChunkInfo, 0, len(p.chunks))
	for _, c := range p.chunks {
		t := c.Type()
		infos = append(infos, ChunkInfo{
			Type:       t.String(),
			Length:     c.Length(),
			CRC:        c.CRC(),
			Critical:   t.IsCritical(),
			Public:     t.IsPublic(),
			SafeToCopy: t.IsSafeToCopy(),
			Valid:      t.IsValid(),
		})
	}
	return infos, nil
}
