package pngmsg

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
)

// crcOf computes the chunk checksum: CRC-32 (IEEE) over the type bytes
// followed by the data bytes. The length field is not covered.
func crcOf(t ChunkType, data []byte) uint32 {
	h := crc32.NewIEEE()
	h.Write(t[:])
	h.Write(data)
	return h.Sum32()
}

// readChunk reads one chunk frame from r:
//
//	[u32 BE data length][4-byte type][data][u32 BE CRC]
//
// The stored CRC is recomputed over type+data and must agree. Short
// reads surface as ErrTruncated so that a declared length larger than
// the remaining input is distinguishable from corruption.
func readChunk(r io.Reader, limits Limits) (Chunk, error) {
	var hdr [chunkHeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return Chunk{}, fmt.Errorf("%w: chunk header: %v", ErrTruncated, err)
	}
	length := binary.BigEndian.Uint32(hdr[0:4])
	var t ChunkType
	copy(t[:], hdr[4:8])

	if uint64(length) > limits.MaxChunkDataLen {
		return Chunk{}, fmt.Errorf("%w: chunk %q data length %d", ErrLimitExceeded, t.String(), length)
	}
	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return Chunk{}, fmt.Errorf("%w: chunk %q declares %d data bytes: %v", ErrTruncated, t.String(), length, err)
	}

	var tail [chunkFooterSize]byte
	if _, err := io.ReadFull(r, tail[:]); err != nil {
		return Chunk{}, fmt.Errorf("%w: chunk %q crc: %v", ErrTruncated, t.String(), err)
	}
	stored := binary.BigEndian.Uint32(tail[:])
	if computed := crcOf(t, data); computed != stored {
		return Chunk{}, fmt.Errorf("%w: chunk %q stored %d, computed %d", ErrCRCMismatch, t.String(), stored, computed)
	}
	return Chunk{chunkType: t, data: data, crc: stored}, nil
}

// writeChunk writes the chunk's wire frame to w. For any chunk built
// by readChunk the output is byte-identical to the input.
func writeChunk(w io.Writer, c Chunk) error {
	var hdr [chunkHeaderSize]byte
	binary.BigEndian.PutUint32(hdr[0:4], uint32(len(c.data)))
	copy(hdr[4:8], c.chunkType[:])
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	if len(c.data) > 0 {
		if _, err := w.Write(c.data); err != nil {
			return err
		}
	}
	var tail [chunkFooterSize]byte
	binary.BigEndian.PutUint32(tail[:], c.crc)
	_, err := w.Write(tail[:])
	return err
}
