package pngmsg

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Function variables for testing injection.
var (
	newZstdWriter = func() (*zstd.Encoder, error) { return zstd.NewWriter(nil) }
	newZstdReader = func() (*zstd.Decoder, error) { return zstd.NewReader(nil) }
	zipCreate     = func(zw *zip.Writer, name string) (io.Writer, error) { return zw.Create(name) }
	zipClose      = func(zw *zip.Writer) error { return zw.Close() }
	zipOpen       = func(zf *zip.File) (io.ReadCloser, error) { return zf.Open() }
	readAll       = io.ReadAll
	lz4Close      = func(w *lz4.Writer) error { return w.Close() }
	brotliClose   = func(w *brotli.Writer) error { return w.Close() }
	brotliWrite   = func(w *brotli.Writer, p []byte) (int, error) { return w.Write(p) }
)

const zipEntryName = "message.txt"

// sealMessage produces the chunk payload for a message. For CompNone
// the message bytes are stored as-is. Otherwise the compressed bytes
// are wrapped in the envelope described in types.go.
func sealMessage(comp Compression, msg []byte) ([]byte, error) {
	if comp == CompNone {
		return msg, nil
	}
	var compressed []byte
	var err error
	switch comp {
	case CompZIP:
		compressed, err = zipCompress(msg)
	case CompZSTD:
		compressed, err = zstdCompress(msg)
	case CompLZ4:
		compressed, err = lz4Compress(msg)
	case CompBR:
		compressed, err = brotliCompress(msg)
	default:
		return nil, fmt.Errorf("%w: unknown compression %d", ErrInvalidPayload, comp)
	}
	if err != nil {
		return nil, err
	}
	payload := make([]byte, envelopeHeaderSize, envelopeHeaderSize+len(compressed))
	copy(payload[0:4], envelopeMagic[:])
	payload[4] = byte(comp)
	binary.BigEndian.PutUint64(payload[5:13], uint64(len(msg)))
	return append(payload, compressed...), nil
}

// openMessage recovers the message bytes from a chunk payload. A
// payload that does not start with the envelope magic is returned
// as-is; otherwise it is decompressed with maxUncompressed enforced
// to prevent decompression bombs.
func openMessage(payload []byte, maxUncompressed uint64) ([]byte, error) {
	if len(payload) < 4 || !bytes.Equal(payload[0:4], envelopeMagic[:]) {
		return payload, nil
	}
	if len(payload) < envelopeHeaderSize {
		return nil, fmt.Errorf("%w: envelope too short", ErrInvalidPayload)
	}
	comp := Compression(payload[4])
	uncompressedLen := binary.BigEndian.Uint64(payload[5:13])
	if uncompressedLen > maxUncompressed {
		return nil, fmt.Errorf("%w: uncompressed length %d", ErrLimitExceeded, uncompressedLen)
	}
	compressedBytes := payload[envelopeHeaderSize:]

	var out []byte
	var err error
	switch comp {
	case CompZIP:
		out, err = zipDecompress(compressedBytes, uncompressedLen)
	case CompZSTD:
		out, err = zstdDecompress(compressedBytes, uncompressedLen)
	case CompLZ4:
		out, err = lz4Decompress(compressedBytes, uncompressedLen)
	case CompBR:
		out, err = brotliDecompress(compressedBytes, uncompressedLen)
	default:
		return nil, fmt.Errorf("%w: unknown compression %d", ErrInvalidPayload, comp)
	}
	if err != nil {
		return nil, err
	}
	if uint64(len(out)) != uncompressedLen {
		return nil, fmt.Errorf("%w: decompressed length %d != expected %d", ErrInvalidPayload, len(out), uncompressedLen)
	}
	return out, nil
}

// zipCompress creates a ZIP archive containing in as a single entry.
func zipCompress(in []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := zipCompressNamed(&buf, zipEntryName, in); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func zipCompressNamed(w io.Writer, name string, in []byte) error {
	zw := zip.NewWriter(w)
	entry, err := zipCreate(zw, name)
	if err != nil {
		_ = zipClose(zw)
		return err
	}
	if _, err := entry.Write(in); err != nil {
		_ = zipClose(zw)
		return err
	}
	return zipClose(zw)
}

// zipDecompress extracts the single entry from a ZIP archive. It
// validates the entry name and that the uncompressed size matches
// expected.
func zipDecompress(zipBytes []byte, expected uint64) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	if err != nil {
		return nil, err
	}
	if len(zr.File) != 1 {
		return nil, fmt.Errorf("%w: zip must contain exactly one entry", ErrInvalidPayload)
	}
	zf := zr.File[0]
	if zf.Name != zipEntryName {
		return nil, fmt.Errorf("%w: zip entry name must be %s", ErrInvalidPayload, zipEntryName)
	}
	if zf.FileInfo().IsDir() {
		return nil, fmt.Errorf("%w: zip entry must be a file", ErrInvalidPayload)
	}
	if zf.UncompressedSize64 != expected {
		return nil, fmt.Errorf("%w: zip uncompressed size %d != expected %d", ErrInvalidPayload, zf.UncompressedSize64, expected)
	}
	rc, err := zipOpen(zf)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return readAll(io.LimitReader(rc, int64(expected)))
}

// zstdCompress compresses in using the Zstandard algorithm.
func zstdCompress(in []byte) ([]byte, error) {
	enc, err := newZstdWriter()
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(in, nil), nil
}

// zstdDecompress decompresses Zstandard-compressed data. It rejects
// output that exceeds expected bytes.
func zstdDecompress(in []byte, expected uint64) ([]byte, error) {
	dec, err := newZstdReader()
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	out, err := dec.DecodeAll(in, nil)
	if err != nil {
		return nil, err
	}
	if uint64(len(out)) > expected {
		return nil, fmt.Errorf("%w: zstd expanded beyond expected size", ErrInvalidPayload)
	}
	return out, nil
}

// lz4Compress compresses in using the LZ4 algorithm.
func lz4Compress(in []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := lz4CompressTo(&buf, in); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func lz4CompressTo(w io.Writer, in []byte) error {
	zw := lz4.NewWriter(w)
	if _, err := zw.Write(in); err != nil {
		_ = lz4Close(zw)
		return err
	}
	return lz4Close(zw)
}

// lz4Decompress decompresses LZ4-compressed data. A LimitReader caps
// expansion at expected bytes.
func lz4Decompress(in []byte, expected uint64) ([]byte, error) {
	r := lz4.NewReader(bytes.NewReader(in))
	b, err := io.ReadAll(io.LimitReader(r, int64(expected)+1))
	if err != nil {
		return nil, err
	}
	if uint64(len(b)) > expected {
		return nil, fmt.Errorf("%w: lz4 expanded beyond expected size", ErrInvalidPayload)
	}
	return b, nil
}

// brotliCompress compresses in using the Brotli algorithm.
func brotliCompress(in []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := brotliCompressTo(&buf, in); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func brotliCompressTo(w io.Writer, in []byte) error {
	bw := brotli.NewWriter(w)
	if _, err := brotliWrite(bw, in); err != nil {
		_ = brotliClose(bw)
		return err
	}
	return brotliClose(bw)
}

// brotliDecompress decompresses Brotli-compressed data. A LimitReader
// caps expansion at expected bytes.
func brotliDecompress(in []byte, expected uint64) ([]byte, error) {
	r := brotli.NewReader(bytes.NewReader(in))
	b, err := readAll(io.LimitReader(r, int64(expected)+1))
	if err != nil {
		return nil, err
	}
	if uint64(len(b)) > expected {
		return nil, fmt.Errorf("%w: brotli expanded beyond expected size", ErrInvalidPayload)
	}
	return b, nil
}
