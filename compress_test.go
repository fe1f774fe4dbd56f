package pngmsg

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

func TestSealOpen_RoundTrip(t *testing.T) {
	msg := []byte(strings.Repeat("the same words over and over ", 100))
	comps := []Compression{CompZIP, CompZSTD, CompLZ4, CompBR}
	for _, comp := range comps {
		t.Run(comp.String(), func(t *testing.T) {
			payload, err := sealMessage(comp, msg)
			if err != nil {
				t.Fatalf("sealMessage: %v", err)
			}
			if !bytes.HasPrefix(payload, envelopeMagic[:]) {
				t.Fatal("compressed payload missing envelope magic")
			}
			if payload[4] != byte(comp) {
				t.Fatalf("method byte = %d, want %d", payload[4], comp)
			}
			out, err := openMessage(payload, defaultLimits().MaxMessageUncompressed)
			if err != nil {
				t.Fatalf("openMessage: %v", err)
			}
			if !bytes.Equal(out, msg) {
				t.Fatal("round trip mismatch")
			}
		})
	}
}

func TestSeal_NoneIsRaw(t *testing.T) {
	msg := []byte("plain")
	payload, err := sealMessage(CompNone, msg)
	if err != nil {
		t.Fatalf("sealMessage: %v", err)
	}
	if !bytes.Equal(payload, msg) {
		t.Fatal("CompNone must store the message as-is")
	}
}

func TestOpen_RawPassthrough(t *testing.T) {
	out, err := openMessage([]byte("just text"), 1024)
	if err != nil {
		t.Fatalf("openMessage: %v", err)
	}
	if string(out) != "just text" {
		t.Fatalf("passthrough mangled data: %q", out)
	}
}

func TestOpen_BombLimit(t *testing.T) {
	payload, err := sealMessage(CompZSTD, bytes.Repeat([]byte{0}, 4096))
	if err != nil {
		t.Fatalf("sealMessage: %v", err)
	}
	if _, err := openMessage(payload, 16); !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}
}

func TestOpen_ShortEnvelope(t *testing.T) {
	payload := append([]byte{}, envelopeMagic[:]...)
	payload = append(payload, byte(CompZSTD))
	if _, err := openMessage(payload, 1024); !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
}

func TestOpen_UnknownMethod(t *testing.T) {
	payload := make([]byte, envelopeHeaderSize)
	copy(payload, envelopeMagic[:])
	payload[4] = 0x9
	if _, err := openMessage(payload, 1024); !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
}

func TestSeal_UnknownMethod(t *testing.T) {
	if _, err := sealMessage(Compression(0x9), []byte("x")); !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
}

func TestOpen_LengthPrefixDisagreement(t *testing.T) {
	payload, err := sealMessage(CompLZ4, []byte("twelve bytes"))
	if err != nil {
		t.Fatalf("sealMessage: %v", err)
	}
	// Claim fewer bytes than the stream actually holds.
	binary.BigEndian.PutUint64(payload[5:13], 4)
	if _, err := openMessage(payload, 1024); !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
}

func TestZipDecompress_RejectsForeignArchives(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("unexpected.name")
	_, _ = w.Write([]byte("data"))
	_ = zw.Close()
	if _, err := zipDecompress(buf.Bytes(), 4); !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
}

func TestCompressHelpers_ErrorPaths(t *testing.T) {
	// zip Create error via injection
	origCreate := zipCreate
	zipCreate = func(_ *zip.Writer, _ string) (io.Writer, error) { return nil, io.ErrClosedPipe }
	if err := zipCompressNamed(io.Discard, zipEntryName, []byte("x")); err == nil {
		zipCreate = origCreate
		t.Fatal("expected error")
	}
	zipCreate = origCreate

	// zip Close error via injection
	origClose := zipClose
	zipClose = func(_ *zip.Writer) error { return io.ErrClosedPipe }
	if err := zipCompressNamed(io.Discard, zipEntryName, []byte("x")); err == nil {
		zipClose = origClose
		t.Fatal("expected error")
	}
	zipClose = origClose

	// zstd writer construction error
	origZstdWriter := newZstdWriter
	newZstdWriter = func() (*zstd.Encoder, error) { return nil, io.ErrClosedPipe }
	if _, err := zstdCompress([]byte("x")); err == nil {
		newZstdWriter = origZstdWriter
		t.Fatal("expected error")
	}
	newZstdWriter = origZstdWriter

	// zstd reader construction error
	origZstdReader := newZstdReader
	newZstdReader = func() (*zstd.Decoder, error) { return nil, io.ErrClosedPipe }
	if _, err := zstdDecompress([]byte("x"), 1); err == nil {
		newZstdReader = origZstdReader
		t.Fatal("expected error")
	}
	newZstdReader = origZstdReader

	// lz4 Close error via injection
	origLz4Close := lz4Close
	lz4Close = func(_ *lz4.Writer) error { return io.ErrClosedPipe }
	if _, err := lz4Compress([]byte("x")); err == nil {
		lz4Close = origLz4Close
		t.Fatal("expected error")
	}
	lz4Close = origLz4Close
}

func TestParseCompression(t *testing.T) {
	cases := map[string]Compression{
		"none": CompNone, "": CompNone,
		"zip": CompZIP, "zstd": CompZSTD,
		"lz4": CompLZ4, "brotli": CompBR, "br": CompBR,
	}
	for in, want := range cases {
		got, err := ParseCompression(in)
		if err != nil {
			t.Errorf("ParseCompression(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseCompression(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseCompression("gzip"); err == nil {
		t.Error("expected error for unknown codec name")
	}
}
