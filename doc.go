// Package pngmsg hides, recovers and removes text messages inside PNG
// files by working at the chunk level of the container format.
//
// A PNG file is an 8-byte signature followed by a sequence of chunks,
// each framed as a big-endian u32 data length, a 4-byte type code, the
// data bytes, and a CRC-32 checksum over type+data. pngmsg parses that
// sequence, lets callers insert, look up and remove chunks by type,
// and re-serializes the file byte-for-byte. Chunk payloads other than
// the one carrying the message are treated as opaque bytes; no pixel
// data is ever decoded.
//
// # Basic Usage
//
// To hide a message:
//
//	in, _ := os.ReadFile("image.png")
//	out, err := pngmsg.EmbedMessage(in, "ruSt", "a secret")
//	if err != nil {
//		// ...
//	}
//	_ = os.WriteFile("image.png", out, 0o644)
//
// To recover it:
//
//	msg, ok, err := pngmsg.ExtractMessage(out, "ruSt")
//
// ok is false when no chunk of the requested type exists; that is a
// normal query outcome, not an error.
//
// The carrier chunk type should be ancillary (lowercase first letter)
// so that image viewers ignore it, and private (lowercase second
// letter) since it is not a registered public chunk.
//
// # Message Compression
//
// EmbedMessage can compress the payload with ZIP, Zstandard, LZ4 or
// Brotli via WithCompression. Compressed payloads carry a small
// self-describing envelope and are unpacked transparently by
// ExtractMessage, with configurable [Limits] guarding against
// oversized allocations and decompression bombs.
package pngmsg
