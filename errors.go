package pngmsg

import "errors"

var (
	ErrInvalidSignature = errors.New("pngmsg: invalid png signature")
	ErrInvalidChunkType = errors.New("pngmsg: invalid chunk type")
	ErrTruncated        = errors.New("pngmsg: truncated input")
	ErrCRCMismatch      = errors.New("pngmsg: crc mismatch")
	ErrChunkNotFound    = errors.New("pngmsg: chunk not found")
	ErrInvalidUTF8      = errors.New("pngmsg: data is not valid utf-8")
	ErrInvalidPayload   = errors.New("pngmsg: invalid message payload")
	ErrLimitExceeded    = errors.New("pngmsg: limit exceeded")
)
