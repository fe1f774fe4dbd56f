package pngmsg

type Limits struct {
	MaxChunkDataLen        uint64 // single chunk data length as stored in the frame
	MaxChunks              int
	MaxMessageLen          uint64 // message bytes accepted by EmbedMessage
	MaxMessageUncompressed uint64 // message bytes after envelope decompression
}

func defaultLimits() Limits {
	return Limits{
		MaxChunkDataLen:        pngMaxChunkDataLen, // PNG spec cap
		MaxChunks:              10_000,
		MaxMessageLen:          64 << 20,  // 64 MiB
		MaxMessageUncompressed: 256 << 20, // 256 MiB
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxChunkDataLen == 0 {
		l.MaxChunkDataLen = d.MaxChunkDataLen
	}
	if l.MaxChunkDataLen > pngMaxChunkDataLen {
		l.MaxChunkDataLen = pngMaxChunkDataLen
	}
	if l.MaxChunks == 0 {
		l.MaxChunks = d.MaxChunks
	}
	if l.MaxMessageLen == 0 {
		l.MaxMessageLen = d.MaxMessageLen
	}
	if l.MaxMessageUncompressed == 0 {
		l.MaxMessageUncompressed = d.MaxMessageUncompressed
	}
	return l
}
