package pngmsg

import "testing"

func TestLimits_WithDefaults(t *testing.T) {
	var l Limits
	got := l.withDefaults()
	if got != defaultLimits() {
		t.Fatalf("zero limits should become defaults: %+v", got)
	}

	custom := Limits{MaxChunks: 3}.withDefaults()
	if custom.MaxChunks != 3 {
		t.Fatalf("explicit MaxChunks overwritten: %d", custom.MaxChunks)
	}
	if custom.MaxChunkDataLen != defaultLimits().MaxChunkDataLen {
		t.Fatal("unset fields should take defaults")
	}
}

func TestLimits_ChunkDataLenClampedToPngCap(t *testing.T) {
	l := Limits{MaxChunkDataLen: 1 << 40}.withDefaults()
	if l.MaxChunkDataLen != pngMaxChunkDataLen {
		t.Fatalf("MaxChunkDataLen = %d, want PNG cap %d", l.MaxChunkDataLen, pngMaxChunkDataLen)
	}
}
