package fallingsand

import "testing"

func TestNewChunkIndexDimensions(t *testing.T) {
	ci := newChunkIndex(64, 96)
	if ci.cols != 2 || ci.rows != 3 {
		t.Fatalf("cols,rows = %d,%d want 2,3", ci.cols, ci.rows)
	}
}

func TestNewChunkIndexSmallerThanOneChunk(t *testing.T) {
	ci := newChunkIndex(8, 8)
	if ci.cols != 1 || ci.rows != 1 {
		t.Fatalf("cols,rows = %d,%d want 1,1", ci.cols, ci.rows)
	}
}

func TestMarkDirtyExpandsRect(t *testing.T) {
	ci := newChunkIndex(64, 64)
	ci.markDirty(5, 5)
	ci.markDirty(10, 2)
	c := ci.chunkAt(0, 0)
	if !c.dirty {
		t.Fatal("chunk should be dirty")
	}
	if c.minX != 5 || c.maxX != 10 || c.minY != 2 || c.maxY != 5 {
		t.Fatalf("dirty rect = (%d,%d)-(%d,%d), want (5,2)-(10,5)", c.minX, c.minY, c.maxX, c.maxY)
	}
}

func TestMarkDirtyIsolatesChunks(t *testing.T) {
	ci := newChunkIndex(64, 64)
	ci.markDirty(1, 1)
	other := ci.chunkAt(1, 1)
	if other.dirty {
		t.Fatal("unrelated chunk should remain clean")
	}
}

func TestChunkCoordsForClampsAtEdge(t *testing.T) {
	ci := newChunkIndex(40, 40) // 2x2 chunks, last chunk truncated to 8 wide
	cx, cy := ci.chunkCoordsFor(39, 39)
	if cx != 1 || cy != 1 {
		t.Fatalf("chunkCoordsFor(39,39) = %d,%d want 1,1", cx, cy)
	}
	minX, minY, maxX, maxY := ci.bounds(1, 1)
	if maxX != 39 || maxY != 39 || minX != 32 || minY != 32 {
		t.Fatalf("bounds(1,1) = (%d,%d)-(%d,%d)", minX, minY, maxX, maxY)
	}
}

func TestMarkAllDirtyCoversWholeGrid(t *testing.T) {
	ci := newChunkIndex(64, 64)
	ci.markAllDirty()
	for i := range ci.chunks {
		if !ci.chunks[i].dirty {
			t.Fatalf("chunk %d not dirty after markAllDirty", i)
		}
	}
}
