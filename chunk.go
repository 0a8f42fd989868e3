package fallingsand

// ChunkSize is the tile edge length used by the dirty-rect index: large
// enough to amortize per-tile bookkeeping, small enough that a dirty
// rectangle rarely spans the whole grid.
const ChunkSize = 32

// chunk tracks whether any cell within its bounds changed since it was last
// cleaned, and the tight rectangle (in grid coordinates) those changes
// occupy. The scheduler snapshots this rectangle, clears the flag, and then
// iterates only the snapshotted cells (§4.2).
type chunk struct {
	dirty                  bool
	minX, minY, maxX, maxY int // grid-space, inclusive
}

// chunkIndex partitions a width×height grid into ChunkSize×ChunkSize tiles,
// truncating at the edges per §3.
type chunkIndex struct {
	width, height int
	cols, rows    int
	chunks        []chunk
}

func newChunkIndex(width, height int) *chunkIndex {
	cols := (width + ChunkSize - 1) / ChunkSize
	rows := (height + ChunkSize - 1) / ChunkSize
	if cols == 0 {
		cols = 1
	}
	if rows == 0 {
		rows = 1
	}
	return &chunkIndex{
		width:  width,
		height: height,
		cols:   cols,
		rows:   rows,
		chunks: make([]chunk, cols*rows),
	}
}

func (ci *chunkIndex) chunkCoordsFor(x, y int) (cx, cy int) {
	cx = x / ChunkSize
	cy = y / ChunkSize
	if cx >= ci.cols {
		cx = ci.cols - 1
	}
	if cy >= ci.rows {
		cy = ci.rows - 1
	}
	return
}

func (ci *chunkIndex) chunkAt(cx, cy int) *chunk {
	return &ci.chunks[cy*ci.cols+cx]
}

// bounds returns the grid-space cell rectangle a chunk (cx, cy) covers.
func (ci *chunkIndex) bounds(cx, cy int) (minX, minY, maxX, maxY int) {
	minX = cx * ChunkSize
	minY = cy * ChunkSize
	maxX = minX + ChunkSize - 1
	if maxX >= ci.width {
		maxX = ci.width - 1
	}
	maxY = minY + ChunkSize - 1
	if maxY >= ci.height {
		maxY = ci.height - 1
	}
	return
}

// markDirty expands the dirty rectangle of the chunk containing (x, y) to
// include that cell, setting the dirty flag if it was clear.
func (ci *chunkIndex) markDirty(x, y int) {
	cx, cy := ci.chunkCoordsFor(x, y)
	c := ci.chunkAt(cx, cy)
	if !c.dirty {
		c.dirty = true
		c.minX, c.maxX = x, x
		c.minY, c.maxY = y, y
		return
	}
	if x < c.minX {
		c.minX = x
	}
	if x > c.maxX {
		c.maxX = x
	}
	if y < c.minY {
		c.minY = y
	}
	if y > c.maxY {
		c.maxY = y
	}
}

// markAllDirty dirties every chunk over its full bounds. Not called during
// normal construction or paint (markDirty already covers every write path);
// available for tests and tools that want a full scan regardless of the
// chunk index's actual dirty history.
func (ci *chunkIndex) markAllDirty() {
	for cy := 0; cy < ci.rows; cy++ {
		for cx := 0; cx < ci.cols; cx++ {
			minX, minY, maxX, maxY := ci.bounds(cx, cy)
			c := ci.chunkAt(cx, cy)
			c.dirty = true
			c.minX, c.minY, c.maxX, c.maxY = minX, minY, maxX, maxY
		}
	}
}
