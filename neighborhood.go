package fallingsand

// Neighborhood is the API threaded into every element rule (§4.1). It is a
// short-lived value — constructed fresh for each cell the scheduler visits,
// holding a reference to the Universe's store/chunk index/PRNG plus the
// rule's current position and generation. No indirection, no dynamic
// dispatch: just a struct of fields, kept dense and allocation-free on the
// hot path.
type Neighborhood struct {
	s    *store
	ci   *chunkIndex
	r    *rng
	p    ruleParams
	x, y int
	gen  uint8
}

// Get reads the cell at relative offset (dx, dy). Out-of-bounds reads
// return a synthetic Wall cell so edges confine motion without every rule
// needing its own bounds check.
func (n Neighborhood) Get(dx, dy int) Cell {
	x, y := n.x+dx, n.y+dy
	if !n.s.inBounds(x, y) {
		return wallCell
	}
	return n.s.at(x, y)
}

// Set writes cell at relative offset (dx, dy), stamping its clock to the
// current generation and re-dirtying the enclosing chunk. Writing outside
// the grid is a no-op: rules are expected to have checked Get first, but a
// stray write must never corrupt adjacent memory.
func (n Neighborhood) Set(dx, dy int, c Cell) {
	x, y := n.x+dx, n.y+dy
	if !n.s.inBounds(x, y) {
		return
	}
	c.Clock = n.gen
	n.s.write(x, y, c)
	n.ci.markDirty(x, y)
}

// Swap exchanges the current cell with the cell at relative offset (dx,
// dy); both results are stamped for the current generation and both
// locations re-dirtied. Used for density displacement (Sand sinking through
// Water) and for simple one-step moves.
func (n Neighborhood) Swap(dx, dy int) {
	x, y := n.x+dx, n.y+dy
	if !n.s.inBounds(x, y) {
		return
	}
	here := n.s.at(n.x, n.y)
	there := n.s.at(x, y)
	here.Clock = n.gen
	there.Clock = n.gen
	n.s.write(n.x, n.y, there)
	n.s.write(x, y, here)
	n.ci.markDirty(n.x, n.y)
	n.ci.markDirty(x, y)
}

// Move relocates the current cell to relative offset (dx, dy), leaving
// Empty behind. This is the shared convention from §4.4: the source becomes
// Empty before the destination is written, so a rule never observes its own
// moved cell twice in the same call.
func (n Neighborhood) Move(dx, dy int, c Cell) {
	n.Set(0, 0, emptyCell)
	n.Set(dx, dy, c)
}

// Current returns the cell at the rule's own position, as last written.
func (n Neighborhood) Current() Cell {
	return n.s.at(n.x, n.y)
}

// RandDir returns a uniform ternary value in {-1, 0, +1}.
func (n Neighborhood) RandDir() int {
	return n.r.dir()
}

// RandByte returns a uniform byte from the Universe's PRNG.
func (n Neighborhood) RandByte() uint8 {
	return n.r.byte()
}

// RandChance returns true with approximate probability p (0..1).
func (n Neighborhood) RandChance(p float64) bool {
	return n.r.chance(p)
}

// RandIntn returns a uniform value in [0, k) for k > 0.
func (n Neighborhood) RandIntn(k int) int {
	return n.r.intn(k)
}

// Generation returns the tick's current generation counter.
func (n Neighborhood) Generation() uint8 {
	return n.gen
}

// X, Y report the rule's current grid position.
func (n Neighborhood) X() int { return n.x }
func (n Neighborhood) Y() int { return n.y }
