package fallingsand

// tick advances the Universe by one generation (§4.3). Order is chosen to
// minimize directional bias while staying fully deterministic: chunks scan
// bottom row first, alternating horizontal direction every generation;
// within each dirty chunk, only the snapshotted dirty rectangle is visited,
// bottom-to-top, in the same horizontal direction as the outer scan.
func (u *Universe) tick() {
	u.generation++
	genByte := uint8(u.generation % 256)
	scanRight := u.generation%2 == 0

	u.stepGhostGroups(genByte)

	ci := u.chunks
	for cy := ci.rows - 1; cy >= 0; cy-- {
		for i := 0; i < ci.cols; i++ {
			cx := i
			if !scanRight {
				cx = ci.cols - 1 - i
			}
			c := ci.chunkAt(cx, cy)
			if !c.dirty {
				continue
			}
			minX, minY, maxX, maxY := c.minX, c.minY, c.maxX, c.maxY
			c.dirty = false

			for y := maxY; y >= minY; y-- {
				for j := minX; j <= maxX; j++ {
					x := j
					if !scanRight {
						x = maxX - (j - minX)
					}
					u.visitCell(x, y, genByte)
				}
			}
		}
	}
}

// visitCell dispatches the rule for the cell at (x, y) unless it is Empty
// or already stamped for this generation (already moved this tick, §4.3
// step 3c).
func (u *Universe) visitCell(x, y int, genByte uint8) {
	cell := u.store.at(x, y)
	if cell.Species == Empty {
		return
	}
	if cell.stampedFor(genByte) {
		return
	}
	n := Neighborhood{s: u.store, ci: u.chunks, r: u.rng, p: u.params, x: x, y: y, gen: genByte}
	var rule ruleFunc
	if cell.Species.valid() {
		rule = rules[cell.Species]
	}
	if rule == nil {
		// Unknown species slipped past SetCell's validation somehow; treat
		// as a programming-error invariant breach per §7, not silently
		// dropped (a silently-dropped cell would violate whatever
		// conservation property this species is supposed to hold).
		u.fatalf("tick: no rule registered for species %v at (%d,%d)", cell.Species, x, y)
		return
	}
	rule(cell, n)
}
