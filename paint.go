package fallingsand

// clampCoord confines v to [0, size) per §7's invalid-argument contract: an
// out-of-range paint coordinate is clamped rather than dropped, so a stroke
// that drags past an edge still paints the edge cell instead of vanishing.
func clampCoord(v, size int) int {
	if v < 0 {
		return 0
	}
	if v >= size {
		return size - 1
	}
	return v
}

// SetCell writes species directly into the cell at (x, y), bypassing the
// rule dispatch table entirely: painting is a plain write, not a rule
// invocation.
//
// Per §7, an out-of-bounds (x, y) is clamped into [0,W)x[0,H) rather than
// dropped, and a species code outside the known set is mapped to Empty
// rather than dropped — both cases still perform a write, just a corrected
// one. Ghost is likewise mapped to Empty here: SetCell has no group id to
// give it, so a caller that means to paint Ghost must use SetGhost instead.
//
// The clock stamp is set to the current (already-completed) generation
// rather than the generation about to run, so the written cell is still
// eligible for processing on the very next Tick — painting must never
// suppress the first post-paint tick.
//
// Sand and Water get a freshly randomized ra so a painted stroke doesn't
// look uniform; Fire and Smoke get a freshly randomized rb lifetime.
func (u *Universe) SetCell(x, y int, species Species) {
	cx, cy := clampCoord(x, u.store.width), clampCoord(y, u.store.height)
	if cx != x || cy != y {
		u.logger.Warnf("SetCell: (%d,%d) out of bounds, clamped to (%d,%d)", x, y, cx, cy)
	}
	x, y = cx, cy

	if species == Ghost {
		u.logger.Warnf("SetCell: Ghost requires a group id, use SetGhost (%d,%d); writing Empty", x, y)
		species = Empty
	} else if !species.valid() {
		u.logger.Warnf("SetCell: unknown species %d at (%d,%d), writing Empty", uint8(species), x, y)
		species = Empty
	}
	u.removeGhostMembership(x, y)

	c := Cell{Species: species, Clock: u.paintClock()}
	switch species {
	case Sand, Water:
		c.RA = u.rng.byte()
	case Fire:
		c.RB = u.fireLifeDirect()
	case Smoke:
		c.RB = u.smokeLifeDirect()
	}
	u.store.write(x, y, c)
	u.chunks.markDirty(x, y)
}

// AllocGhostGroup reserves a new Ghost cluster id for use with SetGhost.
// ok is false once ghostMaxGroups clusters are simultaneously live.
func (u *Universe) AllocGhostGroup() (group uint32, ok bool) {
	return u.ghosts.alloc()
}

// SetGhost paints a Ghost cell at (x, y) belonging to group (as returned by
// AllocGhostGroup), recording it in that group's rigid-body member list.
// zone marks the cell as part of the cluster's eye zone, from which one
// member is chosen each blink period to be the active eye. Kept as a
// separate method from SetCell, which maps Ghost to Empty, rather than
// overloading SetCell with a variadic group argument.
//
// Per §7, an out-of-bounds (x, y) is clamped rather than dropped. An
// out-of-range group is not a valid species/coordinate error as such, but
// this Universe has no group state to attach the cell to, so the write
// still happens — as Empty, the same fallback an unknown species gets in
// SetCell — rather than silently discarding the paint command.
func (u *Universe) SetGhost(x, y int, group uint32, zone bool) {
	cx, cy := clampCoord(x, u.store.width), clampCoord(y, u.store.height)
	if cx != x || cy != y {
		u.logger.Warnf("SetGhost: (%d,%d) out of bounds, clamped to (%d,%d)", x, y, cx, cy)
	}
	x, y = cx, cy

	if group >= ghostMaxGroups {
		u.logger.Warnf("SetGhost: group %d out of range at (%d,%d), writing Empty", group, x, y)
		u.removeGhostMembership(x, y)
		u.store.write(x, y, emptyCell)
		u.chunks.markDirty(x, y)
		return
	}
	id := uint8(group)
	u.removeGhostMembership(x, y)

	c := Cell{Species: Ghost, RA: id, Clock: u.paintClock()}
	if zone {
		c.RB = uint8(GhostEyeZone)
	}
	u.store.write(x, y, c)
	u.chunks.markDirty(x, y)
	u.ghosts.addMember(id, x, y, zone)
}

// removeGhostMembership drops (x, y) from whatever Ghost group currently
// occupies it, if any, before the cell is overwritten by a new paint. Every
// paint path that might clobber a Ghost cell must call this first, or the
// group's member list would drift from the grid's actual contents.
func (u *Universe) removeGhostMembership(x, y int) {
	old := u.store.at(x, y)
	if old.Species == Ghost {
		u.ghosts.removeMember(old.RA, x, y)
	}
}

// paintClock returns the clock stamp a direct paint write should carry: the
// last fully-completed generation's byte. It is deliberately not the byte
// the upcoming Tick will use (generation+1 mod 256), so stampedFor never
// matches and the painted cell is always visited on the next Tick,
// regardless of where in the 256-generation wraparound the Universe is.
func (u *Universe) paintClock() uint8 {
	return uint8(u.generation % 256)
}

// fireLifeDirect and smokeLifeDirect mirror fireLife/smokeLife (rules.go)
// for callers that hold the Universe directly rather than a Neighborhood —
// paint commands happen outside any rule's invocation, but still draw from
// this Universe's own params, not shared package state.
func (u *Universe) fireLifeDirect() uint8 {
	p := u.params
	return uint8(p.fireLifeMin + u.rng.intn(p.fireLifeMax-p.fireLifeMin+1))
}

func (u *Universe) smokeLifeDirect() uint8 {
	p := u.params
	return uint8(p.smokeLifeMin + u.rng.intn(p.smokeLifeMax-p.smokeLifeMin+1))
}
