package fallingsand

// ghostTranslateAttempts bounds how many candidate velocities a group tries
// in a single tick before giving up and waiting for next tick (§4.4: "If
// any test fails, pick a new velocity").
const ghostTranslateAttempts = 8

// stepGhostGroups issues one rigid-body translation per live Ghost group,
// before the per-cell scan begins (§4.4, DESIGN NOTES §9). The per-cell
// dispatch table's Ghost entry is a no-op: all Ghost motion happens here.
func (u *Universe) stepGhostGroups(genByte uint8) {
	for _, id := range u.ghosts.ids() {
		g, ok := u.ghosts.get(id)
		if !ok || len(g.members) == 0 {
			continue
		}

		for attempt := 0; attempt < ghostTranslateAttempts; attempt++ {
			if attempt > 0 || (g.vx == 0 && g.vy == 0) {
				g.vx, g.vy = u.rng.dir(), u.rng.dir()
			}
			if g.vx == 0 && g.vy == 0 {
				continue
			}
			if u.ghostTranslationValid(g, g.vx, g.vy) {
				u.applyGhostTranslation(g, g.vx, g.vy, genByte)
				break
			}
		}

		g.blinkAt--
		if g.blinkAt <= 0 {
			u.reassignGhostEye(g, genByte)
			g.blinkAt = u.ghosts.blinkPeriod
		}
	}
}

// ghostTranslationValid reports whether every member of g can move by
// (dx, dy): each destination must be Empty or occupied by another member of
// the same group (which is itself moving away this same step).
func (u *Universe) ghostTranslationValid(g *ghostGroup, dx, dy int) bool {
	for _, m := range g.members {
		nx, ny := m.x+dx, m.y+dy
		if !u.store.inBounds(nx, ny) {
			return false
		}
		c := u.store.at(nx, ny)
		if c.Species == Empty {
			continue
		}
		if c.Species == Ghost && c.RA == g.id {
			continue
		}
		return false
	}
	return true
}

// applyGhostTranslation moves every member of g by (dx, dy) in a single
// pass: all source cells are cleared before any destination is written, so
// members that swap into each other's vacated space never trample one
// another regardless of iteration order.
func (u *Universe) applyGhostTranslation(g *ghostGroup, dx, dy int, genByte uint8) {
	olds := make([]Cell, len(g.members))
	for i, m := range g.members {
		olds[i] = u.store.at(m.x, m.y)
	}
	for _, m := range g.members {
		u.store.write(m.x, m.y, emptyCell)
		u.chunks.markDirty(m.x, m.y)
	}
	for i := range g.members {
		nx, ny := g.members[i].x+dx, g.members[i].y+dy
		c := olds[i]
		c.Clock = genByte
		u.store.write(nx, ny, c)
		u.chunks.markDirty(nx, ny)
		g.members[i].x, g.members[i].y = nx, ny
	}
}

// reassignGhostEye re-lights a single randomly chosen eye-zone member as
// the active eye, demoting the rest back to eye-zone, giving the ghost a
// blinking/gaze-shifting appearance (§4.4).
func (u *Universe) reassignGhostEye(g *ghostGroup, genByte uint8) {
	var zoneIdx []int
	for i, m := range g.members {
		if m.zone {
			zoneIdx = append(zoneIdx, i)
		}
	}
	if len(zoneIdx) == 0 {
		return
	}
	pick := zoneIdx[u.rng.intn(len(zoneIdx))]
	g.activeEye = pick
	for _, i := range zoneIdx {
		m := g.members[i]
		c := u.store.at(m.x, m.y)
		if i == pick {
			c.RB = uint8(GhostActiveEye)
		} else {
			c.RB = uint8(GhostEyeZone)
		}
		c.Clock = genByte
		u.store.write(m.x, m.y, c)
		u.chunks.markDirty(m.x, m.y)
	}
}
