package fallingsand

// ghostMaxGroups bounds the number of concurrently live Ghost clusters.
// Cell.RA carries the group id for rendering (§6 element table) and is a
// single byte, so group ids are allocated from a 0..255 ring regardless of
// the wider uint32 the public API returns; 256 simultaneous ghosts is far
// beyond what a 256x256 sandbox plausibly hosts at once.
const ghostMaxGroups = 256

// ghostMember is one cell belonging to a ghostGroup.
type ghostMember struct {
	x, y int
	zone bool // true if this cell is an eye-zone (rb may become active eye)
}

// ghostGroup is the aggregate state for one rigid Ghost cluster (§3):
// {vx, vy, life} plus the member list needed to translate and blink the
// cluster as a unit. No separate cx, cy is kept; the cluster's position is
// the set of its members' coordinates.
type ghostGroup struct {
	id        uint8
	vx, vy    int // drift velocity, in cells/tick; re-rolled when blocked
	life      int
	members   []ghostMember
	activeEye int // index into members (among zone members) currently lit
	blinkAt   int // tick countdown until the next eye re-assignment
}

// ghostTable is the auxiliary mapping described in §3: per-group rigid-body
// state, created on paint and retired when its last cell is destroyed.
// blinkPeriod is owned here (per Universe, from config.GhostConfig) rather
// than as package state, so two Universes with different configs never
// share a blink cadence.
type ghostTable struct {
	groups      map[uint8]*ghostGroup
	next        uint8
	inUse       [ghostMaxGroups]bool
	blinkPeriod int
}

// defaultGhostBlinkPeriod is how many ticks a group keeps the same active
// eye before re-assigning which eye-zone cell is lit (§4.4: "periodically
// re-assign which eye-zone cells are active eyes"), used when
// config.GhostConfig leaves BlinkPeriod at its zero value.
const defaultGhostBlinkPeriod = 30

func newGhostTable(blinkPeriod int) *ghostTable {
	if blinkPeriod <= 0 {
		blinkPeriod = defaultGhostBlinkPeriod
	}
	return &ghostTable{groups: make(map[uint8]*ghostGroup), blinkPeriod: blinkPeriod}
}

// alloc assigns a fresh group id, returning it widened to uint32 per the
// public Universe.AllocGhostGroup contract. ok is false if every id is
// currently in use.
func (gt *ghostTable) alloc() (id uint32, ok bool) {
	for i := 0; i < ghostMaxGroups; i++ {
		candidate := gt.next
		gt.next++
		if !gt.inUse[candidate] {
			gt.inUse[candidate] = true
			gt.groups[candidate] = &ghostGroup{id: candidate, blinkAt: gt.blinkPeriod}
			return uint32(candidate), true
		}
	}
	return 0, false
}

// addMember records that (x, y) now belongs to group id, creating the
// group on first use if SetGhost is called with an id the host never
// explicitly allocated (defensive; the public contract always allocates
// first, but a standalone test or tool may not).
func (gt *ghostTable) addMember(id uint8, x, y int, zone bool) {
	g, ok := gt.groups[id]
	if !ok {
		g = &ghostGroup{id: id, blinkAt: gt.blinkPeriod}
		gt.groups[id] = g
		gt.inUse[id] = true
	}
	g.members = append(g.members, ghostMember{x: x, y: y, zone: zone})
}

// removeMember drops (x, y) from group id's membership, retiring the group
// once its last cell is gone.
func (gt *ghostTable) removeMember(id uint8, x, y int) {
	g, ok := gt.groups[id]
	if !ok {
		return
	}
	for i, m := range g.members {
		if m.x == x && m.y == y {
			g.members = append(g.members[:i], g.members[i+1:]...)
			break
		}
	}
	if len(g.members) == 0 {
		delete(gt.groups, id)
		gt.inUse[id] = false
	}
}

func (gt *ghostTable) get(id uint8) (*ghostGroup, bool) {
	g, ok := gt.groups[id]
	return g, ok
}

// ids returns the currently live group ids in a stable order, so the
// per-tick translation pass is deterministic under a fixed seed.
func (gt *ghostTable) ids() []uint8 {
	out := make([]uint8, 0, len(gt.groups))
	for id := range gt.groups {
		out = append(out, id)
	}
	// map iteration order is randomized; sort for determinism (§8 property 6).
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
