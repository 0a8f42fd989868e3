package fallingsand

// ruleFunc is a pure per-species update function. Rules never touch
// the store directly — every read goes through Neighborhood.Get, every
// write through Set/Swap/Move, so dirtying and clock-stamping always
// happen.
type ruleFunc func(cell Cell, n Neighborhood)

// rules is a dense, fixed-size dispatch table indexed by species. A flat
// array of function pointers is both faster and simpler than a dynamic
// trait/interface dispatch for this closed, seven-member set.
var rules = [numSpecies]ruleFunc{
	Empty: ruleEmpty,
	Sand:  ruleSand,
	Water: ruleWater,
	Wall:  ruleWall,
	Fire:  ruleFire,
	Ghost: ruleGhost,
	Smoke: ruleSmoke,
}

func ruleEmpty(cell Cell, n Neighborhood) {}

// ruleWall is a no-op: Wall is immovable and never overwritten by the
// engine. The scheduler already skips most settled Wall cells quickly
// because they drop out of dirty regions after the grid settles; this
// function exists only so the dispatch table has no nil entries to
// special-case.
func ruleWall(cell Cell, n Neighborhood) {}

// ruleGhost is a no-op at the per-cell level: Ghost clusters move as a
// rigid group, handled once per tick by stepGhostGroups before the
// per-cell scan begins. The per-cell pass then just skips over ghost cells.
func ruleGhost(cell Cell, n Neighborhood) {}

// ruleSand implements Sand: fall straight down; else a random
// down-diagonal; else the other down-diagonal. Sand displaces Water by
// swapping through it (density displacement).
func ruleSand(cell Cell, n Neighborhood) {
	below := n.Get(0, 1)
	if below.Species == Empty {
		n.Move(0, 1, cell)
		return
	}
	if below.Species == Water {
		n.Swap(0, 1)
		return
	}

	first := n.RandDir()
	if first == 0 {
		first = 1
	}
	for _, dx := range [2]int{first, -first} {
		diag := n.Get(dx, 1)
		if diag.Species == Empty {
			n.Move(dx, 1, cell)
			return
		}
		if diag.Species == Water {
			n.Swap(dx, 1)
			return
		}
	}
}

// waterFlowBit is the bit of Cell.RA that encodes Water's persistent
// horizontal flow direction.
const waterFlowBit = 1

// ruleWater implements Water: same gravity priority as Sand; if
// blocked straight down and both diagonals, take a horizontal step using a
// persistent flow direction that flips when blocked; occasionally
// decorrelates ra while falling freely.
func ruleWater(cell Cell, n Neighborhood) {
	below := n.Get(0, 1)
	if below.Species == Empty {
		if n.RandChance(n.p.waterRerandomizeChance) {
			cell.RA = n.RandByte()
		}
		n.Move(0, 1, cell)
		return
	}

	first := n.RandDir()
	if first == 0 {
		first = 1
	}
	for _, dx := range [2]int{first, -first} {
		diag := n.Get(dx, 1)
		if diag.Species == Empty {
			n.Move(dx, 1, cell)
			return
		}
	}

	dir := 1
	if cell.RA&waterFlowBit == 0 {
		dir = -1
	}
	side := n.Get(dir, 0)
	if side.Species == Empty {
		n.Move(dir, 0, cell)
		return
	}

	// Blocked every direction: flip flow bias for next time and settle in
	// place (still re-written so the clock stamp prevents reprocessing).
	cell.RA ^= waterFlowBit
	n.Set(0, 0, cell)
}

// Built-in defaults for ruleParams, used whenever config.RulesConfig leaves
// a tunable at its zero value.
const (
	defaultFireLifeMin  = 40
	defaultFireLifeMax  = 80
	defaultSmokeLifeMin = 60
	defaultSmokeLifeMax = 120

	defaultWaterRerandomizeChance = 0.05
	defaultSmokeDriftChance       = 0.30
)

// ruleParams holds every tunable an element rule consults, owned by a single
// Universe and threaded into Neighborhood by value at construction. This is
// deliberately not package-level state: two Universes built with different
// config.RulesConfig values must not be able to see or clobber each other's
// physics constants (§3, "the Universe is a pure data structure" owning its
// own state exclusively).
type ruleParams struct {
	fireLifeMin, fireLifeMax   int
	smokeLifeMin, smokeLifeMax int
	waterRerandomizeChance     float64
	smokeDriftChance           float64
}

// defaultRuleParams returns the built-in defaults, used when cfg is nil or
// when a field in cfg.Rules is left at its zero value.
func defaultRuleParams() ruleParams {
	return ruleParams{
		fireLifeMin:            defaultFireLifeMin,
		fireLifeMax:            defaultFireLifeMax,
		smokeLifeMin:           defaultSmokeLifeMin,
		smokeLifeMax:           defaultSmokeLifeMax,
		waterRerandomizeChance: defaultWaterRerandomizeChance,
		smokeDriftChance:       defaultSmokeDriftChance,
	}
}

// ruleFire implements Fire: decay rb each tick into Smoke on expiry;
// rise (never fall); consume adjacent Water into two Smoke cells.
func ruleFire(cell Cell, n Neighborhood) {
	// 8-neighborhood water consumption happens regardless of whether this
	// cell also moves this tick.
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if n.Get(dx, dy).Species == Water {
				n.Set(dx, dy, Cell{Species: Smoke, RB: smokeLife(n)})
				n.Set(0, 0, Cell{Species: Smoke, RB: smokeLife(n)})
				return
			}
		}
	}

	if cell.RB > 0 {
		cell.RB--
	}
	if cell.RB == 0 {
		n.Set(0, 0, Cell{Species: Smoke, RB: smokeLife(n)})
		return
	}

	dirs := upwardDirs(n)
	for _, dx := range dirs {
		if n.Get(dx, -1).Species == Empty {
			n.Move(dx, -1, cell)
			return
		}
	}
	n.Set(0, 0, cell)
}

// ruleSmoke implements Smoke: decay rb into Empty on expiry; rise like
// Fire but with an added chance of sideways drift.
func ruleSmoke(cell Cell, n Neighborhood) {
	if cell.RB > 0 {
		cell.RB--
	}
	if cell.RB == 0 {
		n.Set(0, 0, emptyCell)
		return
	}

	if n.RandChance(n.p.smokeDriftChance) {
		dx := n.RandDir()
		if dx != 0 && n.Get(dx, 0).Species == Empty {
			n.Move(dx, 0, cell)
			return
		}
	}

	dirs := upwardDirs(n)
	for _, dx := range dirs {
		if n.Get(dx, -1).Species == Empty {
			n.Move(dx, -1, cell)
			return
		}
	}
	n.Set(0, 0, cell)
}

// upwardDirs returns {0, -1, +1} in a randomized tie-break order: straight
// up is preferred, then a random one of the two up-diagonals before the
// other. Shared by Fire and Smoke, which both try to move one cell up or
// up-diagonally, breaking ties between the diagonals randomly.
func upwardDirs(n Neighborhood) [3]int {
	d := n.RandDir()
	if d == 0 {
		d = 1
	}
	return [3]int{0, d, -d}
}

// smokeLife returns a fresh random lifetime for a newly created Smoke cell.
func smokeLife(n Neighborhood) uint8 {
	return uint8(n.p.smokeLifeMin + n.RandIntn(n.p.smokeLifeMax-n.p.smokeLifeMin+1))
}

// fireLife returns a fresh random lifetime for a newly created Fire cell.
func fireLife(n Neighborhood) uint8 {
	return uint8(n.p.fireLifeMin + n.RandIntn(n.p.fireLifeMax-n.p.fireLifeMin+1))
}
