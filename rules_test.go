package fallingsand

import "testing"

// ruleTestbed bundles a store/chunkIndex/rng for exercising a single rule in
// isolation, without a full Universe/scheduler.
type ruleTestbed struct {
	s  *store
	ci *chunkIndex
	r  *rng
	p  ruleParams
}

func newRuleTestbed(w, h int, seed uint64) *ruleTestbed {
	return &ruleTestbed{s: newStore(w, h), ci: newChunkIndex(w, h), r: newRNG(seed), p: defaultRuleParams()}
}

func (tb *ruleTestbed) visit(x, y int, gen uint8) {
	cell := tb.s.at(x, y)
	n := Neighborhood{s: tb.s, ci: tb.ci, r: tb.r, p: tb.p, x: x, y: y, gen: gen}
	rules[cell.Species](cell, n)
}

func TestRuleSandFallsIntoEmpty(t *testing.T) {
	tb := newRuleTestbed(4, 4, 1)
	tb.s.write(1, 1, Cell{Species: Sand})
	tb.visit(1, 1, 1)

	if tb.s.at(1, 1).Species != Empty {
		t.Errorf("source should be Empty, got %v", tb.s.at(1, 1).Species)
	}
	if tb.s.at(1, 2).Species != Sand {
		t.Errorf("destination should be Sand, got %v", tb.s.at(1, 2).Species)
	}
}

func TestRuleSandSwapsThroughWater(t *testing.T) {
	tb := newRuleTestbed(4, 4, 1)
	tb.s.write(1, 1, Cell{Species: Sand})
	tb.s.write(1, 2, Cell{Species: Water})
	tb.visit(1, 1, 1)

	if tb.s.at(1, 1).Species != Water {
		t.Errorf("(1,1) should now be Water, got %v", tb.s.at(1, 1).Species)
	}
	if tb.s.at(1, 2).Species != Sand {
		t.Errorf("(1,2) should now be Sand, got %v", tb.s.at(1, 2).Species)
	}
}

func TestRuleSandRestsOnWall(t *testing.T) {
	tb := newRuleTestbed(3, 3, 1)
	tb.s.write(1, 1, Cell{Species: Sand})
	tb.s.write(0, 2, Cell{Species: Wall})
	tb.s.write(1, 2, Cell{Species: Wall})
	tb.s.write(2, 2, Cell{Species: Wall})
	tb.visit(1, 1, 1)

	if got := tb.s.at(1, 1).Species; got != Sand {
		t.Errorf("sand with wall below and on both down-diagonals should not move, got %v", got)
	}
}

func TestRuleWaterFallsIntoEmpty(t *testing.T) {
	tb := newRuleTestbed(4, 4, 1)
	tb.s.write(1, 1, Cell{Species: Water})
	tb.visit(1, 1, 1)

	if tb.s.at(1, 1).Species != Empty || tb.s.at(1, 2).Species != Water {
		t.Errorf("water did not fall: (1,1)=%v (1,2)=%v", tb.s.at(1, 1).Species, tb.s.at(1, 2).Species)
	}
}

func TestRuleWaterFlowsHorizontallyWhenBlocked(t *testing.T) {
	tb := newRuleTestbed(5, 3, 1)
	// Floor the whole bottom row so water can't fall or go diagonal.
	for x := 0; x < 5; x++ {
		tb.s.write(x, 2, Cell{Species: Wall})
	}
	tb.s.write(2, 1, Cell{Species: Water})
	tb.visit(2, 1, 1)

	if tb.s.at(2, 1).Species == Water {
		t.Error("water blocked below and diagonally, with both sides open, should flow sideways")
	}
	if tb.s.at(1, 1).Species != Water && tb.s.at(3, 1).Species != Water {
		t.Error("expected water to flow into one of its two open side neighbors")
	}
}

func TestRuleFireConsumesAdjacentWater(t *testing.T) {
	tb := newRuleTestbed(4, 4, 1)
	tb.s.write(1, 1, Cell{Species: Fire, RB: 50})
	tb.s.write(2, 1, Cell{Species: Water})
	tb.visit(1, 1, 1)

	if tb.s.at(1, 1).Species != Smoke {
		t.Errorf("fire cell should become Smoke, got %v", tb.s.at(1, 1).Species)
	}
	if tb.s.at(2, 1).Species != Smoke {
		t.Errorf("consumed water cell should become Smoke, got %v", tb.s.at(2, 1).Species)
	}
}

func TestRuleFireDecaysToSmokeOnExpiry(t *testing.T) {
	tb := newRuleTestbed(4, 4, 1)
	tb.s.write(1, 1, Cell{Species: Fire, RB: 1})
	tb.visit(1, 1, 1)

	got := tb.s.at(1, 1)
	if got.Species != Smoke {
		t.Errorf("expired fire should become Smoke, got %v", got.Species)
	}
	if got.RB < uint8(tb.p.smokeLifeMin) || got.RB > uint8(tb.p.smokeLifeMax) {
		t.Errorf("smoke rb = %d, out of configured [%d,%d]", got.RB, tb.p.smokeLifeMin, tb.p.smokeLifeMax)
	}
}

func TestRuleFireRisesWhenUnobstructed(t *testing.T) {
	tb := newRuleTestbed(4, 4, 1)
	tb.s.write(1, 2, Cell{Species: Fire, RB: 50})
	tb.visit(1, 2, 1)

	if tb.s.at(1, 2).Species != Empty {
		t.Errorf("source should be vacated, got %v", tb.s.at(1, 2).Species)
	}
	if tb.s.at(1, 1).Species != Fire && tb.s.at(0, 1).Species != Fire && tb.s.at(2, 1).Species != Fire {
		t.Error("fire should have risen to one of the three upward cells")
	}
}

func TestRuleSmokeDecaysToEmpty(t *testing.T) {
	tb := newRuleTestbed(4, 4, 1)
	tb.s.write(1, 1, Cell{Species: Smoke, RB: 1})
	tb.visit(1, 1, 1)

	if tb.s.at(1, 1).Species != Empty {
		t.Errorf("expired smoke should become Empty, got %v", tb.s.at(1, 1).Species)
	}
}

func TestRuleWallNeverMoves(t *testing.T) {
	tb := newRuleTestbed(4, 4, 1)
	tb.s.write(1, 1, Cell{Species: Wall})
	tb.visit(1, 1, 1)
	if tb.s.at(1, 1).Species != Wall {
		t.Errorf("wall moved, now %v", tb.s.at(1, 1).Species)
	}
}
