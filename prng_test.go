package fallingsand

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := newRNG(42)
	b := newRNG(42)
	for i := 0; i < 1000; i++ {
		if av, bv := a.next(), b.next(); av != bv {
			t.Fatalf("diverged at step %d: %d != %d", i, av, bv)
		}
	}
}

func TestRNGZeroSeedPerturbed(t *testing.T) {
	r := newRNG(0)
	if r.state == 0 {
		t.Fatal("zero seed must be perturbed away from the degenerate all-zero state")
	}
}

func TestRNGDirRange(t *testing.T) {
	r := newRNG(7)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		d := r.dir()
		if d < -1 || d > 1 {
			t.Fatalf("dir() = %d out of range", d)
		}
		seen[d] = true
	}
	for _, want := range []int{-1, 0, 1} {
		if !seen[want] {
			t.Errorf("dir() never produced %d in 2000 draws", want)
		}
	}
}

func TestRNGChanceBounds(t *testing.T) {
	r := newRNG(7)
	if r.chance(0) {
		t.Error("chance(0) should never be true")
	}
	if !r.chance(1) {
		t.Error("chance(1) should always be true")
	}
}

func TestRNGIntnRange(t *testing.T) {
	r := newRNG(123)
	for i := 0; i < 500; i++ {
		v := r.intn(5)
		if v < 0 || v >= 5 {
			t.Fatalf("intn(5) = %d out of range", v)
		}
	}
	if got := r.intn(0); got != 0 {
		t.Errorf("intn(0) = %d, want 0", got)
	}
}
