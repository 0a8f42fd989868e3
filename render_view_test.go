package fallingsand

import "testing"

func TestRenderViewReflectsWrites(t *testing.T) {
	u := New(4, 4, nil)
	u.SetCell(1, 2, Fire)

	view := u.RenderView()
	idx := (2*4 + 1) * 2
	if Species(view[idx]) != Fire {
		t.Fatalf("render view species byte = %d, want Fire", view[idx])
	}
	if view[idx+1] != u.store.at(1, 2).RB {
		t.Fatalf("render view rb byte = %d, want %d", view[idx+1], u.store.at(1, 2).RB)
	}
}

func TestRenderViewLength(t *testing.T) {
	u := New(5, 3, nil)
	if got, want := len(u.RenderView()), 5*3*2; got != want {
		t.Fatalf("len(RenderView()) = %d, want %d", got, want)
	}
}

func TestRenderPtrAliasesRenderView(t *testing.T) {
	u := New(4, 4, nil)
	ptr, n := u.RenderPtr()
	if ptr == nil {
		t.Fatal("RenderPtr returned nil for a non-empty grid")
	}
	if n != len(u.RenderView()) {
		t.Fatalf("RenderPtr length = %d, want %d", n, len(u.RenderView()))
	}
}
