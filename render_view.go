package fallingsand

import "unsafe"

// RenderView borrows the render view: a byte slice of length 2*Width*Height,
// row-major, byte 0 of each pair the species code and byte 1 the rb
// register (§4.5, §6). It aliases the Universe's internal buffer — valid
// until the next mutating call (Tick, SetCell, SetGhost) — and must never
// be retained across one. Safe, idiomatic Go callers (tests, an in-process
// renderer) should use this; cross-boundary (CGO/FFI) callers should use
// RenderPtr.
func (u *Universe) RenderView() []byte {
	return u.store.render
}

// RenderPtr borrows the render view as a raw pointer and byte length, for
// the external GPU-renderer collaborator named in §6. The returned pointer
// is valid only until the next mutation of the Universe; the caller must
// copy or upload before calling Tick, SetCell, or SetGhost again.
func (u *Universe) RenderPtr() (unsafe.Pointer, int) {
	v := u.store.render
	if len(v) == 0 {
		return nil, 0
	}
	return unsafe.Pointer(&v[0]), len(v)
}
