// Package brush turns pointer input into the grid-coordinate paint calls a
// Universe's SetCell/SetGhost accept. It is the "input collaborator" named
// as out of scope for the simulation core itself (§2 Non-goals): nothing
// here is part of the core's tested contract, and a host is free to replace
// it with its own stroke logic.
package brush

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Stamp is one grid cell a brush stroke wants painted, in core grid space.
type Stamp struct {
	X, Y int
}

// Circle returns every grid cell within radius of center (inclusive),
// centered at the cell obtained by truncating center's coordinates to
// integers — the brush shape the reference host uses for point-and-drag
// painting.
func Circle(center mgl32.Vec2, radius float32) []Stamp {
	if radius < 0 {
		return nil
	}
	cx, cy := int(center.X()), int(center.Y())
	r := int(radius)

	var out []Stamp
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			d := mgl32.Vec2{float32(dx), float32(dy)}
			if d.Len() <= radius {
				out = append(out, Stamp{X: cx + dx, Y: cy + dy})
			}
		}
	}
	return out
}

// Stroke interpolates the straight-line path between two pointer samples
// using Bresenham's algorithm, so a fast drag doesn't leave gaps between
// consecutive mouse-move events, then stamps a Circle of radius at every
// point along it. Duplicate stamps (stamps hit by more than one step of
// the line, or by overlapping circles) are left in; a repeated SetCell or
// SetGhost writes the same species to the same cell again, so duplicates do
// not change which cells end up painted (SetCell does draw a fresh ra/rb
// from the Universe's PRNG on every call).
func Stroke(from, to mgl32.Vec2, radius float32) []Stamp {
	x0, y0 := int(from.X()), int(from.Y())
	x1, y1 := int(to.X()), int(to.Y())

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	var out []Stamp
	x, y := x0, y0
	for {
		out = append(out, Circle(mgl32.Vec2{float32(x), float32(y)}, radius)...)
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
