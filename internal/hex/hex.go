// Package hex provides axial hex-grid coordinates and adjacency math.
package hex

import "fmt"

// Axial is a position on the hex grid in axial coordinates.
// The third cube coordinate s is derived: s = -q - r.
type Axial struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// Directions are the six unit offsets to a cell's neighbors.
var Directions = [6]Axial{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// S returns the implicit third cube coordinate.
func (a Axial) S() int {
	return -a.Q - a.R
}

// Add returns a + b.
func (a Axial) Add(b Axial) Axial {
	return Axial{Q: a.Q + b.Q, R: a.R + b.R}
}

// Sub returns a - b.
func (a Axial) Sub(b Axial) Axial {
	return Axial{Q: a.Q - b.Q, R: a.R - b.R}
}

// String returns "q,r".
func (a Axial) String() string {
	return fmt.Sprintf("%d,%d", a.Q, a.R)
}

// Neighbors returns the six adjacent coordinates.
func Neighbors(a Axial) [6]Axial {
	var result [6]Axial
	for i, dir := range Directions {
		result[i] = a.Add(dir)
	}
	return result
}

// IsNeighbor reports whether b - a is one of the six directions.
func IsNeighbor(a, b Axial) bool {
	d := b.Sub(a)
	for _, dir := range Directions {
		if d == dir {
			return true
		}
	}
	return false
}

// Distance returns the hex (cube) distance between two coordinates.
func Distance(a, b Axial) int {
	d := a.Sub(b)
	return max(abs(d.Q), abs(d.R), abs(d.S()))
}

// Manhattan returns |dq| + |dr|. Spawn placement measures spread with it.
func Manhattan(a, b Axial) int {
	d := a.Sub(b)
	return abs(d.Q) + abs(d.R)
}

// Rotate turns an offset by steps * 60 degrees around the origin.
// Negative steps are normalized into 0..5.
func Rotate(a Axial, steps int) Axial {
	steps = ((steps % 6) + 6) % 6
	for i := 0; i < steps; i++ {
		a = Axial{Q: -a.R, R: a.Q + a.R}
	}
	return a
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
