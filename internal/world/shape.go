package world

import (
	"fmt"

	"github.com/samdwyer/hexwars/internal/hex"
)

// Shape is the silhouette of a generated board.
type Shape int

const (
	ShapeCircle Shape = iota
	// ShapeSemicircle keeps one half fully and the other half sparsely.
	ShapeSemicircle
	// ShapeThin is a narrow band through the center.
	ShapeThin
	// ShapeRandom picks one of the others at generation time.
	ShapeRandom
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeSemicircle:
		return "semicircle"
	case ShapeThin:
		return "thin"
	case ShapeRandom:
		return "random"
	default:
		return "unknown"
	}
}

// ParseShape converts a shape name back to a Shape.
func ParseShape(s string) (Shape, error) {
	switch s {
	case "circle":
		return ShapeCircle, nil
	case "semicircle":
		return ShapeSemicircle, nil
	case "thin":
		return ShapeThin, nil
	case "random", "":
		return ShapeRandom, nil
	default:
		return ShapeRandom, fmt.Errorf("unknown shape %q", s)
	}
}

// Half is the side of a semicircle board that is kept fully populated.
type Half int

const (
	HalfTop Half = iota
	HalfBottom
	HalfLeft
	HalfRight
)

// silhouette decides which grid cells belong to a board.
type silhouette struct {
	shape    Shape
	half     Half
	rotation int
	center   hex.Axial
	radius   float64
}

// contains reports whether the cell is part of the board. It may draw from
// rng, so cells must be visited in a fixed order.
func (s silhouette) contains(a hex.Axial, rng Rand) bool {
	d := hex.Rotate(a.Sub(s.center), s.rotation)
	dq, dr := float64(d.Q), float64(d.R)
	inCircle := dq*dq+dr*dr <= s.radius*s.radius

	switch s.shape {
	case ShapeCircle:
		return inCircle
	case ShapeSemicircle:
		if !inCircle {
			return false
		}
		if s.keeps(d) {
			return true
		}
		return rng.Float64() < sparseChance
	case ShapeThin:
		width := 2 + rng.Float64()*2
		return absf(dq) < width && absf(dr) < s.radius
	default:
		return inCircle
	}
}

// keeps reports whether a rotated offset lies in the fully kept half.
func (s silhouette) keeps(d hex.Axial) bool {
	switch s.half {
	case HalfTop:
		return d.R <= 0
	case HalfBottom:
		return d.R >= 0
	case HalfLeft:
		return d.Q <= 0
	default:
		return d.Q >= 0
	}
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
