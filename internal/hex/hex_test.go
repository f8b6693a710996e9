package hex

import "testing"

func TestNeighborsAreAdjacent(t *testing.T) {
	origin := Axial{Q: 2, R: -3}
	for _, n := range Neighbors(origin) {
		if !IsNeighbor(origin, n) {
			t.Errorf("IsNeighbor(%v, %v) = false, want true", origin, n)
		}
		if Distance(origin, n) != 1 {
			t.Errorf("Distance(%v, %v) = %d, want 1", origin, n, Distance(origin, n))
		}
	}
}

func TestIsNeighbor(t *testing.T) {
	tests := []struct {
		a, b Axial
		want bool
	}{
		{Axial{0, 0}, Axial{1, 0}, true},
		{Axial{0, 0}, Axial{1, -1}, true},
		{Axial{0, 0}, Axial{-1, 1}, true},
		{Axial{0, 0}, Axial{1, 1}, false},
		{Axial{0, 0}, Axial{-1, -1}, false},
		{Axial{0, 0}, Axial{0, 0}, false},
		{Axial{0, 0}, Axial{2, 0}, false},
		{Axial{5, 5}, Axial{5, 4}, true},
	}

	for _, tt := range tests {
		if got := IsNeighbor(tt.a, tt.b); got != tt.want {
			t.Errorf("IsNeighbor(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIsNeighborSymmetric(t *testing.T) {
	for q1 := -3; q1 <= 3; q1++ {
		for r1 := -3; r1 <= 3; r1++ {
			for q2 := -3; q2 <= 3; q2++ {
				for r2 := -3; r2 <= 3; r2++ {
					a, b := Axial{q1, r1}, Axial{q2, r2}
					if IsNeighbor(a, b) != IsNeighbor(b, a) {
						t.Fatalf("IsNeighbor not symmetric for %v and %v", a, b)
					}
				}
			}
		}
	}
}

func TestDistanceAndManhattan(t *testing.T) {
	a := Axial{Q: 0, R: 0}
	b := Axial{Q: 2, R: -1}

	if got := Distance(a, b); got != 2 {
		t.Errorf("Distance = %d, want 2", got)
	}
	if got := Manhattan(a, b); got != 3 {
		t.Errorf("Manhattan = %d, want 3", got)
	}
}

func TestRotate(t *testing.T) {
	a := Axial{Q: 1, R: 0}

	if got := Rotate(a, 0); got != a {
		t.Errorf("Rotate(a, 0) = %v, want %v", got, a)
	}
	if got := Rotate(a, 1); got != (Axial{Q: 0, R: 1}) {
		t.Errorf("Rotate(a, 1) = %v, want {0 1}", got)
	}
	if got := Rotate(a, 6); got != a {
		t.Errorf("Rotate(a, 6) = %v, want %v", got, a)
	}
	if got := Rotate(a, -1); got != Rotate(a, 5) {
		t.Errorf("Rotate(a, -1) = %v, want %v", got, Rotate(a, 5))
	}

	// Rotation preserves distance from the origin.
	p := Axial{Q: 3, R: -1}
	for steps := 0; steps < 6; steps++ {
		if Distance(Axial{}, Rotate(p, steps)) != Distance(Axial{}, p) {
			t.Errorf("Rotate(%v, %d) changed distance", p, steps)
		}
	}
}
