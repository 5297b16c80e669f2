package game

import (
	"math"
	"testing"
)

func TestParseCoordinate_RoundTrip(t *testing.T) {
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			c := Coordinate{X: x, Y: y}
			got, err := ParseCoordinate(c.String())
			if err != nil {
				t.Fatalf("ParseCoordinate(%q): %v", c.String(), err)
			}
			if got != c {
				t.Fatalf("round trip %q: got %v want %v", c.String(), got, c)
			}
		}
	}
}

func TestParseCoordinate_Malformed(t *testing.T) {
	cases := []string{"", "5", "5,", ",7", "5,7,9", "a,b", "5, 7", "-1,3", "3,-1"}
	for _, in := range cases {
		if _, err := ParseCoordinate(in); err == nil {
			t.Errorf("ParseCoordinate(%q): want error, got nil", in)
		}
	}
}

func TestDistance(t *testing.T) {
	cases := []struct {
		a, b Coordinate
		want float64
	}{
		{Coordinate{0, 0}, Coordinate{0, 0}, 0},
		{Coordinate{0, 0}, Coordinate{3, 4}, 5},
		{Coordinate{0, 0}, Coordinate{2, 2}, math.Sqrt(8)},
		{Coordinate{4, 0}, Coordinate{0, 0}, 4},
	}
	for _, c := range cases {
		if got := Distance(c.a, c.b); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Distance(%v, %v) = %v want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestIsAdjacent_DiagonalCountsAsOneStep(t *testing.T) {
	origin := Coordinate{X: 5, Y: 5}
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			n := Coordinate{X: origin.X + dx, Y: origin.Y + dy}
			want := !(dx == 0 && dy == 0)
			if got := IsAdjacent(origin, n); got != want {
				t.Errorf("IsAdjacent(%v, %v) = %v want %v", origin, n, got, want)
			}
		}
	}
	if IsAdjacent(origin, Coordinate{X: 7, Y: 5}) {
		t.Error("cells two apart should not be adjacent")
	}
	if IsAdjacent(origin, Coordinate{X: 7, Y: 7}) {
		t.Error("cells two apart diagonally should not be adjacent")
	}
}
