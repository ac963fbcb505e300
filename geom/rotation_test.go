package geom

import (
	"math"
	"testing"
)

func approxEqual(x, y float64) bool {
	return math.Abs(x-y) < 1e-9
}

func TestRotationNormalization(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{math.Pi / 2, math.Pi / 2},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{-math.Pi / 2, -math.Pi / 2},
		{5 * math.Pi / 2, math.Pi / 2},
		{-5 * math.Pi / 2, -math.Pi / 2},
	}
	for _, c := range cases {
		if got := Rad(c.in).Radians; !approxEqual(got, c.want) {
			t.Errorf("Rad(%v) = %v, expected %v", c.in, got, c.want)
		}
	}
}

func TestRotationSubShortestArc(t *testing.T) {
	// 170° to −170° is a 20° step through the wrap, not a −340° one.
	got := Deg(-170).Sub(Deg(170))
	if want := 20.0; !approxEqual(got.Degrees(), want) {
		t.Errorf("got %v°, expected %v°", got.Degrees(), want)
	}

	got = Deg(170).Sub(Deg(-170))
	if want := -20.0; !approxEqual(got.Degrees(), want) {
		t.Errorf("got %v°, expected %v°", got.Degrees(), want)
	}
}

func TestRotationLerp(t *testing.T) {
	if got := Deg(0).Lerp(Deg(90), 0.5); !approxEqual(got.Degrees(), 45) {
		t.Errorf("got %v°, expected 45°", got.Degrees())
	}

	// Halfway between 170° and −170° along the shortest arc is 180°.
	got := Deg(170).Lerp(Deg(-170), 0.5)
	if !approxEqual(math.Abs(got.Degrees()), 180) {
		t.Errorf("got %v°, expected ±180°", got.Degrees())
	}

	if got := Deg(30).Lerp(Deg(90), 0); !approxEqual(got.Degrees(), 30) {
		t.Errorf("got %v°, expected 30°", got.Degrees())
	}
	if got := Deg(30).Lerp(Deg(90), 1); !approxEqual(got.Degrees(), 90) {
		t.Errorf("got %v°, expected 90°", got.Degrees())
	}
}

func TestRotationDegreesRoundTrip(t *testing.T) {
	for _, deg := range []float64{-179, -90, -45, 0, 30, 90, 135, 180} {
		if got := Deg(deg).Degrees(); !approxEqual(got, deg) {
			t.Errorf("Deg(%v).Degrees() = %v", deg, got)
		}
	}
}
