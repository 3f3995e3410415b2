package geo

import (
	"math"
	"testing"
)

func TestDistanceZero(t *testing.T) {
	p := Point{Lat: 6.5244, Lng: 3.3792}
	if d := Distance(p, p); d != 0 {
		t.Fatalf("distance to self = %v, want 0", d)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	a := Point{Lat: 6.5244, Lng: 3.3792}
	b := Point{Lat: 9.0765, Lng: 7.3986}
	if d1, d2 := Distance(a, b), Distance(b, a); math.Abs(d1-d2) > 1e-9 {
		t.Fatalf("asymmetric: %v vs %v", d1, d2)
	}
}

func TestDistanceKnownValues(t *testing.T) {
	cases := []struct {
		name   string
		a, b   Point
		wantKm float64
		tolKm  float64
	}{
		{
			name:   "one degree latitude",
			a:      Point{Lat: 0, Lng: 0},
			b:      Point{Lat: 1, Lng: 0},
			wantKm: 111.19,
			tolKm:  0.5,
		},
		{
			name:   "one degree longitude at equator",
			a:      Point{Lat: 0, Lng: 10},
			b:      Point{Lat: 0, Lng: 11},
			wantKm: 111.19,
			tolKm:  0.5,
		},
		{
			name:   "lagos to abuja",
			a:      Point{Lat: 6.5244, Lng: 3.3792},
			b:      Point{Lat: 9.0765, Lng: 7.3986},
			wantKm: 525,
			tolKm:  10,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if d := Distance(tc.a, tc.b); math.Abs(d-tc.wantKm) > tc.tolKm {
				t.Fatalf("distance = %v, want %v ± %v", d, tc.wantKm, tc.tolKm)
			}
		})
	}
}
