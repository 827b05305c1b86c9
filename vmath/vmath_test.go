package vmath

import (
	"math"
	"testing"
)

func TestV3Normalize(t *testing.T) {
	v := V3Normalize(Vec3{3, 0, 4})
	if math.Abs(V3Mag(v)-1.0) > 1e-12 {
		t.Errorf("normalized magnitude = %v, want 1", V3Mag(v))
	}

	zero := V3Normalize(Vec3{})
	if zero != (Vec3{}) {
		t.Errorf("normalizing zero vector should return zero, got %+v", zero)
	}
}

func TestPlanarDistIgnoresHeight(t *testing.T) {
	a := Vec3{0, 100, 0}
	b := Vec3{3, -50, 4}
	if got := PlanarDist(a, b); math.Abs(got-5.0) > 1e-12 {
		t.Errorf("PlanarDist = %v, want 5", got)
	}
}

func TestFastRandDeterminism(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("same seed diverged at step %d", i)
		}
	}
}

func TestFastRandFloat64Range(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 1000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of [0,1): %v", f)
		}
		v := r.Range(-3, 9)
		if v < -3 || v >= 9 {
			t.Fatalf("Range out of [-3,9): %v", v)
		}
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Error("zero seed must not produce a stuck generator")
	}
}

func TestEaseEndpoints(t *testing.T) {
	for name, fn := range map[string]EaseFunc{
		"linear":     EaseLinear,
		"outCubic":   EaseOutCubic,
		"inQuad":     EaseInQuad,
		"inOutQuad":  EaseInOutQuad,
	} {
		if got := fn(0); math.Abs(got) > 1e-12 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := fn(1); math.Abs(got-1) > 1e-12 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestEaseOutCubicMonotonic(t *testing.T) {
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseOutCubic(float64(i) / 100)
		if v < prev {
			t.Fatalf("EaseOutCubic not monotonic at t=%v", float64(i)/100)
		}
		prev = v
	}
}
