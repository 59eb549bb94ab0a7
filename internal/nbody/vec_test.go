package nbody

import (
	"math"
	"testing"
)

func TestVecOps(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add: got %v", got)
	}
	if got := b.Sub(a); got != (Vec3{3, 3, 3}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: got %v", got)
	}
	if got := a.Cross(b); got != (Vec3{-3, 6, -3}) {
		t.Errorf("Cross: got %v", got)
	}
	if got := (Vec3{3, 4, 0}).Norm(); got != 5 {
		t.Errorf("Norm: got %v", got)
	}
}

func TestVecCrossAntisymmetric(t *testing.T) {
	a := Vec3{0.3, -1.2, 2.5}
	b := Vec3{-0.7, 0.4, 1.1}
	if got, want := a.Cross(b), b.Cross(a).Scale(-1); got != want {
		t.Errorf("cross not antisymmetric: %v vs %v", got, want)
	}
}

func TestVecTruncate(t *testing.T) {
	v := Vec3{1.0 / 3.0, math.Pi, -2.0 / 7.0}
	got := v.Truncate()
	for i := range got {
		want := float64(float32(v[i]))
		if got[i] != want {
			t.Errorf("component %d: got %v, want %v", i, got[i], want)
		}
		// the round-trip must actually lose precision for these values
		if got[i] == v[i] {
			t.Errorf("component %d: expected precision loss for %v", i, v[i])
		}
	}
	// exactly representable values pass through unchanged
	if got := (Vec3{1, -0.5, 0.25}).Truncate(); got != (Vec3{1, -0.5, 0.25}) {
		t.Errorf("representable values changed: %v", got)
	}
}

func TestVecIsValid(t *testing.T) {
	if !(Vec3{1, 2, 3}).IsValid() {
		t.Error("finite vector reported invalid")
	}
	if (Vec3{math.NaN(), 0, 0}).IsValid() {
		t.Error("NaN vector reported valid")
	}
	if (Vec3{0, math.Inf(1), 0}).IsValid() {
		t.Error("Inf vector reported valid")
	}
}
