package cpu

import (
	"math"
	"testing"

	"github.com/stemmr/Mantis/internal/tensor"
)

func TestExpFloat32Samples(t *testing.T) {
	a, _ := FromFloat32([]float32{-1, 0, 5}, tensor.Shape{3})

	out, err := a.Exp()
	if err != nil {
		t.Fatalf("Exp failed: %v", err)
	}
	got := out.AsFloat32()
	want := []float32{0.36787945, 1.0, 148.41316}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-4*float64(want[i])+1e-7 {
			t.Errorf("exp at %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestExpOfZerosIsOnes(t *testing.T) {
	a, _ := Zeros(tensor.Shape{2, 3}, tensor.F64)

	out, err := a.Exp()
	if err != nil {
		t.Fatalf("Exp failed: %v", err)
	}
	for i, v := range out.AsFloat64() {
		if v != 1 {
			t.Errorf("Element %d = %v, want 1", i, v)
		}
	}
}

func TestExpPositivity(t *testing.T) {
	a, _ := FromFloat64([]float64{-50, -1, 0, 1, 50}, tensor.Shape{5})

	out, err := a.Exp()
	if err != nil {
		t.Fatalf("Exp failed: %v", err)
	}
	for i, v := range out.AsFloat64() {
		if v <= 0 {
			t.Errorf("exp at %d = %v, want > 0", i, v)
		}
	}
}

func TestReLUMixed(t *testing.T) {
	a, _ := FromFloat32([]float32{-1, 0, 5}, tensor.Shape{3})

	out, err := a.ReLU()
	if err != nil {
		t.Fatalf("ReLU failed: %v", err)
	}
	want := []float32{0, 0, 5}
	for i, v := range out.AsFloat32() {
		if v != want[i] {
			t.Errorf("relu at %d = %v, want %v", i, v, want[i])
		}
	}
}

func TestReLUIdempotent(t *testing.T) {
	a, _ := FromFloat64([]float64{-2.5, -0.0, 0.5, 3}, tensor.Shape{4})

	once, err := a.ReLU()
	if err != nil {
		t.Fatalf("ReLU failed: %v", err)
	}
	twice, err := once.ReLU()
	if err != nil {
		t.Fatalf("ReLU failed: %v", err)
	}
	for i := range once.AsFloat64() {
		if once.AsFloat64()[i] != twice.AsFloat64()[i] {
			t.Errorf("relu(relu) differs at %d: %v vs %v", i, once.AsFloat64()[i], twice.AsFloat64()[i])
		}
		if once.AsFloat64()[i] < 0 {
			t.Errorf("relu at %d = %v, want >= 0", i, once.AsFloat64()[i])
		}
	}
}
