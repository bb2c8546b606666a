package cpu

import (
	"testing"

	"github.com/stemmr/Mantis/internal/tensor"
)

func TestTransposeRank2(t *testing.T) {
	// [[1 2 3], [4 5 6]] -> [[1 4], [2 5], [3 6]]
	a, _ := FromFloat32([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	out, err := a.Transpose()
	if err != nil {
		t.Fatalf("Transpose failed: %v", err)
	}
	if !out.Shape().Equal(tensor.Shape{3, 2}) {
		t.Fatalf("Result shape %v, want [3 2]", out.Shape())
	}
	want := []float32{1, 4, 2, 5, 3, 6}
	for i, v := range out.AsFloat32() {
		if v != want[i] {
			t.Errorf("Element %d = %v, want %v", i, v, want[i])
		}
	}
}

func TestTransposeInvolution(t *testing.T) {
	a, _ := FromFloat64([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, tensor.Shape{2, 2, 3})

	once, err := a.Transpose()
	if err != nil {
		t.Fatalf("Transpose failed: %v", err)
	}
	if !once.Shape().Equal(tensor.Shape{3, 2, 2}) {
		t.Fatalf("Result shape %v, want [3 2 2]", once.Shape())
	}

	twice, err := once.Transpose()
	if err != nil {
		t.Fatalf("Transpose failed: %v", err)
	}
	if !twice.Shape().Equal(a.Shape()) {
		t.Fatalf("Round-trip shape %v, want %v", twice.Shape(), a.Shape())
	}
	for i := range a.AsFloat64() {
		if twice.AsFloat64()[i] != a.AsFloat64()[i] {
			t.Errorf("Round-trip element %d = %v, want %v", i, twice.AsFloat64()[i], a.AsFloat64()[i])
		}
	}
}

func TestTransposeRank1(t *testing.T) {
	a, _ := FromFloat32([]float32{1, 2, 3}, tensor.Shape{3})

	out, err := a.Transpose()
	if err != nil {
		t.Fatalf("Transpose failed: %v", err)
	}
	if !out.Shape().Equal(tensor.Shape{3}) {
		t.Errorf("Result shape %v, want [3]", out.Shape())
	}
	for i, v := range out.AsFloat32() {
		if v != a.AsFloat32()[i] {
			t.Errorf("Element %d = %v, want %v", i, v, a.AsFloat32()[i])
		}
	}
}

func TestTransposeDoesNotMutate(t *testing.T) {
	a, _ := FromFloat32([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})

	if _, err := a.Transpose(); err != nil {
		t.Fatalf("Transpose failed: %v", err)
	}
	want := []float32{1, 2, 3, 4}
	for i, v := range a.AsFloat32() {
		if v != want[i] {
			t.Errorf("Operand mutated at %d: %v, want %v", i, v, want[i])
		}
	}
}
