package cpu

import (
	"errors"
	"testing"

	"github.com/stemmr/Mantis/internal/tensor"
)

func TestNewArrayZeroInitialized(t *testing.T) {
	a, err := NewArray(tensor.Shape{2, 3}, tensor.F32)
	if err != nil {
		t.Fatalf("NewArray failed: %v", err)
	}
	for i, v := range a.AsFloat32() {
		if v != 0 {
			t.Errorf("Element %d = %v, want 0", i, v)
		}
	}
	if a.NumElements() != 6 {
		t.Errorf("NumElements() = %d, want 6", a.NumElements())
	}
}

func TestNewArrayRejectsNegativeExtent(t *testing.T) {
	if _, err := NewArray(tensor.Shape{2, -1}, tensor.F32); err == nil {
		t.Error("Expected error for negative extent")
	}
}

func TestScalarShape(t *testing.T) {
	a, err := NewArray(tensor.Shape{}, tensor.F64)
	if err != nil {
		t.Fatalf("NewArray failed: %v", err)
	}
	if a.NumElements() != 1 {
		t.Errorf("Scalar NumElements() = %d, want 1", a.NumElements())
	}
	if v, ok := a.At(); !ok || v != 0 {
		t.Errorf("At() = (%v, %v), want (0, true)", v, ok)
	}
}

func TestFullNarrowsToFloat32(t *testing.T) {
	a, err := Full(3.14159265358979, tensor.Shape{2}, tensor.F32)
	if err != nil {
		t.Fatalf("Full failed: %v", err)
	}
	want := float32(3.14159265358979)
	for i, v := range a.AsFloat32() {
		if v != want {
			t.Errorf("Element %d = %v, want %v", i, v, want)
		}
	}
}

func TestOnes(t *testing.T) {
	a, err := Ones(tensor.Shape{3}, tensor.F64)
	if err != nil {
		t.Fatalf("Ones failed: %v", err)
	}
	for i, v := range a.AsFloat64() {
		if v != 1 {
			t.Errorf("Element %d = %v, want 1", i, v)
		}
	}
}

func TestFromFloat32ShapeMismatch(t *testing.T) {
	_, err := FromFloat32([]float32{1, 2, 3}, tensor.Shape{2, 2})
	if !errors.Is(err, tensor.ErrShapeMismatch) {
		t.Errorf("Expected ErrShapeMismatch, got %v", err)
	}
}

func TestAt(t *testing.T) {
	a, _ := FromFloat32([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	v, ok := a.At(1, 2)
	if !ok || v != 6 {
		t.Errorf("At(1,2) = (%v, %v), want (6, true)", v, ok)
	}

	if _, ok := a.At(2, 0); ok {
		t.Error("At(2,0) should be out of range")
	}
	if _, ok := a.At(1); ok {
		t.Error("At with wrong arity should report out of range")
	}
	if _, ok := a.At(0, -1); ok {
		t.Error("At with negative index should report out of range")
	}
}

func TestCopyFrom(t *testing.T) {
	dst, _ := Zeros(tensor.Shape{2, 2}, tensor.F32)
	src, _ := Full(7, tensor.Shape{2, 2}, tensor.F32)

	if err := dst.CopyFrom(src); err != nil {
		t.Fatalf("CopyFrom failed: %v", err)
	}
	for i, v := range dst.AsFloat32() {
		if v != 7 {
			t.Errorf("Element %d = %v, want 7", i, v)
		}
	}
}

func TestCopyFromDTypeMismatch(t *testing.T) {
	dst, _ := Zeros(tensor.Shape{2}, tensor.F32)
	src, _ := Zeros(tensor.Shape{2}, tensor.F64)

	err := dst.CopyFrom(src)
	if !errors.Is(err, tensor.ErrDTypeMismatch) {
		t.Errorf("Expected ErrDTypeMismatch, got %v", err)
	}
}

func TestCopyFromShapeMismatch(t *testing.T) {
	dst, _ := Zeros(tensor.Shape{2, 2}, tensor.F32)
	src, _ := Zeros(tensor.Shape{4}, tensor.F32)

	err := dst.CopyFrom(src)
	if !errors.Is(err, tensor.ErrShapeMismatch) {
		t.Errorf("Expected ErrShapeMismatch, got %v", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a, _ := Full(2, tensor.Shape{3}, tensor.F64)
	b := a.Clone()

	b.AsFloat64()[0] = 99
	if a.AsFloat64()[0] != 2 {
		t.Errorf("Clone shares the buffer: original[0] = %v", a.AsFloat64()[0])
	}
}
