package backend

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/stemmr/Mantis/internal/backend/cpu"
	"github.com/stemmr/Mantis/internal/tensor"
)

// Verify that Data implements the capability surface.
var _ tensor.Data = (*Data)(nil)

// Data is the backend-dispatched payload behind a tensor handle: a device
// tag plus the backend-specific array it wraps. Its dtype and shape
// delegate to the inner array. All operands of an operation must carry
// the same tag; the kernels preserve the cpu package's contracts.
type Data struct {
	device Device
	cpu    *cpu.Array // payload when device == CPU
}

// NewCPU wraps a CPU array.
func NewCPU(arr *cpu.Array) *Data {
	return &Data{device: CPU, cpu: arr}
}

// NewMetal returns the reserved Metal variant. No kernels are wired for
// it; every operation fails with tensor.ErrBackendUnsupported.
func NewMetal() *Data {
	return &Data{device: Metal}
}

// Zeros allocates an all-zero CPU payload.
func Zeros(shape tensor.Shape, dtype tensor.DType) (*Data, error) {
	arr, err := cpu.Zeros(shape, dtype)
	if err != nil {
		return nil, err
	}
	return NewCPU(arr), nil
}

// Ones allocates an all-one CPU payload.
func Ones(shape tensor.Shape, dtype tensor.DType) (*Data, error) {
	arr, err := cpu.Ones(shape, dtype)
	if err != nil {
		return nil, err
	}
	return NewCPU(arr), nil
}

// Full allocates a CPU payload with every element set to value.
func Full(value float64, shape tensor.Shape, dtype tensor.DType) (*Data, error) {
	arr, err := cpu.Full(value, shape, dtype)
	if err != nil {
		return nil, err
	}
	return NewCPU(arr), nil
}

// FromFloat32 copies data into a new F32 CPU payload.
func FromFloat32(data []float32, shape tensor.Shape) (*Data, error) {
	arr, err := cpu.FromFloat32(data, shape)
	if err != nil {
		return nil, err
	}
	return NewCPU(arr), nil
}

// FromFloat64 copies data into a new F64 CPU payload.
func FromFloat64(data []float64, shape tensor.Shape) (*Data, error) {
	arr, err := cpu.FromFloat64(data, shape)
	if err != nil {
		return nil, err
	}
	return NewCPU(arr), nil
}

// Device returns the payload's device tag.
func (d *Data) Device() Device {
	return d.device
}

// Array returns the wrapped CPU array, or nil for non-CPU payloads.
func (d *Data) Array() *cpu.Array {
	return d.cpu
}

// Zeros allocates an all-zero array on the receiver's device.
func (d *Data) Zeros(shape tensor.Shape, dtype tensor.DType) (tensor.Data, error) {
	return d.factory("zeros", func() (*cpu.Array, error) { return cpu.Zeros(shape, dtype) })
}

// Ones allocates an all-one array on the receiver's device.
func (d *Data) Ones(shape tensor.Shape, dtype tensor.DType) (tensor.Data, error) {
	return d.factory("ones", func() (*cpu.Array, error) { return cpu.Ones(shape, dtype) })
}

// Full allocates a filled array on the receiver's device.
func (d *Data) Full(value float64, shape tensor.Shape, dtype tensor.DType) (tensor.Data, error) {
	return d.factory("full", func() (*cpu.Array, error) { return cpu.Full(value, shape, dtype) })
}

// Add dispatches elementwise addition.
func (d *Data) Add(rhs tensor.Data) (tensor.Data, error) {
	return d.binary("add", rhs, (*cpu.Array).Add)
}

// Sub dispatches elementwise subtraction.
func (d *Data) Sub(rhs tensor.Data) (tensor.Data, error) {
	return d.binary("sub", rhs, (*cpu.Array).Sub)
}

// Mul dispatches elementwise multiplication.
func (d *Data) Mul(rhs tensor.Data) (tensor.Data, error) {
	return d.binary("mul", rhs, (*cpu.Array).Mul)
}

// Div dispatches elementwise division.
func (d *Data) Div(rhs tensor.Data) (tensor.Data, error) {
	return d.binary("div", rhs, (*cpu.Array).Div)
}

// MatMul dispatches the matrix product.
func (d *Data) MatMul(rhs tensor.Data) (tensor.Data, error) {
	return d.binary("matmul", rhs, (*cpu.Array).MatMul)
}

// ReLU dispatches elementwise max(x, 0).
func (d *Data) ReLU() (tensor.Data, error) {
	return d.unary("relu", (*cpu.Array).ReLU)
}

// Exp dispatches the elementwise exponential.
func (d *Data) Exp() (tensor.Data, error) {
	return d.unary("exp", (*cpu.Array).Exp)
}

// Sum dispatches the reduction along the given axes.
func (d *Data) Sum(dims []int) (tensor.Data, error) {
	return d.unary("sum", func(a *cpu.Array) (*cpu.Array, error) { return a.Sum(dims) })
}

// Transpose dispatches the full axis reversal.
func (d *Data) Transpose() (tensor.Data, error) {
	return d.unary("transpose", (*cpu.Array).Transpose)
}

// At returns the element at the multi-index widened to float64.
// Non-CPU payloads hold no elements, so the lookup reports out of range.
func (d *Data) At(idx ...int) (float64, bool) {
	if d.device != CPU {
		return 0, false
	}
	return d.cpu.At(idx...)
}

// CopyFrom overwrites the receiver's buffer with src's elements.
func (d *Data) CopyFrom(src tensor.Data) error {
	other, ok := src.(*Data)
	if !ok {
		return d.foreign("copy_from", src)
	}
	if d.device != other.device {
		return d.mismatch("copy_from", other)
	}
	if d.device != CPU {
		return d.unsupported("copy_from")
	}
	return d.cpu.CopyFrom(other.cpu)
}

// Shape delegates to the wrapped array. Non-CPU payloads have no shape.
func (d *Data) Shape() tensor.Shape {
	if d.device != CPU {
		return nil
	}
	return d.cpu.Shape()
}

// DType delegates to the wrapped array.
func (d *Data) DType() tensor.DType {
	if d.device != CPU {
		return tensor.DType(-1)
	}
	return d.cpu.DType()
}

// String returns a human-readable representation of the payload.
func (d *Data) String() string {
	if d.device != CPU {
		return fmt.Sprintf("Data[%s]", d.device)
	}
	return fmt.Sprintf("Data[%s]%v on %s", d.cpu.DType(), d.cpu.Shape(), d.device)
}

// factory allocates on the receiver's device.
func (d *Data) factory(op string, alloc func() (*cpu.Array, error)) (tensor.Data, error) {
	if d.device != CPU {
		return nil, d.unsupported(op)
	}
	arr, err := alloc()
	if err != nil {
		return nil, err
	}
	opsTotal.WithLabelValues(op, d.device.String()).Inc()
	return NewCPU(arr), nil
}

// binary routes a two-operand operation to the kernel for the shared
// device, rejecting mixed pairings first.
func (d *Data) binary(op string, rhs tensor.Data, kernel func(a, b *cpu.Array) (*cpu.Array, error)) (tensor.Data, error) {
	other, ok := rhs.(*Data)
	if !ok {
		return nil, d.foreign(op, rhs)
	}
	if d.device != other.device {
		return nil, d.mismatch(op, other)
	}
	if d.device != CPU {
		return nil, d.unsupported(op)
	}
	out, err := kernel(d.cpu, other.cpu)
	if err != nil {
		return nil, err
	}
	opsTotal.WithLabelValues(op, d.device.String()).Inc()
	return NewCPU(out), nil
}

// unary routes a single-operand operation to the kernel for the
// receiver's device.
func (d *Data) unary(op string, kernel func(a *cpu.Array) (*cpu.Array, error)) (tensor.Data, error) {
	if d.device != CPU {
		return nil, d.unsupported(op)
	}
	out, err := kernel(d.cpu)
	if err != nil {
		return nil, err
	}
	opsTotal.WithLabelValues(op, d.device.String()).Inc()
	return NewCPU(out), nil
}

// mismatch rejects an operation whose operands carry different tags.
func (d *Data) mismatch(op string, other *Data) error {
	rejectionsTotal.WithLabelValues(op, "backend_mismatch").Inc()
	log.Debug().
		Str("op", op).
		Stringer("lhs", d.device).
		Stringer("rhs", other.device).
		Msg("rejected cross-backend operation")
	return fmt.Errorf("%s: %s and %s operands: %w", op, d.device, other.device, tensor.ErrBackendMismatch)
}

// foreign rejects an operand that is not a backend.Data at all.
func (d *Data) foreign(op string, rhs tensor.Data) error {
	rejectionsTotal.WithLabelValues(op, "backend_mismatch").Inc()
	log.Debug().
		Str("op", op).
		Stringer("lhs", d.device).
		Type("rhs", rhs).
		Msg("rejected foreign data payload")
	return fmt.Errorf("%s: foreign payload %T: %w", op, rhs, tensor.ErrBackendMismatch)
}

// unsupported rejects an operation on a device with no kernels wired in.
func (d *Data) unsupported(op string) error {
	rejectionsTotal.WithLabelValues(op, "backend_unsupported").Inc()
	log.Debug().
		Str("op", op).
		Stringer("device", d.device).
		Msg("no kernel wired for device")
	return fmt.Errorf("%s: no %s kernels: %w", op, d.device, tensor.ErrBackendUnsupported)
}
