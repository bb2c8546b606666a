package tensor

import "errors"

// Error kinds reported by backends and kernels. Call sites wrap these with
// fmt.Errorf("...: %w", ...) so callers can test with errors.Is.
var (
	// ErrDTypeMismatch reports two operands with different element types.
	ErrDTypeMismatch = errors.New("dtype mismatch")

	// ErrShapeMismatch reports an elementwise operation on differently
	// shaped operands, or a CopyFrom with mismatched shapes.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrDimMismatch reports disagreeing matmul inner dimensions.
	ErrDimMismatch = errors.New("dimension mismatch")

	// ErrUnsupportedShape reports a matmul on ranks other than 1 or 2.
	ErrUnsupportedShape = errors.New("unsupported shape")

	// ErrAxisOutOfRange reports a reduction axis >= rank.
	ErrAxisOutOfRange = errors.New("axis out of range")

	// ErrBackendMismatch reports an operation across different backends.
	ErrBackendMismatch = errors.New("backend mismatch")

	// ErrBackendUnsupported reports an operation on a backend with no
	// kernels wired in.
	ErrBackendUnsupported = errors.New("backend unsupported")
)
