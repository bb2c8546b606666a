package tensor

// DType identifies the element type of an array.
// The set is closed today; future dtypes are additive.
type DType int

// Supported element types.
const (
	F32 DType = iota
	F64
)

// Size returns the byte width of one element.
func (dt DType) Size() int {
	switch dt {
	case F32:
		return 4
	case F64:
		return 8
	default:
		panic("unknown dtype")
	}
}

// Valid reports whether dt is a known element type.
func (dt DType) Valid() bool {
	return dt == F32 || dt == F64
}

// String returns a human-readable name for the element type.
func (dt DType) String() string {
	switch dt {
	case F32:
		return "f32"
	case F64:
		return "f64"
	default:
		return "unknown"
	}
}
