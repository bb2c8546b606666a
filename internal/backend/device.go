// Package backend routes typed array operations to backend kernels.
//
// Data is a tagged variant over backend-specific array representations.
// The CPU variant forwards every operation to the cpu package; the Metal
// tag is reserved for a future accelerator and carries no kernels, so
// operations on it fail with tensor.ErrBackendUnsupported. Any operation
// mixing backends fails with tensor.ErrBackendMismatch.
package backend

// Device identifies the execution target of a Data value.
// The set is open: new accelerator tags are additive.
type Device int

// Known devices.
const (
	CPU Device = iota
	Metal
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "cpu"
	case Metal:
		return "metal"
	default:
		return "unknown"
	}
}
