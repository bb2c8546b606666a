package tensor

// OpKind identifies the operation that produced a tensor.
type OpKind int

// Operation kinds. OpNone marks leaf tensors.
const (
	OpNone OpKind = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMatMul
	OpReLU
	OpExp
	OpSum
	OpTranspose
)

// String returns a human-readable name for the operation kind.
func (k OpKind) String() string {
	switch k {
	case OpNone:
		return "none"
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	case OpMatMul:
		return "matmul"
	case OpReLU:
		return "relu"
	case OpExp:
		return "exp"
	case OpSum:
		return "sum"
	case OpTranspose:
		return "transpose"
	default:
		return "unknown"
	}
}

// Op records one performed operation and the handles it consumed, so a
// graph layer above this core can recover provenance. The record is inert:
// it holds shared references to pre-existing operand handles and never
// copies array buffers. Cycles are impossible because an Op only refers
// to tensors that existed before its result.
type Op struct {
	Kind   OpKind
	Inputs []*Tensor
	Dims   []int // reduction axes, OpSum only
}

// NewBinaryOp records a two-operand operation.
func NewBinaryOp(kind OpKind, a, b *Tensor) Op {
	return Op{
		Kind:   kind,
		Inputs: []*Tensor{a, b},
	}
}

// NewUnaryOp records a single-operand operation.
func NewUnaryOp(kind OpKind, a *Tensor) Op {
	return Op{
		Kind:   kind,
		Inputs: []*Tensor{a},
	}
}

// NewSumOp records a reduction and the axes it collapsed.
func NewSumOp(a *Tensor, dims []int) Op {
	return Op{
		Kind:   OpSum,
		Inputs: []*Tensor{a},
		Dims:   append([]int(nil), dims...),
	}
}

// IsLeaf reports whether the record marks a leaf tensor.
func (op Op) IsLeaf() bool {
	return op.Kind == OpNone
}
