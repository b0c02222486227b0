package riscv64

import (
	"fmt"

	"github.com/rvjit/rvasm/internal/asm"
)

type (
	// Operand is anything an instruction may reference, and its type is determined by the kind.
	// The zero value is the "no operand" sentinel of OperandKindNone.
	//
	// Operand is comparable: two operands are equal iff they have the same kind and payload.
	Operand struct {
		kind OperandKind
		// width is the register width, the immediate size, or the memory access width.
		width Width
		// reg is the register of OperandKindRegister, or the base of OperandKindMemory.
		reg Register
		// index is the optional index register of OperandKindMemory.
		index Register
		// data holds the immediate bits, the displacement, or the pc-relative offset.
		data uint64
	}
	// OperandKind is the closed set of operand kinds. Encoders switch over it
	// and must reject the kinds their opcode does not support.
	OperandKind byte
)

const (
	// OperandKindNone means "no operand". It is a placeholder and never reaches an encoder.
	OperandKindNone OperandKind = iota
	// OperandKindRegister is a general purpose register at a specific width.
	OperandKindRegister
	// OperandKindImmediate is a signed constant.
	OperandKindImmediate
	// OperandKindUnsignedImmediate is an unsigned constant.
	OperandKindUnsignedImmediate
	// OperandKindMemory is the memory at base + displacement, optionally plus an index register.
	OperandKindMemory
	// OperandKindIPRelative is the memory or code at pc + offset.
	OperandKindIPRelative
)

// String implements fmt.Stringer.
func (k OperandKind) String() (ret string) {
	switch k {
	case OperandKindNone:
		ret = "none"
	case OperandKindRegister:
		ret = "register"
	case OperandKindImmediate:
		ret = "immediate"
	case OperandKindUnsignedImmediate:
		ret = "unsigned-immediate"
	case OperandKindMemory:
		ret = "memory"
	case OperandKindIPRelative:
		ret = "ip-relative"
	default:
		ret = fmt.Sprintf("unknown(%d)", byte(k))
	}
	return
}

// OperandNone returns the sentinel of OperandKindNone.
func OperandNone() Operand {
	return Operand{}
}

// OperandReg encodes the given Register as an operand of OperandKindRegister.
func OperandReg(r Register) Operand {
	if !r.Valid() {
		panic(fmt.Sprintf("BUG: invalid register %s", r))
	}
	return Operand{kind: OperandKindRegister, width: r.Width(), reg: r}
}

// OperandImm encodes v as an operand of OperandKindImmediate whose width is
// the smallest one v fits in.
func OperandImm(v int64) Operand {
	return Operand{kind: OperandKindImmediate, width: Width(asm.SignedImmBits(v)), data: uint64(v)}
}

// OperandUImm encodes v as an operand of OperandKindUnsignedImmediate whose width is
// the smallest one v fits in.
func OperandUImm(v uint64) Operand {
	return Operand{kind: OperandKindUnsignedImmediate, width: Width(asm.UnsignedImmBits(v)), data: v}
}

// OperandMem encodes the memory at `base + disp` accessed with `width` bits
// as an operand of OperandKindMemory.
func OperandMem(width Width, base Register, disp int32) Operand {
	if !width.Valid() {
		panic(fmt.Sprintf("BUG: invalid memory access width %s", width))
	}
	if !base.Valid() {
		panic(fmt.Sprintf("BUG: invalid base register %s", base))
	}
	return Operand{kind: OperandKindMemory, width: width, reg: base, data: uint64(int64(disp))}
}

// OperandMemIndex is like OperandMem, but the address is `base + index + disp`.
// RV64I has no indexed addressing, so encoders lower this into an add followed
// by the access.
func OperandMemIndex(width Width, base, index Register, disp int32) Operand {
	if !index.Valid() {
		panic(fmt.Sprintf("BUG: invalid index register %s", index))
	}
	o := OperandMem(width, base, disp)
	o.index = index
	return o
}

// OperandIPRel encodes the pc-relative `offset` as an operand of OperandKindIPRelative.
func OperandIPRel(offset int32) Operand {
	return Operand{kind: OperandKindIPRelative, data: uint64(int64(offset))}
}

// Kind returns the OperandKind of this operand.
func (o Operand) Kind() OperandKind {
	return o.kind
}

// IsNone returns true if this is the sentinel of OperandKindNone.
func (o Operand) IsNone() bool {
	return o.kind == OperandKindNone
}

// Width returns the register width, the immediate size or the memory access width.
// It is zero for OperandKindNone and OperandKindIPRelative.
func (o Operand) Width() Width {
	return o.width
}

func (o Operand) mustBe(k OperandKind) {
	if o.kind != k {
		panic(fmt.Sprintf("BUG: %s operand used as %s", o.kind, k))
	}
}

// Reg decodes the underlying Register of OperandKindRegister.
func (o Operand) Reg() Register {
	o.mustBe(OperandKindRegister)
	return o.reg
}

// Imm decodes the underlying value of OperandKindImmediate.
func (o Operand) Imm() int64 {
	o.mustBe(OperandKindImmediate)
	return int64(o.data)
}

// UImm decodes the underlying value of OperandKindUnsignedImmediate.
func (o Operand) UImm() uint64 {
	o.mustBe(OperandKindUnsignedImmediate)
	return o.data
}

// Mem decodes the underlying address of OperandKindMemory.
// index is NilRegister unless the operand was made by OperandMemIndex.
func (o Operand) Mem() (base, index Register, disp int32) {
	o.mustBe(OperandKindMemory)
	return o.reg, o.index, int32(int64(o.data))
}

// HasIndex returns true if this is a memory operand with an index register.
func (o Operand) HasIndex() bool {
	return o.kind == OperandKindMemory && o.index != NilRegister
}

// IPRel decodes the underlying offset of OperandKindIPRelative.
func (o Operand) IPRel() int32 {
	o.mustBe(OperandKindIPRelative)
	return int32(int64(o.data))
}

// String implements fmt.Stringer.
func (o Operand) String() (ret string) {
	switch o.kind {
	case OperandKindNone:
		ret = "none"
	case OperandKindRegister:
		ret = o.reg.String()
	case OperandKindImmediate:
		ret = fmt.Sprintf("$%d", o.Imm())
	case OperandKindUnsignedImmediate:
		ret = fmt.Sprintf("$%#x", o.UImm())
	case OperandKindMemory:
		base, index, disp := o.Mem()
		if index != NilRegister {
			ret = fmt.Sprintf("%d(%s+%s):%d", disp, base, index, o.width)
		} else {
			ret = fmt.Sprintf("%d(%s):%d", disp, base, o.width)
		}
	case OperandKindIPRelative:
		ret = fmt.Sprintf("pc%+d", o.IPRel())
	default:
		ret = o.kind.String()
	}
	return
}
