package riscv64

import (
	"fmt"

	"golang.org/x/arch/riscv64/riscv64asm"
)

// ArchRegister returns the x/arch register of r, dropping its width.
// x/arch has no "no register" value, so NilRegister panics like any invalid register.
func ArchRegister(r Register) riscv64asm.Reg {
	if !r.Valid() {
		panic(fmt.Sprintf("BUG: invalid register %s", r))
	}
	return riscv64asm.X0 + riscv64asm.Reg(r.Index())
}

// RegisterFromArch returns the 64-bit Register for the x/arch register r.
func RegisterFromArch(r riscv64asm.Reg) (Register, error) {
	if r > riscv64asm.X31 {
		return NilRegister, fmt.Errorf("not a general purpose register: %s", r)
	}
	return registerOf(uint8(r - riscv64asm.X0))
}

// AccessWidth returns the number of bits loaded or stored by op,
// or zero if op is not a load, a store or JALR.
func AccessWidth(op riscv64asm.Op) Width {
	switch op {
	case riscv64asm.LB, riscv64asm.LBU, riscv64asm.SB:
		return Width8
	case riscv64asm.LH, riscv64asm.LHU, riscv64asm.SH:
		return Width16
	case riscv64asm.LW, riscv64asm.LWU, riscv64asm.SW:
		return Width32
	case riscv64asm.LD, riscv64asm.SD, riscv64asm.JALR:
		return Width64
	default:
		return 0
	}
}

// OperandFromArg converts a decoded argument into an Operand.
// width is the access width used when arg is a memory reference.
func OperandFromArg(arg riscv64asm.Arg, width Width) (Operand, error) {
	switch a := arg.(type) {
	case riscv64asm.Reg:
		r, err := RegisterFromArch(a)
		if err != nil {
			return Operand{}, err
		}
		return OperandReg(r), nil
	case riscv64asm.Simm:
		return OperandImm(int64(a.Imm)), nil
	case riscv64asm.Uimm:
		return OperandUImm(uint64(a.Imm)), nil
	case riscv64asm.RegOffset:
		if !width.Valid() {
			return Operand{}, fmt.Errorf("%w for memory argument %s: %s", ErrInvalidWidth, a, width)
		}
		base, err := RegisterFromArch(a.OfsReg)
		if err != nil {
			return Operand{}, err
		}
		return OperandMem(width, base, a.Ofs.Imm), nil
	default:
		return Operand{}, fmt.Errorf("unsupported argument %v (%T)", arg, arg)
	}
}

// DecodeOperands decodes the instruction at the beginning of code, and returns it
// together with its arguments as Operands, in the order x/arch lists them.
func DecodeOperands(code []byte) (inst riscv64asm.Inst, ops []Operand, err error) {
	inst, err = riscv64asm.Decode(code)
	if err != nil {
		err = fmt.Errorf("failed to decode instruction: %w", err)
		return
	}

	width := AccessWidth(inst.Op)
	for _, arg := range inst.Args {
		if arg == nil {
			break
		}
		var op Operand
		if op, err = OperandFromArg(arg, width); err != nil {
			err = fmt.Errorf("%s: %w", inst.Op, err)
			return
		}
		ops = append(ops, op)
	}
	return
}
