package riscv64

import (
	"fmt"

	goasm "github.com/twitchyliquid64/golang-asm"
	"github.com/twitchyliquid64/golang-asm/obj"
	"github.com/twitchyliquid64/golang-asm/obj/riscv"
)

// GolangAsmRegister returns the golang-asm register number of r.
// golang-asm has no sub-register views, so the width of r is dropped.
// NilRegister maps to REG_NONE; any other invalid register panics.
func GolangAsmRegister(r Register) int16 {
	if r == NilRegister {
		return obj.REG_NONE
	} else if !r.Valid() {
		panic(fmt.Sprintf("BUG: invalid register %s", r))
	}
	return riscv.REG_X0 + int16(r.Index())
}

// RegisterFromGolangAsm returns the 64-bit Register for the golang-asm register number reg.
func RegisterFromGolangAsm(reg int16) (Register, error) {
	if reg < riscv.REG_X0 || reg > riscv.REG_X31 {
		return NilRegister, fmt.Errorf("not a general purpose register: %s", obj.Rconv(int(reg)))
	}
	return registerOf(uint8(reg - riscv.REG_X0))
}

// GolangAsmAddr converts o into the operand representation of golang-asm.
func GolangAsmAddr(o Operand) (addr obj.Addr, err error) {
	switch o.Kind() {
	case OperandKindNone:
		addr.Type = obj.TYPE_NONE
	case OperandKindRegister:
		addr.Type = obj.TYPE_REG
		addr.Reg = GolangAsmRegister(o.Reg())
	case OperandKindImmediate:
		addr.Type = obj.TYPE_CONST
		addr.Offset = o.Imm()
	case OperandKindUnsignedImmediate:
		addr.Type = obj.TYPE_CONST
		addr.Offset = int64(o.UImm())
	case OperandKindMemory:
		base, index, disp := o.Mem()
		addr.Type = obj.TYPE_MEM
		addr.Reg = GolangAsmRegister(base)
		addr.Index = GolangAsmRegister(index)
		addr.Offset = int64(disp)
	case OperandKindIPRelative:
		addr.Type = obj.TYPE_BRANCH
		addr.Offset = int64(o.IPRel())
	default:
		err = fmt.Errorf("golang-asm conversion undefined for [%s] operand", o.Kind())
	}
	return
}

// NewGolangAsmBuilder returns a golang-asm builder targeting riscv64.
func NewGolangAsmBuilder() (*goasm.Builder, error) {
	b, err := goasm.NewBuilder("riscv64", 1024)
	if err != nil {
		return nil, fmt.Errorf("failed to create a new assembly builder: %w", err)
	}
	return b, nil
}

// NewGolangAsmProg returns a new *obj.Prog for the instruction `as` whose operands are `from`, `mid` and `to`,
// following the Go assembler operand order: `ADD X7, X6, X5` is `as=AADD, from=X7, mid=X6, to=X5`.
// mid can be NilRegister for instructions with two operands.
//
// The returned Prog is not added to b.
func NewGolangAsmProg(b *goasm.Builder, as obj.As, from Operand, mid Register, to Operand) (*obj.Prog, error) {
	fromAddr, err := GolangAsmAddr(from)
	if err != nil {
		return nil, err
	}
	toAddr, err := GolangAsmAddr(to)
	if err != nil {
		return nil, err
	}
	if mid != NilRegister && !mid.Valid() {
		return nil, fmt.Errorf("invalid register %s", mid)
	}

	p := b.NewProg()
	p.As = as
	p.From = fromAddr
	p.Reg = GolangAsmRegister(mid)
	p.To = toAddr
	return p, nil
}
