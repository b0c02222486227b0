package riscv64

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/arch/riscv64/riscv64asm"
)

func TestArchRegister(t *testing.T) {
	for i, r := range allRegisters {
		require.Equal(t, riscv64asm.X0+riscv64asm.Reg(i), ArchRegister(r))
		require.Equal(t, ArchRegister(r), ArchRegister(r.MustWithWidth(32)))

		actual, err := RegisterFromArch(ArchRegister(r))
		require.NoError(t, err)
		require.Equal(t, r, actual)
	}

	require.PanicsWithValue(t, "BUG: invalid register nil", func() {
		ArchRegister(NilRegister)
	})
	require.PanicsWithValue(t, "BUG: invalid register invalid(0x4020)", func() {
		ArchRegister(Register(0x4020))
	})

	_, err := RegisterFromArch(riscv64asm.F0)
	require.EqualError(t, err, "not a general purpose register: f0")
}

func TestAccessWidth(t *testing.T) {
	for _, tc := range []struct {
		op  riscv64asm.Op
		exp Width
	}{
		{op: riscv64asm.LB, exp: Width8},
		{op: riscv64asm.LBU, exp: Width8},
		{op: riscv64asm.SB, exp: Width8},
		{op: riscv64asm.LH, exp: Width16},
		{op: riscv64asm.LHU, exp: Width16},
		{op: riscv64asm.SH, exp: Width16},
		{op: riscv64asm.LW, exp: Width32},
		{op: riscv64asm.LWU, exp: Width32},
		{op: riscv64asm.SW, exp: Width32},
		{op: riscv64asm.LD, exp: Width64},
		{op: riscv64asm.SD, exp: Width64},
		{op: riscv64asm.JALR, exp: Width64},
		{op: riscv64asm.ADD, exp: 0},
	} {
		require.Equal(t, tc.exp, AccessWidth(tc.op), tc.op.String())
	}
}

func TestOperandFromArg(t *testing.T) {
	op, err := OperandFromArg(riscv64asm.X10, 0)
	require.NoError(t, err)
	require.Equal(t, OperandReg(A0), op)

	op, err = OperandFromArg(riscv64asm.Simm{Imm: -2048, Decimal: true, Width: 12}, 0)
	require.NoError(t, err)
	require.Equal(t, OperandImm(-2048), op)

	op, err = OperandFromArg(riscv64asm.Uimm{Imm: 0xfffff}, 0)
	require.NoError(t, err)
	require.Equal(t, OperandUImm(0xfffff), op)

	op, err = OperandFromArg(riscv64asm.RegOffset{OfsReg: riscv64asm.X2, Ofs: riscv64asm.Simm{Imm: 8, Decimal: true, Width: 12}}, Width16)
	require.NoError(t, err)
	require.Equal(t, OperandMem(Width16, SP, 8), op)

	_, err = OperandFromArg(riscv64asm.RegOffset{OfsReg: riscv64asm.X2, Ofs: riscv64asm.Simm{Imm: 8, Decimal: true, Width: 12}}, 0)
	require.ErrorIs(t, err, ErrInvalidWidth)

	_, err = OperandFromArg(riscv64asm.RegOffset{OfsReg: riscv64asm.F1}, Width64)
	require.EqualError(t, err, "not a general purpose register: f1")

	_, err = OperandFromArg(riscv64asm.F3, 0)
	require.EqualError(t, err, "not a general purpose register: f3")

	_, err = OperandFromArg(riscv64asm.MemOrder(0), 0)
	require.Error(t, err)
}

// Instruction words are taken from the GNU test cases of golang.org/x/arch/riscv64/riscv64asm.
func TestDecodeOperands(t *testing.T) {
	for _, tc := range []struct {
		name string
		code string
		op   riscv64asm.Op
		exp  []Operand
	}{
		{
			name: "add x5,x6,x7",
			code: "b3027300",
			op:   riscv64asm.ADD,
			exp:  []Operand{OperandReg(T0), OperandReg(T1), OperandReg(T2)},
		},
		{
			name: "addi x5,x6,-1",
			code: "9302f3ff",
			op:   riscv64asm.ADDI,
			exp:  []Operand{OperandReg(T0), OperandReg(T1), OperandImm(-1)},
		},
		{
			name: "lw x5,2047(x6)",
			code: "8322f37f",
			op:   riscv64asm.LW,
			exp:  []Operand{OperandReg(T0), OperandMem(Width32, T1, 2047)},
		},
		{
			name: "sd x5,2047(x6)",
			code: "a33f537e",
			op:   riscv64asm.SD,
			exp:  []Operand{OperandReg(T0), OperandMem(Width64, T1, 2047)},
		},
		{
			name: "lbu x5,2047(x6)",
			code: "8342f37f",
			op:   riscv64asm.LBU,
			exp:  []Operand{OperandReg(T0), OperandMem(Width8, T1, 2047)},
		},
		{
			name: "jalr x1,32(x5)",
			code: "e7800202",
			op:   riscv64asm.JALR,
			exp:  []Operand{OperandReg(RA), OperandMem(Width64, T0, 32)},
		},
		{
			name: "ret",
			code: "67800000",
			op:   riscv64asm.JALR,
			exp:  []Operand{OperandReg(ZERO), OperandMem(Width64, ReturnAddress, 0)},
		},
		{
			name: "lui x5,0x2918",
			code: "b7829102",
			op:   riscv64asm.LUI,
			exp:  []Operand{OperandReg(T0), OperandUImm(0x2918)},
		},
		{
			name: "beq x5,x6,-256",
			code: "e38062f0",
			op:   riscv64asm.BEQ,
			exp:  []Operand{OperandReg(T0), OperandReg(T1), OperandImm(-256)},
		},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			code, err := hex.DecodeString(tc.code)
			require.NoError(t, err)

			inst, ops, err := DecodeOperands(code)
			require.NoError(t, err)
			require.Equal(t, tc.op, inst.Op)
			require.Equal(t, 4, inst.Len)
			require.Equal(t, tc.exp, ops)
		})
	}

	t.Run("short", func(t *testing.T) {
		_, _, err := DecodeOperands([]byte{0x13})
		require.Error(t, err)
	})
}
