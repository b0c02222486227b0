package riscv64

import (
	"fmt"
	"strconv"
	"strings"
)

// Register is a general purpose register viewed at a specific width.
//
// The index occupies the low byte and the width the high byte, so every
// register in the table below is a constant and two registers are equal
// iff both their index and width match: X10 and X10.MustWithWidth(32) are
// different values over the same physical register.
type Register uint16

// NilRegister can be used to indicate that no register is specified.
// It is not Valid.
const NilRegister Register = 0

const (
	registerIndexMask  = 0b11111
	registerWidthShift = 8
	registerCount      = 32
)

// RISC-V general purpose registers, all 64-bit wide.
// https://github.com/riscv-non-isa/riscv-elf-psabi-doc/blob/master/riscv-cc.adoc#integer-register-convention
const (
	X0 Register = Register(Width64)<<registerWidthShift + iota
	X1
	X2
	X3
	X4
	X5
	X6
	X7
	X8
	X9
	X10
	X11
	X12
	X13
	X14
	X15
	X16
	X17
	X18
	X19
	X20
	X21
	X22
	X23
	X24
	X25
	X26
	X27
	X28
	X29
	X30
	X31
)

// ABI names of the general purpose registers.
const (
	ZERO = X0
	RA   = X1
	SP   = X2
	GP   = X3
	TP   = X4
	T0   = X5
	T1   = X6
	T2   = X7
	S0   = X8
	FP   = S0
	S1   = X9
	A0   = X10
	A1   = X11
	A2   = X12
	A3   = X13
	A4   = X14
	A5   = X15
	A6   = X16
	A7   = X17
	S2   = X18
	S3   = X19
	S4   = X20
	S5   = X21
	S6   = X22
	S7   = X23
	S8   = X24
	S9   = X25
	S10  = X26
	S11  = X27
	T3   = X28
	T4   = X29
	T5   = X30
	T6   = X31
)

// ReturnAddress holds the return address of calls made with JAL/JALR.
const ReturnAddress = RA

var (
	// ArgumentRegisters pass integer arguments and return values, in order.
	ArgumentRegisters = [...]Register{A0, A1, A2, A3, A4, A5, A6, A7}
	// TemporaryRegisters are not preserved across calls.
	TemporaryRegisters = [...]Register{T0, T1, T2, T3, T4, T5, T6}
	// CalleeSavedRegisters must be preserved by a callee which writes them.
	CalleeSavedRegisters = [...]Register{S0, S1, S2, S3, S4, S5, S6, S7, S8, S9, S10, S11}
)

var regNames = [registerCount]string{
	0:  "zero",
	1:  "ra",
	2:  "sp",
	3:  "gp",
	4:  "tp",
	5:  "t0",
	6:  "t1",
	7:  "t2",
	8:  "s0",
	9:  "s1",
	10: "a0",
	11: "a1",
	12: "a2",
	13: "a3",
	14: "a4",
	15: "a5",
	16: "a6",
	17: "a7",
	18: "s2",
	19: "s3",
	20: "s4",
	21: "s5",
	22: "s6",
	23: "s7",
	24: "s8",
	25: "s9",
	26: "s10",
	27: "s11",
	28: "t3",
	29: "t4",
	30: "t5",
	31: "t6",
}

// registerOf returns the 64-bit view of the register numbered index.
func registerOf(index uint8) (Register, error) {
	if index >= registerCount {
		return NilRegister, fmt.Errorf("register index out of range: %d", index)
	}
	return X0 + Register(index), nil
}

// Index returns the architectural register number, which is what instruction
// encoders put in the rd/rs1/rs2 fields.
func (r Register) Index() uint8 {
	return uint8(r & registerIndexMask)
}

// Width returns the width this register is viewed at.
func (r Register) Width() Width {
	return Width(r >> registerWidthShift)
}

// Valid returns true if r is one of the table registers, at any valid width.
func (r Register) Valid() bool {
	return r.Width().Valid() && uint8(r) < registerCount
}

// WithWidth returns the same physical register viewed at n bits.
// The error wraps ErrInvalidWidth if n is not a valid Width.
// NilRegister and other invalid receivers are rejected, never retagged.
func (r Register) WithWidth(n int) (Register, error) {
	if !r.Valid() {
		return NilRegister, fmt.Errorf("invalid register %s", r)
	}
	w, err := ValidateWidth(n)
	if err != nil {
		return NilRegister, err
	}
	return Register(w)<<registerWidthShift | Register(r.Index()), nil
}

// MustWithWidth is like WithWidth but panics on an invalid register or width.
func (r Register) MustWithWidth(n int) Register {
	ret, err := r.WithWidth(n)
	if err != nil {
		panic(err)
	}
	return ret
}

// String implements fmt.Stringer.
func (r Register) String() string {
	switch {
	case r == NilRegister:
		return "nil"
	case !r.Valid():
		return fmt.Sprintf("invalid(%#x)", uint16(r))
	case r.Width() == Width64:
		return regNames[r.Index()]
	default:
		return fmt.Sprintf("%s/%d", regNames[r.Index()], r.Width())
	}
}

// RegisterByName returns the 64-bit register named either by its number ("x10")
// or by its ABI name ("a0", "fp"). Names are case-insensitive.
func RegisterByName(name string) (Register, bool) {
	name = strings.ToLower(name)
	if name == "fp" {
		return FP, true
	}
	if strings.HasPrefix(name, "x") {
		n, err := strconv.ParseUint(name[1:], 10, 8)
		if err != nil || strconv.FormatUint(n, 10) != name[1:] {
			return NilRegister, false
		}
		r, err := registerOf(uint8(n))
		return r, err == nil
	}
	for i, n := range regNames {
		if n == name {
			return X0 + Register(i), true
		}
	}
	return NilRegister, false
}

// IsArgument returns true if r is one of ArgumentRegisters at any width.
func IsArgument(r Register) bool {
	i := r.Index()
	return r.Valid() && i >= A0.Index() && i <= A7.Index()
}

// IsTemporary returns true if r is one of TemporaryRegisters at any width.
func IsTemporary(r Register) bool {
	i := r.Index()
	return r.Valid() && (i >= T0.Index() && i <= T2.Index() || i >= T3.Index())
}

// IsCalleeSaved returns true if r is one of CalleeSavedRegisters at any width.
func IsCalleeSaved(r Register) bool {
	i := r.Index()
	return r.Valid() && (i == S0.Index() || i == S1.Index() || i >= S2.Index() && i <= S11.Index())
}
