package riscv64

// Immediate ranges of the RV64I instruction formats.
// See "Base Instruction Formats" in The RISC-V Instruction Set Manual Volume I.

const (
	imm12Min = -1 << 11
	imm12Max = 1<<11 - 1

	uimm20Max = 1<<20 - 1

	// B-type immediates are 13-bit signed multiples of 2.
	branchOffsetMin = -1 << 12
	branchOffsetMax = 1<<12 - 2

	// J-type immediates are 21-bit signed multiples of 2.
	jumpOffsetMin = -1 << 20
	jumpOffsetMax = 1<<20 - 2

	// AUIPC adds a sign-extended hi20<<12, and the following I-type instruction a signed lo12.
	ipRelMin = -1<<31 + imm12Min
	ipRelMax = 1<<31 - 1<<12 + imm12Max
)

// FitsImm12 returns true if v can be the signed 12-bit immediate of an I-type or S-type instruction,
// e.g. ADDI or the displacement of LD and SD.
func FitsImm12(v int64) bool {
	return v >= imm12Min && v <= imm12Max
}

// FitsUImm20 returns true if v can be the 20-bit immediate of LUI or AUIPC.
func FitsUImm20(v int64) bool {
	return v >= 0 && v <= uimm20Max
}

// FitsBranchOffset returns true if v can be the offset of a conditional branch (BEQ, BNE, ...).
func FitsBranchOffset(v int64) bool {
	return v&1 == 0 && v >= branchOffsetMin && v <= branchOffsetMax
}

// FitsJumpOffset returns true if v can be the offset of JAL.
func FitsJumpOffset(v int64) bool {
	return v&1 == 0 && v >= jumpOffsetMin && v <= jumpOffsetMax
}

// FitsIPRel returns true if v is reachable from pc with an AUIPC followed by
// a 12-bit signed immediate, which is how OperandKindIPRelative is materialized.
func FitsIPRel(v int64) bool {
	return v >= ipRelMin && v <= ipRelMax
}

// FitsShamt returns true if v is a valid shift amount for a shift instruction operating on w bits.
// Only Width32 (SLLIW and friends) and Width64 (SLLI and friends) have shift instructions.
func FitsShamt(v int64, w Width) bool {
	switch w {
	case Width32, Width64:
		return v >= 0 && v < int64(w)
	default:
		return false
	}
}
