package riscv64

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidWidth is returned when a register or memory access width is not one of 8, 16, 32 or 64 bits.
var ErrInvalidWidth = errors.New("invalid register width")

// Width is the number of bits of a register accessed by an instruction.
// The zero value is not a valid width.
type Width uint8

const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
	Width64 Width = 64
)

// ValidateWidth returns the Width for n bits, or an error wrapping ErrInvalidWidth
// if n does not correspond to a sub-register view.
func ValidateWidth(n int) (Width, error) {
	switch n {
	case 8, 16, 32, 64:
		return Width(n), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidWidth, n)
	}
}

// MustValidateWidth is like ValidateWidth but panics on an invalid width.
func MustValidateWidth(n int) Width {
	w, err := ValidateWidth(n)
	if err != nil {
		panic(err)
	}
	return w
}

// Bits returns the number of bits.
func (w Width) Bits() int {
	return int(w)
}

// Valid returns true if w is one of Width8, Width16, Width32 or Width64.
func (w Width) Valid() bool {
	switch w {
	case Width8, Width16, Width32, Width64:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (w Width) String() string {
	if !w.Valid() {
		return fmt.Sprintf("invalid(%d)", uint8(w))
	}
	return strconv.Itoa(int(w))
}
