package asm

import "math"

// SignedImmBits returns the smallest of 8, 16, 32 or 64 bits which can hold v
// as a two's complement integer.
func SignedImmBits(v int64) uint8 {
	switch {
	case v >= math.MinInt8 && v <= math.MaxInt8:
		return 8
	case v >= math.MinInt16 && v <= math.MaxInt16:
		return 16
	case v >= math.MinInt32 && v <= math.MaxInt32:
		return 32
	default:
		return 64
	}
}

// UnsignedImmBits returns the smallest of 8, 16, 32 or 64 bits which can hold v.
func UnsignedImmBits(v uint64) uint8 {
	switch {
	case v <= math.MaxUint8:
		return 8
	case v <= math.MaxUint16:
		return 16
	case v <= math.MaxUint32:
		return 32
	default:
		return 64
	}
}
