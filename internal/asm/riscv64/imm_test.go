package riscv64

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFitsImm12(t *testing.T) {
	for _, v := range []int64{-2048, -1, 0, 1, 2047} {
		require.True(t, FitsImm12(v), v)
	}
	for _, v := range []int64{math.MinInt64, -2049, 2048, 4095, math.MaxInt64} {
		require.False(t, FitsImm12(v), v)
	}
}

func TestFitsUImm20(t *testing.T) {
	for _, v := range []int64{0, 1, 0x800, 0xfffff} {
		require.True(t, FitsUImm20(v), v)
	}
	for _, v := range []int64{-1, 0x100000, math.MaxInt64} {
		require.False(t, FitsUImm20(v), v)
	}
}

func TestFitsBranchOffset(t *testing.T) {
	for _, v := range []int64{-4096, -256, 0, 2, 4094} {
		require.True(t, FitsBranchOffset(v), v)
	}
	for _, v := range []int64{-4098, -3, 1, 4095, 4096} {
		require.False(t, FitsBranchOffset(v), v)
	}
}

func TestFitsJumpOffset(t *testing.T) {
	for _, v := range []int64{-1 << 20, -844, 0, 1<<20 - 2} {
		require.True(t, FitsJumpOffset(v), v)
	}
	for _, v := range []int64{-1<<20 - 2, -843, 1 << 20, 1<<20 - 1} {
		require.False(t, FitsJumpOffset(v), v)
	}
}

func TestFitsIPRel(t *testing.T) {
	for _, v := range []int64{math.MinInt32 - 2048, math.MinInt32, 0, math.MaxInt32 - 2048} {
		require.True(t, FitsIPRel(v), v)
	}
	for _, v := range []int64{math.MinInt32 - 2049, math.MaxInt32 - 2047, math.MaxInt32} {
		require.False(t, FitsIPRel(v), v)
	}
}

func TestFitsShamt(t *testing.T) {
	require.True(t, FitsShamt(0, Width32))
	require.True(t, FitsShamt(31, Width32))
	require.False(t, FitsShamt(32, Width32))
	require.True(t, FitsShamt(63, Width64))
	require.False(t, FitsShamt(64, Width64))
	require.False(t, FitsShamt(-1, Width64))
	require.False(t, FitsShamt(1, Width16))
	require.False(t, FitsShamt(1, Width8))
}
