package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	words := []string{"roll 0", "pass", "14-0"}

	require.Equal(t, 1, FindIndex(words, func(w string) bool { return w == "pass" }))
	require.Equal(t, -1, FindIndex(words, func(w string) bool { return w == "3-7" }), "Should report a missing element")
	require.Equal(t, -1, FindIndex(nil, func(w string) bool { return true }), "Empty slices have no match")
}

func TestSignAbs(t *testing.T) {
	require.Equal(t, 1, Sign(995))
	require.Equal(t, -1, Sign(-5))
	require.Equal(t, 0, Sign(0))
	require.Equal(t, -1.0, Sign(-0.5))
	require.Equal(t, 7, Abs(-7))
	require.Equal(t, int64(3), Abs(int64(3)))
}
