package telegram

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGate(t *testing.T) {
	gate := NewGate([]int64{100, 200})

	require.True(t, gate.Allows(100))
	require.True(t, gate.Allows(200))
	require.False(t, gate.Allows(300))
}

func TestGate_EmptyDeniesEveryone(t *testing.T) {
	gate := NewGate(nil)
	require.False(t, gate.Allows(100))
}
