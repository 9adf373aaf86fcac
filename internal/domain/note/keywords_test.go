package note

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeywords_DisplayString(t *testing.T) {
	require.Equal(t, "a b b", Keywords{"a", "b", "b"}.String())
	require.Equal(t, "", Keywords{}.String())
}

func TestSplitKeywords(t *testing.T) {
	require.Equal(t, Keywords{"x", "y"}, SplitKeywords("x y"))

	// A literal single-space split: no trimming, so consecutive spaces
	// produce empty-string keywords and empty input produces one.
	require.Equal(t, Keywords{"a", "", "b"}, SplitKeywords("a  b"))
	require.Equal(t, Keywords{""}, SplitKeywords(""))
}
