package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInfoLogStripsNULPadding(t *testing.T) {
	require.Equal(t, "0:12: error: undefined variable",
		infoLog("0:12: error: undefined variable\x00\x00\x00"))
	require.Equal(t, "", infoLog("\x00"))
}
