package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_Levels(t *testing.T) {
	verbose, err := New(true, "csscat", "test")
	require.NoError(t, err)
	assert.True(t, verbose.Core().Enabled(zap.DebugLevel))

	quiet, err := New(false, "csscat", "test")
	require.NoError(t, err)
	assert.False(t, quiet.Core().Enabled(zap.InfoLevel))
	assert.True(t, quiet.Core().Enabled(zap.WarnLevel))
}
