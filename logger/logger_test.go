package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerIsNopBeforeInitialize(t *testing.T) {
	require.NotNil(t, Logger)
	// Must not panic before Initialize.
	Debugw("uninitialized", "key", "value")
	Infow("uninitialized")
}

func TestInitialize(t *testing.T) {
	require.NoError(t, Initialize(false))
	assert.NotNil(t, Logger)

	require.NoError(t, Initialize(true))
	assert.NotNil(t, Logger)

	Cleanup()
}
