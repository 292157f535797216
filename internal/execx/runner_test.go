package execx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSRunner_CapturesStdout(t *testing.T) {
	out, err := NewRunner().Run(context.Background(), t.TempDir(), "sh", "-c", "printf hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(out))
}

func TestOSRunner_NonZeroExit(t *testing.T) {
	_, err := NewRunner().Run(context.Background(), t.TempDir(), "sh", "-c", "echo boom >&2; exit 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestOSRunner_SpawnFailure(t *testing.T) {
	_, err := NewRunner().Run(context.Background(), t.TempDir(), "definitely-not-a-real-binary")
	assert.Error(t, err)
}
