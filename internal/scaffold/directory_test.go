package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStepDirectory_CreatesIntermediateDirectories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "proj")
	f := newFixture(t, dir)

	require.NoError(t, stepDirectory(context.Background(), f.sc))
	assert.DirExists(t, dir)
}

func TestStepDirectory_TargetIsAFile(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "occupied")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	f := newFixture(t, path)
	err := stepDirectory(context.Background(), f.sc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestStepDirectory_PromptMentionsTarget(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x"), []byte("x"), 0o644))

	f := newFixture(t, dir)
	f.prompter.On("Confirm", mock.MatchedBy(func(title string) bool {
		return strings.Contains(title, dir) && strings.Contains(title, "not empty")
	}), false).Return(true, nil)

	require.NoError(t, stepDirectory(context.Background(), f.sc))
	f.prompter.AssertExpectations(t)
}

func TestStepDirectory_PromptErrorPropagates(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x"), []byte("x"), 0o644))

	f := newFixture(t, dir)
	f.prompter.On("Confirm", mock.Anything, false).Return(false, errors.New("tty unavailable"))

	err := stepDirectory(context.Background(), f.sc)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAborted)
}
