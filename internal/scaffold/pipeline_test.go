package scaffold

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/authsmith/authsmith/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func readJSON(t *testing.T, path string, doc any) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, doc))
}

// snapshotTree maps every file under root to its content.
func snapshotTree(t *testing.T, root string) map[string]string {
	t.Helper()
	tree := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		tree[rel] = string(data)
		return nil
	})
	require.NoError(t, err)
	return tree
}

func TestPipeline_FreshDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "proj")
	f := newFixture(t, dir)

	p := NewPipeline()
	require.NoError(t, p.Run(context.Background(), f.sc))
	assert.Equal(t, StateDone, p.State())

	// Manifest: name derived from the target directory
	var manifest types.Manifest
	readJSON(t, filepath.Join(dir, "package.json"), &manifest)
	assert.Equal(t, "proj", manifest.Name)
	assert.Equal(t, "0.0.0", manifest.Version)
	assert.True(t, manifest.Private)
	assert.Equal(t, "server.js", manifest.Main)
	assert.Equal(t, "node server.js", manifest.Scripts["start"])
	assert.Equal(t, ">=18.0.0", manifest.Engines["node"])
	assert.Equal(t, "0.1.x", manifest.Dependencies["authsmith-server"])

	// Environment configs
	var dev, prod types.Settings
	readJSON(t, filepath.Join(dir, "config", "development.json"), &dev)
	readJSON(t, filepath.Join(dir, "config", "production.json"), &prod)
	assert.Equal(t, 3000, dev.Port)
	assert.Equal(t, "http://localhost:3000", dev.Issuer)
	assert.Nil(t, dev.Redis)
	assert.Equal(t, 80, prod.Port)
	assert.Equal(t, "https://your.authorization.server", prod.Issuer)
	require.NotNil(t, prod.Redis)
	assert.Equal(t, "redis://HOST:PORT", prod.Redis.URL)
	assert.Equal(t, "PASSWORD", prod.Redis.Auth)

	// Copied templates
	for _, rel := range []string{"server.js", ".gitignore", "views/signin.ejs", "public/css/app.css"} {
		assert.FileExists(t, filepath.Join(dir, rel))
	}

	// Key pair captured from openssl stdout
	priv, err := os.ReadFile(filepath.Join(dir, "config", "keys", "private.pem"))
	require.NoError(t, err)
	assert.Equal(t, fakePrivatePEM, string(priv))
	pub, err := os.ReadFile(filepath.Join(dir, "config", "keys", "public.pem"))
	require.NoError(t, err)
	assert.Equal(t, fakePublicPEM, string(pub))

	// Subprocesses ran in order, all through the runner
	assert.Equal(t, []string{"git init", "openssl genrsa", "openssl rsa"}, f.runner.commands())

	// Fresh directory never prompts
	f.prompter.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything)
}

func TestPipeline_EmptyDirectoryDoesNotPrompt(t *testing.T) {
	dir := t.TempDir()
	f := newFixture(t, dir)

	require.NoError(t, NewPipeline().Run(context.Background(), f.sc))

	f.prompter.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything)
}

func TestPipeline_AbortOnDecline(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stray.txt"), []byte("x"), 0o644))

	f := newFixture(t, dir)
	f.prompter.On("Confirm", mock.Anything, false).Return(false, nil)

	p := NewPipeline()
	err := p.Run(context.Background(), f.sc)
	require.ErrorIs(t, err, ErrAborted)
	assert.Equal(t, StateAborted, p.State())

	// Nothing beyond the stray file was created and no tool ran
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Len(t, entries, 1)
	assert.Empty(t, f.runner.calls)
}

func TestPipeline_ConfirmProceedsInNonEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("x"), 0o644))

	f := newFixture(t, dir)
	f.prompter.On("Confirm", mock.Anything, false).Return(true, nil)

	p := NewPipeline()
	require.NoError(t, p.Run(context.Background(), f.sc))
	assert.Equal(t, StateDone, p.State())
	assert.FileExists(t, filepath.Join(dir, "package.json"))

	f.prompter.AssertExpectations(t)
}

func TestPipeline_HaltsOnFirstError(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "proj")
	f := newFixture(t, dir)
	f.runner.fail["git init"] = errors.New("exit status 128")

	p := NewPipeline()
	err := p.Run(context.Background(), f.sc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit status 128")
	assert.Equal(t, StateVCS, p.State())

	// No later step ran after the failure
	assert.NoFileExists(t, filepath.Join(dir, "package.json"))
	assert.NoDirExists(t, filepath.Join(dir, "config"))
}

func TestPipeline_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "proj")
	f := newFixture(t, dir)
	require.NoError(t, NewPipeline().Run(context.Background(), f.sc))

	snapshot := snapshotTree(t, dir)

	second := newFixture(t, dir)
	// The populated directory is non-empty, so the second run prompts.
	second.prompter.On("Confirm", mock.Anything, false).Return(true, nil)

	p := NewPipeline()
	require.NoError(t, p.Run(context.Background(), second.sc))
	assert.Equal(t, StateDone, p.State())

	// Every artifact is byte-identical after the second run
	assert.Equal(t, snapshot, snapshotTree(t, dir))

	// No subprocess ran: .git and config/keys already exist
	assert.Empty(t, second.runner.calls)

	// The trace reports every step as already satisfied
	out := second.out.String()
	assert.Contains(t, out, "git already initialized")
	assert.Contains(t, out, "package.json already initialized")
	assert.Contains(t, out, filepath.Join("config", "development.json")+" already initialized")
	assert.Contains(t, out, filepath.Join("config", "production.json")+" already initialized")
	assert.Contains(t, out, "server.js already initialized")
	assert.Contains(t, out, ".gitignore already initialized")
	assert.Contains(t, out, "keys already initialized")
	assert.NotContains(t, out, "generated")
	assert.NotContains(t, out, "copied")
}

func TestPipeline_StateNames(t *testing.T) {
	assert.Equal(t, "not started", StateNotStarted.String())
	assert.Equal(t, "done", StateDone.String())
	assert.Equal(t, "aborted", StateAborted.String())
}
