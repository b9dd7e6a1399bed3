package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCommand(t *testing.T) {
	db := testDBPath(t)
	dir := t.TempDir()
	writeCUEFile(t, dir, "family.cue", validDatasetCUE)

	out, err := runCommand(t, "--db", db, "load", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Loaded 2 fact(s) from 1 dataset(s)")
	assert.Contains(t, out, "family: 2 fact(s)")

	out, err = runCommand(t, "--db", db, "facts")
	require.NoError(t, err)
	assert.Contains(t, out, "2 fact(s)")
	assert.Contains(t, out, "alice likes bob")
	assert.Contains(t, out, "bob likes cake")
}

func TestLoadCommandIdempotent(t *testing.T) {
	db := testDBPath(t)
	dir := t.TempDir()
	writeCUEFile(t, dir, "family.cue", validDatasetCUE)

	_, err := runCommand(t, "--db", db, "load", dir)
	require.NoError(t, err)
	_, err = runCommand(t, "--db", db, "load", dir)
	require.NoError(t, err)

	out, err := runCommand(t, "--db", db, "facts")
	require.NoError(t, err)
	assert.Contains(t, out, "2 fact(s)")
}

func TestLoadCommandInvalidDataset(t *testing.T) {
	db := testDBPath(t)
	dir := t.TempDir()
	writeCUEFile(t, dir, "bad.cue", `
package datasets

dataset: nameless: {
	facts: [{id: "alice", predicate: "likes", object: "bob"}]
}
`)

	_, err := runCommand(t, "--db", db, "load", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load datasets")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestLoadCommandMissingDir(t *testing.T) {
	db := testDBPath(t)

	_, err := runCommand(t, "--db", db, "load", "/nonexistent/datasets")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dataset directory not found")
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	writeCUEFile(t, dir, "family.cue", validDatasetCUE)

	out, err := runCommand(t, "validate", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "1 dataset(s) in 1 file(s)")
	assert.Contains(t, out, "family: ok")
}

func TestValidateCommandReportsAllErrors(t *testing.T) {
	dir := t.TempDir()
	writeCUEFile(t, dir, "bad.cue", `
package datasets

dataset: nameless: {
	facts: [{id: "alice", predicate: "likes", object: "bob"}]
}
dataset: patterned: {
	name: "patterned"
	facts: [{id: "?x", predicate: "likes", object: "bob"}]
}
`)

	out, err := runCommand(t, "validate", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 validation error(s)")
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, ErrCodeDatasetName)
	assert.Contains(t, out, ErrCodeFactSlot)
}

func TestValidateCommandMissingDir(t *testing.T) {
	_, err := runCommand(t, "validate", "/nonexistent/datasets")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
