package fsutil

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTree(t *testing.T, root string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "scripts", "lib"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "scripts", "hello.ts"), []byte("hello"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "scripts", "lib", "run.sh"), []byte("#!/bin/sh"), 0o755))
	require.NoError(t, os.Symlink("hello.ts", filepath.Join(root, "scripts", "alias.ts")))
}

func assertTree(t *testing.T, root string) {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(root, "scripts", "hello.ts"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))

	info, err := os.Stat(filepath.Join(root, "scripts", "lib", "run.sh"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	link, err := os.Readlink(filepath.Join(root, "scripts", "alias.ts"))
	require.NoError(t, err)
	assert.Equal(t, "hello.ts", link)
}

func TestExists(t *testing.T) {
	dir := t.TempDir()

	ok, err := Exists(dir)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Exists(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	assert.True(t, IsDir(dir))
	assert.False(t, IsDir(file))
	assert.False(t, IsDir(filepath.Join(dir, "missing")))
}

func TestMove_Rename(t *testing.T) {
	base := t.TempDir()
	src := filepath.Join(base, "Downloads", "my-kenv")
	dst := filepath.Join(base, ".kenv", "kenvs", "renamed")
	makeTree(t, src)

	require.NoError(t, Move(src, dst))

	assertTree(t, dst)
	assert.NoDirExists(t, src)
}

func TestMove_RefusesExisting(t *testing.T) {
	base := t.TempDir()
	src := filepath.Join(base, "src")
	dst := filepath.Join(base, "dst")
	makeTree(t, src)
	require.NoError(t, os.MkdirAll(dst, 0o755))

	err := Move(src, dst)

	assert.ErrorIs(t, err, ErrExists)
	assert.DirExists(t, src)
}

func TestMove_CrossDeviceFallback(t *testing.T) {
	prev := rename
	t.Cleanup(func() { rename = prev })
	rename = func(oldpath, newpath string) error {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: syscall.EXDEV}
	}

	base := t.TempDir()
	src := filepath.Join(base, "src")
	dst := filepath.Join(base, "other", "dst")
	makeTree(t, src)

	require.NoError(t, Move(src, dst))

	assertTree(t, dst)
	assert.NoDirExists(t, src)
}

func TestMove_OtherRenameErrorIsReturned(t *testing.T) {
	prev := rename
	t.Cleanup(func() { rename = prev })
	rename = func(oldpath, newpath string) error {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: syscall.EACCES}
	}

	base := t.TempDir()
	src := filepath.Join(base, "src")
	makeTree(t, src)

	err := Move(src, filepath.Join(base, "dst"))

	assert.ErrorIs(t, err, syscall.EACCES)
	assert.DirExists(t, src)
}

func TestCopyAll(t *testing.T) {
	base := t.TempDir()
	src := filepath.Join(base, "src")
	dst := filepath.Join(base, "dst")
	makeTree(t, src)

	require.NoError(t, CopyAll(src, dst))

	assertTree(t, dst)
	assertTree(t, src)
}
