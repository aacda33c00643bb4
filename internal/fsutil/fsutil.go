// Package fsutil holds the file-system moves used by the installer and the
// folder relocator.
package fsutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

// ErrExists is returned by [Move] when the destination is already present.
var ErrExists = errors.New("destination already exists")

// rename is replaced in tests to simulate cross-device moves.
var rename = os.Rename

// Exists reports whether path exists. Errors other than "not exist" are
// returned as is.
func Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// IsDir reports whether path is an existing directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Move moves the file or directory src to dst, creating the parent of dst.
// It never replaces an existing dst. A rename across file systems falls back
// to a recursive copy followed by removal of src.
func Move(src, dst string) error {
	exists, err := Exists(dst)
	if err != nil {
		return fmt.Errorf("stat %s: %w", dst, err)
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrExists, dst)
	}

	if err = os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create parent of %s: %w", dst, err)
	}

	err = rename(src, dst)
	if err == nil {
		return nil
	}

	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) || !errors.Is(linkErr.Err, syscall.EXDEV) {
		return err
	}

	// fallback to copy and remove
	if err = CopyAll(src, dst); err != nil {
		_ = os.RemoveAll(dst)
		return fmt.Errorf("move %s -> %s: cannot copy: %w", src, dst, err)
	}
	if err = os.RemoveAll(src); err != nil {
		return fmt.Errorf("move %s -> %s: cannot remove source: %w", src, dst, err)
	}

	return nil
}

// CopyAll copies src to dst. Directories are copied recursively; regular
// files keep their permission bits and symlinks are recreated.
func CopyAll(src, dst string) error {
	return filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		info, err := d.Info()
		if err != nil {
			return err
		}

		switch {
		case d.IsDir():
			return os.MkdirAll(target, info.Mode().Perm()|0o700)
		case info.Mode()&os.ModeSymlink != 0:
			link, err := os.Readlink(p)
			if err != nil {
				return err
			}
			return os.Symlink(link, target)
		case info.Mode().IsRegular():
			return copyFile(p, target, info.Mode().Perm())
		default:
			// sockets, devices and pipes are not part of a kenv
			return nil
		}
	})
}

func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}

	if _, err = io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}
