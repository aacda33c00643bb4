// Package archive extracts downloaded kenv bundles.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

var (
	// ErrUnsafePath is returned for an entry that would be written outside
	// the destination directory.
	ErrUnsafePath = errors.New("archive entry escapes destination")

	// ErrEmptyArchive is returned for an archive without any files.
	ErrEmptyArchive = errors.New("archive contains no files")
)

// macOS archivers add this folder next to the real content.
const macMetadataDir = "__MACOSX"

// ExtractOpt configures extraction behavior.
type ExtractOpt func(*extractConfig)

type extractConfig struct {
	flatten bool
	keep    []string
}

func newExtractConfig(opts []ExtractOpt) *extractConfig {
	cfg := &extractConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithFlatten drops a single top-level folder shared by every entry, so
// "kit/scripts/a.ts" lands at destDir/scripts/a.ts. Archives with several
// top-level entries are extracted unchanged, and so is a root folder named
// in keep.
func WithFlatten(keep ...string) ExtractOpt {
	return func(cfg *extractConfig) {
		cfg.flatten = true
		cfg.keep = append(cfg.keep, keep...)
	}
}

// ExtractZip extracts the .zip archive at src into destDir, creating destDir
// if needed. Entries that would escape destDir are rejected with
// [ErrUnsafePath] before anything is written.
func ExtractZip(src, destDir string, opts ...ExtractOpt) error {
	r, err := zip.OpenReader(src)
	if errors.Is(err, zip.ErrInsecurePath) {
		if r != nil {
			_ = r.Close()
		}
		return fmt.Errorf("%w: %s", ErrUnsafePath, src)
	}
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer r.Close()

	cfg := newExtractConfig(opts)

	files := make([]*zip.File, 0, len(r.File))
	for _, f := range r.File {
		if isMetadata(f.Name) {
			continue
		}
		files = append(files, f)
	}
	if len(files) == 0 {
		return ErrEmptyArchive
	}

	var prefix string
	if cfg.flatten {
		prefix = commonRoot(files)
		if slices.Contains(cfg.keep, strings.TrimSuffix(prefix, "/")) {
			prefix = ""
		}
	}

	targets := make([]string, len(files))
	for i, f := range files {
		target, err := targetPath(destDir, strings.TrimPrefix(entryName(f.Name), prefix))
		if err != nil {
			return fmt.Errorf("%w: %s", err, f.Name)
		}
		targets[i] = target
	}

	if err = os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("create destination: %w", err)
	}

	for i, f := range files {
		target := targets[i]
		if target == "" {
			continue
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, dirMode(f)); err != nil {
				return fmt.Errorf("create directory: %w", err)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("create parent directory: %w", err)
		}

		if err := extractZipFile(f, target); err != nil {
			return err
		}
	}

	return nil
}

func extractZipFile(f *zip.File, target string) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("open file in archive: %w", err)
	}
	defer rc.Close()

	mode := f.Mode().Perm()
	if mode == 0 {
		mode = 0o644
	}

	outFile, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	if _, err := io.Copy(outFile, rc); err != nil {
		_ = outFile.Close()
		return fmt.Errorf("write file: %w", err)
	}

	if err := outFile.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	return nil
}

// entryName normalises an archive path to forward slashes without a leading
// "./" or "/".
func entryName(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = strings.TrimPrefix(name, "./")
	return strings.TrimLeft(name, "/")
}

func isMetadata(name string) bool {
	name = entryName(name)
	return name == macMetadataDir+"/" || strings.HasPrefix(name, macMetadataDir+"/")
}

// commonRoot returns "dir/" when every entry lives under the same top-level
// directory, and "" otherwise.
func commonRoot(files []*zip.File) string {
	var root string

	for _, f := range files {
		name := entryName(f.Name)
		first, _, nested := strings.Cut(name, "/")
		if !nested {
			// a plain file at the top level
			return ""
		}
		if root == "" {
			root = first
		} else if first != root {
			return ""
		}
	}

	if root == "" {
		return ""
	}
	return root + "/"
}

// targetPath resolves name below destDir. It returns "" for the root itself.
func targetPath(destDir, name string) (string, error) {
	if strings.Contains(name, "..") {
		for _, part := range strings.Split(name, "/") {
			if part == ".." {
				return "", ErrUnsafePath
			}
		}
	}

	cleaned := path.Clean("/" + name)
	if cleaned == "/" {
		return "", nil
	}

	base := filepath.Clean(destDir)
	target := filepath.Join(base, filepath.FromSlash(cleaned))
	if !strings.HasPrefix(target, base+string(os.PathSeparator)) {
		return "", ErrUnsafePath
	}

	return target, nil
}

func dirMode(f *zip.File) os.FileMode {
	if m := f.Mode().Perm(); m != 0 {
		return m | 0o700
	}
	return 0o755
}
