package schemes

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// SupportsFileExtension reports whether files with ext hold schemes.
// The extension may or may not include a leading dot.
func SupportsFileExtension(ext string) bool {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml", "json":
		return true
	}
	return false
}

// LoadFile reads the schemes of a single file.
func LoadFile(ctx context.Context, filePath string) (Set, error) {
	content, err := readWithContext(ctx, func() ([]byte, error) { return os.ReadFile(filePath) })
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, filePath)
	}

	set, err := Parse(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return set, nil
}

// LoadDir merges every scheme file of a directory. Subdirectories are not
// visited. A scheme name defined twice is an error.
func LoadDir(ctx context.Context, dir string) (Set, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToAccessDirectory, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrFailedToAccessDirectory, dir)
	}

	return load(ctx, os.DirFS(dir), ".", func(name string) string { return filepath.Join(dir, name) })
}

// LoadFS merges every scheme file of dir in fsys, for example an embed.FS.
func LoadFS(ctx context.Context, fsys fs.FS, dir string) (Set, error) {
	return load(ctx, fsys, dir, func(name string) string { return path.Join(dir, name) })
}

func load(ctx context.Context, fsys fs.FS, dir string, display func(string) string) (Set, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingDirectoryCancelled, err)
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	all := make(Set)
	found := false
	for _, entry := range entries {
		if entry.IsDir() || !SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingDirectoryCancelled, err)
		}

		name := display(entry.Name())
		content, err := readWithContext(ctx, func() ([]byte, error) {
			return fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		})
		if err != nil {
			return nil, err
		}
		if len(content) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyFile, name)
		}

		set, err := Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		for schemeName, scheme := range set {
			if _, ok := all[schemeName]; ok {
				return nil, fmt.Errorf("%w: %q in %s", ErrDuplicateScheme, schemeName, name)
			}
			all[schemeName] = scheme
		}
		found = true
	}

	if !found {
		return nil, fmt.Errorf("%w in %s", ErrNoSchemeFiles, dir)
	}
	return all, nil
}

func readWithContext(ctx context.Context, read func() ([]byte, error)) ([]byte, error) {
	done := make(chan struct{})
	var content []byte
	var readErr error

	go func() {
		content, readErr = read()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadingFileCancelled, ctx.Err())
	case <-done:
	}

	if readErr != nil {
		return nil, errors.Join(ErrFailedToReadFile, readErr)
	}
	return content, nil
}
