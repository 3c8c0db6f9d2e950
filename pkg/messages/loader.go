package messages

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// LoadFile reads a message catalog from disk. When parser is nil it is picked
// from the file extension.
func LoadFile(ctx context.Context, parser Parser, path string) (map[string]string, error) {
	if parser == nil {
		parser = NewParserForFile(path)
	}
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}

	content, err := readWithContext(ctx, func() ([]byte, error) { return os.ReadFile(path) })
	if err != nil {
		return nil, err
	}
	return parse(ctx, parser, path, content)
}

// LoadFS reads a message catalog from a file system such as an embed.FS.
func LoadFS(ctx context.Context, parser Parser, fsys fs.FS, path string) (map[string]string, error) {
	if parser == nil {
		parser = NewParserForFile(path)
	}
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}

	content, err := readWithContext(ctx, func() ([]byte, error) { return fs.ReadFile(fsys, path) })
	if err != nil {
		return nil, err
	}
	return parse(ctx, parser, path, content)
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

func parse(ctx context.Context, parser Parser, path string, content []byte) (map[string]string, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	catalog, err := parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return catalog, nil
}
