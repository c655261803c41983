package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Example reads one of the bundled example images by name.
type Example struct {
	dir  string
	name string
}

func NewExample(dir, name string) *Example {
	return &Example{dir: dir, name: name}
}

func (e *Example) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(e.dir); os.IsNotExist(err) {
		return nil, ErrExampleDirMissing
	}

	// The name comes from user input; keep it inside the example directory.
	if e.name != filepath.Base(e.name) {
		return nil, fmt.Errorf("invalid example name %q", e.name)
	}
	if !imageExtensions[strings.ToLower(filepath.Ext(e.name))] {
		return nil, ErrUnsupportedType
	}

	data, err := os.ReadFile(filepath.Join(e.dir, e.name))
	if err != nil {
		return nil, fmt.Errorf("read example image: %w", err)
	}

	return data, nil
}

// ListExamples returns the sorted names of example images in dir.
func ListExamples(dir string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, ErrExampleDirMissing
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read example directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	return names, nil
}
