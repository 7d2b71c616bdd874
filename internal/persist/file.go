package persist

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File is an Adapter that stores each collection as a JSON file named
// <key>.json under a data directory. Saves go through a temp file and
// rename so a crash mid-write never leaves a truncated collection behind.
type File struct {
	dir string
}

// NewFile returns a file adapter rooted at dir, creating the directory if
// it does not exist.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("persist.NewFile: %w", err)
	}
	return &File{dir: dir}, nil
}

// Load reads <dir>/<key>.json. A missing file means the collection has
// never been saved and is reported as ok=false, not an error.
func (f *File) Load(_ context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("persist.File.Load %s: %w", key, err)
	}
	return data, true, nil
}

// Save writes data to a temp file in the same directory and renames it over
// <dir>/<key>.json.
func (f *File) Save(_ context.Context, key string, data []byte) error {
	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("persist.File.Save %s: %w", key, err)
	}
	tmpName := tmp.Name()
	_, werr := tmp.Write(data)
	cerr := tmp.Close()
	if werr != nil || cerr != nil {
		os.Remove(tmpName)
		return fmt.Errorf("persist.File.Save %s: %w", key, errors.Join(werr, cerr))
	}
	if err := os.Rename(tmpName, f.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("persist.File.Save %s: %w", key, err)
	}
	return nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}
