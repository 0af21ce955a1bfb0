package legacyapi

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/ayoisaiah/yogi/internal/osutil"
	"github.com/ayoisaiah/yogi/store"
)

// jsonFile is a store.KV holding a single collection in a plain JSON file.
// The key is ignored.
type jsonFile struct {
	path string
}

// Get reads the file. Numeric ids written by older clients are returned as
// strings; the file itself is only rewritten on the next Set.
func (f jsonFile) Get(string) ([]byte, error) {
	b, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	b, _, err = store.StringifyIDs(b)

	return b, err
}

func (f jsonFile) Set(_ string, value []byte) error {
	err := os.MkdirAll(filepath.Dir(f.path), osutil.DirPermission)
	if err != nil {
		return err
	}

	tmp := f.path + ".tmp"

	err = os.WriteFile(tmp, value, osutil.FilePermission)
	if err != nil {
		return err
	}

	return os.Rename(tmp, f.path)
}
