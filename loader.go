package expense

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/etnz/expense/date"
	"github.com/etnz/expense/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DataDirName is the name of the per-user folder holding the month files.
const DataDirName = ".rcdata"

// DefaultDataDir returns the per-user data folder, $HOME/.rcdata.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "locating the home directory")
	}
	return filepath.Join(home, DataDirName), nil
}

// EnsureDataDir creates the data folder if it does not exist yet.
func EnsureDataDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &PersistenceError{Op: "create", Path: dir, Err: err}
	}
	return nil
}

// MonthFile returns the path of the file holding the records of month m.
func MonthFile(dir string, m date.Month) string {
	return filepath.Join(dir, m.String()+".csv")
}

// LegacyMonthFile returns the name month files had before they took the .csv extension.
func LegacyMonthFile(dir string, m date.Month) string {
	return filepath.Join(dir, m.String())
}

// Load reads the store persisted at path.
// A file that does not exist yields an empty store.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("no store file yet, starting empty", zap.String("path", path))
		return NewStore(), nil
	}
	if err != nil {
		return nil, &PersistenceError{Op: "load", Path: path, Err: err}
	}
	defer f.Close()

	store, err := DecodeStore(f)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Path: path, Err: err}
	}
	logger.Debug("store loaded", zap.String("path", path), zap.Int("records", store.Len()))
	return store, nil
}

// Save replaces the file at path with the content of the store.
//
// The store is written to a temporary file in the same folder which is then
// renamed over path, so readers see either the old or the new content.
func Save(path string, s *Store) error {
	var buf bytes.Buffer
	if err := EncodeStore(&buf, s); err != nil {
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	if err := writeFileAtomic(path, buf.Bytes(), 0644); err != nil {
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	logger.Debug("store saved", zap.String("path", path), zap.Int("records", s.Len()), zap.Bool("modified", s.Modified()))
	return nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "creating folder")
	}

	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return errors.Wrap(err, "creating temporary file")
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		return errors.Wrap(err, "writing temporary file")
	}
	if err := tmp.Chmod(perm); err != nil {
		return errors.Wrap(err, "setting permissions")
	}
	if err := tmp.Sync(); err != nil {
		return errors.Wrap(err, "syncing temporary file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temporary file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "replacing file")
	}
	committed = true
	return nil
}
