package expense

import (
	"io/fs"
	"os"

	"github.com/etnz/expense/date"
	"github.com/etnz/expense/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Session owns the store of one invocation: it is loaded by Open, mutated through
// Store, and saved exactly once by Close.
type Session struct {
	path   string
	store  *Store
	closed bool
}

// Open loads the store persisted at path.
func Open(path string) (*Session, error) {
	store, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Session{path: path, store: store}, nil
}

// OpenMonth opens the session of month m in dir, backed by MonthFile(dir, m).
//
// If that file does not exist but LegacyMonthFile(dir, m) does, the records are read
// from the legacy file and Close writes them under the new name. The legacy file is
// left untouched.
func OpenMonth(dir string, m date.Month) (*Session, error) {
	path := MonthFile(dir, m)
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		return Open(path)
	}
	legacy := LegacyMonthFile(dir, m)
	if info, err := os.Stat(legacy); err != nil || !info.Mode().IsRegular() {
		return Open(path)
	}
	logger.Info("reading month file without extension", zap.String("from", legacy), zap.String("to", path))
	store, err := Load(legacy)
	if err != nil {
		return nil, err
	}
	return &Session{path: path, store: store}, nil
}

// Path returns the backing file of the session.
func (s *Session) Path() string { return s.path }

// Store returns the in-memory store.
func (s *Session) Store() *Store { return s.store }

// Close saves the store to the backing file. The file is rewritten even if nothing
// changed. Calling Close again is a no-op.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return Save(s.path, s.store)
}
