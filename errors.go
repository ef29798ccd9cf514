package expense

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrIndexOutOfRange is returned when an index does not designate a record of the store.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrEmptyAggregation is returned when statistics are requested over zero records.
	ErrEmptyAggregation = errors.New("no records to aggregate")
)

// IndexError reports an index that is not in 1..Len.
// It matches ErrIndexOutOfRange with errors.Is.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("index %d out of range: the store is empty", e.Index)
	}
	return fmt.Sprintf("index %d out of range [1, %d]", e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool { return target == ErrIndexOutOfRange }

// PersistenceError reports a backing file that could not be read, decoded or written.
type PersistenceError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("cannot %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
