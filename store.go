package expense

import (
	"slices"
	"strings"

	"github.com/etnz/expense/date"
)

// Store is the ordered collection of records of one month.
//
// Indices are dense: at any time the record at position i has Index i+1.
type Store struct {
	records  []Record
	today    func() date.Date
	modified bool
}

// NewStore returns an empty store stamping new records with date.Today.
func NewStore() *Store {
	return &Store{
		records: make([]Record, 0),
		today:   date.Today,
	}
}

// Len returns the number of records.
func (s *Store) Len() int { return len(s.records) }

// IsEmpty reports whether the store holds no record.
func (s *Store) IsEmpty() bool { return len(s.records) == 0 }

// Modified reports whether Add or Delete succeeded since the store was created or loaded.
func (s *Store) Modified() bool { return s.modified }

// Add appends a new record dated today and returns its index.
// Line breaks in the description are stored as "\n": CRLF and lone CR are converted.
func (s *Store) Add(description string, value float64) int {
	r := Record{
		Index:       len(s.records) + 1,
		Date:        s.today(),
		Description: lineBreaks.Replace(description),
		Value:       value,
	}
	s.records = append(s.records, r)
	s.modified = true
	return r.Index
}

// Delete removes the record at index and shifts every later record down by one.
// It returns an error matching ErrIndexOutOfRange if index is not in 1..Len, in
// which case the store is left unchanged.
func (s *Store) Delete(index int) error {
	if err := s.check(index); err != nil {
		return err
	}
	s.records = slices.Delete(s.records, index-1, index)
	s.renumber(index - 1)
	s.modified = true
	return nil
}

// Record returns the record at index.
func (s *Store) Record(index int) (Record, error) {
	if err := s.check(index); err != nil {
		return Record{}, err
	}
	return s.records[index-1], nil
}

// List returns a copy of the records in index order. It is never nil.
func (s *Store) List() []Record {
	return slices.Clone(s.records)
}

// Dates returns the distinct record dates in order of first appearance.
func (s *Store) Dates() []date.Date {
	dates := make([]date.Date, 0)
	seen := make(map[date.Date]bool)
	for _, r := range s.records {
		if !seen[r.Date] {
			seen[r.Date] = true
			dates = append(dates, r.Date)
		}
	}
	return dates
}

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

func (s *Store) check(index int) error {
	if index < 1 || index > len(s.records) {
		return &IndexError{Index: index, Len: len(s.records)}
	}
	return nil
}

// renumber restores Index = position+1 for every record from position 'from'.
func (s *Store) renumber(from int) {
	for i := from; i < len(s.records); i++ {
		s.records[i].Index = i + 1
	}
}

// appendLoaded adds a decoded record at the end, forcing its index to the next position.
// It returns false if the stored index had to be corrected.
func (s *Store) appendLoaded(r Record) bool {
	want := len(s.records) + 1
	ok := r.Index == want
	r.Index = want
	s.records = append(s.records, r)
	return ok
}
