package expense

import "github.com/etnz/expense/date"

var (
	d1 = date.MustParse("01-10-2026")
	d2 = date.MustParse("02-10-2026")
)

// V is a helper for test to describe a record by its date and value only.
type V struct {
	On    date.Date
	Value float64
}

// storeOf builds a store by adding one record per item, each stamped with its own date.
func storeOf(items ...V) *Store {
	s := NewStore()
	for _, it := range items {
		on := it.On
		s.today = func() date.Date { return on }
		s.Add("item", it.Value)
	}
	s.today = date.Today
	return s
}

// valuesOf builds a store of records all dated d1.
func valuesOf(values ...float64) *Store {
	items := make([]V, 0, len(values))
	for _, v := range values {
		items = append(items, V{d1, v})
	}
	return storeOf(items...)
}

// indices returns the index of every record in store order.
func indices(s *Store) []int {
	var out []int
	for _, r := range s.List() {
		out = append(out, r.Index)
	}
	return out
}
