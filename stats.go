package expense

import (
	"math"

	"github.com/etnz/expense/date"
	"github.com/shopspring/decimal"
)

// Stats summarizes a set of record values. It is computed on demand and never persisted.
type Stats struct {
	Count int
	Min   float64
	Max   float64
	Total float64
	Avg   float64
}

// ComputeAll returns the statistics over every record of the store.
// It returns ErrEmptyAggregation if the store is empty.
func ComputeAll(s *Store) (Stats, error) {
	return aggregate(s.records, func(Record) bool { return true })
}

// ComputeForDate returns the statistics over the records dated exactly on.
// It returns ErrEmptyAggregation if no record matches.
func ComputeForDate(s *Store, on date.Date) (Stats, error) {
	return aggregate(s.records, func(r Record) bool { return r.Date == on })
}

// aggregate folds the values of the accepted records.
// Min and Max are seeded from the first accepted record, never from a fixed position.
// Sums are exact unless a value is not finite, in which case float arithmetic
// carries the NaN or infinity through.
func aggregate(records []Record, accept func(Record) bool) (Stats, error) {
	var st Stats
	total := decimal.Zero
	sum, finite := 0.0, true
	for _, r := range records {
		if !accept(r) {
			continue
		}
		if st.Count == 0 {
			st.Min, st.Max = r.Value, r.Value
		}
		st.Min = min(st.Min, r.Value)
		st.Max = max(st.Max, r.Value)
		sum += r.Value
		if isFinite(r.Value) {
			total = total.Add(decimal.NewFromFloat(r.Value))
		} else {
			finite = false
		}
		st.Count++
	}
	if st.Count == 0 {
		return Stats{}, ErrEmptyAggregation
	}
	if !finite {
		st.Total = sum
		st.Avg = sum / float64(st.Count)
		return st, nil
	}
	st.Total = total.InexactFloat64()
	st.Avg = total.Div(decimal.NewFromInt(int64(st.Count))).InexactFloat64()
	return st, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
