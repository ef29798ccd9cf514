package renderer

import (
	"math"
	"strings"
	"testing"

	"github.com/etnz/expense"
	"github.com/etnz/expense/date"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// parseTable parses md with the GFM table extension and returns the cell texts of
// the first table found, header row first.
func parseTable(t *testing.T, src string) [][]string {
	t.Helper()
	content := []byte(src)
	parser := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser()
	root := parser.Parse(text.NewReader(content))

	var rows [][]string
	var current []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch n := n.(type) {
		case *extast.TableHeader, *extast.TableRow:
			if entering {
				current = nil
			} else {
				rows = append(rows, current)
			}
		case *extast.TableCell:
			if entering {
				current = append(current, strings.TrimSpace(string(n.Text(content))))
				return ast.WalkSkipChildren, nil
			}
		}
		return ast.WalkContinue, nil
	})
	return rows
}

func TestRecords(t *testing.T) {
	on := date.MustParse("14-10-2026")
	records := []expense.Record{
		{Index: 1, Date: on, Description: "groceries", Value: 42.3},
		{Index: 2, Date: on, Description: "refund", Value: -10},
	}

	rows := parseTable(t, Records(records))

	want := [][]string{
		{"Index", "Date", "Description", "Value"},
		{"1", "14-10-2026", "groceries", "42.3"},
		{"2", "14-10-2026", "refund", "-10"},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d table rows %v, want %d", len(rows), rows, len(want))
	}
	for i := range want {
		// Header case depends on the table writer, values do not.
		if !strings.EqualFold(strings.Join(rows[i], "|"), strings.Join(want[i], "|")) {
			t.Errorf("row %d = %q, want %q", i, rows[i], want[i])
		}
	}
}

func TestRecords_FreeTextStaysInItsCell(t *testing.T) {
	records := []expense.Record{
		{Index: 1, Date: date.MustParse("14-10-2026"), Description: "a|b\nc", Value: 1},
	}
	rows := parseTable(t, Records(records))
	if len(rows) != 2 || len(rows[1]) != 4 {
		t.Fatalf("table rows = %q, want a header and one row of 4 cells", rows)
	}
}

func TestStats(t *testing.T) {
	got := Stats(expense.Stats{Count: 4, Min: -5, Max: 20, Total: 45, Avg: 11.25})
	for _, want := range []string{
		"Minimum Expenditure : -5",
		"Maximum Expenditure : 20",
		"Total Expenditure : 45",
		"Average Expenditure : 11.25",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Stats() = %q, want it to contain %q", got, want)
		}
	}
}

func TestNoRecords(t *testing.T) {
	got := NoRecords()
	if !strings.Contains(got, "No records inserted yet.") || !strings.Contains(got, "`add`") {
		t.Errorf("NoRecords() = %q", got)
	}
}

func TestNoData(t *testing.T) {
	if got, want := NoData(date.MustParse("01-02-2026")), "No records for 01-02-2026."; !strings.Contains(got, want) {
		t.Errorf("NoData() = %q, want it to contain %q", got, want)
	}
}

func TestAmount(t *testing.T) {
	testCases := []struct {
		in   float64
		want string
	}{
		{10, "10"},
		{-5, "-5"},
		{11.25, "11.25"},
		{0.1, "0.1"},
		{0, "0"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
	}
	for _, tc := range testCases {
		if got := Amount(tc.in); got != tc.want {
			t.Errorf("Amount(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRecords_NotFinite(t *testing.T) {
	got := Records([]expense.Record{{Index: 1, Date: date.MustParse("01-10-2026"), Description: "x", Value: math.Inf(-1)}})
	if !strings.Contains(got, "-Inf") {
		t.Errorf("Records() = %q, want it to show -Inf", got)
	}
}
