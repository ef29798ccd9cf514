// Package renderer turns records and statistics into markdown for display.
package renderer

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/etnz/expense"
	"github.com/etnz/expense/date"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// Records renders the records as a table with the columns Index, Date, Description and Value.
func Records(records []expense.Record) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Index),
			r.Date.String(),
			cell(r.Description),
			Amount(r.Value),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Index", "Date", "Description", "Value"},
		Rows:   rows,
	})
	return doc.String()
}

// Stats renders the four labeled statistics lines.
func Stats(s expense.Stats) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.BulletList(
		fmt.Sprintf("Minimum Expenditure : %s", Amount(s.Min)),
		fmt.Sprintf("Maximum Expenditure : %s", Amount(s.Max)),
		fmt.Sprintf("Total Expenditure : %s", Amount(s.Total)),
		fmt.Sprintf("Average Expenditure : %s", Amount(s.Avg)),
	)
	return doc.String()
}

// NoRecords is the message shown instead of a table or statistics when the store is empty.
func NoRecords() string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.PlainText("No records inserted yet.")
	doc.PlainText("")
	doc.PlainText("To insert a record, use the `add` command.")
	return doc.String()
}

// NoData is the message shown when no record matches the requested date.
func NoData(on date.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.PlainText(fmt.Sprintf("No records for %s.", on))
	return doc.String()
}

// Amount formats a value with the shortest decimal representation (10, -5, 11.25).
// NaN and infinities print as NaN, +Inf and -Inf.
func Amount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).String()
}

// cell makes free text safe to print inside a table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}
