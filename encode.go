package expense

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/expense/date"
	"github.com/etnz/expense/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Header is the first row of a store file.
var Header = []string{"Index", "Date", "Description", "Value"}

// DecodeStore reads a store from CSV data: a header row followed by one row per record.
// Empty data decodes into an empty store. Records keep their file order and are
// renumbered 1..N; a stored index that disagrees with its position is corrected.
func DecodeStore(r io.Reader) (*Store, error) {
	store := NewStore()

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(Header)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err == io.EOF {
		return store, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading header")
	}
	if !isHeader(header) {
		return nil, errors.Errorf("line 1: invalid header %q want %q", strings.Join(header, ","), strings.Join(Header, ","))
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading record")
		}
		line, _ := reader.FieldPos(0)

		rec, err := decodeRecord(row)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		if !store.appendLoaded(rec) {
			logger.Warn("renumbered record", zap.Int("line", line), zap.Int("stored", rec.Index), zap.Int("index", store.Len()))
		}
	}
	return store, nil
}

func isHeader(row []string) bool {
	for i, col := range Header {
		if !strings.EqualFold(strings.TrimSpace(row[i]), col) {
			return false
		}
	}
	return true
}

func decodeRecord(row []string) (Record, error) {
	index, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return Record{}, errors.Wrapf(err, "invalid index %q", row[0])
	}
	on, err := date.Parse(strings.TrimSpace(row[1]))
	if err != nil {
		return Record{}, err
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
	if err != nil {
		return Record{}, errors.Wrapf(err, "invalid value %q", row[3])
	}
	if !isFinite(value) {
		return Record{}, errors.Errorf("invalid value %q: not a finite number", row[3])
	}
	return Record{
		Index:       index,
		Date:        on,
		Description: row[2],
		Value:       value,
	}, nil
}

// EncodeStore writes the header and every record of the store, in index order, as CSV.
// It fails on a NaN or infinite value, which could not be read back.
func EncodeStore(w io.Writer, s *Store) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return errors.Wrap(err, "writing header")
	}
	for _, r := range s.records {
		if !isFinite(r.Value) {
			return errors.Errorf("record %d: value %v is not a finite number", r.Index, r.Value)
		}
		row := []string{
			strconv.Itoa(r.Index),
			r.Date.String(),
			r.Description,
			strconv.FormatFloat(r.Value, 'f', -1, 64),
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrapf(err, "writing record %d", r.Index)
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "flushing records")
}
