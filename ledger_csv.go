package tradecost

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"
)

// Column layout of the exchange trade export. The file starts with a
// header row; it is skipped like any other row whose market column has
// no base/quote structure.
const (
	csvColID = iota
	csvColTime
	csvColMarket
	csvColSide
	csvColOrderType
	csvColSize
	csvColPrice
	csvColCount
)

// ReadTradesCSV parses an exchange CSV trade export into fills. Rows
// for markets without a base/quote structure are skipped; a row with an
// unrecognized side or an unparsable number is a malformed record that
// aborts the parse, naming the row.
func ReadTradesCSV(r io.Reader) ([]Fill, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // trailing fee columns vary by export

	var fills []Fill
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("trades csv line %d: %w", line, err)
		}
		if len(record) < csvColCount {
			return nil, &MalformedRecordError{Record: fmt.Sprintf("line %d", line), Field: "columns", Value: fmt.Sprint(len(record))}
		}

		market := Market(record[csvColMarket])
		if market.Base() == "" {
			// header row, or a row for something that is not a traded pair
			continue
		}

		side, err := ParseSide(record[csvColSide])
		if err != nil {
			return nil, fmt.Errorf("trades csv line %d: %w", line, err)
		}
		size, err := ParseQuantity(record[csvColSize])
		if err != nil {
			return nil, &MalformedRecordError{Record: fmt.Sprintf("line %d", line), Field: "size", Value: record[csvColSize]}
		}
		price, err := ParseQuantity(record[csvColPrice])
		if err != nil {
			return nil, &MalformedRecordError{Record: fmt.Sprintf("line %d", line), Field: "price", Value: record[csvColPrice]}
		}

		// the execution time is informative only, a bad value is not fatal
		when, _ := time.Parse(time.RFC3339, record[csvColTime])

		fills = append(fills, Fill{
			ID:     record[csvColID],
			Market: market,
			Side:   side,
			Size:   size,
			Price:  M(price.value, market.Quote()),
			Time:   when,
		})
	}
	return fills, nil
}

// ReadTradesCSVFile is ReadTradesCSV over a file path.
func ReadTradesCSVFile(path string) ([]Fill, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trades csv: %w", err)
	}
	defer f.Close()
	return ReadTradesCSV(f)
}
