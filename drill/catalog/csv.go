package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wellsim/wellsim/drill"
)

// Columns names the CSV headers holding the geometric fields. Headers are compared after
// trimming surrounding whitespace.
type Columns struct {
	UnitWeight    string
	OuterDiameter string
	InnerDiameter string
}

var (
	// PipeColumns matches the API drill-pipe sheet.
	PipeColumns = Columns{UnitWeight: "Nominal Weight (lb/ft)", OuterDiameter: "OD (in)", InnerDiameter: "TUBE ID (in)"}
	// CollarColumns matches the API drill-collar sheet.
	CollarColumns = Columns{UnitWeight: "Adjusted Weight (lb/ft)", OuterDiameter: "OD (in)", InnerDiameter: "Collar ID (in)"}
)

// nameColumn is optional; rows without it are named by position.
const nameColumn = "Name"

// ReadCSV parses a catalog sheet with a header row. The three geometric columns must parse
// as float64; every other non-empty column is kept in Entry.Info under its header.
func ReadCSV(r io.Reader, cols Columns) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading catalog header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[h] = i
	}
	geometric := [3]string{cols.UnitWeight, cols.OuterDiameter, cols.InnerDiameter}
	for _, name := range geometric {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w: catalog is missing column %q", drill.ErrInvalidConfig, name)
		}
	}

	var entries []Entry
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading catalog line %d: %w", line, err)
		}
		var values [3]float64
		for i, name := range geometric {
			raw := strings.TrimSpace(record[index[name]])
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %q: %q is not a number", drill.ErrInvalidConfig, line, name, raw)
			}
			values[i] = v
		}
		e := Entry{UnitWeight: values[0], OuterDiameter: values[1], InnerDiameter: values[2], Info: map[string]string{}}
		for i, h := range header {
			if h == cols.UnitWeight || h == cols.OuterDiameter || h == cols.InnerDiameter {
				continue
			}
			v := strings.TrimSpace(record[i])
			if v == "" {
				continue
			}
			if h == nameColumn {
				e.Name = v
				continue
			}
			e.Info[h] = v
		}
		if e.Name == "" {
			e.Name = fmt.Sprintf("row %d", len(entries)+1)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
