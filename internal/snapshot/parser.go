package snapshot

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/openplacer/placeviz/internal/errors"
)

// Minimum field counts per row kind. Rows with fewer fields are dropped
// without a diagnostic; extra trailing fields are ignored.
const (
	cellFieldCount    = 6
	densityFieldCount = 3
)

// ReadCellTable reads a placement table from path. The first row is always
// treated as a header and discarded, blank rows are skipped, and rows that
// fail to decode are skipped with a diagnostic returned alongside the
// records. Records come back in file order.
func ReadCellTable(path string) ([]CellRecord, []string, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, nil, err
	}

	var records []CellRecord
	var skipped []string
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) || len(row) < cellFieldCount {
			continue
		}
		rec, err := cellFromRow(row)
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("row %d: %s", i+1, errors.UserMessage(err)))
			continue
		}
		records = append(records, rec)
	}

	return records, skipped, nil
}

// ReadDensityTable reads density samples from path under the same row
// policy as ReadCellTable: header discarded, blank and short rows skipped,
// undecodable rows skipped with a diagnostic.
func ReadDensityTable(path string) ([]DensitySample, []string, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, nil, err
	}

	var samples []DensitySample
	var skipped []string
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) || len(row) < densityFieldCount {
			continue
		}
		s, err := densityFromRow(row)
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("row %d: %s", i+1, errors.UserMessage(err)))
			continue
		}
		samples = append(samples, s)
	}

	return samples, skipped, nil
}

// cellFromRow decodes name,x,y,width,height,fixed from the first six
// fields. The fixed flag is true iff the sixth field, lowercased, equals
// "true"; every other spelling ("1", "yes", ...) is false.
func cellFromRow(row []string) (CellRecord, error) {
	x, err := parseFloatField("x", row[1])
	if err != nil {
		return CellRecord{}, err
	}
	y, err := parseFloatField("y", row[2])
	if err != nil {
		return CellRecord{}, err
	}
	width, err := parseFloatField("width", row[3])
	if err != nil {
		return CellRecord{}, err
	}
	height, err := parseFloatField("height", row[4])
	if err != nil {
		return CellRecord{}, err
	}

	return CellRecord{
		Name:   row[0],
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Fixed:  strings.ToLower(row[5]) == "true",
	}, nil
}

// densityFromRow decodes x,y,value from the first three fields.
func densityFromRow(row []string) (DensitySample, error) {
	x, err := parseFloatField("x", row[0])
	if err != nil {
		return DensitySample{}, err
	}
	y, err := parseFloatField("y", row[1])
	if err != nil {
		return DensitySample{}, err
	}
	value, err := parseFloatField("value", row[2])
	if err != nil {
		return DensitySample{}, err
	}

	return DensitySample{X: x, Y: y, Value: value}, nil
}

// parseFloatField decodes one numeric field. Non-finite values are
// rejected: NaN and infinities poison extent math and coordinate ranking.
func parseFloatField(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, errors.New(errors.CodeMalformedRow, "invalid %s %q", name, raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New(errors.CodeMalformedRow, "non-finite %s %q", name, raw)
	}
	return v, nil
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// readRows loads the raw row grid from path: the first worksheet for Excel
// workbooks, comma-separated text for everything else.
func readRows(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readExcelRows(path)
	default:
		return readCSVRows(path)
	}
}

func readCSVRows(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.CodeUsage, err, "reading %s", path)
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.CodeMalformedRow, err, "decoding %s", path)
	}
	return rows, nil
}

func readExcelRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.CodeUsage, err, "opening %s", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New(errors.CodeEmptyData, "workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(errors.CodeMalformedRow, err, "reading sheet %q", sheets[0])
	}
	return rows, nil
}
