package core

import (
	"bytes"
	"encoding/csv"
	"errors"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// LoadSheet parses an uploaded file into a Sheet. The format is chosen by
// file extension: .xlsx/.xlsm go through excelize, .xls through the legacy
// BIFF reader, and everything else is treated as CSV. Only the first
// sheet/table of a workbook is used; row 0 becomes the header.
//
// Returns ErrEmptyFile when the parsed content has zero rows, or a
// *ParseError when the underlying parser fails.
func LoadSheet(fileName string, data []byte) (*Sheet, error) {
	var (
		records [][]string
		format  string
		err     error
	)

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xlsx", ".xlsm":
		format = "xlsx"
		records, err = readXLSX(data)
	case ".xls":
		format = "xls"
		records, err = readXLS(data)
	default:
		format = "csv"
		records, err = readCSV(data)
	}
	if err != nil {
		return nil, &ParseError{FileName: fileName, Format: format, Err: err}
	}

	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	sheet := &Sheet{Header: records[0]}
	for _, rec := range records[1:] {
		sheet.Rows = append(sheet.Rows, Row(rec))
	}
	return sheet, nil
}

func readCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(sanitizeUTF8(data)))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r.ReadAll()
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name := f.GetSheetName(0)
	if name == "" {
		return nil, errors.New("workbook has no sheets")
	}
	return f.GetRows(name)
}

func readXLS(data []byte) ([][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, err
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, errors.New("workbook has no sheets")
	}

	records := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			records = append(records, nil)
			continue
		}
		// Cells before FirstCol are absent; keep positions aligned.
		rec := make([]string, row.LastCol())
		for c := row.FirstCol(); c < row.LastCol(); c++ {
			rec[c] = row.Col(c)
		}
		records = append(records, rec)
	}
	return records, nil
}

// sanitizeUTF8 replaces invalid byte sequences with the replacement rune so
// the CSV reader never chokes on mixed encodings.
func sanitizeUTF8(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}

	var buf bytes.Buffer
	buf.Grow(len(data))

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune('�')
			data = data[1:]
		} else {
			buf.WriteRune(r)
			data = data[size:]
		}
	}

	return buf.Bytes()
}
