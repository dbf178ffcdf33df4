package core

import (
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestLoadSheet_CSV(t *testing.T) {
	data := []byte("SKU,Current Stock Level\nA1,3\nA2,7\n")

	sheet, err := LoadSheet("stock.csv", data)
	if err != nil {
		t.Fatalf("LoadSheet() error = %v", err)
	}

	if len(sheet.Header) != 2 || sheet.Header[0] != "SKU" {
		t.Errorf("header = %v", sheet.Header)
	}
	if sheet.RowCount() != 2 {
		t.Fatalf("RowCount() = %d, want 2", sheet.RowCount())
	}
	if sheet.Rows[1].Cell(1) != "7" {
		t.Errorf("cell(1,1) = %q, want %q", sheet.Rows[1].Cell(1), "7")
	}
}

func TestLoadSheet_CSV_RaggedRows(t *testing.T) {
	data := []byte("SKU,Current Stock Level,Note\nA1,3\nA2,7,low\n")

	sheet, err := LoadSheet("stock.csv", data)
	if err != nil {
		t.Fatalf("LoadSheet() error = %v", err)
	}

	// Short rows pad implicitly through Cell.
	if got := sheet.Rows[0].Cell(2); got != "" {
		t.Errorf("short row cell = %q, want empty", got)
	}
	if got := sheet.Rows[1].Cell(2); got != "low" {
		t.Errorf("cell = %q, want %q", got, "low")
	}
}

func TestLoadSheet_EmptyFile(t *testing.T) {
	_, err := LoadSheet("stock.csv", []byte(""))
	if !errors.Is(err, ErrEmptyFile) {
		t.Errorf("LoadSheet() error = %v, want ErrEmptyFile", err)
	}
}

func TestLoadSheet_HeaderOnly(t *testing.T) {
	sheet, err := LoadSheet("stock.csv", []byte("SKU,Current Stock Level\n"))
	if err != nil {
		t.Fatalf("LoadSheet() error = %v", err)
	}
	if sheet.RowCount() != 0 {
		t.Errorf("RowCount() = %d, want 0", sheet.RowCount())
	}
}

func TestLoadSheet_XLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetRow("Sheet1", "A1", &[]interface{}{"SKU", "Current Stock Level"}); err != nil {
		t.Fatal(err)
	}
	if err := f.SetSheetRow("Sheet1", "A2", &[]interface{}{"A1", 3}); err != nil {
		t.Fatal(err)
	}
	if err := f.SetSheetRow("Sheet1", "A3", &[]interface{}{"A2", 7}); err != nil {
		t.Fatal(err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}

	sheet, err := LoadSheet("stock.xlsx", buf.Bytes())
	if err != nil {
		t.Fatalf("LoadSheet() error = %v", err)
	}

	if sheet.Header.Cell(0) != "SKU" {
		t.Errorf("header cell = %q, want %q", sheet.Header.Cell(0), "SKU")
	}
	if sheet.RowCount() != 2 {
		t.Fatalf("RowCount() = %d, want 2", sheet.RowCount())
	}
	if sheet.Rows[0].Cell(1) != "3" {
		t.Errorf("cell = %q, want %q", sheet.Rows[0].Cell(1), "3")
	}
}

func TestLoadSheet_CorruptXLSX(t *testing.T) {
	_, err := LoadSheet("stock.xlsx", []byte("this is not a zip archive"))
	if err == nil {
		t.Fatal("LoadSheet() expected error for corrupt workbook")
	}

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if pe.Format != "xlsx" {
		t.Errorf("Format = %q, want %q", pe.Format, "xlsx")
	}
}

func TestLoadSheet_InvalidUTF8Sanitized(t *testing.T) {
	data := []byte("SKU,Current Stock Level\nA\xff1,3\n")

	sheet, err := LoadSheet("stock.csv", data)
	if err != nil {
		t.Fatalf("LoadSheet() error = %v", err)
	}
	if sheet.RowCount() != 1 {
		t.Fatalf("RowCount() = %d, want 1", sheet.RowCount())
	}
}
