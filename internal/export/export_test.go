package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/xuri/excelize/v2"
)

var testHeader = []string{"server_id", "server_name", "status"}

func testRows() [][]any {
	return [][]any{
		{"SRVAAAAAA", "ServerAAAAAA", "ON"},
		{"SRVBBBBBB", "ServerBBBBBB", "OFF"},
		{"SRVCCCCCC", "ServerCCCCCC", "ON"},
	}
}

func TestWriteXLSXRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "servers.xlsx")
	if err := WriteXLSX(path, testHeader, testRows()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("failed to read sheet: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header plus 3 data rows, got %d rows", len(rows))
	}
	for i, col := range testHeader {
		if rows[0][i] != col {
			t.Fatalf("header column %d: expected %q, got %q", i, col, rows[0][i])
		}
	}
	if rows[2][0] != "SRVBBBBBB" {
		t.Fatalf("unexpected cell value %q", rows[2][0])
	}
}

func TestWriteXLSXEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := WriteXLSX(path, testHeader, nil); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("failed to read sheet: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected only a header row, got %d rows", len(rows))
	}
}

func TestWriteXLSXOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "servers.xlsx")
	if err := WriteXLSX(path, testHeader, testRows()); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := WriteXLSX(path, testHeader, testRows()[:1]); err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("failed to read sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected overwrite to leave 2 rows, got %d", len(rows))
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "servers.csv")
	if err := WriteCSV(path, testHeader, testRows()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to reopen csv: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse csv: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected 4 csv records, got %d", len(records))
	}
	if records[0][2] != "status" {
		t.Fatalf("unexpected header cell %q", records[0][2])
	}
	if records[3][1] != "ServerCCCCCC" {
		t.Fatalf("unexpected data cell %q", records[3][1])
	}
}

func TestWriteCSVLZ4RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "servers.csv.lz4")
	if err := WriteCSVLZ4(path, testHeader, testRows()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to reopen file: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(lz4.NewReader(f)).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse compressed csv: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected 4 csv records, got %d", len(records))
	}
	if records[1][0] != "SRVAAAAAA" {
		t.Fatalf("unexpected data cell %q", records[1][0])
	}
}

func TestWriteCSVMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "servers.csv")
	if err := WriteCSV(path, testHeader, testRows()); err == nil {
		t.Fatalf("expected an error for a missing destination directory")
	}
}
