package storage

import (
	"path/filepath"
	"testing"

	"stendconfig/internal/domain/models"

	"github.com/xuri/excelize/v2"
)

func TestExportImportRoundTrip(t *testing.T) {
	repo := NewXlsxWorkbookRepository()
	path := filepath.Join(t.TempDir(), "params.xlsx")

	src := models.ParameterSet{
		"Voltage Set":   "12.5",
		"Current Limit": "3",
		"Waveform":      "sine",
		"Unknown Param": "dropped", // не входит в шаблон, теряется при экспорте
	}
	if err := repo.Write(path, src); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := repo.Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if len(got) != len(models.ExportTemplate) {
		t.Errorf("expected %d parameters, got %d", len(models.ExportTemplate), len(got))
	}
	for _, entry := range models.ExportTemplate {
		want := src[entry.Name]
		v, ok := got[entry.Name]
		if !ok {
			t.Errorf("parameter %q missing after round trip", entry.Name)
			continue
		}
		if v != want {
			t.Errorf("parameter %q: expected %q, got %q", entry.Name, want, v)
		}
	}
	if _, ok := got["Unknown Param"]; ok {
		t.Error("parameter outside the template must not survive the round trip")
	}
}

func TestReadSkipsHeaderAndBlankRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"x", "Parameter", "Value", "Range"}, // литерал заголовка во 2-й колонке
		{"Power Supply", "Voltage Set", "24", "0-60 V"},
		{"Power Supply", "", "ignored", ""}, // пустое имя
		{"solo"},                            // короткая строка без 2-й колонки
		{"Signal", "  Frequency  ", "50"},   // имя с пробелами
		{"Timing", "Hold Time"},             // без значения
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("fixture row %d: %v", i+1, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("fixture save: %v", err)
	}
	f.Close()

	got, err := NewXlsxWorkbookRepository().Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	want := models.ParameterSet{
		"Voltage Set": "24",
		"Frequency":   "50",
		"Hold Time":   "",
	}
	if len(got) != len(want) {
		t.Errorf("expected %d entries, got %d: %v", len(want), len(got), got)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("key %q: expected %q, got %q", k, v, got[k])
		}
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := NewXlsxWorkbookRepository().Read(filepath.Join(t.TempDir(), "nope.xlsx"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}
