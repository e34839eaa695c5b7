package storage

import (
	"path/filepath"
	"testing"

	"stendconfig/internal/domain/models"
)

func TestProfileRepositorySaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "connection.json")
	repo := NewFileProfileRepository(path)

	profile := models.DefaultProfile()
	profile.PortName = "COM7"
	profile.BaudRate = 9600
	profile.Encoding = "windows-1251"

	if err := repo.Save(&profile); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("expected a stored profile")
	}
	if got.PortName != "COM7" || got.BaudRate != 9600 || got.Encoding != "windows-1251" {
		t.Errorf("profile mismatch after reload: %+v", got)
	}
}

func TestProfileRepositoryLoadMissing(t *testing.T) {
	repo := NewFileProfileRepository(filepath.Join(t.TempDir(), "connection.json"))
	got, err := repo.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil profile for missing file, got %+v", got)
	}
}
