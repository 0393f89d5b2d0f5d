package writer

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create %s: %v", name, err)
	}
}

func TestNextFilenameEmptyDir(t *testing.T) {
	name, err := NextFilename(t.TempDir())
	if err != nil {
		t.Fatalf("NextFilename failed: %v", err)
	}
	if name != "activity_log_1.xlsx" {
		t.Errorf("Expected activity_log_1.xlsx, got %s", name)
	}
}

func TestNextFilenameIncrements(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "activity_log_1.xlsx")
	touch(t, dir, "activity_log_2.xlsx")
	touch(t, dir, "activity_log_3.xlsx")

	name, err := NextFilename(dir)
	if err != nil {
		t.Fatalf("NextFilename failed: %v", err)
	}
	if name != "activity_log_4.xlsx" {
		t.Errorf("Expected activity_log_4.xlsx, got %s", name)
	}
}

func TestNextFilenameGap(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "activity_log_2.xlsx")
	touch(t, dir, "activity_log_7.xlsx")

	name, err := NextFilename(dir)
	if err != nil {
		t.Fatalf("NextFilename failed: %v", err)
	}
	// Highest + 1, not first free slot: never reuse a number.
	if name != "activity_log_8.xlsx" {
		t.Errorf("Expected activity_log_8.xlsx, got %s", name)
	}
}

func TestNextFilenameIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "activity_log_12.xlsx")
	touch(t, dir, "activity_log_99.xlsx.bak")
	touch(t, dir, "activity_log_abc.xlsx")
	touch(t, dir, "notes.txt")
	touch(t, dir, ".actlog-tmp123.xlsx")

	name, err := NextFilename(dir)
	if err != nil {
		t.Fatalf("NextFilename failed: %v", err)
	}
	if name != "activity_log_13.xlsx" {
		t.Errorf("Expected activity_log_13.xlsx, got %s", name)
	}
}

func TestNextFilenameMissingDir(t *testing.T) {
	if _, err := NextFilename(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Expected error for missing directory")
	}
}
