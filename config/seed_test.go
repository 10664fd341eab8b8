package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSeed(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "events.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestParseSeedFileOrdersEventsByAppearance(t *testing.T) {
	path := writeSeed(t, "Concert\n100\nPlay\n2\n")
	entries, err := ParseSeedFile(path)
	if err != nil {
		t.Fatalf("ParseSeedFile: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if string(entries[0].Description) != "Concert" || entries[0].TicketsAvailable != 100 {
		t.Fatalf("unexpected entry 0: %+v", entries[0])
	}
	if string(entries[1].Description) != "Play" || entries[1].TicketsAvailable != 2 {
		t.Fatalf("unexpected entry 1: %+v", entries[1])
	}
}

func TestParseSeedFileStopsCleanlyOnTrailingDescription(t *testing.T) {
	path := writeSeed(t, "Concert\n100\nOrphan Description\n")
	entries, err := ParseSeedFile(path)
	if err != nil {
		t.Fatalf("ParseSeedFile: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected trailing unmatched description to be dropped, got %d entries", len(entries))
	}
}

func TestParseSeedFileRejectsBadCount(t *testing.T) {
	path := writeSeed(t, "Concert\nnot-a-number\n")
	if _, err := ParseSeedFile(path); err == nil {
		t.Fatalf("expected error for non-numeric seat count")
	}
}

func TestParseSeedFileRejectsEmptyDescription(t *testing.T) {
	path := writeSeed(t, "\n100\n")
	if _, err := ParseSeedFile(path); err == nil {
		t.Fatalf("expected error for empty description")
	}
}

func TestParseSeedFileMissingFile(t *testing.T) {
	if _, err := ParseSeedFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
