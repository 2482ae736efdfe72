package eco

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleTSV = "eco\tname\tpgn\n" +
	"B00\tKing's Pawn\t1. e4\n" +
	"C20\tKing's Pawn Game\t1. e4 e5\n" +
	"C50\tItalian Game\t1. e4 e5 2. Nf3 Nc6 3. Bc4\n" +
	"B20\tSicilian Defense\t1. e4 c5\n"

func writeTSV(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestNormalizeSequence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"move numbers stripped", "1. e4 e5 2. Nf3", "e4 e5 Nf3"},
		{"black continuation numbers", "1. e4 e5 2... Nc6", "e4 e5 Nc6"},
		{"check markers stripped", "1. e4 e5 2. Qh5 Nc6 3. Qxf7+", "e4 e5 Qh5 Nc6 Qxf7"},
		{"already normalized", "e4 c5", "e4 c5"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeSequence(tt.in); got != tt.want {
				t.Errorf("NormalizeSequence(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDatabase_LoadAndLookup(t *testing.T) {
	dir := t.TempDir()
	writeTSV(t, dir, "a.tsv", sampleTSV)

	db := NewDatabase()
	if err := db.LoadDir(dir); err != nil {
		t.Fatal(err)
	}
	if db.Count() != 4 {
		t.Errorf("count = %d, want 4", db.Count())
	}

	tests := []struct {
		sequence string
		wantName string
	}{
		{"e4", "King's Pawn"},
		{"e4 e5", "King's Pawn Game"},
		{"e4 e5 Nf3 Nc6 Bc4", "Italian Game"},
		{"1. e4 c5", "Sicilian Defense"}, // lookup input is normalized too
	}
	for _, tt := range tests {
		o := db.Lookup(tt.sequence)
		if o == nil {
			t.Errorf("Lookup(%q) = nil, want %q", tt.sequence, tt.wantName)
			continue
		}
		if o.Name != tt.wantName {
			t.Errorf("Lookup(%q).Name = %q, want %q", tt.sequence, o.Name, tt.wantName)
		}
	}

	if o := db.Lookup("d4 d5"); o != nil {
		t.Errorf("Lookup of unknown line = %v, want nil", o)
	}
}

func TestDatabase_LoadDirEmpty(t *testing.T) {
	db := NewDatabase()
	if err := db.LoadDir(t.TempDir()); err == nil {
		t.Error("LoadDir on a directory without .tsv files should fail")
	}
}

func TestDatabase_SkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	writeTSV(t, dir, "a.tsv", "eco\tname\tpgn\nbroken line without tabs\nA00\tPolish\t1. b4\n")

	db := NewDatabase()
	if err := db.LoadDir(dir); err != nil {
		t.Fatal(err)
	}
	if db.Count() != 1 {
		t.Errorf("count = %d, want 1 (malformed lines skipped)", db.Count())
	}
	if o := db.Lookup("b4"); o == nil || o.ECO != "A00" {
		t.Errorf("Lookup(b4) = %v, want A00", o)
	}
}
