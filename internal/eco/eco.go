// Package eco provides ECO (Encyclopedia of Chess Openings) name lookup
// keyed by SAN move sequences.
package eco

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Opening represents an ECO opening classification.
type Opening struct {
	ECO  string `json:"eco"`
	Name string `json:"name"`
}

// Database holds ECO opening data indexed by normalized move sequence.
type Database struct {
	bySequence map[string]Opening
	count      int
}

// NewDatabase creates an empty ECO database.
func NewDatabase() *Database {
	return &Database{
		bySequence: make(map[string]Opening),
	}
}

// moveNumberRegex matches move numbers like "1." or "12..."
var moveNumberRegex = regexp.MustCompile(`\d+\.+\s*`)

// LoadDir loads all .tsv files from a directory.
func (db *Database) LoadDir(dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.tsv"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .tsv files found in %s", dir)
	}

	for _, file := range files {
		if err := db.LoadFile(file); err != nil {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}
	return nil
}

// LoadFile loads a single TSV file with eco\tname\tpgn lines.
func (db *Database) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		// Skip header
		if lineNum == 1 && strings.HasPrefix(line, "eco\t") {
			continue
		}

		parts := strings.SplitN(line, "\t", 3)
		if len(parts) != 3 {
			continue
		}

		key := NormalizeSequence(parts[2])
		if key == "" {
			continue
		}
		db.bySequence[key] = Opening{ECO: parts[0], Name: parts[1]}
		db.count++
	}

	return scanner.Err()
}

// NormalizeSequence reduces a PGN move-text line like "1. e4 e5 2. Nf3"
// to a space-joined SAN sequence ("e4 e5 Nf3") with annotations and
// check/mate markers stripped, matching how the walker joins move
// sequences.
func NormalizeSequence(moveText string) string {
	cleaned := moveNumberRegex.ReplaceAllString(moveText, "")

	var moves []string
	for _, san := range strings.Fields(cleaned) {
		if san == "" || san[0] == '$' || san[0] == '{' {
			continue
		}
		san = strings.TrimSuffix(san, "+")
		san = strings.TrimSuffix(san, "#")
		if san != "" {
			moves = append(moves, san)
		}
	}
	return strings.Join(moves, " ")
}

// Lookup returns the opening for a SAN sequence, or nil if not known.
// The input is normalized, so both "1. e4 e5" and "e4 e5" match.
func (db *Database) Lookup(sequence string) *Opening {
	if o, ok := db.bySequence[NormalizeSequence(sequence)]; ok {
		return &o
	}
	return nil
}

// Count returns the number of openings loaded.
func (db *Database) Count() int {
	return db.count
}
