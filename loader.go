package finbook

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// LoadLedger reads the book file and returns the ledger with all derived
// state recomputed. A missing file yields an empty ledger. A corrupt file is
// never fatal: it logs a warning and yields an empty ledger, so the
// application always starts.
func LoadLedger(path string) *Ledger {
	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("warning: cannot open book file %q: %v, starting empty", path, err)
		}
		return NewLedger()
	}
	defer f.Close()

	l, err := DecodeLedger(f)
	if err != nil {
		log.Printf("warning: cannot decode book file %q: %v, starting empty", path, err)
		return NewLedger()
	}
	return l
}

// SaveLedger persists the ledger to the book file, creating the parent
// directory if needed.
func SaveLedger(path string, l *Ledger) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for book file %q: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open book file %q for writing: %w", path, err)
	}
	defer f.Close()
	return EncodeLedger(f, l)
}

// LoadGoals reads the goals file. Like LoadLedger, a missing or corrupt file
// yields an empty goal book, with a warning for the corrupt case.
func LoadGoals(path string) *GoalBook {
	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("warning: cannot open goals file %q: %v, starting empty", path, err)
		}
		return NewGoalBook()
	}
	defer f.Close()

	b, err := DecodeGoals(f)
	if err != nil {
		log.Printf("warning: cannot decode goals file %q: %v, starting empty", path, err)
		return NewGoalBook()
	}
	return b
}

// SaveGoals persists the goal book to the goals file, creating the parent
// directory if needed.
func SaveGoals(path string, b *GoalBook) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for goals file %q: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open goals file %q for writing: %w", path, err)
	}
	defer f.Close()
	return EncodeGoals(f, b)
}
