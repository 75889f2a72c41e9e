package cointrack

import (
	"bufio"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// BudgetStore keeps one spending limit per category in a text file of
// "<category>|<limit>" lines. The file is rewritten in full on every change.
type BudgetStore struct {
	path string
}

// OpenBudgetStore opens the store backed by path, creating the file and its
// directory when they do not exist yet.
func OpenBudgetStore(path string) (*BudgetStore, error) {
	if err := ensureFile(path); err != nil {
		return nil, err
	}
	log.WithField("path", path).Debug("budget store opened")
	return &BudgetStore{path: path}, nil
}

// Path returns the backing file path.
func (b *BudgetStore) Path() string { return b.path }

// Load returns every configured limit by category.
//
// Malformed lines are skipped, they are not an error. When a category appears
// twice the last line wins.
func (b *BudgetStore) Load() (map[string]decimal.Decimal, error) {
	f, err := os.Open(b.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	defer f.Close()

	budgets := make(map[string]decimal.Decimal)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, Delimiter)
		if len(parts) != 2 {
			log.WithFields(log.Fields{"path": b.path, "line": n}).Warn("skipping malformed budget line")
			continue
		}
		limit, err := decimal.NewFromString(parts[1])
		if err != nil {
			log.WithFields(log.Fields{"path": b.path, "line": n}).Warnf("skipping budget line with invalid limit: %v", err)
			continue
		}
		budgets[parts[0]] = limit
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read %q: %w", b.path, err)
	}
	return budgets, nil
}

// Set sets or replaces the limit of category.
func (b *BudgetStore) Set(category string, limit decimal.Decimal) error {
	if err := validateCategory(category); err != nil {
		return err
	}
	if limit.IsNegative() {
		return fmt.Errorf("%w: limit %s must not be negative", ErrInvalidAmount, limit)
	}

	budgets, err := b.Load()
	if err != nil {
		return err
	}
	budgets[category] = limit
	if err := b.save(budgets); err != nil {
		return err
	}
	log.WithFields(log.Fields{"category": category, "limit": limit}).Debug("budget saved")
	return nil
}

// BudgetFor returns the limit of category, or zero when none is set.
//
// A category spelled exactly as stored wins, otherwise the lookup ignores case.
func (b *BudgetStore) BudgetFor(category string) (decimal.Decimal, error) {
	budgets, err := b.Load()
	if err != nil {
		return decimal.Zero, err
	}
	if limit, ok := budgets[category]; ok {
		return limit, nil
	}
	for _, name := range slices.Sorted(maps.Keys(budgets)) {
		if strings.EqualFold(name, category) {
			return budgets[name], nil
		}
	}
	return decimal.Zero, nil
}

// save truncates the file and writes every entry, sorted by category.
// A crash in the middle of the write can leave the file partially written.
func (b *BudgetStore) save(budgets map[string]decimal.Decimal) error {
	var sb strings.Builder
	for _, category := range slices.Sorted(maps.Keys(budgets)) {
		fmt.Fprintf(&sb, "%s%s%s\n", category, Delimiter, budgets[category])
	}
	if err := os.WriteFile(b.path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("could not write budgets to %q: %w", b.path, err)
	}
	return nil
}
