package updater

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/ralt/coreupdater/internal/models"
	"github.com/sirupsen/logrus"
)

// SortMode selects how a list is ordered
type SortMode int

const (
	// SortGrouped orders cores by manufacturer and console and inserts
	// header entries at every group boundary
	SortGrouped SortMode = iota
	// SortAlphabetical orders cores by display name only, without headers
	SortAlphabetical
)

// String returns the string representation of SortMode
func (m SortMode) String() string {
	switch m {
	case SortGrouped:
		return "grouped"
	case SortAlphabetical:
		return "alphabetical"
	default:
		return "unknown"
	}
}

// ParseSortMode parses the name of a sort mode
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "grouped":
		return SortGrouped, nil
	case "alphabetical", "alpha":
		return SortAlphabetical, nil
	default:
		return SortGrouped, fmt.Errorf("unknown sort mode: %s", s)
	}
}

// Sort orders the list. Header entries left by a previous grouped sort
// are dropped first; SortGrouped then adds fresh ones. If the headers do
// not fit in the list, the sorted cores are kept without headers.
func (l *List) Sort(mode SortMode) {
	if l == nil {
		return
	}

	cores := slices.DeleteFunc(l.entries, models.Entry.IsHeader)
	if len(cores) == 0 {
		l.entries = cores
		return
	}

	if mode == SortAlphabetical {
		slices.SortStableFunc(cores, CompareAlphabetical)
		l.entries = cores
		return
	}

	keyed := make([]classifiedEntry, len(cores))
	for i, entry := range cores {
		keyed[i] = classifiedEntry{entry: entry, rule: Classify(entry.DisplayName)}
	}
	slices.SortStableFunc(keyed, compareClassified)

	for i := range keyed {
		cores[i] = keyed[i].entry
	}

	withHeaders, err := injectHeaders(keyed, l.maxEntries)
	if err != nil {
		logrus.Warnf("Failed to add group headers, keeping plain sorted list: %v", err)
		l.entries = cores
		return
	}

	l.entries = withHeaders
}

type classifiedEntry struct {
	entry models.Entry
	rule  Rule
}

// CompareAlphabetical orders entries by display name, ignoring case
func CompareAlphabetical(a, b models.Entry) int {
	return compareFold(a.DisplayName, b.DisplayName)
}

// CompareGrouped is the grouped ordering: headers first (manufacturer
// before console), then cores by manufacturer priority and name, console
// priority and model, console type, release year and display name.
func CompareGrouped(a, b models.Entry) int {
	return compareClassified(
		classifiedEntry{entry: a, rule: classifyCore(a)},
		classifiedEntry{entry: b, rule: classifyCore(b)},
	)
}

// Headers are never classified
func classifyCore(e models.Entry) Rule {
	if e.IsHeader() {
		return Rule{}
	}
	return Classify(e.DisplayName)
}

func compareClassified(a, b classifiedEntry) int {
	aHeader, bHeader := a.entry.IsHeader(), b.entry.IsHeader()

	switch {
	case aHeader && !bHeader:
		return -1
	case !aHeader && bHeader:
		return 1
	case aHeader && bHeader:
		if a.entry.IsManufacturerHeader != b.entry.IsManufacturerHeader {
			if a.entry.IsManufacturerHeader {
				return -1
			}
			return 1
		}
		return compareFold(a.entry.DisplayName, b.entry.DisplayName)
	}

	ra, rb := a.rule, b.rule

	if c := cmp.Compare(ra.ManufacturerPriority, rb.ManufacturerPriority); c != 0 {
		return c
	}
	if c := compareFold(ra.Manufacturer, rb.Manufacturer); c != 0 {
		return c
	}
	if c := cmp.Compare(ra.ConsolePriority, rb.ConsolePriority); c != 0 {
		return c
	}
	if c := compareFold(ra.ConsoleModel, rb.ConsoleModel); c != 0 {
		return c
	}
	if c := compareFold(ra.ConsoleType, rb.ConsoleType); c != 0 {
		return c
	}
	if c := cmp.Compare(ra.ReleaseYear, rb.ReleaseYear); c != 0 {
		return c
	}

	return compareFold(a.entry.DisplayName, b.entry.DisplayName)
}

// compareFold compares two strings byte-wise, ignoring ASCII case
func compareFold(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		ca, cb := toLowerASCII(a[i]), toLowerASCII(b[i])
		if ca != cb {
			return cmp.Compare(ca, cb)
		}
	}
	return cmp.Compare(len(a), len(b))
}

func toLowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// injectHeaders builds a new entry slice with a manufacturer header
// before each manufacturer group and a console header before each
// console group. The input is left untouched; on failure nothing is
// returned.
func injectHeaders(sorted []classifiedEntry, limit int) ([]models.Entry, error) {
	var out []models.Entry
	emit := func(entry models.Entry) error {
		grown, err := reserve(out, 1, limit)
		if err != nil {
			return err
		}
		out = append(grown, entry)
		return nil
	}

	var (
		lastMfg, lastConsole string
		haveMfg, haveConsole bool
	)

	for _, item := range sorted {
		rule := item.rule

		if !haveMfg || !strings.EqualFold(lastMfg, rule.Manufacturer) {
			if err := emit(manufacturerHeader(rule.Manufacturer)); err != nil {
				return nil, err
			}
			lastMfg, haveMfg = rule.Manufacturer, true
			// A new manufacturer always starts a new console group
			haveConsole = false
		}

		if !haveConsole || !strings.EqualFold(lastConsole, rule.ConsoleModel) {
			if err := emit(consoleHeader(rule.ConsoleModel, rule.ReleaseYear)); err != nil {
				return nil, err
			}
			lastConsole, haveConsole = rule.ConsoleModel, true
		}

		if err := emit(item.entry); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func manufacturerHeader(manufacturer string) models.Entry {
	return models.Entry{
		DisplayName:          fmt.Sprintf("=== %s ===", manufacturer),
		IsManufacturerHeader: true,
	}
}

func consoleHeader(consoleModel string, releaseYear int) models.Entry {
	label := fmt.Sprintf("--- %s ---", consoleModel)
	if releaseYear > 0 && releaseYear < 9999 {
		label = fmt.Sprintf("--- %s (%d) ---", consoleModel, releaseYear)
	}
	return models.Entry{
		DisplayName:     label,
		IsConsoleHeader: true,
	}
}
