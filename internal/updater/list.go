// Package updater builds the core updater list: it ingests buildbot
// listings or play feature delivery core names, resolves local paths and
// core info for every core, drops duplicates and sorts the result into
// manufacturer and console groups.
package updater

import (
	"errors"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"github.com/ralt/coreupdater/internal/models"
	"github.com/ralt/coreupdater/internal/utils"
)

// Per-candidate failures. A candidate failing with one of these is
// skipped, the rest of the input is still ingested.
var (
	ErrDuplicate       = errors.New("core already listed")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidCRC      = errors.New("invalid crc")
	ErrMissingArgument = errors.New("missing argument")
	ErrCapacity        = errors.New("list capacity exceeded")
)

// List holds every entry of a core updater list. A list is always the
// product of a single ingestion call.
type List struct {
	entries    []models.Entry
	listType   models.ListType
	mode       SortMode
	maxEntries int
}

// Option configures a List
type Option func(*List)

// WithSortMode selects how ingestion orders the list
func WithSortMode(mode SortMode) Option {
	return func(l *List) {
		l.mode = mode
	}
}

// WithMaxEntries bounds the number of entries, headers included, the
// list may hold. Zero means unbounded.
func WithMaxEntries(n int) Option {
	return func(l *List) {
		if n < 0 {
			n = 0
		}
		l.maxEntries = n
	}
}

// NewList creates an empty list
func NewList(opts ...Option) *List {
	l := &List{
		listType: models.ListTypeUnknown,
		mode:     SortGrouped,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Reset removes all entries and forgets the list type
func (l *List) Reset() {
	l.entries = nil
	l.listType = models.ListTypeUnknown
}

// Size returns the number of entries, headers included
func (l *List) Size() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// Type returns the delivery method the list was built from
func (l *List) Type() models.ListType {
	if l == nil {
		return models.ListTypeUnknown
	}
	return l.listType
}

// Mode returns the sort mode used on ingestion
func (l *List) Mode() SortMode {
	return l.mode
}

// Entry returns the entry at idx
func (l *List) Entry(idx int) (models.Entry, bool) {
	if l == nil || idx < 0 || idx >= len(l.entries) {
		return models.Entry{}, false
	}
	return l.entries[idx].Clone(), true
}

// Entries returns a copy of every entry in list order
func (l *List) Entries() []models.Entry {
	if l == nil {
		return nil
	}
	entries := make([]models.Entry, len(l.entries))
	for i, entry := range l.entries {
		entries[i] = entry.Clone()
	}
	return entries
}

// FindByFilename returns the core entry advertised under filename.
// Header entries are never matched.
func (l *List) FindByFilename(filename string) (models.Entry, bool) {
	idx := l.indexByFilename(filename)
	if idx < 0 {
		return models.Entry{}, false
	}
	return l.entries[idx].Clone(), true
}

func (l *List) indexByFilename(filename string) int {
	if l == nil || filename == "" {
		return -1
	}
	for i := range l.entries {
		entry := &l.entries[i]
		if entry.IsHeader() || entry.RemoteFilename == "" {
			continue
		}
		if entry.RemoteFilename == filename {
			return i
		}
	}
	return -1
}

// FindByCorePath returns the entry installed at corePath. The path is
// canonicalised the same way the list's own local core paths were.
func (l *List) FindByCorePath(corePath string) (models.Entry, bool) {
	if l == nil || corePath == "" || len(l.entries) == 0 {
		return models.Entry{}, false
	}

	// PFD core files carry non-standard names, they must not be
	// replaced by their symlink targets
	realPath := utils.ResolveRealPath(corePath, l.listType != models.ListTypePFD)
	if realPath == "" {
		return models.Entry{}, false
	}

	for i := range l.entries {
		entry := &l.entries[i]
		if entry.LocalCorePath == "" {
			continue
		}
		if samePath(realPath, entry.LocalCorePath) {
			return entry.Clone(), true
		}
	}

	return models.Entry{}, false
}

func samePath(a, b string) bool {
	if runtime.GOOS == "windows" {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// Reserve makes room for n more entries. It fails with ErrCapacity if the
// list would grow beyond its maximum size; existing entries are untouched.
func (l *List) Reserve(n int) error {
	entries, err := reserve(l.entries, n, l.maxEntries)
	if err != nil {
		return err
	}
	l.entries = entries
	return nil
}

// reserve grows the capacity of entries by n, bounded by limit
func reserve(entries []models.Entry, n, limit int) ([]models.Entry, error) {
	if n < 0 {
		return entries, fmt.Errorf("negative reservation: %d", n)
	}
	if limit > 0 && len(entries)+n > limit {
		return entries, fmt.Errorf("%w: %d + %d > %d", ErrCapacity, len(entries), n, limit)
	}
	return slices.Grow(entries, n), nil
}

// push appends a fully built entry, rejecting duplicates
func (l *List) push(entry models.Entry) error {
	if !entry.IsHeader() && l.indexByFilename(entry.RemoteFilename) >= 0 {
		return ErrDuplicate
	}
	if err := l.Reserve(1); err != nil {
		return err
	}
	l.entries = append(l.entries, entry)
	return nil
}
