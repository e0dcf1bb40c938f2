package updater

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/ralt/coreupdater/internal/models"
	"github.com/sirupsen/logrus"
)

// ParseNetworkData reads a buildbot core listing into the list. Each
// line has the form "<date> <crc> <filename>". Broken lines are skipped;
// the call only fails when the input is unusable or no core survives.
func (l *List) ParseNetworkData(r *Resolver, data []byte) error {
	if l == nil || r == nil {
		return &models.CoreUpdaterError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("list and resolver are required"),
		}
	}

	// Anything after a NUL byte is ignored
	if idx := bytes.IndexByte(data, 0); idx >= 0 {
		data = data[:idx]
	}

	if len(data) == 0 {
		return &models.CoreUpdaterError{
			Type: models.ErrListingParse,
			Err:  fmt.Errorf("listing is empty"),
		}
	}

	// We're populating the list from scratch
	l.Reset()

	if bytes.IndexByte(data, '\n') < 0 {
		return &models.CoreUpdaterError{
			Type: models.ErrListingParse,
			Err:  fmt.Errorf("listing contains no complete line"),
		}
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		// Listings must have 3 fields: [date] [crc] [filename]
		fields := splitFields(line, 3)
		if len(fields) < 3 {
			logrus.Debugf("Skipping malformed listing line: %q", line)
			continue
		}

		if err := l.addEntry(r, fields[0], fields[1], fields[2]); err != nil {
			logrus.Debugf("Skipping core %s: %v", fields[2], err)
		}
	}

	return l.finish(models.ListTypeBuildbot)
}

// ParsePFDData reads the names of the cores available through play
// feature delivery into the list. These cores have no date or CRC.
func (l *List) ParsePFDData(r *Resolver, cores []string) error {
	if l == nil || r == nil {
		return &models.CoreUpdaterError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("list and resolver are required"),
		}
	}

	if len(cores) == 0 {
		return &models.CoreUpdaterError{
			Type: models.ErrListingParse,
			Err:  fmt.Errorf("core list is empty"),
		}
	}

	// We're populating the list from scratch
	l.Reset()

	for _, filename := range cores {
		if filename == "" {
			continue
		}

		if err := l.addPFDEntry(r, filename); err != nil {
			logrus.Debugf("Skipping core %s: %v", filename, err)
		}
	}

	return l.finish(models.ListTypePFD)
}

// finish sorts a freshly ingested list and records its type
func (l *List) finish(listType models.ListType) error {
	if len(l.entries) == 0 {
		return &models.CoreUpdaterError{
			Type: models.ErrEmptyList,
			Err:  fmt.Errorf("no valid %s cores found", listType),
		}
	}

	l.Sort(l.mode)
	l.listType = listType

	logrus.Debugf("Built %s core list with %d entries", listType, len(l.entries))
	return nil
}

// addEntry parses one buildbot listing and appends it
func (l *List) addEntry(r *Resolver, dateStr, crcStr, filename string) error {
	// Already listed cores are not an error, the duplicate is dropped
	if l.indexByFilename(filename) >= 0 {
		return ErrDuplicate
	}

	date, err := parseDate(dateStr)
	if err != nil {
		return err
	}

	crc, err := parseCRC(crcStr)
	if err != nil {
		return err
	}

	entry, err := r.buildEntry(filename, models.ListTypeBuildbot, date, crc)
	if err != nil {
		return err
	}

	return l.push(entry)
}

// addPFDEntry resolves one play feature delivery core and appends it
func (l *List) addPFDEntry(r *Resolver, filename string) error {
	if l.indexByFilename(filename) >= 0 {
		return ErrDuplicate
	}

	entry, err := r.buildEntry(filename, models.ListTypePFD, models.ReleaseDate{}, 0)
	if err != nil {
		return err
	}

	return l.push(entry)
}

// splitFields splits s on single spaces, skipping empty fields, and
// returns at most n fields
func splitFields(s string, n int) []string {
	fields := make([]string, 0, n)
	for _, field := range strings.Split(s, " ") {
		if field == "" {
			continue
		}
		fields = append(fields, field)
		if len(fields) == n {
			break
		}
	}
	return fields
}

// parseDate parses a "YYYY-MM-DD" date. Three components are required;
// a component that is not a plain decimal number reads as 0.
func parseDate(s string) (models.ReleaseDate, error) {
	var parts []string
	for _, part := range strings.Split(s, "-") {
		if part == "" {
			continue
		}
		parts = append(parts, part)
		if len(parts) == 3 {
			break
		}
	}

	if len(parts) < 3 {
		return models.ReleaseDate{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	return models.ReleaseDate{
		Year:  parseUnsigned(parts[0]),
		Month: parseUnsigned(parts[1]),
		Day:   parseUnsigned(parts[2]),
	}, nil
}

func parseUnsigned(s string) uint {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0
		}
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}

// parseCRC parses a hexadecimal CRC32, with or without "0x" prefix.
// A CRC of zero cannot be told apart from a missing one and is rejected.
func parseCRC(s string) (uint32, error) {
	hex := s
	if len(hex) > 1 && hex[0] == '0' && (hex[1] == 'x' || hex[1] == 'X') {
		hex = hex[2:]
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCRC, s)
	}

	return uint32(v), nil
}
