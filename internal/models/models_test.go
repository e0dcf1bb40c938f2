package models

import (
	"errors"
	"testing"
)

func TestEntryIsHeader(t *testing.T) {
	if (Entry{DisplayName: "core"}).IsHeader() {
		t.Error("core entry reported as header")
	}
	if !(Entry{IsManufacturerHeader: true}).IsHeader() {
		t.Error("manufacturer header not reported as header")
	}
	if !(Entry{IsConsoleHeader: true}).IsHeader() {
		t.Error("console header not reported as header")
	}
}

func TestEntryClone(t *testing.T) {
	orig := Entry{DisplayName: "core", Licenses: []string{"GPLv2", "MIT"}}
	clone := orig.Clone()
	clone.Licenses[0] = "changed"

	if orig.Licenses[0] != "GPLv2" {
		t.Errorf("Clone shares licenses with the original: %v", orig.Licenses)
	}
}

func TestListTypeString(t *testing.T) {
	tests := map[ListType]string{
		ListTypeUnknown:  "unknown",
		ListTypeBuildbot: "buildbot",
		ListTypePFD:      "pfd",
	}
	for lt, want := range tests {
		if got := lt.String(); got != want {
			t.Errorf("ListType(%d).String() = %q, want %q", lt, got, want)
		}
	}
}

func TestCoreUpdaterError(t *testing.T) {
	cause := errors.New("bad crc")

	err := &CoreUpdaterError{Type: ErrListingParse, Core: "a_libretro.so", Err: cause}
	if got := err.Error(); got != "[ListingParse] a_libretro.so: bad crc" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is does not see the wrapped error")
	}

	err = &CoreUpdaterError{Type: ErrEmptyList, Err: cause}
	if got := err.Error(); got != "[EmptyList] bad crc" {
		t.Errorf("Error() = %q", got)
	}
}
