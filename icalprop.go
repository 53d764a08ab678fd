// Package icalprop implements the value-level text encoding of iCalendar
// properties.
//
// iCalendar is defined in RFC 5545. This package converts typed property
// objects to their on-the-wire textual representation and back, including
// the escaping rules for reserved characters, escape-aware delimiter
// splitting for list and compound values, and per-version validation. It
// doesn't read or write whole documents: line folding, parameter-section
// parsing and the component tree belong to the consuming reader or writer.
package icalprop

import (
	"fmt"
)

// Version is an iCalendar specification version.
type Version int

const (
	// Version1 is vCalendar 1.0.
	Version1 Version = iota
	// Version2Deprecated is iCalendar 2.0 as defined in RFC 2445.
	Version2Deprecated
	// Version2 is iCalendar 2.0 as defined in RFC 5545.
	Version2
)

// AllVersions returns all known iCalendar versions. The returned slice is a
// fresh copy on every call.
func AllVersions() []Version {
	return []Version{Version1, Version2Deprecated, Version2}
}

// String formats the version number as it appears in a VERSION property.
func (v Version) String() string {
	switch v {
	case Version1:
		return "1.0"
	case Version2Deprecated, Version2:
		return "2.0"
	}
	panic("icalprop: invalid Version value")
}

// ParseVersion parses a VERSION property value. "2.0" parses to Version2.
func ParseVersion(s string) (Version, error) {
	switch s {
	case "1.0":
		return Version1, nil
	case "2.0":
		return Version2, nil
	}
	return 0, fmt.Errorf("icalprop: invalid VERSION value %q", s)
}
