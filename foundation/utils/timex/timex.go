// File: timex.go
// Title: Time Formatting
// Description: Named time layouts for generated artifacts and formatting by
//              layout name or Go layout string.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2025-07-26 v0.1.1: Enhanced European date parsing support (DD.MM.YYYY format)
// - 2026-10-18 v0.2.0: Reduced to named layouts used by templates

package timex

import (
	"sort"
	"time"
)

// Common time layouts
const (
	// European formats, the info object's time and year
	EuropeanDateTime = "02.01.2006 15:04:05"
	EuropeanDate     = "02.01.2006"
	Year             = "2006"

	// ISO formats
	ISO8601         = "2006-01-02T15:04:05Z07:00"
	ISO8601Date     = "2006-01-02"
	ISO8601Time     = "15:04:05"
	ISO8601DateTime = "2006-01-02T15:04:05"

	// Compact formats
	CompactDate     = "20060102"
	CompactDateTime = "20060102150405"
	CompactTime     = "150405"
)

var layouts = map[string]string{
	"european":      EuropeanDateTime,
	"european-date": EuropeanDate,
	"year":          Year,
	"iso8601":       ISO8601,
	"iso8601-date":  ISO8601Date,
	"iso8601-time":  ISO8601Time,
	"compact":       CompactDateTime,
	"compact-date":  CompactDate,
	"compact-time":  CompactTime,
}

// Format formats t with the named layout. A name that is not known is used
// as Go layout string.
func Format(t time.Time, format string) string {
	if layout, ok := layouts[format]; ok {
		return t.Format(layout)
	}
	return t.Format(format)
}

// LayoutNames returns the known layout names in sorted order
func LayoutNames() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
