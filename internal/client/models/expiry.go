package models

import (
	"errors"
	"fmt"
)

type ExpiryStatus string

const (
	ExpiryUnknown  ExpiryStatus = "unknown"
	ExpiryExpired  ExpiryStatus = "expired"
	ExpiryCritical ExpiryStatus = "critical"
	ExpiryWarning  ExpiryStatus = "warning"
	ExpiryValid    ExpiryStatus = "valid"
)

// Upper bounds, inclusive, of the critical and warning bands.
const (
	CriticalDays = 30
	WarningDays  = 90
)

type ExpiryLabel struct {
	Status ExpiryStatus
	Text   string
}

// Classify maps the server-computed days-until-expiry to a badge. Zero
// days is critical, never expired.
func Classify(days *int) ExpiryLabel {
	if days == nil {
		return ExpiryLabel{Status: ExpiryUnknown, Text: "No expiry date"}
	}

	d := *days
	switch {
	case d < 0:
		return ExpiryLabel{Status: ExpiryExpired, Text: "EXPIRED"}
	case d <= CriticalDays:
		return ExpiryLabel{Status: ExpiryCritical, Text: fmt.Sprintf("Expires in %s", pluralDays(d))}
	case d <= WarningDays:
		return ExpiryLabel{Status: ExpiryWarning, Text: fmt.Sprintf("%s remaining", pluralDays(d))}
	default:
		return ExpiryLabel{Status: ExpiryValid, Text: "Valid"}
	}
}

func pluralDays(d int) string {
	if d == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", d)
}

type ExpiryFilter string

const (
	FilterAll        ExpiryFilter = "all"
	FilterExpired    ExpiryFilter = "expired"
	FilterExpiring30 ExpiryFilter = "expiring30"
	FilterExpiring60 ExpiryFilter = "expiring60"
)

var ErrUnknownExpiryFilter = errors.New("unknown expiry filter")

func ParseExpiryFilter(s string) (ExpiryFilter, error) {
	switch f := ExpiryFilter(s); f {
	case FilterAll, FilterExpired, FilterExpiring30, FilterExpiring60:
		return f, nil
	case "":
		return FilterAll, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownExpiryFilter, s)
	}
}

// Matches reports whether a document with the given days-until-expiry
// passes f. A nil value only passes FilterAll.
func (f ExpiryFilter) Matches(days *int) bool {
	if f == FilterAll {
		return true
	}
	if days == nil {
		return false
	}

	d := *days
	switch f {
	case FilterExpired:
		return d < 0
	case FilterExpiring30:
		return d >= 0 && d <= 30
	case FilterExpiring60:
		return d > 30 && d <= 60
	default:
		return false
	}
}

// FilterByExpiry returns the documents passing f, in their original order.
func FilterByExpiry(docs []Document, f ExpiryFilter) []Document {
	if f == FilterAll {
		return docs
	}
	out := make([]Document, 0, len(docs))
	for _, d := range docs {
		if f.Matches(d.DaysUntilExpiry) {
			out = append(out, d)
		}
	}
	return out
}
