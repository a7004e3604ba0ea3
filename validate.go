package svgtheme

import (
	"fmt"
	"sort"
)

// ValidationReason identifies why a theme document is invalid.
type ValidationReason string

// Validation error reasons.
const (
	ErrMissingIdentifier ValidationReason = "missing_identifier"
	ErrInvalidColor      ValidationReason = "invalid_color"
)

// ValidationError describes a single validation failure. It carries exactly
// one offending identifier; when several identifiers fail for the same
// reason, the lexicographically smallest is reported.
type ValidationError struct {
	Reason     ValidationReason
	Identifier string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	switch e.Reason {
	case ErrMissingIdentifier:
		return fmt.Sprintf("required color identifier %q was not found", e.Identifier)
	case ErrInvalidColor:
		return fmt.Sprintf("the color for identifier %q is not a valid hex color", e.Identifier)
	default:
		return fmt.Sprintf("invalid theme: identifier %q", e.Identifier)
	}
}

// Validate checks the extracted entries against the required identifier set
// and parses each fill as a hex color. On success it returns the nine
// required identifiers mapped to their parsed colors; entries with
// unrecognized identifiers are ignored.
//
// Completeness is checked before parseability: a missing identifier is
// always reported ahead of any invalid color. Within each failure class the
// lexicographically smallest identifier wins, regardless of document order.
func Validate(entries []RawEntry) (map[string]RGB, error) {
	// Fold front to back so a later duplicate overwrites an earlier one.
	fills := make(map[string]string, len(entries))
	for _, entry := range entries {
		fills[entry.ID] = entry.Fill
	}

	var missing []string
	for _, id := range RequiredIdentifiers {
		if _, ok := fills[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, ValidationError{Reason: ErrMissingIdentifier, Identifier: missing[0]}
	}

	colors := make(map[string]RGB, len(RequiredIdentifiers))
	var invalid []string
	for _, id := range RequiredIdentifiers {
		rgb, err := ParseColor(fills[id])
		if err != nil {
			invalid = append(invalid, id)
			continue
		}
		colors[id] = rgb
	}
	if len(invalid) > 0 {
		sort.Strings(invalid)
		return nil, ValidationError{Reason: ErrInvalidColor, Identifier: invalid[0]}
	}

	return colors, nil
}
