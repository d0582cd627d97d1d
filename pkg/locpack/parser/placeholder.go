package parser

import "errors"

// Placeholder balance failures.
var (
	ErrUnmatchedClosingBrace = errors.New("unmatched closing brace")
	ErrUnmatchedOpeningBrace = errors.New("unmatched opening brace")
)

// CheckPlaceholders verifies that the braces in a translation value nest
// properly. Only structural balance is checked, not the placeholder names
// between the braces.
func CheckPlaceholders(s string) error {
	depth := 0
	for _, r := range s {
		switch r {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return ErrUnmatchedClosingBrace
			}
			depth--
		}
	}
	if depth != 0 {
		return ErrUnmatchedOpeningBrace
	}
	return nil
}
