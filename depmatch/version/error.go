package version

import "fmt"

// PatternError describes a constraint pattern that failed to parse. Pos is
// the approximate byte index of where the error occurred within Pattern.
type PatternError struct {
	Pattern string
	Pos     int
	Msg     string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("pattern syntax error in %q near position %d: %s", e.Pattern, e.Pos, e.Msg)
}
