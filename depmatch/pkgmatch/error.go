package pkgmatch

import (
	"errors"
	"fmt"

	"github.com/pkgtools/depmatch/depmatch/version"
)

// ParseError describes a dependency pattern that failed to compile. Pos is
// the approximate byte index of the offending part within Pattern.
type ParseError struct {
	Pattern string
	Pos     int
	Msg     string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid dependency pattern %q near position %d: %s", e.Pattern, e.Pos, e.Msg)
}

// normalizeError rewrites an error from compiling a single alternative so
// that it refers to the full source pattern, shifting any recorded position
// by the alternative's offset within it.
func normalizeError(pattern string, offset int, err error) error {
	var perr *ParseError
	if errors.As(err, &perr) {
		return &ParseError{Pattern: pattern, Pos: offset + perr.Pos, Msg: perr.Msg}
	}
	var verr *version.PatternError
	if errors.As(err, &verr) {
		return &ParseError{Pattern: pattern, Pos: offset + verr.Pos, Msg: verr.Msg}
	}
	return &ParseError{Pattern: pattern, Pos: offset, Msg: err.Error()}
}

// errorMessage extracts the bare message from a compile error for use as
// context in a wrapping error.
func errorMessage(err error) string {
	var perr *ParseError
	if errors.As(err, &perr) {
		return perr.Msg
	}
	var verr *version.PatternError
	if errors.As(err, &verr) {
		return verr.Msg
	}
	return err.Error()
}
