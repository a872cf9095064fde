package pkgmatch

import (
	"fmt"
	"strings"
)

// compileAlternates handles csh-style "{this,that}" alternates. Braces are
// validated up front, then every combination is expanded and compiled
// eagerly so that syntax errors inside an alternate surface at compile time.
func compileAlternates(part string) (*alternative, error) {
	if err := checkBraces(part); err != nil {
		return nil, err
	}

	expansions, err := expandAlternates(part)
	if err != nil {
		return nil, err
	}

	expanded := make([]*alternative, 0, len(expansions))
	for _, exp := range expansions {
		alt, err := compileAlternative(exp)
		if err != nil {
			return nil, &ParseError{
				Pattern: part,
				Pos:     0,
				Msg:     fmt.Sprintf("in alternate expansion %q: %s", exp, errorMessage(err)),
			}
		}
		expanded = append(expanded, alt)
	}

	return &alternative{
		raw:       part,
		matchType: AlternateMatch,
		expanded:  expanded,
	}, nil
}

// checkBraces verifies that braces are balanced and correctly ordered.
func checkBraces(part string) error {
	depth := 0
	for i := 0; i < len(part); i++ {
		switch part[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return &ParseError{Pattern: part, Pos: i, Msg: "unbalanced braces"}
			}
		}
	}
	if depth != 0 {
		return &ParseError{Pattern: part, Pos: len(part), Msg: "unbalanced braces"}
	}
	return nil
}

// expandAlternates expands the first top-level brace group and recurses on
// each result, producing every concrete combination. Braces must already be
// balanced.
func expandAlternates(part string) ([]string, error) {
	open := strings.Index(part, "{")
	if open < 0 {
		return []string{part}, nil
	}

	depth := 0
	closing := -1
	var segments []string
	segStart := open + 1
scan:
	for i := open; i < len(part); i++ {
		switch part[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				segments = append(segments, part[segStart:i])
				closing = i
				break scan
			}
		case ',':
			if depth == 1 {
				segments = append(segments, part[segStart:i])
				segStart = i + 1
			}
		}
	}
	if closing < 0 {
		// cannot happen once checkBraces has passed
		return nil, &ParseError{Pattern: part, Pos: open, Msg: "unbalanced braces"}
	}

	var expansions []string
	for _, seg := range segments {
		sub, err := expandAlternates(part[:open] + seg + part[closing+1:])
		if err != nil {
			return nil, err
		}
		expansions = append(expansions, sub...)
	}
	return expansions, nil
}
