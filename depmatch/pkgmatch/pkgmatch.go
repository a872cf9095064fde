/*
Package pkgmatch compiles and evaluates dependency patterns against
fully-specified package names.

All of the pattern styles used across pkgsrc-style dependency declarations
are supported:

  - exact matches: "foo-1.0"
  - glob matches: "foo-[0-9]*", "fo?-1.*"
  - dewey range matches: "foo>=1.2<2.0", "foo==1.0"
  - csh-style alternates: "{mysql,mariadb}-[0-9]*"
  - alternation between whole patterns: "foo<1.0|foo>=2.0"

A pattern is compiled once with Compile and is immutable thereafter; syntax
errors surface eagerly as a *ParseError, never as a silent non-match.
Matching itself is pure and cannot fail once compilation succeeded.
*/
package pkgmatch

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/pkgtools/depmatch/depmatch/version"
)

const (
	SimpleMatch MatchType = iota
	GlobMatch
	DeweyMatch
	AlternateMatch
)

type MatchType int

var matchTypeStr = []string{
	"Simple",
	"Glob",
	"Dewey",
	"Alternate",
}

func (t MatchType) String() string {
	if int(t) >= len(matchTypeStr) || t < 0 {
		return "Unknown"
	}
	return matchTypeStr[t]
}

// Pattern is a compiled dependency pattern: one or more alternatives, of
// which any one matching the candidate is sufficient for an overall match.
// A Pattern is safe for concurrent use.
type Pattern struct {
	raw          string
	alternatives []*alternative
}

type alternative struct {
	raw       string
	matchType MatchType
	dewey     *version.Constraint
	expanded  []*alternative
}

// Compile parses a dependency pattern. If the pattern is invalid in any way
// a *ParseError is returned.
func Compile(pattern string) (*Pattern, error) {
	if pattern == "" {
		return nil, &ParseError{Pattern: pattern, Pos: 0, Msg: "empty pattern"}
	}

	var alternatives []*alternative
	offset := 0
	for _, part := range strings.Split(pattern, "|") {
		if part == "" {
			return nil, &ParseError{Pattern: pattern, Pos: offset, Msg: "empty alternative"}
		}
		alt, err := compileAlternative(part)
		if err != nil {
			return nil, normalizeError(pattern, offset, err)
		}
		alternatives = append(alternatives, alt)
		offset += len(part) + 1
	}

	return &Pattern{
		raw:          pattern,
		alternatives: alternatives,
	}, nil
}

// Match compiles pattern and evaluates it against the fully-specified
// package name pkg. Callers matching one pattern against many packages
// should Compile once and reuse the Pattern instead.
func Match(pattern, pkg string) (bool, error) {
	p, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return p.Matches(pkg), nil
}

func compileAlternative(part string) (*alternative, error) {
	if strings.ContainsAny(part, "{}") {
		return compileAlternates(part)
	}
	if strings.ContainsAny(part, "<>") || strings.Contains(part, "==") {
		c, err := version.NewConstraint(part)
		if err != nil {
			return nil, err
		}
		return &alternative{raw: part, matchType: DeweyMatch, dewey: c}, nil
	}
	if strings.ContainsAny(part, "*?[]") {
		if !doublestar.ValidatePattern(part) {
			return nil, &ParseError{Pattern: part, Pos: 0, Msg: "malformed glob"}
		}
		return &alternative{raw: part, matchType: GlobMatch}, nil
	}
	return &alternative{raw: part, matchType: SimpleMatch}, nil
}

// Matches reports whether the fully-specified package name pkg matches the
// compiled pattern.
func (p *Pattern) Matches(pkg string) bool {
	for _, alt := range p.alternatives {
		if alt.matches(pkg) {
			return true
		}
	}
	return false
}

func (p *Pattern) String() string {
	return p.raw
}

func (a *alternative) matches(pkg string) bool {
	if !quickMatch(a.raw, pkg) {
		return false
	}
	switch a.matchType {
	case AlternateMatch:
		for _, e := range a.expanded {
			if e.matches(pkg) {
				return true
			}
		}
		return false
	case DeweyMatch:
		return a.dewey.Satisfied(pkg)
	case GlobMatch:
		// the pattern was validated at compile time, so Match cannot fail
		ok, err := doublestar.Match(a.raw, pkg)
		return err == nil && ok
	default:
		return a.raw == pkg
	}
}

func isSimpleChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-'
}

// quickMatch bails out early when the first two literal characters of the
// pattern cannot possibly match, which gives a decent speed bump when
// matching across many thousands of packages.
func quickMatch(pattern, pkg string) bool {
	for i := 0; i < 2; i++ {
		if i >= len(pattern) || !isSimpleChar(pattern[i]) {
			return true
		}
		if i >= len(pkg) || pattern[i] != pkg[i] {
			return false
		}
	}
	return true
}
