package version

import (
	"math"
	"strconv"
	"strings"
)

// Weights for the named modifiers so that pre-releases order correctly
// relative to the bare version (e.g. 1.0alpha1 < 1.0beta1 < 1.0rc1 < 1.0).
const (
	modAlpha = -3
	modBeta  = -2
	modRC    = -1
	modPatch = 0
)

// Version is a parsed "dewey" package version. It is immutable after
// construction and safe for concurrent use.
//
// A version string is scanned left to right into an ordered sequence of
// integer components:
//
//   - a digit run becomes its numeric value (leading zeros are insignificant)
//   - "." and "_" become 0
//   - "alpha", "beta", "pre"/"rc" and "pl" become -3, -2, -1 and 0
//   - "nb<digits>" sets a separate package revision used as a tiebreaker
//   - any other ASCII letter becomes a separator (0) followed by a negative
//     letter value, so letter runs stay alphabetical among themselves but
//     sort below both the implicit continuation and any digit run
//   - anything else is skipped
//
// Comparison walks both sequences in lockstep with the shorter one padded
// with zeros, which makes "1", "1.0" and "1.0." equal.
type Version struct {
	Raw        string
	components []int64
	revision   int64
}

// NewVersion parses a raw version string. It is total: any string, including
// the empty string, is a valid (if minimal) version.
func NewVersion(raw string) *Version {
	components, revision := parseComponents(raw)
	return &Version{
		Raw:        raw,
		components: components,
		revision:   revision,
	}
}

// Compare returns -1, 0, or 1 if v is smaller, equal, or larger than the
// other version. The result is a total order: reflexive, antisymmetric and
// transitive. The other version must not be nil.
func (v *Version) Compare(other *Version) int {
	max := len(v.components)
	if len(other.components) > max {
		max = len(other.components)
	}
	for i := 0; i < max; i++ {
		var lhs, rhs int64
		if i < len(v.components) {
			lhs = v.components[i]
		}
		if i < len(other.components) {
			rhs = other.components[i]
		}
		if lhs != rhs {
			if lhs < rhs {
				return -1
			}
			return 1
		}
	}
	switch {
	case v.revision < other.revision:
		return -1
	case v.revision > other.revision:
		return 1
	}
	return 0
}

// Revision returns the package revision ("nb<x>" suffix), or 0 if none was
// present.
func (v *Version) Revision() int64 {
	return v.revision
}

func (v *Version) String() string {
	return v.Raw
}

// Compare parses both version strings and compares them, returning -1, 0,
// or 1. It never fails.
func Compare(a, b string) int {
	return NewVersion(a).Compare(NewVersion(b))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// letterValue maps a..z to -26..-1, keeping bare letters alphabetical while
// placing them below the implicit zero continuation, so 1.0a1 < 1.0a2 < 1.0.
func letterValue(c byte) int64 {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	return int64(c) - int64('z') - 1
}

// parseNumber parses a digit run, saturating instead of failing on values
// that overflow int64.
func parseNumber(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return math.MaxInt64
	}
	return n
}

//nolint:gocognit
func parseComponents(raw string) ([]int64, int64) {
	var components []int64
	var revision int64

	for i := 0; i < len(raw); {
		c := raw[i]
		rest := raw[i:]

		// digits and separators are the common case
		if isDigit(c) {
			j := i + 1
			for j < len(raw) && isDigit(raw[j]) {
				j++
			}
			components = append(components, parseNumber(raw[i:j]))
			i = j
			continue
		}
		if c == '.' || c == '_' {
			components = append(components, 0)
			i++
			continue
		}

		// package revision, "nb" with an optional digit run
		if strings.HasPrefix(rest, "nb") {
			i += 2
			j := i
			for j < len(raw) && isDigit(raw[j]) {
				j++
			}
			if j > i {
				revision = parseNumber(raw[i:j])
			}
			i = j
			continue
		}

		switch {
		case strings.HasPrefix(rest, "alpha"):
			components = append(components, modAlpha)
			i += 5
		case strings.HasPrefix(rest, "beta"):
			components = append(components, modBeta)
			i += 4
		case strings.HasPrefix(rest, "pre"):
			components = append(components, modRC)
			i += 3
		case strings.HasPrefix(rest, "rc"):
			components = append(components, modRC)
			i += 2
		case strings.HasPrefix(rest, "pl"):
			components = append(components, modPatch)
			i += 2
		case isLetter(c):
			components = append(components, 0, letterValue(c))
			i++
		default:
			// anything unrecognized (including non-ASCII) is skipped
			i++
		}
	}

	return components, revision
}
