package version

import (
	"strings"
)

// Constraint is a compiled "dewey" range constraint, e.g. "pkg>=1.2<2.0".
// The package name must match the candidate exactly; every (operator,
// version) term must hold for the constraint to be satisfied.
//
// Supported shapes:
//
//	name<ver   name<=ver   name>ver   name>=ver   name==ver
//	name>ver<ver (and the >=/<= variants of either bound)
//
// A Constraint is immutable after construction and safe for concurrent use.
type Constraint struct {
	Name  string
	raw   string
	units []constraintUnit
}

type constraintUnit struct {
	op      Operator
	version *Version
}

type opToken struct {
	start    int
	verStart int
	op       Operator
}

// scanOperators finds every relational operator occurrence within pattern,
// recording where the operator starts and where its version argument begins.
func scanOperators(pattern string) []opToken {
	var tokens []opToken
	for i := 0; i < len(pattern); {
		c := pattern[i]
		if c != '<' && c != '>' && c != '=' {
			i++
			continue
		}
		j := i + 1
		if j < len(pattern) && pattern[j] == '=' {
			j++
		}
		if c == '=' && j == i+1 {
			// a bare "=" is not a relational operator here
			i++
			continue
		}
		op, err := ParseOperator(pattern[i:j])
		if err != nil {
			i++
			continue
		}
		tokens = append(tokens, opToken{start: i, verStart: j, op: op})
		i = j
	}
	return tokens
}

// NewConstraint compiles a dewey constraint pattern. All syntax errors are
// detected eagerly here; a nil error guarantees that Satisfied never fails.
func NewConstraint(pattern string) (*Constraint, error) {
	tokens := scanOperators(pattern)

	switch len(tokens) {
	case 0:
		return nil, &PatternError{Pattern: pattern, Pos: 0, Msg: "no version comparison operators found"}
	case 1, 2:
	default:
		return nil, &PatternError{Pattern: pattern, Pos: tokens[2].start, Msg: "too many version comparison operators"}
	}

	if tokens[0].start == 0 {
		return nil, &PatternError{Pattern: pattern, Pos: 0, Msg: "missing package name"}
	}

	c := &Constraint{
		Name: pattern[:tokens[0].start],
		raw:  pattern,
	}

	if len(tokens) == 1 {
		unit, err := newConstraintUnit(pattern, tokens[0], pattern[tokens[0].verStart:])
		if err != nil {
			return nil, err
		}
		c.units = append(c.units, unit)
		return c, nil
	}

	// a two-term range must be a lower bound followed by an upper bound
	switch tokens[0].op {
	case GT, GTE:
	default:
		return nil, &PatternError{Pattern: pattern, Pos: tokens[0].start, Msg: "unsupported operator order"}
	}
	switch tokens[1].op {
	case LT, LTE:
	default:
		return nil, &PatternError{Pattern: pattern, Pos: tokens[1].start, Msg: "unsupported operator order"}
	}

	lower, err := newConstraintUnit(pattern, tokens[0], pattern[tokens[0].verStart:tokens[1].start])
	if err != nil {
		return nil, err
	}
	upper, err := newConstraintUnit(pattern, tokens[1], pattern[tokens[1].verStart:])
	if err != nil {
		return nil, err
	}
	c.units = append(c.units, lower, upper)
	return c, nil
}

func newConstraintUnit(pattern string, token opToken, verStr string) (constraintUnit, error) {
	if verStr == "" {
		return constraintUnit{}, &PatternError{Pattern: pattern, Pos: token.verStart, Msg: "operator with no version"}
	}
	return constraintUnit{
		op:      token.op,
		version: NewVersion(verStr),
	}, nil
}

// Satisfied reports whether the fully-specified package name pkg (e.g.
// "foo-1.2nb1") satisfies the constraint. A candidate without a version part
// never satisfies a relational constraint.
func (c *Constraint) Satisfied(pkg string) bool {
	i := strings.LastIndex(pkg, "-")
	if i < 0 {
		return false
	}
	if pkg[:i] != c.Name {
		return false
	}
	ver := NewVersion(pkg[i+1:])
	for _, unit := range c.units {
		if !unit.op.Satisfied(ver.Compare(unit.version)) {
			return false
		}
	}
	return true
}

func (c *Constraint) String() string {
	return c.raw
}
