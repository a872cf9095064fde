package version

import "fmt"

const (
	EQ  Operator = "=="
	GT  Operator = ">"
	LT  Operator = "<"
	GTE Operator = ">="
	LTE Operator = "<="
)

type Operator string

func ParseOperator(op string) (Operator, error) {
	switch op {
	case string(EQ), "=":
		return EQ, nil
	case string(GT):
		return GT, nil
	case string(GTE):
		return GTE, nil
	case string(LT):
		return LT, nil
	case string(LTE):
		return LTE, nil
	}
	return "", fmt.Errorf("unknown operator: '%s'", op)
}

// Satisfied reports whether a three-way comparison result (-1, 0, or 1, as
// returned by Version.Compare) satisfies the operator.
func (o Operator) Satisfied(comparison int) bool {
	switch o {
	case EQ:
		return comparison == 0
	case GT:
		return comparison > 0
	case GTE:
		return comparison >= 0
	case LT:
		return comparison < 0
	case LTE:
		return comparison <= 0
	}
	return false
}
