package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperator(t *testing.T) {
	tests := []struct {
		input    string
		expected Operator
		err      bool
	}{
		{input: "==", expected: EQ},
		{input: "=", expected: EQ},
		{input: ">", expected: GT},
		{input: ">=", expected: GTE},
		{input: "<", expected: LT},
		{input: "<=", expected: LTE},
		{input: "", err: true},
		{input: "!=", err: true},
		{input: "~", err: true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			op, err := ParseOperator(test.input)
			if test.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, op)
		})
	}
}

func TestOperatorSatisfied(t *testing.T) {
	tests := []struct {
		op       Operator
		expected map[int]bool
	}{
		{EQ, map[int]bool{-1: false, 0: true, 1: false}},
		{GT, map[int]bool{-1: false, 0: false, 1: true}},
		{GTE, map[int]bool{-1: false, 0: true, 1: true}},
		{LT, map[int]bool{-1: true, 0: false, 1: false}},
		{LTE, map[int]bool{-1: true, 0: true, 1: false}},
	}

	for _, test := range tests {
		t.Run(string(test.op), func(t *testing.T) {
			for comparison, expected := range test.expected {
				assert.Equal(t, expected, test.op.Satisfied(comparison), "comparison=%d", comparison)
			}
		})
	}

	assert.False(t, Operator("~").Satisfied(0))
}
