package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOption(t *testing.T) {
	tests := []struct {
		input    string
		expected Option
	}{
		{"plain", PlainPresenter},
		{"json", JSONPresenter},
		{"JSON", JSONPresenter},
		{"table", TablePresenter},
		{"", UnknownPresenter},
		{"yaml", UnknownPresenter},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			assert.Equal(t, test.expected, ParseOption(test.input))
		})
	}
}

func TestGetPresenter(t *testing.T) {
	for _, option := range Options {
		assert.NotNil(t, GetPresenter(option), "no presenter for option %s", option)
	}
	assert.Nil(t, GetPresenter(UnknownPresenter))
}
