package version

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCompare(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// equality, including trailing zero and separator insignificance
		{"1.0", "1.0", 0},
		{"1.0", "1.0.0", 0},
		{"1", "1.0", 0},
		{"1.0_1", "1.0.1", 0},
		{"1.0pl1", "1.0.1", 0},
		{"1.0pre1", "1.0rc1", 0},
		{"2.0", "2.0pl0", 0},
		// numeric ordering, not lexicographic
		{"1.9", "1.10", -1},
		{"0.9", "0.10", -1},
		{"1.2.3", "1.2.4", -1},
		{"2.0", "10.0", -1},
		// modifiers sort before the bare version
		{"1.0alpha1", "1.0beta1", -1},
		{"1.0beta1", "1.0rc1", -1},
		{"1.0rc1", "1.0", -1},
		{"1.0alpha1", "1.0", -1},
		{"1.0", "1.0pl1", -1},
		// bare trailing letters sort between rc and the bare version
		{"1.0a1", "1.0", -1},
		{"1.0a1", "1.0a2", -1},
		{"1.0a2", "1.0b1", -1},
		{"1.0rc1", "1.0a1", -1},
		// nb revision is a tiebreaker only
		{"1.0", "1.0nb1", -1},
		{"1.0nb1", "1.0nb2", -1},
		{"1.1nb5", "1.2", -1},
		{"1.0nb2", "1.0.1", -1},
		// digit runs that overflow saturate rather than fail
		{"99999999999999999999", "99999999999999999998", 0},
	}

	for _, test := range tests {
		name := fmt.Sprintf("%s vs %s", test.a, test.b)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expected, Compare(test.a, test.b))
			assert.Equal(t, -test.expected, Compare(test.b, test.a))
		})
	}
}

func TestVersionCompareTotalOrder(t *testing.T) {
	// each entry is strictly smaller than every entry after it
	ordered := []string{
		"0.9",
		"1.0alpha1",
		"1.0beta1",
		"1.0rc1",
		"1.0a1",
		"1.0a2",
		"1.0b1",
		"1.0",
		"1.0nb1",
		"1.0nb2",
		"1.0.1",
		"1.9",
		"1.10",
		"2.0",
	}

	for i, a := range ordered {
		assert.Equal(t, 0, Compare(a, a), "%s should equal itself", a)
		for _, b := range ordered[i+1:] {
			assert.Equal(t, -1, Compare(a, b), "%s should sort before %s", a, b)
			assert.Equal(t, 1, Compare(b, a), "%s should sort after %s", b, a)
		}
	}
}

func TestVersionRevision(t *testing.T) {
	tests := []struct {
		version  string
		expected int64
	}{
		{"1.0", 0},
		{"1.0nb2", 2},
		{"1.3.2nb10", 10},
		{"1.0nb", 0},
		{"nb3", 3},
	}

	for _, test := range tests {
		t.Run(test.version, func(t *testing.T) {
			assert.Equal(t, test.expected, NewVersion(test.version).Revision())
		})
	}
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "1.2.3nb1", NewVersion("1.2.3nb1").String())
}
