package pkgname

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		full     string
		base     string
		version  string
		revision int64
		hasRev   bool
	}{
		{full: "mktool-1.3.2nb2", base: "mktool", version: "1.3.2nb2", revision: 2, hasRev: true},
		{full: "mktool-1.3.2", base: "mktool", version: "1.3.2"},
		{full: "foo-bar-1.0", base: "foo-bar", version: "1.0"},
		{full: "foo", base: "foo"},
		{full: "foo-", base: "foo"},
		{full: "foo-1.0nb", base: "foo", version: "1.0nb", hasRev: true},
		{full: "foo-1.0nbx", base: "foo", version: "1.0nbx", hasRev: true},
		{full: "", base: ""},
	}

	for _, test := range tests {
		t.Run(test.full, func(t *testing.T) {
			p := Parse(test.full)
			assert.Equal(t, test.full, p.Full())
			assert.Equal(t, test.base, p.Base())
			assert.Equal(t, test.version, p.Version())
			rev, ok := p.Revision()
			assert.Equal(t, test.hasRev, ok)
			assert.Equal(t, test.revision, rev)
		})
	}
}
