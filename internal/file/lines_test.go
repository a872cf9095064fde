package file

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := "foo>=1.2\n" +
		"\n" +
		"# a comment\n" +
		"  bar-[0-9]*  \n" +
		"baz-1.0"
	require.NoError(t, afero.WriteFile(fs, "patterns.txt", []byte(content), 0644))

	lines, err := ReadLines(fs, "patterns.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"foo>=1.2", "bar-[0-9]*", "baz-1.0"}, lines)
}

func TestReadLinesMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := ReadLines(fs, "no-such-file.txt")
	assert.Error(t, err)
}
