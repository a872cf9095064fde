package pkgmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern  string
		pkg      string
		expected bool
	}{
		// simple (exact) matches
		{"foo-1.2.3", "foo-1.2.3", true},
		{"foo-1.2.3", "foo-1.2.4", false},
		{"foo-1.2.3", "foo-1.2.3nb1", false},
		// glob matches run over the whole name-version string
		{"foo-[0-9]*", "foo-1.2.3", true},
		{"foo-[0-9]*", "foo-bar", false},
		{"foo-[0-9]*", "bar-1.2.3", false},
		{"foo-*", "foo-1.2.3", true},
		{"foo-*", "foo-", true},
		{"foo-*", "bar-1.2.3", false},
		{"fo?-1.*", "foo-1.2", true},
		{"fo?-1.*", "fox-1.9", true},
		{"fo?-1.*", "foo-2.0", false},
		// dewey ranges
		{"foo>=1.2<2.0", "foo-1.5", true},
		{"foo>=1.2<2.0", "foo-2.0", false},
		{"foo>=1.2", "foo-1.2nb5", true},
		{"foo==1.0", "foo-1.0.0", true},
		{"foo==1.0", "foo-1.1", false},
		{"foo>1.1", "foo-1.1", false},
		// csh-style alternates
		{"{mysql,mariadb}-[0-9]*", "mysql-5.7.29", true},
		{"{mysql,mariadb}-[0-9]*", "mariadb-10.3", true},
		{"{mysql,mariadb}-[0-9]*", "postgres-12.1", false},
		{"te{st,mp}-[0-9]*", "test-1", true},
		{"te{st,mp}-[0-9]*", "temp-2", true},
		{"te{st,mp}-[0-9]*", "tess-1", false},
		// nested alternates
		{"{foo,bar{x,y}}-1.0", "foo-1.0", true},
		{"{foo,bar{x,y}}-1.0", "barx-1.0", true},
		{"{foo,bar{x,y}}-1.0", "bary-1.0", true},
		{"{foo,bar{x,y}}-1.0", "bar-1.0", false},
		// alternates expanding to dewey ranges
		{"{mysql,mariadb}>=5.0", "mariadb-10.3", true},
		{"{mysql,mariadb}>=5.0", "mysql-4.1", false},
		// alternation between whole patterns
		{"foo<1.0|foo>=2.0", "foo-0.5", true},
		{"foo<1.0|foo>=2.0", "foo-2.1", true},
		{"foo<1.0|foo>=2.0", "foo-1.5", false},
		{"foo-[0-9]*|bar>=2", "bar-2.5", true},
		{"foo-[0-9]*|bar>=2", "foo-1.0", true},
		{"foo-[0-9]*|bar>=2", "bar-1.9", false},
	}

	for _, test := range tests {
		t.Run(test.pattern+" vs "+test.pkg, func(t *testing.T) {
			actual, err := Match(test.pattern, test.pkg)
			require.NoError(t, err)
			assert.Equal(t, test.expected, actual)
		})
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		pattern string
		pos     int
		msg     string
	}{
		{"", 0, "empty pattern"},
		{"foo>=1|", 7, "empty alternative"},
		{"|foo>=1", 0, "empty alternative"},
		{"foo-{1,2", 8, "unbalanced braces"},
		{"foo-1,2}", 7, "unbalanced braces"},
		{"foo-[0-9", 0, "malformed glob"},
		{"foo-[", 0, "malformed glob"},
		{"foo-*|bar-[0-9", 6, "malformed glob"},
		{"foo>=", 5, "operator with no version"},
		{"foo>1.1<2<3", 9, "too many version comparison operators"},
		// positions shift by the alternative's offset within the pattern
		{"foo>1|bar>=", 11, "operator with no version"},
		{"foo>1|<2", 6, "missing package name"},
	}

	for _, test := range tests {
		t.Run(test.pattern, func(t *testing.T) {
			_, err := Compile(test.pattern)
			require.Error(t, err)

			perr, ok := err.(*ParseError)
			require.True(t, ok, "expected a *ParseError, got %T", err)
			assert.Equal(t, test.pattern, perr.Pattern)
			assert.Equal(t, test.pos, perr.Pos)
			assert.Equal(t, test.msg, perr.Msg)
		})
	}
}

func TestCompileAlternateExpansionErrors(t *testing.T) {
	_, err := Compile("{foo>=1,bar>=}")
	require.Error(t, err)

	perr, ok := err.(*ParseError)
	require.True(t, ok, "expected a *ParseError, got %T", err)
	assert.Contains(t, perr.Msg, `alternate expansion "bar>="`)
	assert.Contains(t, perr.Msg, "operator with no version")

	_, err = Compile("{mysql,mariadb}-[0-9")
	require.Error(t, err)
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Msg, "malformed glob")
}

func TestMatchParseErrorNeverFalseNegative(t *testing.T) {
	// a syntax error must surface as an error, not as "matched false"
	_, err := Match("foo>=", "foo-1.0")
	require.Error(t, err)
}

func TestPatternString(t *testing.T) {
	p, err := Compile("foo<1.0|foo>=2.0")
	require.NoError(t, err)
	assert.Equal(t, "foo<1.0|foo>=2.0", p.String())
}

func TestPatternReuse(t *testing.T) {
	p, err := Compile("{mysql,mariadb}>=5.0<11")
	require.NoError(t, err)

	// matching is pure: repeated evaluation always agrees
	for i := 0; i < 3; i++ {
		assert.True(t, p.Matches("mysql-5.7.29nb2"))
		assert.False(t, p.Matches("mysql-11.0"))
		assert.False(t, p.Matches("sqlite3-3.31"))
	}
}

func TestMatchTypeString(t *testing.T) {
	assert.Equal(t, "Simple", SimpleMatch.String())
	assert.Equal(t, "Glob", GlobMatch.String())
	assert.Equal(t, "Dewey", DeweyMatch.String())
	assert.Equal(t, "Alternate", AlternateMatch.String())
	assert.Equal(t, "Unknown", MatchType(42).String())
}
