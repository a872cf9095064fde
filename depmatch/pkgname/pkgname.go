/*
Package pkgname splits a fully-specified package name into its constituent
parts: the base name, the version, and an optional package revision denoted
by "nb" followed by a number.

The name and version are split at the last "-". Formatting is not enforced:
if a package name is not well formed the parts may be empty.
*/
package pkgname

import (
	"strconv"
	"strings"
)

// PkgName holds the decomposed parts of a package name like "mktool-1.3.2nb2".
type PkgName struct {
	full     string
	base     string
	version  string
	revision int64
	hasRev   bool
}

// Parse decomposes a package name. It never fails; a name with no "-" has an
// empty version.
func Parse(full string) PkgName {
	p := PkgName{full: full, base: full}
	if i := strings.LastIndex(full, "-"); i >= 0 {
		p.base = full[:i]
		p.version = full[i+1:]
	}
	if i := strings.LastIndex(p.version, "nb"); i >= 0 {
		// a trailing "nb" with anything unparseable after it counts as
		// revision zero
		p.hasRev = true
		if n, err := strconv.ParseInt(p.version[i+2:], 10, 64); err == nil {
			p.revision = n
		}
	}
	return p
}

// Full returns the original package name used to create this PkgName.
func (p PkgName) Full() string {
	return p.full
}

// Base returns everything up to the final "-".
func (p PkgName) Base() string {
	return p.base
}

// Version returns everything after the final "-", or the empty string if the
// name contained no "-".
func (p PkgName) Version() string {
	return p.version
}

// Revision returns the package revision and whether one was present.
func (p PkgName) Revision() (int64, bool) {
	return p.revision, p.hasRev
}
