/*
Package depmatch provides a library for evaluating pkgsrc-style dependency
patterns against package identifiers and for comparing dewey version strings.
*/
package depmatch

import (
	"github.com/wagoodman/go-partybus"

	"github.com/pkgtools/depmatch/depmatch/pkgmatch"
	"github.com/pkgtools/depmatch/depmatch/version"
	"github.com/pkgtools/depmatch/internal/bus"
	"github.com/pkgtools/depmatch/internal/log"
)

// Match reports whether the given package identifier (of the form
// "name-version") satisfies the given dependency pattern.
func Match(pattern, pkg string) (bool, error) {
	return pkgmatch.Match(pattern, pkg)
}

// Compare returns -1, 0, or 1 depending on whether version string a sorts
// before, equal to, or after version string b under dewey ordering.
func Compare(a, b string) int {
	return version.Compare(a, b)
}

// SetLogger sets the logger object used for all logging calls.
func SetLogger(logger log.Logger) {
	log.Log = logger
}

// SetBus sets the event bus for all bus publish events onto (in the form of event.Event).
func SetBus(b *partybus.Bus) {
	bus.Set(b)
}
