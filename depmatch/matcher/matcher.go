/*
Package matcher evaluates a set of compiled dependency patterns against a
set of package names, reporting every (pattern, package) pair that matches.
*/
package matcher

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-multierror"
	"github.com/scylladb/go-set/strset"
	"github.com/wagoodman/go-partybus"
	"github.com/wagoodman/go-progress"

	"github.com/pkgtools/depmatch/depmatch/event"
	"github.com/pkgtools/depmatch/depmatch/pkgmatch"
	"github.com/pkgtools/depmatch/internal/bus"
	"github.com/pkgtools/depmatch/internal/log"
)

// Match is a single reported (pattern, package) pair.
type Match struct {
	Pattern string `json:"pattern"`
	Package string `json:"package"`
}

// Matcher holds a set of compiled patterns ready to be evaluated against
// many packages. It is safe for concurrent use.
type Matcher struct {
	patterns []*pkgmatch.Pattern
	workers  int
}

// New compiles the given patterns. Duplicate pattern strings are dropped.
// Patterns that fail to compile are skipped and reported in the returned
// error (one per bad pattern, aggregated); the returned Matcher is still
// usable with the remaining patterns, so that one bad pattern in a large
// corpus does not block all other matches. A parse failure is never
// silently treated as "matched false".
func New(patterns []string, workers int) (*Matcher, error) {
	seen := strset.New()
	var errs *multierror.Error
	compiled := make([]*pkgmatch.Pattern, 0, len(patterns))

	for i, p := range patterns {
		if seen.Has(p) {
			log.Debugf("skipping duplicate pattern %q", p)
			continue
		}
		seen.Add(p)

		c, err := pkgmatch.Compile(p)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("pattern %d: %w", i+1, err))
			continue
		}
		compiled = append(compiled, c)
	}

	return &Matcher{
		patterns: compiled,
		workers:  workers,
	}, errs.ErrorOrNil()
}

// Patterns returns how many patterns compiled successfully.
func (m *Matcher) Patterns() int {
	return len(m.patterns)
}

// Results evaluates every pattern against every package, fanning the work
// out over a bounded worker pool. Each (pattern, package) pair is an
// independent unit of work; matching is pure, so the output is normalized
// to input order regardless of scheduling.
func (m *Matcher) Results(pkgs []string) []Match {
	prog := &progress.Manual{
		Total: int64(len(pkgs)),
	}
	bus.Publish(partybus.Event{
		Type:  event.MatchingStarted,
		Value: progress.Progressable(prog),
	})
	defer func() {
		prog.SetCompleted()
		bus.Publish(partybus.Event{
			Type: event.MatchingFinished,
		})
	}()

	workers := m.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	perPkg := make([][]Match, len(pkgs))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				perPkg[i] = m.matchPackage(pkgs[i])
				atomic.AddInt64(&prog.N, 1)
			}
		}()
	}
	for i := range pkgs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var results []Match
	for _, found := range perPkg {
		results = append(results, found...)
	}
	return results
}

func (m *Matcher) matchPackage(pkg string) []Match {
	var found []Match
	for _, p := range m.patterns {
		if p.Matches(pkg) {
			found = append(found, Match{
				Pattern: p.String(),
				Package: pkg,
			})
		}
	}
	return found
}
