package plain

import (
	"fmt"
	"io"

	"github.com/pkgtools/depmatch/depmatch/matcher"
)

// Presenter writes one match per line as two whitespace-separated fields:
// the pattern and the package that satisfied it.
type Presenter struct{}

// NewPresenter is a *Presenter constructor
func NewPresenter() *Presenter {
	return &Presenter{}
}

func (pres *Presenter) Present(output io.Writer, matches []matcher.Match) error {
	for _, m := range matches {
		if _, err := fmt.Fprintf(output, "%s %s\n", m.Pattern, m.Package); err != nil {
			return err
		}
	}
	return nil
}
