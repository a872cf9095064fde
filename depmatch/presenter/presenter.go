/*
Package presenter formats bulk matching results for reporting.
*/
package presenter

import (
	"io"

	"github.com/pkgtools/depmatch/depmatch/matcher"
	"github.com/pkgtools/depmatch/depmatch/presenter/json"
	"github.com/pkgtools/depmatch/depmatch/presenter/plain"
	"github.com/pkgtools/depmatch/depmatch/presenter/table"
)

// Presenter is the main interface other Presenters need to implement
type Presenter interface {
	Present(io.Writer, []matcher.Match) error
}

// GetPresenter retrieves a Presenter that matches a CLI option
func GetPresenter(option Option) Presenter {
	switch option {
	case PlainPresenter:
		return plain.NewPresenter()
	case JSONPresenter:
		return json.NewPresenter()
	case TablePresenter:
		return table.NewPresenter()
	default:
		return nil
	}
}
