package json

import (
	"encoding/json"
	"io"

	"github.com/pkgtools/depmatch/depmatch/matcher"
	"github.com/pkgtools/depmatch/depmatch/pkgname"
)

// Presenter is a generic struct for holding fields needed for reporting
type Presenter struct{}

// NewPresenter is a *Presenter constructor
func NewPresenter() *Presenter {
	return &Presenter{}
}

// MatchObj is a single item for the JSON array reported
type MatchObj struct {
	Pattern string  `json:"pattern"`
	Package Package `json:"package"`
}

// Package is a nested JSON object from MatchObj
type Package struct {
	Full     string `json:"full"`
	Name     string `json:"name"`
	Version  string `json:"version"`
	Revision *int64 `json:"revision,omitempty"`
}

// Present creates JSON-based reporting
func (pres *Presenter) Present(output io.Writer, matches []matcher.Match) error {
	doc := make([]MatchObj, 0)

	for _, m := range matches {
		pn := pkgname.Parse(m.Package)
		obj := MatchObj{
			Pattern: m.Pattern,
			Package: Package{
				Full:    pn.Full(),
				Name:    pn.Base(),
				Version: pn.Version(),
			},
		}
		if rev, ok := pn.Revision(); ok {
			obj.Package.Revision = &rev
		}
		doc = append(doc, obj)
	}

	enc := json.NewEncoder(output)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	return enc.Encode(&doc)
}
