package table

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/pkgtools/depmatch/depmatch/matcher"
	"github.com/pkgtools/depmatch/depmatch/pkgname"
)

// Presenter is a generic struct for holding fields needed for reporting
type Presenter struct{}

// NewPresenter is a *Presenter constructor
func NewPresenter() *Presenter {
	return &Presenter{}
}

// Present creates a human-readable table-based reporting
func (pres *Presenter) Present(output io.Writer, matches []matcher.Match) error {
	if len(matches) == 0 {
		_, err := io.WriteString(output, "No matches found\n")
		return err
	}

	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		pn := pkgname.Parse(m.Package)
		rows = append(rows, []string{m.Pattern, pn.Base(), pn.Version()})
	}

	table := tablewriter.NewWriter(output)
	table.SetHeader([]string{"Pattern", "Name", "Version"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(true)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	table.AppendBulk(rows)
	table.Render()

	return nil
}
