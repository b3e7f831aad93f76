package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"github.com/vulntriage/vulntriage/vulntriage"
	"github.com/vulntriage/vulntriage/vulntriage/presenter/models"
	"github.com/vulntriage/vulntriage/vulntriage/status"
	"github.com/vulntriage/vulntriage/vulntriage/words"
)

const maxCandidates = 3

// Presenter is a generic struct for holding fields needed for reporting
type Presenter struct {
	document  models.Document
	minLength int
	withColor bool
}

// NewPresenter is a *Presenter constructor. minWordLength is used to find the matched words to highlight in
// candidate names. Colors are only written when withColor is set and the environment supports them.
func NewPresenter(analysis vulntriage.Analysis, sortBy models.SortStrategy, minWordLength int, withColor bool) *Presenter {
	return &Presenter{
		document:  models.NewDocument(analysis, sortBy, nil),
		minLength: minWordLength,
		withColor: withColor && color.SupportColor(),
	}
}

// Present creates a table-based reporting
func (p *Presenter) Present(output io.Writer) error {
	rs := getRows(p.document, p.minLength, p.withColor)

	if len(rs) == 0 {
		_, err := io.WriteString(output, "No vulnerabilities triaged\n")
		return err
	}

	table := tablewriter.NewWriter(output)
	table.SetHeader([]string{"Number", "CVE", "Product", "Status", "ID", "Source", "Candidates"})
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

	if p.withColor {
		for _, r := range rs {
			table.Rich(r.Columns(), []tablewriter.Colors{{}, {}, {}, getStatusColor(r.Status)})
		}
	} else {
		table.AppendBulk(rs.Render())
	}

	table.Render()

	_, err := fmt.Fprintf(output, "\n%s\n", summaryLine(p.document))
	return err
}

type rows []row

type row struct {
	Number     string
	CVE        string
	Product    string
	Status     string
	ID         string
	Source     string
	Candidates string
}

func getRows(doc models.Document, minLength int, withColor bool) rows {
	var rs rows
	for _, r := range doc.Results {
		rs = append(rs, newRow(r, minLength, withColor))
	}
	return rs
}

func newRow(r models.Result, minLength int, withColor bool) row {
	source := r.Source
	if r.Rule != nil {
		source = fmt.Sprintf("%s:%s", r.Source, r.Rule.Name)
	}

	return row{
		Number:     r.Vulnerability.Number,
		CVE:        r.Vulnerability.CVE,
		Product:    r.DisplayProduct,
		Status:     r.Status,
		ID:         r.ResolvedID,
		Source:     source,
		Candidates: candidates(r, minLength, withColor),
	}
}

// candidates renders the best ranked inventory candidates with the words shared with the vulnerability highlighted.
func candidates(r models.Result, minLength int, withColor bool) string {
	if len(r.Candidates) == 0 {
		return ""
	}

	vulnWords := words.Normalize(strings.Join(r.Words, " "), minLength)
	mark := func(part string, first bool) string {
		switch {
		case !withColor:
			return part
		case first:
			return color.Bold.Sprint(color.Red.Sprint(part))
		default:
			return color.Red.Sprint(part)
		}
	}

	var parts []string
	for idx, c := range r.Candidates {
		if idx == maxCandidates {
			parts = append(parts, fmt.Sprintf("(+%d more)", len(r.Candidates)-maxCandidates))
			break
		}
		name := words.Highlight(fmt.Sprintf("%s %s", c.Vendor, c.Name), vulnWords, minLength, mark)
		parts = append(parts, fmt.Sprintf("%s [%s, tier %d]", name, c.ID, c.Tier))
	}
	return strings.Join(parts, "; ")
}

func (r row) Columns() []string {
	return []string{r.Number, r.CVE, r.Product, r.Status, r.ID, r.Source, r.Candidates}
}

func (rs rows) Render() [][]string {
	out := make([][]string, len(rs))
	for idx, r := range rs {
		out[idx] = r.Columns()
	}
	return out
}

func summaryLine(doc models.Document) string {
	var parts []string
	for _, s := range append([]status.Status{status.Undecided}, status.Ordered...) {
		parts = append(parts, fmt.Sprintf("%s: %d", s, doc.Count(s)))
	}
	return strings.Join(parts, "  ")
}

func getStatusColor(name string) tablewriter.Colors {
	s, err := status.Parse(name)
	if err != nil {
		return tablewriter.Colors{}
	}

	switch s.Color() {
	case "red":
		return tablewriter.Colors{tablewriter.Bold, tablewriter.FgRedColor}
	case "orange":
		return tablewriter.Colors{tablewriter.Normal, tablewriter.FgYellowColor}
	case "blue":
		return tablewriter.Colors{tablewriter.Normal, tablewriter.FgBlueColor}
	case "green":
		return tablewriter.Colors{tablewriter.Normal, tablewriter.FgGreenColor}
	default:
		return tablewriter.Colors{tablewriter.Normal, tablewriter.FgMagentaColor}
	}
}
