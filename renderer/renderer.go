// Package renderer turns the derived figures into markdown documents.
//
// Every document is an assembly template (e.g. "summary.md") that may depend on
// partial templates named after it (e.g. "summary_goal.md").
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/networth"
)

//go:embed *.md
var templates embed.FS

// funcs are the helpers available to every template.
var funcs = template.FuncMap{
	"currency":    networth.FormatCurrency,
	"insightIcon": insightIcon,
	"cell":        cell,
	"shortID":     ShortID,
}

// Summary renders the headline figures, insights and goal status.
func Summary(s networth.Summary) string {
	partials := map[string]string{
		"summary_insights": "summary_insights.md",
		"summary_goal":     "summary_goal.md",
	}
	return renderTemplate("summary", "summary.md", partials, s)
}

// Goal renders the goal progress alone, or nothing without a goal.
func Goal(s networth.Summary) string {
	return renderTemplate("summary_goal", "summary_goal.md", nil, s)
}

// historyView is the data of the history template.
type historyView struct {
	Snapshots []networth.NetWorthSnapshot
	Trend     bool
	First     networth.NetWorthSnapshot
	Change    string
}

// History renders the snapshot history in entry order. The change from the
// first to the last snapshot is only shown with at least two snapshots.
func History(history []networth.NetWorthSnapshot) string {
	v := historyView{Snapshots: history, Trend: networth.HasTrend(history)}
	if v.Trend {
		v.First = history[0]
		v.Change = signedCurrency(history[len(history)-1].NetWorth - v.First.NetWorth)
	}
	partials := map[string]string{
		"history_table": "history_table.md",
	}
	return renderTemplate("history", "history.md", partials, v)
}

// reportView is the data of the report template.
type reportView struct {
	Summary networth.Summary
	Data    networth.FinancialData
}

// Report renders the printable report: the headline figures, then one table
// for the assets and one for the liabilities.
func Report(s networth.Summary, data networth.FinancialData) string {
	partials := map[string]string{
		"report_assets":      "report_assets.md",
		"report_liabilities": "report_liabilities.md",
	}
	return renderTemplate("report", "report.md", partials, reportView{Summary: s, Data: data})
}

// Items renders every asset and liability with its short id.
func Items(data networth.FinancialData) string {
	return renderTemplate("items", "items.md", nil, data)
}

// Budget renders the budgeting recommendations.
func Budget(s networth.Summary) string {
	return renderTemplate("budget", "budget.md", nil, s)
}

// Milestones renders the milestone catalog with the achieved ones checked.
func Milestones(s networth.Summary) string {
	return renderTemplate("milestones", "milestones.md", nil, s)
}

func insightIcon(k networth.InsightKind) string {
	switch k {
	case networth.Positive:
		return "✅"
	case networth.Warning:
		return "⚠️"
	default:
		return "💡"
	}
}

// ShortIDLength is the number of characters of an id shown to the user.
const ShortIDLength = 8

// ShortID returns the displayed prefix of an item id.
func ShortID(id string) string {
	if len(id) <= ShortIDLength {
		return id
	}
	return id[:ShortIDLength]
}

// cell escapes s for a table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// signedCurrency formats v with an explicit sign.
func signedCurrency(v float64) string {
	if v > 0 {
		return "+" + networth.FormatCurrency(v)
	}
	return networth.FormatCurrency(v)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
