package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ppiankov/entitlement/internal/condition"
	"github.com/ppiankov/entitlement/internal/model"
)

const notApplicable = "not applicable"

// Renderer writes reports as JSON, Markdown, HTML and a console summary
type Renderer struct {
	includeFooter bool
	out           io.Writer
}

// NewRenderer creates a renderer printing summaries to stdout
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter, out: os.Stdout}
}

// WithOutput redirects console summaries
func (r *Renderer) WithOutput(w io.Writer) *Renderer {
	r.out = w
	return r
}

// JSON encodes the report
func (r *Renderer) JSON(report *model.Report) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return append(data, '\n'), nil
}

// RenderJSON writes the report as JSON to path
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := r.JSON(report)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// row is one line of the notice summary
type row struct {
	label string
	value string
}

// summaryRows lists the answers as they would appear on the notice preview.
// At or above the threshold the low-points override question is not asked,
// so its answer is shown as not applicable whatever the case data holds.
func summaryRows(report *model.Report) []row {
	f := report.Facts
	d := report.Decision
	vocab, ok := condition.VocabularyFor(f.Benefit)
	if !ok {
		vocab = condition.UCVocabulary
	}

	override8 := f.Schedule8Para4.String()
	if !f.IsBelowThreshold(report.Points.Threshold) {
		override8 = notApplicable
	}

	rows := []row{
		{"Case", report.CaseID},
		{"Benefit", string(f.Benefit)},
		{"Status", string(d.Status)},
		{"Points", fmt.Sprintf("%d (threshold %d, %s)", report.Points.Total, report.Points.Threshold, report.Points.Band)},
		{vocab.WCA, f.WCAAppeal.String()},
		{vocab.SupportGroupOnly, f.SupportGroupOnly.String()},
		{vocab.Override8, override8},
		{vocab.Override9, f.Schedule9Para4.String()},
		{vocab.HighTier, f.Schedule7Activities.String()},
		{"Allowed or refused", f.AllowedOrRefused.String()},
	}
	if d.ValidationCondition != "" {
		rows = append(rows, row{"Validation condition", d.ValidationCondition})
	}
	if d.OutcomeCondition != "" {
		rows = append(rows, row{"Outcome condition", d.OutcomeCondition})
	}
	if d.Scenario != "" {
		rows = append(rows, row{"Scenario", d.Scenario + ": " + d.ScenarioSummary})
	}
	if d.AwardLabel != "" {
		rows = append(rows, row{"Award", d.AwardLabel})
	}
	rows = append(rows, row{"Entitled", strconv.FormatBool(d.Entitled)})
	rows = append(rows, row{"Show " + vocab.Override8 + " page", strconv.FormatBool(d.ShowOverridePage)})
	return rows
}

// reportTitle names the case a report is about
func reportTitle(report *model.Report) string {
	switch {
	case report.Subject != "":
		return report.Subject
	case report.CaseID != "":
		return report.CaseID
	default:
		return report.Source
	}
}

// Markdown renders the report as Markdown
func (r *Renderer) Markdown(report *model.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Decision check: %s\n\n", reportTitle(report))
	fmt.Fprintf(&b, "- Report: `%s`\n", report.ID)
	fmt.Fprintf(&b, "- Evaluated: %s\n", report.EvaluatedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "- Rule set: %s\n\n", report.RuleSetVersion)

	b.WriteString("## Summary\n\n")
	b.WriteString("| Question | Answer |\n|---|---|\n")
	for _, rw := range summaryRows(report) {
		fmt.Fprintf(&b, "| %s | %s |\n", escapeCell(rw.label), escapeCell(rw.value))
	}
	b.WriteString("\n")

	if len(report.Decision.Messages) > 0 {
		b.WriteString("## Messages\n\n")
		for _, msg := range report.Decision.Messages {
			fmt.Fprintf(&b, "- %s\n", msg)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Points\n\n")
	fmt.Fprintf(&b, "`%s = %d`\n\n", report.Points.Formula, report.Points.Total)

	writeDescriptors(&b, "Descriptors", report.Descriptors.Points)
	writeDescriptors(&b, "Work-related activity", report.Descriptors.HighTier)

	if r.includeFooter {
		b.WriteString("---\n\n")
		b.WriteString("_Generated by entitlement. The checks reflect the consistency of the answers given; they do not decide the appeal._\n")
	}
	return b.String()
}

func writeDescriptors(b *strings.Builder, heading string, descriptors []model.Descriptor) {
	if len(descriptors) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", heading)
	b.WriteString("| Activity | Descriptor | Points |\n|---|---|---|\n")
	for _, d := range descriptors {
		answer := d.ActivityAnswerValue
		if d.ActivityAnswerLetter != "" {
			answer = d.ActivityAnswerLetter + ". " + answer
		}
		fmt.Fprintf(b, "| %s | %s | %d |\n", escapeCell(d.ActivityQuestionValue), escapeCell(answer), d.ActivityAnswerPoints)
	}
	b.WriteString("\n")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// RenderMarkdown writes the report as Markdown to path
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	return os.WriteFile(path, []byte(r.Markdown(report)), 0644)
}

func element(a atom.Atom, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func withClass(n *html.Node, class string) *html.Node {
	n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
	return n
}

// HTML renders the notice summary as a standalone HTML page. Text is
// escaped by the renderer.
func (r *Renderer) HTML(report *model.Report) ([]byte, error) {
	title := "Decision check: " + reportTitle(report)

	summary := element(atom.Tbody)
	for _, rw := range summaryRows(report) {
		summary.AppendChild(element(atom.Tr,
			element(atom.Th, text(rw.label)),
			element(atom.Td, text(rw.value)),
		))
	}

	body := element(atom.Body,
		element(atom.H1, text(title)),
		withClass(element(atom.P, text("Status: "+string(report.Decision.Status))), "status-"+string(report.Decision.Status)),
		element(atom.Table, summary),
	)

	if len(report.Decision.Messages) > 0 {
		list := element(atom.Ul)
		for _, msg := range report.Decision.Messages {
			list.AppendChild(element(atom.Li, text(msg)))
		}
		body.AppendChild(element(atom.H2, text("Messages")))
		body.AppendChild(list)
	}

	for _, group := range []struct {
		heading     string
		descriptors []model.Descriptor
	}{
		{"Descriptors", report.Descriptors.Points},
		{"Work-related activity", report.Descriptors.HighTier},
	} {
		if len(group.descriptors) == 0 {
			continue
		}
		rows := element(atom.Tbody)
		for _, d := range group.descriptors {
			rows.AppendChild(element(atom.Tr,
				element(atom.Td, text(d.ActivityQuestionValue)),
				element(atom.Td, text(d.ActivityAnswerValue)),
				element(atom.Td, text(strconv.Itoa(d.ActivityAnswerPoints))),
			))
		}
		body.AppendChild(element(atom.H2, text(group.heading)))
		body.AppendChild(element(atom.Table, rows))
	}

	if r.includeFooter {
		body.AppendChild(withClass(element(atom.Footer, text("Rule set "+report.RuleSetVersion+", report "+report.ID)), "footer"))
	}

	meta := element(atom.Meta)
	meta.Attr = []html.Attribute{{Key: "charset", Val: "utf-8"}}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(element(atom.Html,
		element(atom.Head, meta, element(atom.Title, text(title))),
		body,
	))

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderHTML writes the notice summary as HTML to path
func (r *Renderer) RenderHTML(report *model.Report, path string) error {
	data, err := r.HTML(report)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// RenderSummary prints a short console summary
func (r *Renderer) RenderSummary(report *model.Report) {
	d := report.Decision

	fmt.Fprintf(r.out, "\n")
	fmt.Fprintf(r.out, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(r.out, "  %s case %s: %s\n", report.Facts.Benefit, report.CaseID, strings.ToUpper(string(d.Status)))
	fmt.Fprintf(r.out, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(r.out, "\n")
	for _, rw := range summaryRows(report) {
		fmt.Fprintf(r.out, "  %-34s %s\n", rw.label+":", rw.value)
	}
	if len(d.Messages) > 0 {
		fmt.Fprintf(r.out, "\n")
		for _, msg := range d.Messages {
			fmt.Fprintf(r.out, "  ✗ %s\n", msg)
		}
	}
	fmt.Fprintf(r.out, "\n")
}
