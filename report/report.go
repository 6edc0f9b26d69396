package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-yaml"
	"github.com/nao1215/markdown"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Sentinel errors returned when reading samples or rendering reports.
var (
	ErrUnknownFormat = errors.New("unknown report format")
	ErrReadInput     = errors.New("read input")
	ErrWriteOutput   = errors.New("write output")
)

// Format is a report output format.
type Format string

const (
	// FormatText is an aligned, human-readable summary.
	FormatText Format = "text"
	// FormatJSON is an indented JSON [Document].
	FormatJSON Format = "json"
	// FormatYAML is a YAML [Document].
	FormatYAML Format = "yaml"
	// FormatMarkdown is a Markdown report with tables.
	FormatMarkdown Format = "markdown"
)

var allFormats = []Format{FormatText, FormatJSON, FormatYAML, FormatMarkdown}

// AllFormatStrings returns every supported [Format] as a string.
func AllFormatStrings() []string {
	out := make([]string, len(allFormats))
	for i, f := range allFormats {
		out[i] = string(f)
	}

	return out
}

// ParseFormat parses a case-insensitive format name. "md" is accepted as an
// alias of [FormatMarkdown].
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if f == "md" {
		return FormatMarkdown, nil
	}

	if slices.Contains(allFormats, f) {
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Write renders doc to w in the given format.
func Write(w io.Writer, format Format, doc Document) error {
	var err error

	switch format {
	case FormatText:
		err = writeText(w, doc)
	case FormatJSON:
		err = writeJSON(w, doc)
	case FormatYAML:
		err = writeYAML(w, doc)
	case FormatMarkdown:
		err = writeMarkdown(w, doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}

func writeJSON(w io.Writer, doc Document) error {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	_, err = w.Write(append(out, '\n'))

	return err
}

func writeYAML(w io.Writer, doc Document) error {
	out, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}

	_, err = w.Write(out)

	return err
}

func title(s string) string {
	return cases.Title(language.English).String(s)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}

func writeText(w io.Writer, doc Document) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if doc.Workload != "" {
		fmt.Fprintf(tw, "workload:\t%s\n", doc.Workload)
	}

	fmt.Fprintf(tw, "class:\t%s %s\n", title(doc.Class), doc.Notation)
	fmt.Fprintf(tw, "score:\t%.4f\n", doc.Score)
	fmt.Fprintf(tw, "exponent:\t%.3f\n", doc.Exponent)

	if doc.Ambiguous {
		names := make([]string, len(doc.Candidates))
		for i, c := range doc.Candidates {
			names[i] = fmt.Sprintf("%s (%.4f)", c.Class, c.Error)
		}

		fmt.Fprintf(tw, "candidates:\t%s\n", strings.Join(names, ", "))
	}

	fmt.Fprintf(tw, "fingerprint:\t%s\n", doc.Fingerprint)
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "size\tcost\t")

	anomalous := anomalyIndexes(doc)
	for i, s := range doc.Samples {
		mark := ""
		if anomalous[i] {
			mark = "anomaly"
		}

		fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Size, formatFloat(s.Cost), mark)
	}

	for _, a := range doc.Anomalies {
		fmt.Fprintf(tw, "\nwarning: %s\n", a.Message)
	}

	return tw.Flush()
}

func anomalyIndexes(doc Document) map[int]bool {
	out := make(map[int]bool, len(doc.Anomalies))
	for _, a := range doc.Anomalies {
		out[a.Index] = true
	}

	return out
}

func writeMarkdown(w io.Writer, doc Document) error {
	md := markdown.NewMarkdown(w)

	heading := "Growth Profile"
	if doc.Workload != "" {
		heading += ": " + doc.Workload
	}

	md.H1(heading)
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Class", title(doc.Class)},
			{"Notation", "`" + doc.Notation + "`"},
			{"Score", formatFloat(doc.Score)},
			{"Exponent", formatFloat(doc.Exponent)},
			{"Fingerprint", "`" + doc.Fingerprint + "`"},
		},
	})
	md.PlainText("")

	switch {
	case len(doc.Anomalies) > 0:
		md.Warningf("%d sample(s) broke monotonic growth and were excluded from the fit.",
			len(doc.Anomalies))
	case doc.Ambiguous:
		md.Importantf("%d classes fit within tolerance; the simplest is reported.",
			len(doc.Candidates))
	default:
		md.Tip("Samples grew monotonically and a single class fits.")
	}

	md.PlainText("")

	md.H2("Scores")
	md.PlainText("")

	rows := make([][]string, len(doc.Scores))
	for i, s := range doc.Scores {
		rows[i] = []string{title(s.Class), "`" + s.Notation + "`", formatFloat(s.Error)}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Class", "Notation", "Error"},
		Rows:   rows,
	})
	md.PlainText("")

	md.H2("Samples")
	md.PlainText("")

	anomalous := anomalyIndexes(doc)
	rows = make([][]string, len(doc.Samples))

	for i, s := range doc.Samples {
		note := ""
		if anomalous[i] {
			note = "excluded"
		}

		rows[i] = []string{strconv.Itoa(s.Size), formatFloat(s.Cost), note}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Size", "Cost", "Note"},
		Rows:   rows,
	})

	if len(doc.Anomalies) > 0 {
		md.PlainText("")
		md.H2("Anomalies")
		md.PlainText("")

		msgs := make([]string, len(doc.Anomalies))
		for i, a := range doc.Anomalies {
			msgs[i] = a.Message
		}

		md.BulletList(msgs...)
	}

	return md.Build()
}
