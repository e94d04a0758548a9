package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cperrin88/archdb/pkg/config"
	"github.com/cperrin88/archdb/pkg/desc"
	"github.com/cperrin88/archdb/pkg/errutils"
	"gopkg.in/yaml.v3"
)

// packageRow is one line of command output.
type packageRow struct {
	Name        string   `json:"name" yaml:"name"`
	Version     string   `json:"version" yaml:"version"`
	Repository  string   `json:"repository,omitempty" yaml:"repository,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	URL         string   `json:"url,omitempty" yaml:"url,omitempty"`
	Provides    []string `json:"provides,omitempty" yaml:"provides,omitempty"`
	Depends     []string `json:"depends,omitempty" yaml:"depends,omitempty"`
}

func newPackageRow(q desc.Querier, repository string) packageRow {
	row := packageRow{Repository: repository}
	row.Name, _ = q.Name()
	row.Version, _ = q.Version()
	row.Description, _ = q.Description()
	row.URL, _ = q.URL()
	for _, d := range q.Provides() {
		row.Provides = append(row.Provides, d.String())
	}
	for _, d := range q.Depends() {
		row.Depends = append(row.Depends, d.String())
	}
	return row
}

// printer renders rows in the configured output format.
type printer struct {
	out    io.Writer
	format string
}

func newPrinter(out io.Writer, format string) *printer {
	return &printer{out: out, format: format}
}

func (p *printer) rows(rows []packageRow) error {
	switch p.format {
	case config.OutputJSON:
		encoder := json.NewEncoder(p.out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(rows)
	case config.OutputYAML:
		encoder := yaml.NewEncoder(p.out)
		encoder.SetIndent(config.YAMLIndent)
		defer func() { _ = encoder.Close() }()
		return encoder.Encode(rows)
	case config.OutputText, "":
		return p.table(rows)
	default:
		return errutils.ErrInvalidOutputFormatWithDetails(p.format)
	}
}

func (p *printer) table(rows []packageRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(p.out, "No packages found")
		return err
	}

	tabWriter := tabwriter.NewWriter(p.out, 0, 0, TabWidth, ' ', 0)
	_, _ = fmt.Fprintln(tabWriter, "REPOSITORY\tNAME\tVERSION\tDESCRIPTION")
	for _, row := range rows {
		_, _ = fmt.Fprintf(tabWriter, "%s\t%s\t%s\t%s\n",
			orDash(row.Repository), row.Name, row.Version, truncate(row.Description, MaxDescriptionLength))
	}
	return tabWriter.Flush()
}

// details prints a single package with all its fields.
func (p *printer) details(row packageRow) error {
	if p.format != config.OutputText && p.format != "" {
		return p.rows([]packageRow{row})
	}

	tabWriter := tabwriter.NewWriter(p.out, 0, 0, TabWidth, ' ', 0)
	fields := []struct {
		label string
		value string
	}{
		{"Name", row.Name},
		{"Version", row.Version},
		{"Repository", orDash(row.Repository)},
		{"Description", orDash(row.Description)},
		{"URL", orDash(row.URL)},
		{"Provides", orDash(strings.Join(row.Provides, " "))},
		{"Depends On", orDash(strings.Join(row.Depends, " "))},
	}
	for _, f := range fields {
		_, _ = fmt.Fprintf(tabWriter, "%s\t: %s\n", f.label, f.value)
	}
	return tabWriter.Flush()
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
