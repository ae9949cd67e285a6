package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/astria-api/astria-go/internal/constants"
)

// Output format constants.
const (
	OutputFormatJSON  = constants.FormatJSON
	OutputFormatYAML  = constants.FormatYAML
	OutputFormatTable = constants.FormatTable
)

// renderOutput writes data as JSON or YAML, or calls table for the table format.
func renderOutput(w io.Writer, v *viper.Viper, data interface{}, table func(w io.Writer) error) error {
	output := v.GetString(constants.ConfigKeyOutput)
	switch output {
	case OutputFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		err := encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}

		return nil
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(constants.JSONIndentSize)

		err := encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return encoder.Close()
	case OutputFormatTable, "":
		return table(w)
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownOutput, output)
	}
}

// renderProperties renders a two column Property/Value table.
func renderProperties(w io.Writer, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	for _, row := range rows {
		_ = table.Append(row[0], row[1])
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderTable renders rows under header, or emptyMessage when there are none.
func renderTable(w io.Writer, header []string, rows [][]string, emptyMessage string) error {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, emptyMessage)

		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header(toAny(header)...)

	for _, row := range rows {
		_ = table.Append(toAny(row)...)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func renderPageFooter(w io.Writer, page, totalPages int) {
	if totalPages > 1 {
		_, _ = fmt.Fprintf(w, "\nShowing page %d of %d. Use --all to fetch all pages.\n", max(page, 1), totalPages)
	}
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, value := range values {
		out[i] = value
	}

	return out
}

func formatTime(t *time.Time) string {
	if t == nil {
		return constants.NotAvailable
	}

	return t.Format(constants.DateTimeFormat)
}

func formatOptional(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}

	return string(runes[:limit-1]) + "…"
}
