// SPDX-License-Identifier: MIT

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/quantik/gateway"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by Distribution.
const (
	FormatChart = "chart"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formats lists the accepted formats in help-text order.
var Formats = []string{FormatChart, FormatJSON, FormatYAML}

// distribution is the serialised form of a result.
type distribution struct {
	JobID         string             `json:"job_id" yaml:"job_id"`
	Backend       string             `json:"backend" yaml:"backend"`
	Shots         int                `json:"shots" yaml:"shots"`
	MostFrequent  string             `json:"most_frequent" yaml:"most_frequent"`
	Counts        map[string]int     `json:"counts" yaml:"counts"`
	Probabilities map[string]float64 `json:"probabilities" yaml:"probabilities"`
}

func newDistribution(res *gateway.Result) distribution {
	best, _ := res.MostFrequent()

	return distribution{
		JobID:         res.JobID,
		Backend:       res.Backend,
		Shots:         res.Shots,
		MostFrequent:  best,
		Counts:        res.Counts,
		Probabilities: res.Probabilities(),
	}
}

// Distribution writes res to w in format (FormatChart, FormatJSON or
// FormatYAML, case-insensitive). The chart lists outcomes in lexicographic
// order with their counts.
// Errors: ErrNilInput, ErrUnknownFormat, encoder and writer errors.
func Distribution(w io.Writer, res *gateway.Result, format string) error {
	if res == nil {
		return ErrNilInput
	}
	switch strings.ToLower(format) {
	case FormatChart:
		return chart(w, res)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newDistribution(res))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newDistribution(res)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%q (want one of %s): %w", format, strings.Join(Formats, ", "), ErrUnknownFormat)
	}
}

func chart(w io.Writer, res *gateway.Result) error {
	outcomes := res.Outcomes()
	bars := make(pterm.Bars, 0, len(outcomes))
	for _, k := range outcomes {
		bars = append(bars, pterm.Bar{Label: k, Value: res.Counts[k]})
	}
	header := fmt.Sprintf("job %s on %s: %d shots\n", res.JobID, res.Backend, res.Shots)
	if len(bars) == 0 {
		_, err := io.WriteString(w, header+"(no outcomes)\n")
		return err
	}

	body, err := pterm.DefaultBarChart.
		WithBars(bars).
		WithHorizontal().
		WithShowValue().
		Srender()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, header+body)

	return err
}

// Table writes rows as a table; the first row is the header.
func Table(w io.Writer, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	body, err := pterm.DefaultTable.
		WithHasHeader().
		WithData(pterm.TableData(rows)).
		Srender()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, body+"\n")

	return err
}
