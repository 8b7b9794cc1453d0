package render

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/propdesk-org/propdesk-cli/internal/usecase"
)

// StatsRenderer renders derived statistics
type StatsRenderer struct {
	out  io.Writer
	json bool
}

// NewStatsRenderer creates a new stats renderer
func NewStatsRenderer(out io.Writer, json bool) *StatsRenderer {
	return &StatsRenderer{out: out, json: json}
}

// statsDocument is the --json shape, formatted at this boundary only.
type statsDocument struct {
	Mode        string `json:"mode"`
	Total       int    `json:"total"`
	Active      int    `json:"active"`
	Funded      int    `json:"funded"`
	TotalRaised string `json:"totalRaised"`
	AvgYield    string `json:"avgYield"`
}

// RenderStats renders the aggregate view
func (r *StatsRenderer) RenderStats(result *usecase.GetStatsResult) error {
	if r.json {
		return writeJSON(r.out, statsDocument{
			Mode:        string(result.Mode),
			Total:       result.Stats.Total,
			Active:      result.Stats.Active,
			Funded:      result.Stats.Funded,
			TotalRaised: result.Stats.FormatTotalRaised(),
			AvgYield:    result.Stats.FormatAvgYield(),
		})
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendRows([]table.Row{
		{"Mode", string(result.Mode)},
		{"Total proposals", result.Stats.Total},
		{"Active", result.Stats.Active},
		{"Funded", result.Stats.Funded},
		{"Total raised", result.Stats.FormatTotalRaised()},
		{"Average yield", result.Stats.FormatAvgYield()},
	})
	t.Render()

	return nil
}
