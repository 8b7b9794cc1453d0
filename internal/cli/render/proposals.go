package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/propdesk-org/propdesk-cli/internal/domain/config"
	"github.com/propdesk-org/propdesk-cli/internal/domain/models"
	"github.com/propdesk-org/propdesk-cli/internal/usecase"
)

// ProposalsRenderer renders the mode-resolved proposal list
type ProposalsRenderer struct {
	out  io.Writer
	json bool
}

// NewProposalsRenderer creates a new proposals renderer
func NewProposalsRenderer(out io.Writer, json bool) *ProposalsRenderer {
	return &ProposalsRenderer{out: out, json: json}
}

// RenderProposalList renders the resolved proposal set
func (r *ProposalsRenderer) RenderProposalList(result *usecase.ListProposalsResult) error {
	if r.json {
		return writeJSON(r.out, result.Proposals)
	}

	r.renderSourceLine(result)

	if len(result.Proposals) == 0 {
		fmt.Fprintln(r.out, "No proposals found")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Asset", "Category", "Location", "Target", "Raised", "%", "Backers", "Days Left", "Yield", "Status"})

	for _, p := range result.Proposals {
		t.AppendRow(table.Row{
			p.AssetName,
			p.Category,
			p.Location,
			models.FormatAmount(p.TargetAmount),
			models.FormatAmount(p.RaisedAmount),
			models.FormatPercent(p.RaisedPercentage),
			p.BackerCount,
			p.DaysRemaining,
			models.FormatPercent(p.ExpectedYield),
			statusCell(p.Status),
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Target", Align: text.AlignRight},
		{Name: "Raised", Align: text.AlignRight},
		{Name: "%", Align: text.AlignRight},
		{Name: "Backers", Align: text.AlignRight},
		{Name: "Days Left", Align: text.AlignRight},
		{Name: "Yield", Align: text.AlignRight},
	})

	t.Render()
	return nil
}

func (r *ProposalsRenderer) renderSourceLine(result *usecase.ListProposalsResult) {
	switch result.Mode {
	case config.ModeProduction:
		faintStyle.Fprintln(r.out, "Source: live backing service")
	case config.ModeDevelopment:
		faintStyle.Fprintln(r.out, "Source: approved local submissions")
	case config.ModeDemo:
		faintStyle.Fprintf(r.out, "Source: demo scenario %q\n", result.Scenario)
	}
}

func statusCell(status models.ProposalStatus) string {
	switch status {
	case models.ProposalFunded:
		return successStyle.Sprint("funded")
	case models.ProposalActive:
		return noticeStyle.Sprint("active")
	default:
		return string(status)
	}
}
