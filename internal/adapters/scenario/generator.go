package scenario

import (
	_ "embed"
	"fmt"
	"math/rand"
	"sort"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/propdesk-org/propdesk-cli/internal/domain"
	"github.com/propdesk-org/propdesk-cli/internal/domain/models"
)

//go:embed scenarios.yaml
var scenariosYAML []byte

// template is one synthetic proposal definition inside a scenario.
type template struct {
	AssetName         string         `yaml:"assetName"`
	AssetType         string         `yaml:"assetType"`
	Category          string         `yaml:"category"`
	Location          string         `yaml:"location"`
	Description       string         `yaml:"description"`
	TargetAmount      float64        `yaml:"targetAmount"`
	TokenPrice        float64        `yaml:"tokenPrice"`
	MinimumInvestment float64        `yaml:"minimumInvestment"`
	Base              baseValues     `yaml:"base"`
	Variance          varianceValues `yaml:"variance"`
}

type baseValues struct {
	RaisedAmount     float64 `yaml:"raisedAmount"`
	RaisedPercentage float64 `yaml:"raisedPercentage"`
	BackerCount      float64 `yaml:"backerCount"`
	DaysRemaining    float64 `yaml:"daysRemaining"`
	ExpectedYield    float64 `yaml:"expectedYield"`
}

type varianceValues struct {
	RaisedAmount     float64 `yaml:"raisedAmount"`
	RaisedPercentage float64 `yaml:"raisedPercentage"`
	BackerCount      float64 `yaml:"backerCount"`
	DaysRemaining    float64 `yaml:"daysRemaining"`
	ExpectedYield    float64 `yaml:"expectedYield"`
}

type scenarioFile struct {
	Scenarios map[string][]template `yaml:"scenarios"`
}

// Generator produces synthetic proposal sets keyed by scenario name.
// Output is deterministic in shape (count, categories, identities) and
// varied in exact numeric values.
type Generator struct {
	scenarios map[string][]template
}

// NewGenerator parses the embedded scenario templates.
func NewGenerator() (*Generator, error) {
	var file scenarioFile
	if err := yaml.Unmarshal(scenariosYAML, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scenario templates: %w", err)
	}
	return &Generator{scenarios: file.Scenarios}, nil
}

// Scenarios lists the available scenario names, sorted.
func (g *Generator) Scenarios() []string {
	names := make([]string, 0, len(g.scenarios))
	for name := range g.scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate builds the proposal set for a named scenario. Percentage
// fields are clamped to [0,100] even after variance is applied.
func (g *Generator) Generate(name string) ([]*models.Proposal, error) {
	templates, ok := g.scenarios[name]
	if !ok {
		return nil, fmt.Errorf("scenario %q: %w", name, domain.ErrUnknownScenario)
	}

	proposals := make([]*models.Proposal, 0, len(templates))
	for i, tpl := range templates {
		raisedPct := clampPercent(perturb(tpl.Base.RaisedPercentage, tpl.Variance.RaisedPercentage))

		p := &models.Proposal{
			ID:                fmt.Sprintf("demo_%s_%d", name, i+1),
			Status:            models.ProposalActive,
			AssetName:         tpl.AssetName,
			AssetType:         tpl.AssetType,
			Category:          tpl.Category,
			Location:          tpl.Location,
			Description:       tpl.Description,
			TargetAmount:      decimal.NewFromFloat(tpl.TargetAmount),
			TokenPrice:        decimal.NewFromFloat(tpl.TokenPrice),
			MinimumInvestment: decimal.NewFromFloat(tpl.MinimumInvestment),
			ExpectedYield:     decimal.NewFromFloat(perturb(tpl.Base.ExpectedYield, tpl.Variance.ExpectedYield)).Round(1),
			RaisedAmount:      decimal.NewFromFloat(perturb(tpl.Base.RaisedAmount, tpl.Variance.RaisedAmount)).Round(0),
			RaisedPercentage:  decimal.NewFromFloat(raisedPct).Round(1),
			BackerCount:       int(perturb(tpl.Base.BackerCount, tpl.Variance.BackerCount)),
			DaysRemaining:     int(perturb(tpl.Base.DaysRemaining, tpl.Variance.DaysRemaining)),
		}
		if p.BackerCount < 0 {
			p.BackerCount = 0
		}
		if p.DaysRemaining < 0 {
			p.DaysRemaining = 0
		}
		if p.RaisedPercentage.GreaterThanOrEqual(decimal.NewFromInt(100)) {
			p.Status = models.ProposalFunded
			p.RaisedAmount = p.TargetAmount
		}
		proposals = append(proposals, p)
	}

	return proposals, nil
}

// perturb applies a bounded random variance of ±variancePct percent to
// the base value.
func perturb(base, variancePct float64) float64 {
	if variancePct <= 0 {
		return base
	}
	factor := 1 + (rand.Float64()*2-1)*variancePct/100
	return base * factor
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
