package models

import (
	"github.com/shopspring/decimal"
)

// ProposalStatus is the display status of a dashboard listing.
type ProposalStatus string

const (
	ProposalActive   ProposalStatus = "active"
	ProposalFunded   ProposalStatus = "funded"
	ProposalUpcoming ProposalStatus = "upcoming"
)

// Proposal is the unified display record every data source resolves
// into: live remote listings, approved local submissions, and synthetic
// scenario data all take this shape before the dashboard sees them.
type Proposal struct {
	ID     string         `json:"id"`
	Status ProposalStatus `json:"status"`

	AssetName   string `json:"assetName"`
	AssetType   string `json:"assetType"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Description string `json:"description"`

	TargetAmount      decimal.Decimal `json:"targetAmount"`
	TokenPrice        decimal.Decimal `json:"tokenPrice"`
	MinimumInvestment decimal.Decimal `json:"minimumInvestment"`
	ExpectedYield     decimal.Decimal `json:"expectedYield"`

	RaisedAmount     decimal.Decimal `json:"raisedAmount"`
	RaisedPercentage decimal.Decimal `json:"raisedPercentage"`
	BackerCount      int             `json:"backerCount"`
	DaysRemaining    int             `json:"daysRemaining"`
}

// FromSubmission maps an approved local submission into the unified
// display shape. Funding figures come from the attached FundingStatus
// when present and default to zero raised otherwise.
func FromSubmission(s *Submission) *Proposal {
	p := &Proposal{
		ID:                s.ID,
		Status:            ProposalActive,
		AssetName:         s.AssetName,
		AssetType:         s.AssetType,
		Category:          s.Category,
		Location:          s.Location,
		Description:       s.Description,
		TargetAmount:      s.TargetAmount,
		TokenPrice:        s.TokenPrice,
		MinimumInvestment: s.MinimumInvestment,
		ExpectedYield:     s.ExpectedYield,
	}
	if fs := s.FundingStatus; fs != nil {
		p.RaisedAmount = fs.RaisedAmount
		p.RaisedPercentage = fs.RaisedPercentage
		p.BackerCount = fs.InvestorCount
		if fs.IsFunded {
			p.Status = ProposalFunded
		}
	}
	return p
}
