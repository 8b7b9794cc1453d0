package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubmissionStatus represents where a submission sits in the review lifecycle
type SubmissionStatus string

const (
	StatusDraft            SubmissionStatus = "draft"
	StatusSubmitted        SubmissionStatus = "submitted"
	StatusUnderReview      SubmissionStatus = "under_review"
	StatusApproved         SubmissionStatus = "approved"
	StatusRejected         SubmissionStatus = "rejected"
	StatusChangesRequested SubmissionStatus = "changes_requested"
)

// IDKind is the prefix encoded into a submission identity
type IDKind string

const (
	KindDraft    IDKind = "draft"
	KindProposal IDKind = "proposal"
)

// Document is an opaque reference to a supporting file. Content and
// upload handling live outside this system.
type Document struct {
	Name    string `json:"name"`
	DocType string `json:"docType,omitempty"`
	Size    string `json:"size,omitempty"`
}

// FundingStatus mirrors the funding sub-object attached to approved
// submissions by external investment flows. All fields are optional on
// input; absence means "not yet funded, zero raised".
type FundingStatus struct {
	IsFunded         bool            `json:"isFunded"`
	RaisedAmount     decimal.Decimal `json:"raisedAmount"`
	RaisedPercentage decimal.Decimal `json:"raisedPercentage"`
	InvestorCount    int             `json:"investorCount"`
}

// Submission is a locally-authored funding proposal record: either a
// draft being edited or a submission that has entered the review
// pipeline. The identity prefix always encodes the current kind
// (draft_* while status is draft, proposal_* once submitted).
type Submission struct {
	ID     string           `json:"id"`
	Status SubmissionStatus `json:"status"`

	// For drafts SubmissionDate marks "last saved"; it is overwritten
	// with the true submission time on submit.
	SubmissionDate time.Time `json:"submissionDate"`

	// Asset descriptors
	AssetName   string `json:"assetName"`
	AssetType   string `json:"assetType"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Description string `json:"description"`

	// Financial terms, stored numerically and formatted only at the
	// presentation boundary.
	TargetAmount      decimal.Decimal `json:"targetAmount"`
	TokenPrice        decimal.Decimal `json:"tokenPrice"`
	MinimumInvestment decimal.Decimal `json:"minimumInvestment"`
	ExpectedYield     decimal.Decimal `json:"expectedYield"`
	FundingDeadline   time.Time       `json:"fundingDeadline"`

	Documents   []Document `json:"documents,omitempty"`
	RiskFactors []string   `json:"riskFactors,omitempty"`
	Highlights  []string   `json:"highlights,omitempty"`
	UseOfFunds  string     `json:"useOfFunds,omitempty"`

	// Review workflow fields, meaningless before submission.
	EstimatedReviewDate time.Time `json:"estimatedReviewDate,omitzero"`
	ReviewDate          time.Time `json:"reviewDate,omitzero"`
	ReviewComments      string    `json:"reviewComments,omitempty"`

	// Populated by external investment flows once a submission is live.
	FundingStatus *FundingStatus `json:"fundingStatus,omitempty"`
}

// NewSubmissionID mints an identity of the form
// <kind>_<unix-millis>_<8-char-suffix>.
func NewSubmissionID(kind IDKind) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%d_%s", kind, time.Now().UnixMilli(), suffix)
}

// IsDraft reports whether the record is still editable.
func (s *Submission) IsDraft() bool {
	return s.Status == StatusDraft
}

// IsTerminal reports whether the review pipeline has reached a decision.
// changes_requested is not terminal: it loops back to awaiting
// resubmission.
func (s *Submission) IsTerminal() bool {
	return s.Status == StatusApproved || s.Status == StatusRejected
}

// Normalize fills every missing field of a partially-shaped record with
// a safe default so that records loaded from older (or corrupted)
// persisted payloads never surface nil or invalid values. It is
// idempotent and never fails.
func Normalize(s *Submission) *Submission {
	if s == nil {
		s = &Submission{}
	}
	if s.Status == "" {
		s.Status = StatusDraft
	}
	if s.ID == "" {
		kind := KindProposal
		if s.Status == StatusDraft {
			kind = KindDraft
		}
		s.ID = NewSubmissionID(kind)
	}
	if s.SubmissionDate.IsZero() {
		s.SubmissionDate = time.Now().UTC()
	}
	// Review fields carry no meaning pre-submission.
	if s.Status == StatusDraft {
		s.EstimatedReviewDate = time.Time{}
		s.ReviewDate = time.Time{}
		s.ReviewComments = ""
	}
	if s.Documents == nil {
		s.Documents = []Document{}
	}
	if s.RiskFactors == nil {
		s.RiskFactors = []string{}
	}
	if s.Highlights == nil {
		s.Highlights = []string{}
	}
	return s
}

// ValidStatus reports whether the given string names a known lifecycle
// status.
func ValidStatus(s string) bool {
	switch SubmissionStatus(s) {
	case StatusDraft, StatusSubmitted, StatusUnderReview,
		StatusApproved, StatusRejected, StatusChangesRequested:
		return true
	}
	return false
}

// ReviewableStatus reports whether the given string names a status a
// reviewer may assign. draft is never assignable: records only leave
// draft through submission, and a submitted record cannot regress to
// one.
func ReviewableStatus(s string) bool {
	return ValidStatus(s) && SubmissionStatus(s) != StatusDraft
}
