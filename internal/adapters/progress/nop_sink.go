package progress

import (
	"context"

	"github.com/propdesk-org/propdesk-cli/internal/usecase"
)

// NopSink discards progress events. It backs --json and
// --non-interactive runs, where spinner output would corrupt the
// stream.
type NopSink struct{}

// NewNopSink creates a silent progress sink
func NewNopSink() usecase.ProgressSink {
	return &NopSink{}
}

func (n *NopSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {}

func (n *NopSink) Info(message string) {}

func (n *NopSink) Error(message string) {}

var _ usecase.ProgressSink = (*NopSink)(nil)
