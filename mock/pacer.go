package mock

import (
	"context"

	"github.com/fwojciec/mailscout"
)

var _ mailscout.Pacer = (*Pacer)(nil)

// Pacer is a mock implementation of mailscout.Pacer.
type Pacer struct {
	WaitFn func(ctx context.Context) error
}

func (p *Pacer) Wait(ctx context.Context) error {
	return p.WaitFn(ctx)
}
