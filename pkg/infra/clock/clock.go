package clock

import (
	"context"
	"time"

	"github.com/m-mizutani/ampship/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

// Clock is the wall clock.
type Clock struct{}

var _ interfaces.Clock = (*Clock)(nil)

func New() *Clock {
	return &Clock{}
}

func (x *Clock) Now() time.Time {
	return time.Now()
}

func (x *Clock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "sleep interrupted", goerr.V("duration", d))
	}
}
