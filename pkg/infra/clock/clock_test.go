package clock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/ampship/pkg/infra/clock"
	"github.com/m-mizutani/gt"
)

func TestSleep(t *testing.T) {
	c := clock.New()

	start := c.Now()
	gt.NoError(t, c.Sleep(context.Background(), 10*time.Millisecond))
	gt.True(t, c.Now().Sub(start) >= 10*time.Millisecond)
}

func TestSleepCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := clock.New().Sleep(ctx, time.Hour)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, context.Canceled))
}
