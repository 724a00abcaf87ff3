package server_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/m-mizutani/ampship/pkg/controller/server"
	"github.com/m-mizutani/ampship/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestDetachContext(t *testing.T) {
	t.Run("inherits logger, request ID and time", func(t *testing.T) {
		originalCtx := context.Background()
		customLogger := slog.Default().With("component", "test")
		originalCtx = logging.With(originalCtx, customLogger)
		reqID, originalCtx := logging.CtxRequestID(originalCtx)
		fixedTime := time.Date(2024, 12, 25, 10, 30, 0, 0, time.UTC)
		originalCtx = logging.CtxWithTime(originalCtx, func() time.Time {
			return fixedTime
		})

		bgCtx := server.DetachContext(originalCtx)

		gt.V(t, logging.From(bgCtx)).Equal(customLogger)
		inheritedReqID, _ := logging.CtxRequestID(bgCtx)
		gt.V(t, inheritedReqID).Equal(reqID)
		gt.V(t, logging.CtxTime(bgCtx)).Equal(fixedTime)
	})

	t.Run("detached context is not cancelled with the original", func(t *testing.T) {
		originalCtx, cancel := context.WithCancel(context.Background())
		bgCtx := server.DetachContext(originalCtx)

		cancel()

		gt.V(t, originalCtx.Err()).Equal(context.Canceled)
		gt.V(t, bgCtx.Err()).Equal(nil)
	})
}
