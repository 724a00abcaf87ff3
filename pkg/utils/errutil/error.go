package errutil

import (
	"context"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// HandleError logs err and reports it to Sentry with its kind as a tag and
// goerr values as extras. A nil err is ignored.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	kind := types.ErrorKindOf(err)
	reqID, _ := logging.CtxRequestID(ctx)

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("error_kind", kind)
		scope.SetTag("request_id", reqID.String())
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error(msg,
		"error", err,
		"kind", kind,
		"sentry.EventID", evID,
	)
}
