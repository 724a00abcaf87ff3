package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/utils/logging"
)

// HeaderRequestID carries the request ID in both directions. A valid incoming
// value is reused so that tool calls can be traced across processes.
const HeaderRequestID = "X-Request-Id"

func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if id := types.RequestID(r.Header.Get(HeaderRequestID)); id.Valid() {
			ctx = logging.CtxWithRequestID(ctx, id)
		}
		reqID, ctx := logging.CtxRequestID(ctx)

		logger := logging.Default().With(slog.String("request_id", reqID.String()))
		ctx = logging.With(ctx, logger)
		w.Header().Set(HeaderRequestID, reqID.String())

		lw := &statusCodeLogger{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		requestedAt := time.Now()
		next.ServeHTTP(lw, r.WithContext(ctx))

		logger.Info("http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status_code", lw.statusCode),
			slog.Int64("content_length", r.ContentLength),
			slog.String("user_agent", r.UserAgent()),
			slog.Duration("elapsed", time.Since(requestedAt)),
		)
	})
}

type statusCodeLogger struct {
	http.ResponseWriter
	statusCode int
}

func (x *statusCodeLogger) WriteHeader(code int) {
	x.statusCode = code
	x.ResponseWriter.WriteHeader(code)
}
