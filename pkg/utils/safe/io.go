package safe

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/m-mizutani/ampship/pkg/utils/logging"
)

// Close closes closer and logs a failure. io.EOF is not a failure.
func Close(closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil && !errors.Is(err, io.EOF) {
		logging.Default().Warn("Fail to close resource",
			slog.String("type", fmt.Sprintf("%T", closer)),
			slog.Any("error", err),
		)
	}
}

// Rollback rolls tx back unless it is already committed.
func Rollback(tx *sql.Tx) {
	if tx == nil {
		return
	}
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logging.Default().Warn("Fail to rollback transaction", slog.Any("error", err))
	}
}
