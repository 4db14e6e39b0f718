package errutil

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/dsfetch/pkg/domain/types"
	"github.com/m-mizutani/dsfetch/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const sentryFlushTimeout = 2 * time.Second

// HandleError sends the error to Sentry and logs it. Sentry capture is a no-op unless sentry.Init has been called.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("kind", Kind(err))
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})
	evID := hub.CaptureException(err)
	// The process exits right after the error is handled, so buffered events must be sent now
	hub.Flush(sentryFlushTimeout)

	logging.From(ctx).Error(msg,
		"error", err,
		"kind", Kind(err),
		"sentry.EventID", evID,
	)
}

// Kind classifies err by the failure step it came from
func Kind(err error) string {
	switch {
	case errors.Is(err, types.ErrInvalidOption):
		return "invalid_option"
	case errors.Is(err, types.ErrTransferFailed):
		return "transfer"
	case errors.Is(err, types.ErrArchiveNotFound):
		return "archive_not_found"
	case errors.Is(err, types.ErrExtractionFault):
		return "extraction"
	default:
		return "unknown"
	}
}
