// Package errutil reports non-fatal errors.
package errutil

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Handle logs err with its goerr values and forwards it to Sentry when a client is configured.
// The hub bound to ctx is used if present, otherwise the global hub.
func Handle(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	values := goerr.Values(err)

	attrs := []any{slog.Any("error", err)}
	for k, v := range values {
		attrs = append(attrs, slog.Any(k, v))
	}
	ctxlog.From(ctx).Error(msg, attrs...)

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	if hub.Client() == nil {
		return
	}
	hub.WithScope(func(scope *sentry.Scope) {
		if len(values) > 0 {
			scope.SetContext("goerr", sentry.Context(values))
		}
		scope.SetTag("message", msg)
		hub.CaptureException(err)
	})
}
