package device

import (
	"context"
	"log/slog"
)

type profileContextKey struct{}

// SetProfileToContext stores p in ctx.
func SetProfileToContext(ctx context.Context, p Profile) context.Context {
	return context.WithValue(ctx, profileContextKey{}, p)
}

// ProfileFromContext returns the Profile stored by Middleware.
// The second value is false when none is present.
func ProfileFromContext(ctx context.Context) (Profile, bool) {
	if ctx == nil {
		return Profile{}, false
	}
	p, ok := ctx.Value(profileContextKey{}).(Profile)
	return p, ok
}

// LoggerExtractor returns a ContextExtractor for the logger that records the
// device flags of the current request.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		p, ok := ProfileFromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return slog.Group("device",
			slog.Bool("mobile", p.Mobile),
			slog.Bool("touch", p.Touch),
		), true
	}
}
