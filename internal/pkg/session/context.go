package session

import "context"

type sidContextKey struct{}

// WithSID stores the session id in the context.
func WithSID(ctx context.Context, sid string) context.Context {
	return context.WithValue(ctx, sidContextKey{}, sid)
}

// SID returns the session id stored in the context, if any.
func SID(ctx context.Context) string {
	sid, _ := ctx.Value(sidContextKey{}).(string)
	return sid
}
