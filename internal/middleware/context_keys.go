package middleware

import "context"

// actorKey is the key under which the authenticated actor's ID is stored in
// the request context.
const actorKey = contextKey("actor")

// GetActorFromCtx retrieves the authenticated actor ID used for audit
// attribution. The second return is false when no actor was authenticated.
func GetActorFromCtx(ctx context.Context) (string, bool) {
	actor, ok := ctx.Value(actorKey).(string)
	if !ok || actor == "" {
		return "", false
	}
	return actor, true
}

// WithActor returns a context carrying the given actor ID. Intended for
// batch entry points and tests that bypass the HTTP middleware.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}
