package actor

import "context"

type ctxKey struct{}

// WithActor stores the resolved actor in the context. The auth middleware
// calls this once per request after loading the caller's profile.
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, a)
}

// FromContext retrieves the actor from the context.
func FromContext(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(ctxKey{}).(Actor)
	return a, ok
}

// MustFromContext retrieves the actor or panics. Use only behind the auth
// middleware.
func MustFromContext(ctx context.Context) Actor {
	a, ok := FromContext(ctx)
	if !ok {
		panic("actor: not found in context")
	}
	return a
}
