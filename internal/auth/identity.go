package auth

import "context"

// Identity is the resolved caller. Authentication itself happens elsewhere;
// this service only consumes the outcome.
type Identity struct {
	UserID  string `json:"userId"`
	IsAdmin bool   `json:"isAdmin"`
}

type identityCtxKey struct{}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, identity)
}

func FromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey{}).(Identity)
	if !ok || identity.UserID == "" {
		return Identity{}, false
	}
	return identity, true
}
