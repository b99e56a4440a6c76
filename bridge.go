// Package intlbridge connects a guest environment that cannot make direct
// host calls to the host's internationalization facilities. The two sides
// share a single flat channel: a request string describing which sub-API to
// construct and which method to invoke, answered with either a string result
// or nothing at all.
//
// The typed side builds request strings with Request.Encode and reads results
// through a Handle. The host side answers them with a Host, which resolves
// sub-API names against a registry of constructors and contains every failure
// to an absent response.
package intlbridge

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return "intlbridge/" + string(c)
}

const ctxKeyHandle = contextKey("handleKey")

// Handle is the capability through which the typed side reaches host
// functionality. It answers arbitrary string keys; a key the host cannot
// evaluate yields ok == false. Implementations must be safe for concurrent
// use and must never panic on any input key.
type Handle interface {
	Lookup(ctx context.Context, key string) (string, bool)
}

// HandleFunc adapts a plain function to the Handle interface.
type HandleFunc func(ctx context.Context, key string) (string, bool)

func (f HandleFunc) Lookup(ctx context.Context, key string) (string, bool) {
	return f(ctx, key)
}

// ToContext pushes a handle into the supplied context for easier propagation.
func ToContext(ctx context.Context, h Handle) context.Context {
	return context.WithValue(ctx, ctxKeyHandle, h)
}

// FromContext extracts a handle being propagated through the context if any exist.
func FromContext(ctx context.Context) Handle {
	h, ok := ctx.Value(ctxKeyHandle).(Handle)
	if !ok {
		return nil
	}

	return h
}
