package device

import "context"

type contextKey struct{}

// WithContext returns a copy of ctx carrying p.
func WithContext(ctx context.Context, p *Properties) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// FromContext returns the classifier stored by Middleware, or nil.
func FromContext(ctx context.Context) *Properties {
	if ctx == nil {
		return nil
	}
	p, _ := ctx.Value(contextKey{}).(*Properties)
	return p
}
