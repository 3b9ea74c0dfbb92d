package correlationid

import (
	"context"

	"github.com/google/uuid"
)

// Header is the HTTP header carrying the correlation ID.
const Header = "X-Correlation-ID"

type contextKey struct{}

// NewContext returns a context carrying the given correlation ID.
func NewContext(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, contextKey{}, correlationID)
}

// FromContext extracts the correlation ID from the context.
func FromContext(ctx context.Context) (string, bool) {
	correlationID, ok := ctx.Value(contextKey{}).(string)
	return correlationID, ok
}

// Generate mints a new correlation ID.
func Generate() string {
	return uuid.NewString()
}
