package middleware

import (
	"net/http"

	"github.com/pantrystack/pantry-tracker/pkg/correlationid"
)

// CorrelationID propagates the caller's correlation ID, minting one when
// the request does not carry the header. The ID is echoed on the response.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(correlationid.Header)
			if id == "" {
				id = correlationid.Generate()
			}

			w.Header().Set(correlationid.Header, id)

			ctx := correlationid.NewContext(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
