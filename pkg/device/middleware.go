package device

import "net/http"

// Lookup returns previously reported signals for the client behind r.
type Lookup func(r *http.Request) (Signals, bool)

// Middleware classifies every request and stores the Profile in its context.
// Header signals take precedence; lookup, when non-nil, fills the gaps with
// signals the client reported earlier. A nil c uses the default Classifier.
func Middleware(c *Classifier, lookup Lookup) func(http.Handler) http.Handler {
	if c == nil {
		c = defaultClassifier
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sig := FromRequest(r)
			if lookup != nil {
				if stored, ok := lookup(r); ok {
					sig = Merge(sig, stored)
				}
			}
			ctx := SetProfileToContext(r.Context(), c.Profile(sig))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
