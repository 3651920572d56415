package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/wishlane-app/wishlane-backend/pkg/logger"
)

const requestIDHeader = "X-Request-Id"

// RequestID tags every request with a UUID, reusing the caller's
// X-Request-Id only when it is itself a UUID. The id is echoed on the
// response and attached to the request-scoped log entry.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := inboundRequestID(r)
			w.Header().Set(requestIDHeader, reqID)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, reqID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func inboundRequestID(r *http.Request) string {
	raw := r.Header.Get(requestIDHeader)
	if raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			return id.String()
		}
	}
	return uuid.NewString()
}
