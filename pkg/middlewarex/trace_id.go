package middlewarex

import (
	"net/http"

	"github.com/rs/xid"

	"pwstrength/pkg/contextx"
	"pwstrength/pkg/httpx"
)

const maxTraceIDLen = 64

// TraceID reuses the caller's X-Trace-Id when it looks sane and generates a
// new one otherwise.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(httpx.HeaderNameTraceID)

		if traceID == "" || len(traceID) > maxTraceIDLen {
			traceID = xid.New().String()
		}

		ctx := contextx.WithTraceID(r.Context(), contextx.TraceID(traceID))

		w.Header().Set(httpx.HeaderNameTraceID, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
