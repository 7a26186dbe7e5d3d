package middlewarex

import (
	"log/slog"
	"net/http"
	"net/http/httputil"
	"strings"

	"pwstrength/pkg/logx"
)

func RequestLogging(
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
	logFieldMaxLen int,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			dumpBody := !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")

			dump, err := httputil.DumpRequest(r, dumpBody)

			logger(ctx).Info(
				logx.FieldHTTPRequest,
				slog.String(logx.FieldRequestBody, truncate(sensitiveDataMasker.Mask(dump), logFieldMaxLen)),
				logx.Error(err),
			)

			next.ServeHTTP(w, r)
		})
	}
}

func truncate(dump []byte, maxLen int) string {
	if maxLen > 0 && len(dump) > maxLen {
		dump = dump[:maxLen]
	}

	return string(dump)
}
