package middlewarex

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"pwstrength/pkg/errcodes"
	"pwstrength/pkg/httpx/reply"
	"pwstrength/pkg/logx"
	"pwstrength/pkg/rest"
)

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			if rec := recover(); rec != nil {
				logger(ctx).Error(
					"panic in handler",
					slog.Any(logx.FieldError, rec),
					slog.String(logx.FieldStack, string(debug.Stack())),
				)

				reply.JSON(ctx, w, http.StatusInternalServerError, rest.Error{
					Code:    rest.ErrorCode(errcodes.InternalServerError),
					Message: "internal error",
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
