package reply_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"pwstrength/pkg/contextx"
	"pwstrength/pkg/errcodes"
	"pwstrength/pkg/httpx/reply"
	"pwstrength/pkg/rest"
)

type storageError struct{}

func (storageError) Error() string                { return "storage is down" }
func (storageError) ErrorCode() failure.ErrorCode { return errcodes.DictionaryUnavailable }

func TestError(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		err    error
		status int
		code   failure.ErrorCode
	}{
		{
			name: "Invalid argument with code",
			err: fmt.Errorf("handler: %w", failure.NewInvalidArgumentError(
				"bad",
				failure.WithCode(errcodes.InvalidPassword),
				failure.WithDescription("Password must be valid UTF-8 text"),
			)),
			status: http.StatusBadRequest,
			code:   errcodes.InvalidPassword,
		},
		{
			name:   "Coded infrastructure error",
			err:    fmt.Errorf("isCommon: %w", storageError{}),
			status: http.StatusInternalServerError,
			code:   errcodes.DictionaryUnavailable,
		},
		{
			name:   "Plain error",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			code:   errcodes.InternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			ctx := contextx.WithTraceID(context.Background(), contextx.TraceID("trace-1"))
			w := httptest.NewRecorder()

			reply.Error(ctx, w, tc.err)

			rq.Equal(tc.status, w.Code)
			rq.Equal("no-store", w.Header().Get("Cache-Control"))

			var body rest.Error
			rq.NoError(jsoniter.Unmarshal(w.Body.Bytes(), &body))
			rq.Equal(tc.code.String(), string(body.Code))
			rq.Equal("trace-1", body.SupportID)
		})
	}
}
