package reply

import (
	"context"
	"errors"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"pwstrength/pkg/contextx"
	"pwstrength/pkg/errcodes"
	"pwstrength/pkg/logx"
	"pwstrength/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// codedError is an infrastructure error that carries its own error code.
type codedError interface {
	ErrorCode() failure.ErrorCode
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

func Error(ctx context.Context, w http.ResponseWriter, err error) {
	logger(ctx).Error("error", logx.Error(err))

	response := rest.Error{
		Code:      rest.ErrorCode(failure.Code(err).String()),
		Message:   failure.Description(err),
		SupportID: supportID(ctx),
	}

	switch {
	case failure.IsInvalidArgumentError(err):
		withDefaultCode(&response, errcodes.ValidationError)
		JSON(ctx, w, http.StatusBadRequest, response)
	case failure.IsNotFoundError(err):
		withDefaultCode(&response, errcodes.NotFound)
		JSON(ctx, w, http.StatusNotFound, response)
	case failure.IsForbiddenError(err):
		withDefaultCode(&response, errcodes.Forbidden)
		JSON(ctx, w, http.StatusForbidden, response)
	case failure.IsUnprocessableEntityError(err):
		JSON(ctx, w, http.StatusUnprocessableEntity, response)
	default:
		var coded codedError
		if errors.As(err, &coded) {
			response.Code = rest.ErrorCode(coded.ErrorCode().String())
		}

		withDefaultCode(&response, errcodes.InternalServerError)
		JSON(ctx, w, http.StatusInternalServerError, response)
	}
}

func withDefaultCode(response *rest.Error, code failure.ErrorCode) {
	if response.Code == "" {
		response.Code = rest.ErrorCode(code.String())
	}
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
