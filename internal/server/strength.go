package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"pwstrength/internal/domain/entity"
	"pwstrength/pkg/contextx"
	"pwstrength/pkg/errcodes"
	"pwstrength/pkg/httpx/reply"
	"pwstrength/pkg/httpx/req"
	"pwstrength/pkg/logx"
	"pwstrength/pkg/rest"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type strengthService interface {
	Check(ctx context.Context, password string) (entity.Report, error)
	Local(password string) (entity.Report, error)
}

type StrengthServer struct {
	strengthService strengthService
}

func NewStrengthServer(strengthService strengthService) StrengthServer {
	return StrengthServer{
		strengthService: strengthService,
	}
}

func (s StrengthServer) postCheck(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	request, err := readCheckRequest(r)
	if err != nil {
		return fmt.Errorf("readCheckRequest: %w", err)
	}

	report, err := s.strengthService.Check(ctx, request.Password)
	if err != nil {
		return fmt.Errorf("strengthService.Check: %w", err)
	}

	logChecked(ctx, report)
	reply.JSON(ctx, w, http.StatusOK, newRESTCheckResponse(report))

	return nil
}

func (s StrengthServer) postCheckLocal(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	request, err := readCheckRequest(r)
	if err != nil {
		return fmt.Errorf("readCheckRequest: %w", err)
	}

	report, err := s.strengthService.Local(request.Password)
	if err != nil {
		return fmt.Errorf("strengthService.Local: %w", err)
	}

	logChecked(ctx, report)
	reply.JSON(ctx, w, http.StatusOK, newRESTCheckResponse(report))

	return nil
}

// logChecked пишет только итог, пароль в лог не попадает.
func logChecked(ctx context.Context, report entity.Report) {
	logger(ctx).Debug(
		"password checked",
		slog.String(logx.FieldCheckMode, string(report.Mode)),
		logx.Stringer(logx.FieldRating, report.Rating),
		slog.Bool("common", report.Common),
	)
}

// readCheckRequest принимает как форму (password=...), так и JSON.
func readCheckRequest(r *http.Request) (rest.CheckRequest, error) {
	var request rest.CheckRequest

	switch mediaType := req.MediaType(r); mediaType {
	case req.ContentTypeForm:
		if err := r.ParseForm(); err != nil {
			return request, failure.NewInvalidArgumentError(
				fmt.Errorf("r.ParseForm: %w", err).Error(),
				failure.WithCode(errcodes.ValidationError),
				failure.WithDescription("Invalid form body"),
			)
		}

		request.Password = r.PostForm.Get("password")

		if err := req.Validate(r.Context(), &request); err != nil {
			return request, fmt.Errorf("req.Validate: %w", err)
		}
	case req.ContentTypeJSON, "":
		if err := req.Read(r, &request); err != nil {
			return request, fmt.Errorf("req.Read: %w", err)
		}
	default:
		return request, failure.NewInvalidArgumentError(
			"unsupported content type "+mediaType,
			failure.WithCode(errcodes.UnsupportedContentType),
			failure.WithDescription("Use application/json or application/x-www-form-urlencoded"),
		)
	}

	return request, nil
}
