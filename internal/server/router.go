package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pwstrength/pkg/logx"
	"pwstrength/pkg/middlewarex"
)

type RouterOptions struct {
	LogFieldMaxLen int
	MaxBodyBytes   int64
}

// NewRouter собирает middleware и маршруты. Дампы запросов и ответов
// проходят через маскировщик паролей.
func NewRouter(s Server, opts RouterOptions) http.Handler {
	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.BodyLimit(opts.MaxBodyBytes),
		middlewarex.RequestLogging(masker, opts.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, opts.LogFieldMaxLen),
	)

	s.RegisterRoutes(r)

	return r
}
