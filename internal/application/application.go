package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"pwstrength/internal/config"
	service "pwstrength/internal/domain/service/strength"
	"pwstrength/internal/infrastructure/metrics"
	"pwstrength/internal/server"
	"pwstrength/internal/worker"
	"pwstrength/pkg/application/modules"
	"pwstrength/pkg/contextx"
	"pwstrength/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Run поднимает HTTP API, probe и metrics сервера и, если включён, воркер
// импорта словаря. Возвращается после отмены ctx и остановки всех модулей.
func Run(ctx context.Context, cfg config.Config) error {
	ctx = contextx.WithLogger(ctx, logger(ctx).With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	))

	conns := newConnections(cfg)
	defer conns.Close(context.WithoutCancel(ctx))

	dict, checks, err := newDictionary(ctx, cfg, conns)
	if err != nil {
		return fmt.Errorf("newDictionary: %w", err)
	}

	strengthService := service.NewStrengthService(dict).
		WithRecorder(metrics.NewRecorder(prometheus.DefaultRegisterer)).
		WithLookupCacheTTL(cfg.Dictionary.CacheTTL)

	var dictionaryImport *worker.DictionaryImport

	if cfg.Asynq.Enabled {
		if dictionaryImport, err = newDictionaryImport(ctx, cfg, conns); err != nil {
			return fmt.Errorf("newDictionaryImport: %w", err)
		}
	}

	router := server.NewRouter(
		server.NewServer(server.NewStrengthServer(strengthService)),
		server.RouterOptions{
			LogFieldMaxLen: cfg.Log.FieldMaxLen,
			MaxBodyBytes:   cfg.HTTP.MaxBodyBytes,
		},
	)

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ListenAddress:   cfg.HTTP.ListenAddress,
		ReadTimeout:     cfg.HTTP.ReadTimeout,
		WriteTimeout:    cfg.HTTP.WriteTimeout,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, router)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		Checks:        checks,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
		Gatherer:      prometheus.DefaultGatherer,
	}.Run(ctx, g)

	if dictionaryImport != nil {
		modules.AsynqServer{
			Redis:       conns.redis.AsynqOpt(),
			Concurrency: cfg.Asynq.Concurrency,
		}.Run(
			ctx,
			g,
			modules.AsynqQueues{cfg.Asynq.Queue: 1},
			modules.AsynqHandler{
				Pattern: worker.TypeDictionaryImport,
				Handle:  dictionaryImport.ProcessTask,
			},
		)
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}
