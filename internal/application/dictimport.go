package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"pwstrength/internal/config"
	"pwstrength/internal/worker"
	"pwstrength/pkg/logx"
	"pwstrength/pkg/migrate"
)

type ImportOptions struct {
	// Migrate применяет миграции перед импортом в postgres.
	Migrate bool
}

// ImportDictionary выполняет импорт в текущем процессе, без очереди.
func ImportDictionary(
	ctx context.Context,
	cfg config.Config,
	payload worker.DictionaryImportPayload,
	opts ImportOptions,
) (int, error) {
	conns := newConnections(cfg)
	defer conns.Close(context.WithoutCancel(ctx))

	if opts.Migrate && cfg.Dictionary.Source == config.DictionarySourcePostgres {
		db, err := conns.postgres.Client(ctx)
		if err != nil {
			return 0, fmt.Errorf("postgres.Client: %w", err)
		}

		applied, err := migrate.FromDir(ctx, db, cfg.Postgres.MigrationsDir)
		if err != nil {
			return 0, fmt.Errorf("migrate.FromDir: %w", err)
		}

		logger(ctx).Info("migrations applied", slog.Any("files", applied))
	}

	dictionaryImport, err := newDictionaryImport(ctx, cfg, conns)
	if err != nil {
		return 0, fmt.Errorf("newDictionaryImport: %w", err)
	}

	n, err := dictionaryImport.Import(ctx, payload)
	if err != nil {
		return 0, fmt.Errorf("dictionaryImport.Import: %w", err)
	}

	return n, nil
}

// EnqueueDictionaryImport ставит задачу импорта в очередь asynq.
func EnqueueDictionaryImport(
	ctx context.Context,
	cfg config.Config,
	payload worker.DictionaryImportPayload,
) (*asynq.TaskInfo, error) {
	task, err := worker.NewDictionaryImportTask(payload, cfg.Asynq.Queue)
	if err != nil {
		return nil, fmt.Errorf("worker.NewDictionaryImportTask: %w", err)
	}

	conns := newConnections(cfg)

	client := asynq.NewClient(conns.redis.AsynqOpt())
	defer func() {
		if err := client.Close(); err != nil {
			logger(ctx).Error("asynqClient.Close", logx.Error(err))
		}
	}()

	info, err := client.EnqueueContext(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("asynqClient.Enqueue: %w", err)
	}

	logger(ctx).Info(
		"dictionary import enqueued",
		slog.String(logx.FieldTaskID, info.ID),
		slog.String(logx.FieldTaskType, info.Type),
		slog.String("queue", info.Queue),
	)

	return info, nil
}
