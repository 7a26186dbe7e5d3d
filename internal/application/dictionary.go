package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"pwstrength/internal/config"
	service "pwstrength/internal/domain/service/strength"
	"pwstrength/internal/infrastructure/dictionary"
	"pwstrength/internal/infrastructure/persistence"
	"pwstrength/internal/worker"
	"pwstrength/pkg/application/connectors"
	"pwstrength/pkg/logx"
	"pwstrength/pkg/probe"
)

// connections лениво открывает внешние хранилища, которые нужны выбранному
// источнику словаря.
type connections struct {
	postgres *connectors.Postgres
	redis    *connectors.Redis
	s3       connectors.S3
}

func newConnections(cfg config.Config) *connections {
	return &connections{
		postgres: &connectors.Postgres{
			DSN:             cfg.Postgres.DSN,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		},
		redis: &connectors.Redis{
			Address:            cfg.Redis.Address,
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			DatabaseNumber:     cfg.Redis.DatabaseNumber,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdleConnections,
			MaxIdleConnections: cfg.Redis.MaxIdleConnections,
		},
		s3: connectors.S3{
			Endpoint:        cfg.S3.Endpoint,
			Region:          cfg.S3.Region,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			UsePathStyle:    cfg.S3.UsePathStyle,
		},
	}
}

func (c *connections) Close(ctx context.Context) {
	c.postgres.Close(ctx)
	c.redis.Close(ctx)
}

// newDictionary возвращает словарь для выбранного источника и проверки
// готовности для внешних хранилищ.
func newDictionary(
	ctx context.Context,
	cfg config.Config,
	conns *connections,
) (service.Dictionary, []probe.Check, error) {
	logger(ctx).Info("dictionary source selected", slog.String(logx.FieldDictionarySource, string(cfg.Dictionary.Source)))

	switch cfg.Dictionary.Source {
	case config.DictionarySourceFile:
		m, err := dictionary.LoadFile(ctx, cfg.Dictionary.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("dictionary.LoadFile: %w", err)
		}

		return m, nil, nil
	case config.DictionarySourceS3:
		client, err := conns.s3.Client(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("s3.Client: %w", err)
		}

		m, err := dictionary.LoadS3(ctx, client, cfg.S3.Bucket, cfg.Dictionary.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("dictionary.LoadS3: %w", err)
		}

		return m, nil, nil
	case config.DictionarySourceRedis:
		client, err := conns.redis.Client(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("redis.Client: %w", err)
		}

		check := probe.Check{
			Name: "redis",
			Check: func(ctx context.Context) error {
				return client.Ping(ctx).Err()
			},
		}

		return dictionary.NewRedis(client, cfg.Dictionary.RedisKey), []probe.Check{check}, nil
	case config.DictionarySourcePostgres:
		db, err := conns.postgres.Client(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres.Client: %w", err)
		}

		repo := persistence.NewCommonPasswordRepository(db)

		stats, err := repo.Stats(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("repo.Stats: %w", err)
		}

		if stats.Words == 0 {
			logger(ctx).Warn("common_passwords table is empty, run dictimport")
		} else {
			logger(ctx).Info(
				"dictionary loaded",
				slog.Int(logx.FieldWords, stats.Words),
				slog.Time("imported-at", stats.ImportedAt),
			)
		}

		check := probe.Check{
			Name:  "postgres",
			Check: db.PingContext,
		}

		return repo, []probe.Check{check}, nil
	default:
		return nil, nil, fmt.Errorf("unknown dictionary source %q", cfg.Dictionary.Source)
	}
}

// newImporter возвращает хранилище, в которое пишет задача импорта. Импорт
// имеет смысл только для redis и postgres.
func newImporter(ctx context.Context, cfg config.Config, conns *connections) (worker.Importer, error) {
	switch cfg.Dictionary.Source {
	case config.DictionarySourceRedis:
		client, err := conns.redis.Client(ctx)
		if err != nil {
			return nil, fmt.Errorf("redis.Client: %w", err)
		}

		return dictionary.NewRedis(client, cfg.Dictionary.RedisKey), nil
	case config.DictionarySourcePostgres:
		db, err := conns.postgres.Client(ctx)
		if err != nil {
			return nil, fmt.Errorf("postgres.Client: %w", err)
		}

		return persistence.NewCommonPasswordRepository(db), nil
	default:
		return nil, fmt.Errorf("dictionary source %q does not support import, use redis or postgres", cfg.Dictionary.Source)
	}
}

// newDictionaryImport собирает обработчик импорта. S3 подключается, только
// если задан бакет.
func newDictionaryImport(ctx context.Context, cfg config.Config, conns *connections) (*worker.DictionaryImport, error) {
	importer, err := newImporter(ctx, cfg, conns)
	if err != nil {
		return nil, err
	}

	w := worker.NewDictionaryImport(importer)

	if cfg.S3.Bucket != "" {
		var client *s3.Client

		if client, err = conns.s3.Client(ctx); err != nil {
			return nil, fmt.Errorf("s3.Client: %w", err)
		}

		w = w.WithS3(client, cfg.S3.Bucket)
	}

	return w, nil
}
