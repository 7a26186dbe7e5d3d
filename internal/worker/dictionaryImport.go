package worker

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"

	"pwstrength/internal/infrastructure/dictionary"
	"pwstrength/pkg/contextx"
	"pwstrength/pkg/errcodes"
	"pwstrength/pkg/logx"
)

var (
	json   = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip
	logger = contextx.LoggerFromContextOrDefault          //nolint:gochecknoglobals
)

const (
	TypeDictionaryImport = "dictionary:import"

	importMaxRetry = 3
	importTimeout  = 10 * time.Minute
)

type ImportSource string

const (
	ImportSourceFile ImportSource = "file"
	ImportSourceS3   ImportSource = "s3"
)

// DictionaryImportPayload описывает, откуда брать список: путь к файлу или
// ключ объекта в бакете.
type DictionaryImportPayload struct {
	Source   ImportSource `json:"source"`
	Location string       `json:"location"`
}

func (p DictionaryImportPayload) validate() error {
	if p.Location == "" {
		return failure.NewInvalidArgumentError(
			"empty location",
			failure.WithCode(errcodes.InvalidImportTaskPayload),
		)
	}

	switch p.Source {
	case ImportSourceFile, ImportSourceS3:
		return nil
	default:
		return failure.NewInvalidArgumentError(
			fmt.Sprintf("unknown source %q", p.Source),
			failure.WithCode(errcodes.InvalidImportTaskPayload),
		)
	}
}

func NewDictionaryImportTask(payload DictionaryImportPayload, queue string) (*asynq.Task, error) {
	if err := payload.validate(); err != nil {
		return nil, fmt.Errorf("payload.validate: %w", err)
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return asynq.NewTask(
		TypeDictionaryImport,
		b,
		asynq.Queue(queue),
		asynq.MaxRetry(importMaxRetry),
		asynq.Timeout(importTimeout),
	), nil
}

// Importer целиком заменяет словарь в хранилище.
type Importer interface {
	Import(ctx context.Context, words []string) error
}

type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// DictionaryImport загружает список распространённых паролей в Redis или
// Postgres.
type DictionaryImport struct {
	importer Importer
	s3Client objectGetter
	bucket   string
}

func NewDictionaryImport(importer Importer) *DictionaryImport {
	return &DictionaryImport{importer: importer}
}

func (w *DictionaryImport) WithS3(client objectGetter, bucket string) *DictionaryImport {
	w.s3Client = client
	w.bucket = bucket
	return w
}

// ProcessTask обрабатывает задачу asynq. Битый payload не ретраится.
func (w *DictionaryImport) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload DictionaryImportPayload

	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("json.Unmarshal: %v: %w", err, asynq.SkipRetry)
	}

	if err := payload.validate(); err != nil {
		return fmt.Errorf("payload.validate: %v: %w", err, asynq.SkipRetry)
	}

	taskID, _ := asynq.GetTaskID(ctx)
	ctx = contextx.WithLogger(ctx, logger(ctx).With(
		slog.String(logx.FieldTaskID, taskID),
		slog.String(logx.FieldTaskType, t.Type()),
	))

	if _, err := w.Import(ctx, payload); err != nil {
		return fmt.Errorf("Import: %w", err)
	}

	return nil
}

// Import читает список и записывает его в хранилище. Возвращает число слов.
func (w *DictionaryImport) Import(ctx context.Context, payload DictionaryImportPayload) (int, error) {
	if err := payload.validate(); err != nil {
		return 0, fmt.Errorf("payload.validate: %w", err)
	}

	start := time.Now()

	body, err := w.open(ctx, payload)
	if err != nil {
		return 0, err
	}

	defer func() {
		if err := body.Close(); err != nil {
			logger(ctx).Error("body.Close", logx.Error(err))
		}
	}()

	words, err := dictionary.ReadWords(body)
	if err != nil {
		return 0, fmt.Errorf("dictionary.ReadWords: %w", err)
	}

	if err := w.importer.Import(ctx, words); err != nil {
		return 0, fmt.Errorf("importer.Import: %w", err)
	}

	logger(ctx).Info(
		"dictionary imported",
		slog.String(logx.FieldDictionarySource, string(payload.Source)),
		slog.String("location", payload.Location),
		slog.Int(logx.FieldWords, len(words)),
		slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
	)

	return len(words), nil
}

func (w *DictionaryImport) open(ctx context.Context, payload DictionaryImportPayload) (io.ReadCloser, error) {
	if payload.Source == ImportSourceS3 {
		if w.s3Client == nil {
			return nil, failure.NewInvalidArgumentError(
				"s3 is not configured",
				failure.WithCode(errcodes.InvalidDictionarySource),
			)
		}

		body, err := dictionary.OpenS3(ctx, w.s3Client, w.bucket, payload.Location)
		if err != nil {
			return nil, fmt.Errorf("dictionary.OpenS3: %w", err)
		}

		return body, nil
	}

	fh, err := os.Open(payload.Location)
	if err != nil {
		return nil, fmt.Errorf("os.Open: %w", err)
	}

	return fh, nil
}
