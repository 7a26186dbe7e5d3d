package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"

	"pwstrength/internal/application"
	"pwstrength/internal/config"
	"pwstrength/internal/worker"
	"pwstrength/pkg/contextx"
	"pwstrength/pkg/logx"
)

type Opts struct {
	Source   string `short:"s" long:"source" default:"file" choice:"file" choice:"s3" description:"where the word list lives"`
	Location string `short:"l" long:"location" required:"true" description:"file path, or object key in S3_BUCKET" value-name:"PATH"`
	Direct   bool   `long:"direct" description:"import in this process instead of enqueueing a task"`
	Migrate  bool   `long:"migrate" description:"apply migrations before a direct postgres import"`
}

func main() {
	var opts Opts

	if _, err := flags.ParseArgs(&opts, os.Args[1:]); err != nil {
		os.Exit(2) //nolint:mnd
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "dictimport: config.Load:", err)
		os.Exit(1) //nolint:gocritic
	}

	log := slog.New(logx.NewHandler(os.Stderr, cfg.Log.Format, cfg.Log.SlogLevel()))
	ctx = contextx.WithLogger(ctx, log)

	if err := run(ctx, cfg, opts); err != nil {
		log.Error("dictionary import failed", logx.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, opts Opts) error {
	payload := worker.DictionaryImportPayload{
		Source:   worker.ImportSource(opts.Source),
		Location: opts.Location,
	}

	if !opts.Direct {
		info, err := application.EnqueueDictionaryImport(ctx, cfg, payload)
		if err != nil {
			return fmt.Errorf("application.EnqueueDictionaryImport: %w", err)
		}

		fmt.Printf("enqueued %s (task %s, queue %s)\n", info.Type, info.ID, info.Queue)

		return nil
	}

	n, err := application.ImportDictionary(ctx, cfg, payload, application.ImportOptions{Migrate: opts.Migrate})
	if err != nil {
		return fmt.Errorf("application.ImportDictionary: %w", err)
	}

	fmt.Printf("imported %d words into %s\n", n, cfg.Dictionary.Source)

	return nil
}
