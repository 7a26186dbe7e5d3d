package application

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"pwstrength/internal/config"
)

func TestNewDictionaryFile(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "dictionary.txt")
	rq.NoError(os.WriteFile(path, []byte("password\nQwerty\n"), 0o600))

	cfg := config.Config{Dictionary: config.Dictionary{Source: config.DictionarySourceFile, Path: path}}

	dict, checks, err := newDictionary(ctx, cfg, newConnections(cfg))
	rq.NoError(err)
	rq.Empty(checks)

	common, err := dict.Contains(ctx, "qwerty")
	rq.NoError(err)
	rq.True(common)
}

func TestNewImporterRejectsReadOnlySources(t *testing.T) {
	rq := require.New(t)

	for _, source := range []config.DictionarySource{config.DictionarySourceFile, config.DictionarySourceS3} {
		cfg := config.Config{Dictionary: config.Dictionary{Source: source}}

		_, err := newImporter(context.Background(), cfg, newConnections(cfg))
		rq.ErrorContains(err, "does not support import")
	}
}
