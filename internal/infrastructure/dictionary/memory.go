package dictionary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/samber/lo"

	"pwstrength/internal/domain/value"
	"pwstrength/pkg/contextx"
	"pwstrength/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Memory is an immutable in-process set of common passwords.
type Memory struct {
	set map[string]struct{}
}

// NewMemory builds a set from already normalized words.
func NewMemory(words ...string) *Memory {
	return &Memory{
		set: lo.SliceToMap(words, func(w string) (string, struct{}) {
			return w, struct{}{}
		}),
	}
}

func Parse(r io.Reader) (*Memory, error) {
	words, err := ReadWords(r)
	if err != nil {
		return nil, fmt.Errorf("ReadWords: %w", err)
	}

	return NewMemory(words...), nil
}

// LoadFile reads the word list at path. A missing file is not an error: the
// service keeps working with an empty dictionary and says so in the log.
func LoadFile(ctx context.Context, path string) (*Memory, error) {
	fh, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger(ctx).Warn("dictionary file not found, common password check disabled", slog.String("path", path))

		return NewMemory(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("os.Open: %w", err)
	}

	defer func() {
		if err := fh.Close(); err != nil {
			logger(ctx).Error("fh.Close", logx.Error(err))
		}
	}()

	m, err := Parse(fh)
	if err != nil {
		return nil, fmt.Errorf("Parse(%s): %w", path, err)
	}

	logger(ctx).Info("dictionary loaded", slog.String("path", path), slog.Int(logx.FieldWords, m.Len()))

	return m, nil
}

func (m *Memory) Contains(_ context.Context, password string) (bool, error) {
	_, ok := m.set[value.NormalizePassword(password)]

	return ok, nil
}

func (m *Memory) Len() int {
	return len(m.set)
}
