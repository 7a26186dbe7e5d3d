package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"pwstrength/internal/domain/value"
)

const maxLineSize = 1 << 20

// ReadWords reads a newline separated word list. Lines are trimmed and
// normalized; blank lines and duplicates are dropped, first occurrence wins.
func ReadWords(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize) //nolint:mnd

	var words []string

	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}

		words = append(words, value.NormalizePassword(word))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner.Err: %w", err)
	}

	return lo.Uniq(words), nil
}
