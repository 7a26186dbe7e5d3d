// Package scorer оценивает стойкость пароля по набору классов символов.
// Все функции чистые и безопасны для конкурентного вызова.
package scorer

import (
	"math"
	"unicode/utf8"

	"git.appkode.ru/pub/go/failure"

	"pwstrength/internal/domain/entity"
	"pwstrength/pkg/errcodes"
)

// Размеры классов символов.
const (
	lowerSize  = 26
	upperSize  = 26
	digitSize  = 10
	symbolSize = 32
)

const (
	fullScoreEntropy = 60.0
	maxScore         = 100

	longLength       = 12
	longBonus        = 10
	mediumLength     = 8
	mediumBonus      = 5
	passphraseLength = 20

	veryWeakBelow = 25
	weakBelow     = 45
	fairBelow     = 65
	strongBelow   = 85
)

const (
	SuggestionEmpty      = "Type a password to get suggestions."
	SuggestionLength     = "Use at least 12 characters."
	SuggestionUpper      = "Add uppercase letters (A–Z)."
	SuggestionLower      = "Add lowercase letters (a–z)."
	SuggestionDigit      = "Include digits (0–9)."
	SuggestionSymbol     = "Include special characters (e.g., @!#)."
	SuggestionPassphrase = "Nice! Consider a memorable passphrase or mix of words."
)

type classes struct {
	lower, upper, digit, symbol bool
	length                      int
}

// classify раскладывает символы по классам: a-z, A-Z, 0-9, всё остальное.
func classify(password string) classes {
	var c classes

	for _, r := range password {
		c.length++

		switch {
		case r >= 'a' && r <= 'z':
			c.lower = true
		case r >= 'A' && r <= 'Z':
			c.upper = true
		case r >= '0' && r <= '9':
			c.digit = true
		default:
			c.symbol = true
		}
	}

	return c
}

func (c classes) charsetSize() int {
	size := 0

	if c.lower {
		size += lowerSize
	}
	if c.upper {
		size += upperSize
	}
	if c.digit {
		size += digitSize
	}
	if c.symbol {
		size += symbolSize
	}

	return size
}

// ComputeEntropy returns length*log2(charsetSize) rounded to two decimals,
// half away from zero. Length counts code points.
func ComputeEntropy(password string) float64 {
	return entropy(classify(password))
}

func entropy(c classes) float64 {
	size := c.charsetSize()
	if size == 0 || c.length == 0 {
		return 0
	}

	return round2(float64(c.length) * math.Log2(float64(size)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// EntropyToScore maps entropy to 0..100: 60 bits and above is a full base
// score, long passwords get a small bonus on top.
func EntropyToScore(entropy float64, length int) int {
	score := 0
	if entropy > 0 {
		score = int(math.Floor(math.Min(maxScore, (entropy/fullScoreEntropy)*100)))
	}

	switch {
	case length >= longLength:
		score += longBonus
	case length >= mediumLength:
		score += mediumBonus
	}

	return min(max(score, 0), maxScore)
}

// RatingFor переводит score в рейтинг. Распространённый пароль всегда VeryWeak.
func RatingFor(score int, isCommon bool) entity.Rating {
	if isCommon {
		return entity.VeryWeak
	}

	switch {
	case score < veryWeakBelow:
		return entity.VeryWeak
	case score < weakBelow:
		return entity.Weak
	case score < fairBelow:
		return entity.Fair
	case score < strongBelow:
		return entity.Strong
	default:
		return entity.VeryStrong
	}
}

// Suggest returns improvement hints in a fixed order. The result is empty,
// not nil, for a strong password.
func Suggest(password string) []string {
	return suggest(classify(password))
}

func suggest(c classes) []string {
	if c.length == 0 {
		return []string{SuggestionEmpty}
	}

	suggestions := make([]string, 0, 6) //nolint:mnd

	if c.length < longLength {
		suggestions = append(suggestions, SuggestionLength)
	}
	if !c.upper {
		suggestions = append(suggestions, SuggestionUpper)
	}
	if !c.lower {
		suggestions = append(suggestions, SuggestionLower)
	}
	if !c.digit {
		suggestions = append(suggestions, SuggestionDigit)
	}
	if !c.symbol {
		suggestions = append(suggestions, SuggestionSymbol)
	}
	if c.length >= passphraseLength {
		suggestions = append(suggestions, SuggestionPassphrase)
	}

	return suggestions
}

// Validate rejects input that is not UTF-8 text. The empty password is valid.
func Validate(password string) error {
	if !utf8.ValidString(password) {
		return failure.NewInvalidArgumentError(
			"password is not valid UTF-8",
			failure.WithCode(errcodes.InvalidPassword),
			failure.WithDescription("Password must be valid UTF-8 text"),
		)
	}

	return nil
}

// Score is the single implementation shared by the instant and the
// authoritative checks.
func Score(password string, isCommon bool) (entity.ScoreResult, error) {
	if err := Validate(password); err != nil {
		return entity.ScoreResult{}, err
	}

	c := classify(password)
	bits := entropy(c)
	score := EntropyToScore(bits, c.length)

	return entity.ScoreResult{
		EntropyBits: bits,
		Length:      c.length,
		Score:       score,
		Rating:      RatingFor(score, isCommon),
		Suggestions: suggest(c),
	}, nil
}
