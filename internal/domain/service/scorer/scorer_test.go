package scorer_test

import (
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"pwstrength/internal/domain/entity"
	"pwstrength/internal/domain/service/scorer"
	"pwstrength/pkg/errcodes"
	"pwstrength/pkg/tests"
)

func TestComputeEntropy(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name     string
		password string
		entropy  float64
	}{
		{name: "Empty", password: "", entropy: 0},
		{name: "Lowercase only", password: "aaaa", entropy: 18.80},
		{name: "All classes", password: "Aa1!", entropy: 26.22},
		{name: "Digits only", password: "12345678", entropy: 26.58},
		{name: "Symbols only", password: "!!!!", entropy: 20},
		{name: "Uppercase only", password: "ABCDEFGH", entropy: 37.6},
		{name: "Non-ASCII counts as symbol", password: "héllo", entropy: 29.29},
		{name: "Long passphrase", password: "correcthorsebatterystaple", entropy: 117.51},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.Equal(tc.entropy, scorer.ComputeEntropy(tc.password))
		})
	}
}

func TestEntropyToScore(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		entropy float64
		length  int
		score   int
	}{
		{name: "Zero", entropy: 0, length: 0, score: 0},
		{name: "Floor", entropy: 18.8, length: 4, score: 31},
		{name: "No bonus below 8", entropy: 30, length: 7, score: 50},
		{name: "Bonus 5 at 8", entropy: 30, length: 8, score: 55},
		{name: "Bonus 5 at 11", entropy: 30, length: 11, score: 55},
		{name: "Bonus 10 at 12", entropy: 30, length: 12, score: 60},
		{name: "Capped base", entropy: 120, length: 4, score: 100},
		{name: "Clamped after bonus", entropy: 59.54, length: 10, score: 100},
		{name: "Negative entropy", entropy: -5, length: 3, score: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.Equal(tc.score, scorer.EntropyToScore(tc.entropy, tc.length))
		})
	}
}

func TestRatingFor(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		score    int
		isCommon bool
		rating   entity.Rating
	}{
		{score: 0, rating: entity.VeryWeak},
		{score: 24, rating: entity.VeryWeak},
		{score: 25, rating: entity.Weak},
		{score: 44, rating: entity.Weak},
		{score: 45, rating: entity.Fair},
		{score: 64, rating: entity.Fair},
		{score: 65, rating: entity.Strong},
		{score: 84, rating: entity.Strong},
		{score: 85, rating: entity.VeryStrong},
		{score: 100, rating: entity.VeryStrong},
		{score: 100, isCommon: true, rating: entity.VeryWeak},
		{score: 50, isCommon: true, rating: entity.VeryWeak},
	}

	for _, tc := range testCases {
		rq.Equal(tc.rating, scorer.RatingFor(tc.score, tc.isCommon), "score %d common %v", tc.score, tc.isCommon)
	}
}

func TestSuggest(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name        string
		password    string
		suggestions []string
	}{
		{
			name:        "Empty",
			password:    "",
			suggestions: []string{scorer.SuggestionEmpty},
		},
		{
			name:     "Short lowercase",
			password: "abc",
			suggestions: []string{
				"Use at least 12 characters.",
				"Add uppercase letters (A–Z).",
				"Include digits (0–9).",
				"Include special characters (e.g., @!#).",
			},
		},
		{
			name:     "Digits only",
			password: "123456789012",
			suggestions: []string{
				scorer.SuggestionUpper,
				scorer.SuggestionLower,
				scorer.SuggestionSymbol,
			},
		},
		{
			name:        "Strong",
			password:    "Ab1!Ab1!Ab1!",
			suggestions: []string{},
		},
		{
			name:     "Passphrase",
			password: "zzzzzzzzzzzzzzzzzzzzzz",
			suggestions: []string{
				scorer.SuggestionUpper,
				scorer.SuggestionDigit,
				scorer.SuggestionSymbol,
				scorer.SuggestionPassphrase,
			},
		},
		{
			name:        "Strong passphrase",
			password:    "Correct-Horse-Battery-Staple-42",
			suggestions: []string{scorer.SuggestionPassphrase},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			suggestions := scorer.Suggest(tc.password)

			rq.NotNil(suggestions)
			rq.Equal(tc.suggestions, suggestions)
		})
	}
}

func TestSuggestSkipsPresentClasses(t *testing.T) {
	rq := require.New(t)

	suggestions := scorer.Suggest("abc")
	rq.NotContains(suggestions, scorer.SuggestionLower)
	rq.NotContains(suggestions, scorer.SuggestionPassphrase)
}

func TestScore(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name     string
		password string
		isCommon bool
		result   entity.ScoreResult
	}{
		{
			name:     "Empty",
			password: "",
			result: entity.ScoreResult{
				EntropyBits: 0,
				Length:      0,
				Score:       0,
				Rating:      entity.VeryWeak,
				Suggestions: []string{scorer.SuggestionEmpty},
			},
		},
		{
			name:     "Common password with high entropy",
			password: "Password123!",
			isCommon: true,
			result: entity.ScoreResult{
				EntropyBits: 78.66,
				Length:      12,
				Score:       100,
				Rating:      entity.VeryWeak,
				Suggestions: []string{},
			},
		},
		{
			name:     "Same password not common",
			password: "Password123!",
			result: entity.ScoreResult{
				EntropyBits: 78.66,
				Length:      12,
				Score:       100,
				Rating:      entity.VeryStrong,
				Suggestions: []string{},
			},
		},
		{
			name:     "Medium length bonus",
			password: "password",
			result: entity.ScoreResult{
				EntropyBits: 37.6,
				Length:      8,
				Score:       67,
				Rating:      entity.Strong,
				Suggestions: []string{
					scorer.SuggestionLength,
					scorer.SuggestionUpper,
					scorer.SuggestionDigit,
					scorer.SuggestionSymbol,
				},
			},
		},
		{
			name:     "Digits",
			password: "12345678",
			result: entity.ScoreResult{
				EntropyBits: 26.58,
				Length:      8,
				Score:       49,
				Rating:      entity.Fair,
				Suggestions: []string{
					scorer.SuggestionLength,
					scorer.SuggestionUpper,
					scorer.SuggestionLower,
					scorer.SuggestionSymbol,
				},
			},
		},
		{
			name:     "Multibyte length",
			password: "héllo",
			result: entity.ScoreResult{
				EntropyBits: 29.29,
				Length:      5,
				Score:       48,
				Rating:      entity.Fair,
				Suggestions: []string{
					scorer.SuggestionLength,
					scorer.SuggestionUpper,
					scorer.SuggestionDigit,
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			result, err := scorer.Score(tc.password, tc.isCommon)
			rq.NoError(err)
			rq.Equal(tc.result, result)
		})
	}
}

func TestScoreLengthBonusBoundary(t *testing.T) {
	rq := require.New(t)

	// Digits only keep the base score below the cap, so each bonus shows.
	testCases := []struct {
		name     string
		password string
		entropy  float64
		score    int
	}{
		{name: "7 characters, no bonus", password: "1234567", entropy: 23.25, score: 38},
		{name: "8 characters, +5", password: "12345678", entropy: 26.58, score: 49},
		{name: "11 characters, +5", password: "12345678901", entropy: 36.54, score: 65},
		{name: "12 characters, +10", password: "123456789012", entropy: 39.86, score: 76},
		{name: "12 lowercase, +10 then clamp", password: "abcdefghijkl", entropy: 56.41, score: 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			result, err := scorer.Score(tc.password, false)
			rq.NoError(err)
			rq.InDelta(tc.entropy, result.EntropyBits, 1e-9)
			rq.Equal(tc.score, result.Score)
		})
	}

	rq.Equal(scorer.EntropyToScore(30, 11)+5, scorer.EntropyToScore(30, 12))
}

func TestScoreInvalidUTF8(t *testing.T) {
	rq := require.New(t)

	_, err := scorer.Score("abc\xff", false)
	rq.Error(err)
	rq.True(failure.IsInvalidArgumentError(err))
	rq.Equal(errcodes.InvalidPassword, failure.Code(err))
}

func TestScoreIsDeterministic(t *testing.T) {
	rq := require.New(t)

	first, err := scorer.Score("Tr0ub4dor&3", false)
	rq.NoError(err)

	second, err := scorer.Score("Tr0ub4dor&3", false)
	rq.NoError(err)

	rq.Equal(first, second)
}

func TestScoreBounds(t *testing.T) {
	rq := require.New(t)
	random := tests.NewRandomizer()

	for range 500 {
		password := random.Password(64)

		result, err := scorer.Score(password, random.Bool())
		rq.NoError(err)
		rq.GreaterOrEqual(result.Score, 0, password)
		rq.LessOrEqual(result.Score, 100, password)
		rq.GreaterOrEqual(result.EntropyBits, 0.0, password)
	}
}
