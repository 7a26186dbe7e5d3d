package tests

import (
	"math/rand"
	"strings"
	"time"
)

// passwordAlphabet covers every character class, including non-ASCII runes.
const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()-_=+[]{};:'\",.<>/?`~ éßЖ漢😀"

type Randomizer struct {
	Float64  func() float64
	Bool     func() bool
	Intn     func(n int) int
	Password func(maxLen int) string
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests
	alphabet := []rune(passwordAlphabet)

	return Randomizer{
		Float64: random.Float64,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Intn:    random.Intn,
		Password: func(maxLen int) string {
			var b strings.Builder

			n := random.Intn(maxLen + 1)
			for range n {
				b.WriteRune(alphabet[random.Intn(len(alphabet))])
			}

			return b.String()
		},
	}
}
