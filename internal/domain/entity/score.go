package entity

import "fmt"

// Rating качественная оценка пароля
type Rating int

const (
	VeryWeak Rating = iota
	Weak
	Fair
	Strong
	VeryStrong
)

var ratingNames = [...]string{ //nolint:gochecknoglobals
	VeryWeak:   "Very Weak",
	Weak:       "Weak",
	Fair:       "Fair",
	Strong:     "Strong",
	VeryStrong: "Very Strong",
}

func (r Rating) String() string {
	if r < VeryWeak || r > VeryStrong {
		return fmt.Sprintf("Rating(%d)", int(r))
	}

	return ratingNames[r]
}

func (r Rating) MarshalText() ([]byte, error) {
	if r < VeryWeak || r > VeryStrong {
		return nil, fmt.Errorf("unknown rating %d", int(r))
	}

	return []byte(ratingNames[r]), nil
}

func (r *Rating) UnmarshalText(text []byte) error {
	for i, name := range ratingNames {
		if name == string(text) {
			*r = Rating(i)
			return nil
		}
	}

	return fmt.Errorf("unknown rating %q", text)
}

// ScoreResult результат оценки пароля
type ScoreResult struct {
	EntropyBits float64  // биты энтропии, округлены до 0.01
	Length      int      // длина в символах (code points)
	Score       int      // 0..100
	Rating      Rating
	Suggestions []string // пустой, если подсказок нет
}
