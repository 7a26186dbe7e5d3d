package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pwstrength/internal/domain/value"
)

func TestNormalizePassword(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		input  string
		output string
	}{
		{input: "password", output: "password"},
		{input: "PaSsWoRd", output: "password"},
		{input: "ｐａｓｓｗｏｒｄ", output: "password"},
		{input: "Ｐ４ｓｓ", output: "p4ss"},
		{input: " x ", output: " x "},
		{input: "", output: ""},
	}

	for _, tc := range testCases {
		rq.Equal(tc.output, value.NormalizePassword(tc.input), tc.input)
	}
}
