package logx

import (
	"net/url"
	"regexp"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

const masked = "[MASKED]"

//nolint:gochecknoglobals
var (
	bearerPattern = regexp.MustCompile("(?s)(Authorization: Bearer ).+?(\r)")
	// "key" : value, value is a string or a bare scalar.
	jsonFieldPattern = regexp.MustCompile(`("(?:\\.|[^"\\])*")(\s*:\s*)("(?:\\.|[^"\\])*"|[^\s,}\]]+)`)
	// key=value in a query string or form body.
	formFieldPattern = regexp.MustCompile(`(^|[?&\s])([^&=\s?"]+)=([^&\s"]*)`)
)

// SensitiveDataMasker hides password values in dumped HTTP bodies. Keys are
// compared the way the server decodes them: JSON keys after unescaping and
// case-insensitively, form keys after percent-decoding.
type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	input = bearerPattern.ReplaceAll(input, []byte("${1}"+masked+"${2}"))
	input = jsonFieldPattern.ReplaceAllFunc(input, maskJSONField)
	input = formFieldPattern.ReplaceAllFunc(input, maskFormField)

	return input
}

func maskJSONField(match []byte) []byte {
	m := jsonFieldPattern.FindSubmatch(match)

	var key string
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(m[1], &key); err != nil {
		key = string(m[1])
	}

	if !isSensitiveKey(key) {
		return match
	}

	return []byte(string(m[1]) + string(m[2]) + `"` + masked + `"`)
}

func maskFormField(match []byte) []byte {
	m := formFieldPattern.FindSubmatch(match)

	key, err := url.QueryUnescape(string(m[2]))
	if err != nil {
		key = string(m[2])
	}

	if !isSensitiveKey(key) {
		return match
	}

	return []byte(string(m[1]) + string(m[2]) + "=" + masked)
}

// isSensitiveKey matches password, Password, newPassword and the like.
func isSensitiveKey(key string) bool {
	return strings.Contains(strings.ToLower(key), "password")
}

// NopSensitiveDataMasker leaves input untouched.
type NopSensitiveDataMasker struct{}

func NewNopSensitiveDataMasker() NopSensitiveDataMasker {
	return NopSensitiveDataMasker{}
}

func (NopSensitiveDataMasker) Mask(input []byte) []byte {
	return input
}
