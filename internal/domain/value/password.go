package value

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NormalizePassword brings a password to the form stored in every
// common-password dictionary: NFKC, then Unicode case folding. "PASSWORD"
// and full-width "ｐａｓｓｗｏｒｄ" both become "password".
func NormalizePassword(password string) string {
	return cases.Fold().String(norm.NFKC.String(password))
}
