// Package norm exposes the locale-independent normalization collaborators
// consumed alongside the transcoding layer: NFC and NFKD normalization
// and Unicode casefolding.
//
// Every function is a pure string -> string. Failure is reported by
// returning the empty string for a non-empty input; no errors are raised.
// Input that is not valid UTF-8 is a failure here, not a substitution:
// callers that want degradation run it through the codec first.
package norm

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	xnorm "golang.org/x/text/unicode/norm"
)

// NFC returns the canonical composition of s, or "" on failure.
func NFC(s string) string {
	if !utf8.ValidString(s) {
		return ""
	}
	return xnorm.NFC.String(s)
}

// NFKD returns the compatibility decomposition of s, or "" on failure.
func NFKD(s string) string {
	if !utf8.ValidString(s) {
		return ""
	}
	return xnorm.NFKD.String(s)
}

// Lower lowercases s without locale tailoring, or "" on failure.
func Lower(s string) string {
	if !utf8.ValidString(s) {
		return ""
	}
	return cases.Lower(language.Und).String(s)
}
