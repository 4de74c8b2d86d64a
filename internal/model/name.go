package model

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeName converts an arbitrary file stem or title into a canonical id.
//
// The stem is folded to ASCII (accents are dropped), split into tokens made of
// letters, digits, hyphens and underscores, and each token gets its first
// letter upper-cased while the rest keeps its case. Tokens are joined without
// a separator. Leading hyphens and underscores are dropped and the first
// character of the result is lower-cased:
//
//	NormalizeName("Epic Battle Theme") // "epicBattleTheme"
//	NormalizeName("songB")             // "songB"
//	NormalizeName("Café del Mar")      // "cafeDelMar"
//	NormalizeName("_intro")            // "intro"
//
// An empty or all-punctuation stem yields ErrInvalidName.
func NormalizeName(stem string) (string, error) {
	folded := foldToASCII(stem)

	var b strings.Builder
	for _, token := range splitTokens(folded) {
		b.WriteString(titleToken(token))
	}

	id := b.String()
	if !strings.ContainsFunc(id, isAlnum) {
		return "", NewError(ErrInvalidName, "normalize name", "", stem, nil)
	}

	id = strings.TrimLeft(id, "-_")
	return strings.ToLower(id[:1]) + id[1:], nil
}

// IsCanonicalID reports whether id could have been produced by NormalizeName.
func IsCanonicalID(id string) bool {
	if id == "" {
		return false
	}
	for i := 0; i < len(id); i++ {
		if !isTokenByte(id[i]) {
			return false
		}
	}
	first := id[0]
	return first != '-' && first != '_' && !(first >= 'A' && first <= 'Z')
}

func foldToASCII(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

func splitTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r > unicode.MaxASCII || !isTokenByte(byte(r))
	})
}

// titleToken upper-cases the first letter of a token, leaving the rest as is.
func titleToken(token string) string {
	for i := 0; i < len(token); i++ {
		c := token[i]
		if c >= 'a' && c <= 'z' {
			return token[:i] + string(c-'a'+'A') + token[i+1:]
		}
		if c >= 'A' && c <= 'Z' {
			return token
		}
	}
	return token
}

func isAlnum(r rune) bool {
	return r < unicode.MaxASCII && isTokenByte(byte(r)) && r != '-' && r != '_'
}

func isTokenByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_':
		return true
	}
	return false
}
