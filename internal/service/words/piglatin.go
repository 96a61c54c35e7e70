package words

import (
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

var vowels = []rune{'a', 'e', 'i', 'o', 'u'}

// PigLatin lower-cases word, then appends "-hay" to vowel-initial words or moves the
// first letter behind a dash and adds "ay": "first" -> "irst-fay", "apple" -> "apple-hay".
func PigLatin(word string) string {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return ""
	}

	first, size := utf8.DecodeRuneInString(word)
	if lo.Contains(vowels, first) {
		return word + "-hay"
	}
	return word[size:] + "-" + string(first) + "ay"
}

// PigLatinText translates every whitespace separated word and joins them with single spaces.
func PigLatinText(text string) string {
	return strings.Join(lo.Map(strings.Fields(text), func(w string, _ int) string {
		return PigLatin(w)
	}), " ")
}
