package wordfreq

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Step names, in the order a RuleSet applies them.
const (
	StepStripSymbols   = "strip-symbols"
	StepStripTags      = "strip-tags"
	StepStripDigits    = "strip-digits"
	StepStripTagTokens = "strip-tag-tokens"
	StepStripStopWords = "strip-stop-words"
	StepCanonicalize   = "canonicalize"
)

// Step is one named, pure cleanup function.
type Step struct {
	Name  string
	Apply func(string) string
}

var (
	// angle brackets survive so that strip-tags can still see markup
	reSymbols   = regexp.MustCompile(`[^\p{L}\p{M}\p{N}\s<>]+`)
	reTags      = regexp.MustCompile(`<[^<>]*>`)
	reStrayTags = regexp.MustCompile(`[<>]+`)
	reDigits    = regexp.MustCompile(`\p{N}+`)
)

var (
	// variation selectors, zero-width joiner and the keycap mark only ever
	// decorate emoji
	reEmojiMarks = regexp.MustCompile(`[\x{FE00}-\x{FE0F}\x{200D}\x{20E3}]+`)

	// combining marks must attach to a letter; anything else is emoji residue
	reOrphanMarks = regexp.MustCompile(`(^|[^\p{L}\p{M}])\p{M}+`)
)

// stripSymbols removes punctuation, symbols and emoji, including the
// selectors and keycap marks that trail them ("❤️", "1️⃣"). Input is
// NFC-composed first so decomposed Hangul jamo do not split words.
func stripSymbols(s string) string {
	s = reSymbols.ReplaceAllString(norm.NFC.String(s), " ")
	s = reEmojiMarks.ReplaceAllString(s, " ")
	return reOrphanMarks.ReplaceAllString(s, "${1} ")
}

// stripTags removes <...> spans and whatever brackets broken markup left behind.
func stripTags(s string) string {
	s = reTags.ReplaceAllString(s, " ")
	return reStrayTags.ReplaceAllString(s, " ")
}

// stripDigits replaces numerals with a space so the fragments around them
// stay separate words: "3년" becomes "년", "HTML5CSS3" becomes "HTML CSS".
func stripDigits(s string) string {
	return reDigits.ReplaceAllString(s, " ")
}

// mapWords applies f to every whitespace-delimited word; words for which f
// reports false are dropped. The result is single-space joined.
func mapWords(s string, f func(string) (string, bool)) string {
	words := strings.Fields(s)
	out := words[:0]
	for _, w := range words {
		if nw, keep := f(w); keep {
			out = append(out, nw)
		}
	}
	return strings.Join(out, " ")
}
