package wordfreq

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// RulesConfig is the serialisable form of a cleanup rule set.
type RulesConfig struct {
	Version      string            `yaml:"version"`
	TagTokens    []string          `yaml:"tag_tokens"`
	StopWords    []string          `yaml:"stop_words"`
	Replacements map[string]string `yaml:"replacements"`
}

// RuleSet is an immutable, validated set of cleanup rules for free-text
// requirement fields. It implements Tokenizer and may be shared between
// goroutines.
type RuleSet struct {
	version      string
	tagTokens    map[string]struct{} // lower-cased
	stopWords    map[string]struct{}
	replacements map[string]string
	steps        []Step
}

// NewRuleSet validates cfg and builds the ordered cleanup pipeline.
//
// Every term has to be a single word made of letters: the earlier steps remove
// digits, punctuation and whitespace, so anything else could never match.
// A canonical form must not be a stop word, a tag token or another key,
// otherwise a second pass over cleaned text would change it again.
func NewRuleSet(cfg RulesConfig) (*RuleSet, error) {
	rs := &RuleSet{
		version:      strings.TrimSpace(cfg.Version),
		tagTokens:    make(map[string]struct{}, len(cfg.TagTokens)),
		stopWords:    make(map[string]struct{}, len(cfg.StopWords)),
		replacements: make(map[string]string, len(cfg.Replacements)),
	}
	if rs.version == "" {
		return nil, ErrInvalidRules("version is required")
	}
	for _, t := range cfg.TagTokens {
		t = norm.NFC.String(t)
		if !isWord(t) {
			return nil, ErrInvalidRules(fmt.Sprintf("tag token %q is not a single word", t))
		}
		rs.tagTokens[strings.ToLower(t)] = struct{}{}
	}
	for _, w := range cfg.StopWords {
		w = norm.NFC.String(w)
		if !isWord(w) {
			return nil, ErrInvalidRules(fmt.Sprintf("stop word %q is not a single word", w))
		}
		rs.stopWords[w] = struct{}{}
	}
	for from, to := range cfg.Replacements {
		from, to = norm.NFC.String(from), norm.NFC.String(to)
		if !isWord(from) {
			return nil, ErrInvalidRules(fmt.Sprintf("replacement key %q is not a single word", from))
		}
		if !isWord(to) {
			return nil, ErrInvalidRules(fmt.Sprintf("canonical form %q for %q is not a single word", to, from))
		}
		if _, ok := rs.stopWords[from]; ok {
			return nil, ErrInvalidRules(fmt.Sprintf("replacement key %q is also a stop word", from))
		}
		if rs.isTagToken(from) {
			return nil, ErrInvalidRules(fmt.Sprintf("replacement key %q is also a tag token", from))
		}
		rs.replacements[from] = to
	}
	for from, to := range rs.replacements {
		if _, ok := rs.replacements[to]; ok {
			return nil, ErrInvalidRules(fmt.Sprintf("canonical form %q of %q is itself a replacement key", to, from))
		}
		if _, ok := rs.stopWords[to]; ok {
			return nil, ErrInvalidRules(fmt.Sprintf("canonical form %q of %q is a stop word", to, from))
		}
		if rs.isTagToken(to) {
			return nil, ErrInvalidRules(fmt.Sprintf("canonical form %q of %q is a tag token", to, from))
		}
	}
	rs.steps = []Step{
		{Name: StepStripSymbols, Apply: stripSymbols},
		{Name: StepStripTags, Apply: stripTags},
		{Name: StepStripDigits, Apply: stripDigits},
		{Name: StepStripTagTokens, Apply: rs.stripTagTokens},
		{Name: StepStripStopWords, Apply: rs.stripStopWords},
		{Name: StepCanonicalize, Apply: rs.canonicalize},
	}
	return rs, nil
}

// Version identifies the rule set, e.g. for cache keys.
func (rs *RuleSet) Version() string { return rs.version }

// Steps returns the cleanup pipeline in application order.
func (rs *RuleSet) Steps() []Step {
	out := make([]Step, len(rs.steps))
	copy(out, rs.steps)
	return out
}

// Clean runs every step over text and returns the cleaned string.
func (rs *RuleSet) Clean(text string) string {
	for _, st := range rs.steps {
		text = st.Apply(text)
	}
	return text
}

// Tokens cleans text and splits it on runs of whitespace.
func (rs *RuleSet) Tokens(text string) []string {
	return strings.Fields(rs.Clean(text))
}

// StopWords returns the configured stop words, sorted.
func (rs *RuleSet) StopWords() []string { return sortedKeys(rs.stopWords) }

// TagTokens returns the configured tag tokens (lower-cased), sorted.
func (rs *RuleSet) TagTokens() []string { return sortedKeys(rs.tagTokens) }

// Replacement returns the canonical form for a surface form.
func (rs *RuleSet) Replacement(word string) (string, bool) {
	to, ok := rs.replacements[word]
	return to, ok
}

func (rs *RuleSet) isTagToken(w string) bool {
	_, ok := rs.tagTokens[strings.ToLower(w)]
	return ok
}

func (rs *RuleSet) stripTagTokens(s string) string {
	return mapWords(s, func(w string) (string, bool) {
		return w, !rs.isTagToken(w)
	})
}

func (rs *RuleSet) stripStopWords(s string) string {
	return mapWords(s, func(w string) (string, bool) {
		_, stop := rs.stopWords[w]
		return w, !stop
	})
}

func (rs *RuleSet) canonicalize(s string) string {
	return mapWords(s, func(w string) (string, bool) {
		if to, ok := rs.replacements[w]; ok {
			return to, true
		}
		return w, true
	})
}

// ErrInvalidRules is returned for rule configurations that cannot be applied.
type ErrInvalidRules string

func (e ErrInvalidRules) Error() string { return "invalid cleanup rules: " + string(e) }

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.Is(unicode.M, r) {
			return false
		}
	}
	return true
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
