package kotodame

import (
	"strings"
	"unicode/utf8"
)

// POS tag categories recognized by the filter pipeline (IPA dictionary tag
// set, as emitted by the kagome analyzer).
const (
	tagNoun         = "名詞"
	tagSymbol       = "記号"
	tagBracketOpen  = "記号,括弧開"
	tagBracketClose = "記号,括弧閉"
	tagWhitespace   = "記号,空白"
	tagLineBreak    = "記号,制御"
)

// Extractor applies the rule engine to analyzed sentences. Patterns and
// Banned are loaded once at startup and treated as immutable afterwards.
type Extractor struct {
	Patterns PatternSet
	Banned   map[string]struct{}
}

// NewExtractor builds an Extractor from a pattern set and a list of banned
// surfaces.
func NewExtractor(patterns PatternSet, banned []string) *Extractor {
	set := make(map[string]struct{}, len(banned))
	for _, w := range banned {
		set[w] = struct{}{}
	}
	return &Extractor{Patterns: patterns, Banned: set}
}

// Extract runs the filter pipeline over one token sequence and returns the
// candidate word list along with the tokens that contributed to it.
//
// Adjacent surviving tokens are coalesced into a single candidate when their
// concatenation with the current candidate occurs verbatim in text, or when
// the pipeline is inside a bracketed span. Known limitation: the substring
// test looks anywhere in text, so a bigram that recurs elsewhere in the
// sentence can merge tokens that were not actually adjacent in the source.
//
// An empty word list is a valid outcome meaning no suitable phrase was
// found.
func (e *Extractor) Extract(tokens Tokens, text string) (words []string, retained Tokens) {
	inBrackets := false
	atBracketStart := false

	for i, token := range tokens {
		if matchesTag(token.Feature, tagLineBreak) {
			continue
		}
		if matchesTag(token.Feature, tagWhitespace) {
			token.Surface = " "
		}
		if matchesTag(token.Feature, tagBracketOpen) {
			inBrackets = true
			atBracketStart = true
		}
		if !matchesTag(token.Feature, tagSymbol) {
			if !matchesTag(token.Feature, tagNoun) && !inBrackets && !e.Patterns.Check(i, tokens) {
				Logger.Debug().Str("surface", token.Surface).Str("feature", token.Feature).Msg("rejected by strict check")
				continue
			}
		}
		if _, banned := e.Banned[token.Surface]; banned {
			Logger.Debug().Str("surface", token.Surface).Msg("banned word skipped")
			continue
		}

		if len(words) > 0 &&
			(strings.Contains(text, words[len(words)-1]+token.Surface) ||
				(inBrackets && !atBracketStart)) {
			words[len(words)-1] += token.Surface
		} else {
			words = append(words, token.Surface)
			atBracketStart = false
		}

		if matchesTag(token.Feature, tagBracketClose) {
			inBrackets = false
		}
		retained = append(retained, token)
	}

	words = finalizeWords(words)
	return words, retained
}

// finalizeWords drops candidates of one character or less and pads
// hashtag candidates with spaces so later concatenation keeps the hashtag
// boundary intact.
func finalizeWords(words []string) []string {
	kept := words[:0]
	for _, w := range words {
		if utf8.RuneCountInString(w) <= 1 {
			continue
		}
		if strings.HasPrefix(w, "#") {
			w = " " + w + " "
		}
		kept = append(kept, w)
	}
	return kept
}
