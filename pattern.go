package kotodame

import (
	"strings"
)

// matchesTag reports whether feature starts with the literal characters of
// prefix. This is deliberately a plain prefix test over the comma-joined tag
// path, not a segment-aware comparison: two tags sharing a textual prefix
// match even without a delimiter at the boundary.
func matchesTag(feature, prefix string) bool {
	return strings.HasPrefix(feature, prefix)
}

// Pattern is one context rule: an ordered sequence of tag prefixes that must
// match consecutive tokens.
type Pattern []string

// PatternSet is the full rule list. Declaration order is significant: rules
// are tried first to last and the first full match wins.
type PatternSet []Pattern

// window returns the tokens surrounding index i for a pattern of length l,
// i.e. tokens[i-l+1 .. i+l-1], clamped at the sequence bounds. Near the
// edges the window simply shrinks; out-of-range positions are absent, not
// empty-valued.
func window(tokens Tokens, i, l int) Tokens {
	lo := i - l + 1
	if lo < 0 {
		lo = 0
	}
	hi := i + l
	if hi > len(tokens) {
		hi = len(tokens)
	}
	return tokens[lo:hi]
}

// Check reports whether the token at index i is contextually valid per any
// rule in the set.
//
// For each pattern, the surrounding window is scanned left to right. A
// position whose feature matches the pattern's first prefix starts a
// lock-step attempt over the following positions; the first mismatch aborts
// that attempt. A completed attempt short-circuits the whole evaluation,
// remaining patterns included. Whether or not an attempt was started, the
// scan of one pattern's window stops once it reaches a token identical to
// the anchor, so a recurring anchor in the second window half cannot be
// re-matched.
func (ps PatternSet) Check(i int, tokens Tokens) bool {
	if i < 0 || i >= len(tokens) {
		return false
	}
	anchor := tokens[i]

	for _, p := range ps {
		if len(p) == 0 {
			continue
		}
		w := window(tokens, i, len(p))

		for j := 0; j < len(w); j++ {
			if matchesTag(w[j].Feature, p[0]) {
				matched := true
				for k := 1; k < len(p); k++ {
					if j+k >= len(w) || !matchesTag(w[j+k].Feature, p[k]) {
						matched = false
						break
					}
				}
				if matched {
					return true
				}
			}
			if sameToken(w[j], anchor) {
				break
			}
		}
	}
	return false
}

// DefaultPatternSet returns the built-in rule list for noun-phrase
// candidates, highest priority first. Tag prefixes follow the IPA
// dictionary tag set.
func DefaultPatternSet() PatternSet {
	return PatternSet{
		{"形容詞", "名詞"},
		{"連体詞", "名詞"},
		{"名詞", "助詞,連体化", "名詞"},
		{"接頭詞,名詞接続", "名詞"},
		{"動詞,自立", "名詞"},
	}
}
