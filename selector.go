package kotodame

import (
	"fmt"
	"strings"
)

// RandSource supplies the two draws the selector needs. *rand.Rand
// satisfies it; tests inject fixed sequences.
type RandSource interface {
	Float64() float64
	Intn(n int) int
}

// The three output templates. The template draw r maps to exactly one of
// them, band boundaries inclusive-low/exclusive-high.
const (
	tmplCoax   = "%sなら･･･♡"     // [0.00, 0.03)
	tmplScold  = "%sしちゃダメです"   // [0.03, 0.65)
	tmplRefuse = "%sなんてダメです！" // [0.65, 1.00)
)

// Choose draws a uniform value r in [0,1) and a uniformly selected word
// (duplicates raise a word's effective probability), trims surrounding
// whitespace from the word and formats it with the template r falls into.
// It returns the formatted text and r for audit. An empty word list yields
// an empty text.
func Choose(words []string, rng RandSource) (string, float64) {
	if len(words) == 0 {
		return "", 0
	}
	r := rng.Float64()
	w := strings.TrimSpace(words[rng.Intn(len(words))])

	switch {
	case r < 0.03:
		return fmt.Sprintf(tmplCoax, w), r
	case r < 0.65:
		return fmt.Sprintf(tmplScold, w), r
	default:
		return fmt.Sprintf(tmplRefuse, w), r
	}
}
