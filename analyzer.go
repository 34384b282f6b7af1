package kotodame

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

var reMultipleSpacesSeq = regexp.MustCompile(`\s{2,}`)

// Analyzer produces the token sequences the extractor consumes. It wraps an
// in-process kagome tokenizer with the IPA dictionary, whose tag set is the
// one the filter pipeline's category constants expect.
type Analyzer struct {
	t *tokenizer.Tokenizer
}

var (
	defaultAnalyzer     *Analyzer
	defaultAnalyzerOnce sync.Once
	defaultAnalyzerErr  error
)

// NewAnalyzer builds an analyzer. The IPA dictionary is embedded, so this
// needs no external resources.
func NewAnalyzer() (*Analyzer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("failed to build tokenizer: %w", err)
	}
	return &Analyzer{t: t}, nil
}

// NormalizeText prepares raw source text for analysis: ideographic spaces
// become plain spaces, runs of whitespace collapse to one space and
// surrounding whitespace is trimmed. The same normalized form must be
// passed to Extract so substring merges line up with token surfaces.
func NormalizeText(text string) string {
	text = strings.ReplaceAll(text, "　", " ")
	text = reMultipleSpacesSeq.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Analyze normalizes text, runs morphological analysis and returns the
// token sequence in sentence order together with the normalized text.
func (a *Analyzer) Analyze(ctx context.Context, text string) (Tokens, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	norm := NormalizeText(text)
	if norm == "" {
		return nil, norm, nil
	}

	var tokens Tokens
	for _, tok := range a.t.Tokenize(norm) {
		token := Token{
			Surface: tok.Surface,
			Feature: strings.Join(tok.POS(), ","),
		}
		if reading, ok := tok.Reading(); ok {
			token.Reading = reading
		} else {
			token.Reading = tok.Surface
		}
		tokens = append(tokens, token)
	}

	Logger.Debug().Int("tokens", len(tokens)).Str("text", stringCapLen(norm, 50)).Msg("analyzed")
	return tokens, norm, nil
}

// AnalyzeWithContext analyzes text with a lazily initialized shared
// analyzer.
func AnalyzeWithContext(ctx context.Context, text string) (Tokens, string, error) {
	defaultAnalyzerOnce.Do(func() {
		defaultAnalyzer, defaultAnalyzerErr = NewAnalyzer()
	})
	if defaultAnalyzerErr != nil {
		return nil, "", defaultAnalyzerErr
	}
	return defaultAnalyzer.Analyze(ctx, text)
}

// Analyze is the convenience version that uses a background context.
func Analyze(text string) (Tokens, string, error) {
	return AnalyzeWithContext(context.Background(), text)
}

func stringCapLen(s string, max int) string {
	trimmed := false
	for len(s) > max {
		s = s[:len(s)-1]
		trimmed = true
	}
	if trimmed {
		s += "…"
	}
	return s
}
