package kotodame

import (
	"context"
	"fmt"
)

// TimelineSource supplies candidate texts to generate phrases from.
// Fetching happens outside the core; implementations own their network
// error handling, retries and rate limiting.
type TimelineSource interface {
	Fetch(ctx context.Context, limit int) ([]string, error)
}

// Poster publishes one generated phrase. Posting happens outside the core.
type Poster interface {
	Post(ctx context.Context, text string) error
}

// LogPoster is a Poster for dry runs: it writes phrases to the package
// logger instead of posting them anywhere.
type LogPoster struct{}

func (LogPoster) Post(_ context.Context, text string) error {
	Logger.Info().Str("text", text).Msg("phrase")
	return nil
}

// Generator wires the analyzer, the extractor, the dictionary and a random
// source into the one-shot pipeline. All fields are set once and never
// mutated afterwards.
type Generator struct {
	Analyzer  *Analyzer
	Extractor *Extractor
	Dict      Dictionary
	Rand      RandSource
}

// NewGenerator builds a Generator from a loaded Config.
func NewGenerator(cfg *Config, rng RandSource) (*Generator, error) {
	analyzer, err := NewAnalyzer()
	if err != nil {
		return nil, fmt.Errorf("failed to create analyzer: %w", err)
	}
	return &Generator{
		Analyzer:  analyzer,
		Extractor: NewExtractor(cfg.Patterns, cfg.Banned),
		Dict:      cfg.Dict,
		Rand:      rng,
	}, nil
}

// Generate runs the full pipeline for one source text: analyze, filter,
// augment with dictionary hits, then pick one candidate and wrap it in a
// template. A Result with an empty Text means no suitable phrase was found;
// that is not an error.
func (g *Generator) Generate(ctx context.Context, text string) (*Result, error) {
	tokens, norm, err := g.Analyzer.Analyze(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze text: %w", err)
	}
	if len(tokens) == 0 {
		return &Result{}, nil
	}

	words, retained := g.Extractor.Extract(tokens, norm)
	words, retained = g.Dict.Augment(norm, words, retained)

	res := &Result{Words: words, Retained: retained}
	if len(words) == 0 {
		return res, nil
	}
	res.Text, res.Draw = Choose(words, g.Rand)
	return res, nil
}

// GenerateFromTimeline fetches up to limit texts from src and returns the
// first result that produced a phrase. It returns an empty Result when no
// fetched text yields one.
func (g *Generator) GenerateFromTimeline(ctx context.Context, src TimelineSource, limit int) (*Result, error) {
	texts, err := src.Fetch(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timeline: %w", err)
	}
	for _, text := range texts {
		res, err := g.Generate(ctx, text)
		if err != nil {
			return nil, err
		}
		if res.Text != "" {
			return res, nil
		}
	}
	return &Result{}, nil
}
