package kotodame

// Token represents a single morpheme as produced by the morphological
// analyzer, or a synthetic token appended for a dictionary hit.
type Token struct {
	Surface string // Original text
	Reading string // Phonetic form
	Feature string // Hierarchical POS tag path, most general segment first, comma-joined
	// Dictionary-derived tokens only; analyzer tokens leave these empty.
	Category    string
	Description string
}

// Tokens is a slice of tokens representing one analyzed sentence,
// in original sentence order.
type Tokens []Token

// sameToken reports whether two tokens are identical in all of
// surface, reading and feature.
func sameToken(a, b Token) bool {
	return a.Surface == b.Surface && a.Reading == b.Reading && a.Feature == b.Feature
}

// Surfaces returns the surface forms of all tokens.
func (tokens Tokens) Surfaces() (parts []string) {
	for _, token := range tokens {
		parts = append(parts, token.Surface)
	}
	return
}

// DictEntry is one record of the domain dictionary. Feature is always
// noun-rooted. The dictionary file is sorted by reading; matching never
// relies on that order, only listing does.
type DictEntry struct {
	Surface     string `json:"surface"`
	Reading     string `json:"reading"`
	Feature     string `json:"feature"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Dictionary is the full domain dictionary, sorted by reading.
type Dictionary []DictEntry

// Result is the outcome of one full generation pass. Text is empty when
// no suitable phrase was found, which is a valid terminal outcome.
type Result struct {
	Text     string   // Chosen display text
	Draw     float64  // Random value that picked the template, kept for audit
	Words    []string // Candidate words; duplicates act as selection weights
	Retained Tokens   // Tokens that contributed, for diagnostics
}
