package kotodame

import (
	"encoding/json"
	"fmt"

	"github.com/gookit/color"
	"github.com/k0kubun/pp"
	"github.com/tidwall/pretty"
)

// PrintResultDetails prints a human-readable report of one generation pass:
// the chosen phrase, the weighted candidate list and the retained tokens.
func PrintResultDetails(res *Result) {
	if res.Text != "" {
		color.Greenln(res.Text)
		fmt.Printf("template draw: %.4f\n", res.Draw)
	} else {
		color.Redln("no suitable phrase found")
	}

	fmt.Printf("\nCandidates (%d, duplicates weigh the draw):\n", len(res.Words))
	for _, w := range res.Words {
		fmt.Printf("\t%q\n", w)
	}

	fmt.Printf("\nRetained tokens (%d):\n", len(res.Retained))
	for _, token := range res.Retained {
		fmt.Printf("\t%s\t%s\t%s", token.Surface, token.Reading, token.Feature)
		if token.Category != "" {
			fmt.Printf("\t[%s] %s", token.Category, token.Description)
		}
		fmt.Println()
	}
}

// DumpTokens pretty-prints a token sequence for debugging.
func DumpTokens(tokens Tokens) {
	pp.Println(tokens)
}

// PrettyJSON renders the dictionary as indented JSON, for external listing
// use (the dictionary is kept sorted by reading for exactly this purpose).
func (d Dictionary) PrettyJSON() ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to encode dictionary: %w", err)
	}
	return pretty.Pretty(data), nil
}
