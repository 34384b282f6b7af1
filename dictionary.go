package kotodame

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// dictWeight is how many times a dictionary hit is appended to the word
// list. Tripling is deliberate: forced inclusions outweigh a single natural
// occurrence.
const dictWeight = 3

// dictFeatureMark is the tag segment appended to the feature of synthetic
// dictionary tokens so they are distinguishable in the retained list.
const dictFeatureMark = "辞書語"

// LoadDictionary loads the domain dictionary from a CSV file with columns
// surface,reading,feature,description,category. The first row is a header.
// Entries are returned sorted by reading.
func LoadDictionary(csvPath string) (Dictionary, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary header: %w", err)
	}

	var dict Dictionary
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read dictionary record: %w", err)
		}
		if len(record) < 5 {
			continue
		}

		entry := DictEntry{
			Surface:     strings.TrimSpace(record[0]),
			Reading:     strings.TrimSpace(record[1]),
			Feature:     strings.TrimSpace(record[2]),
			Description: strings.TrimSpace(record[3]),
			Category:    strings.TrimSpace(record[4]),
		}
		if entry.Surface == "" {
			continue
		}
		dict = append(dict, entry)
	}

	sort.SliceStable(dict, func(i, j int) bool {
		return dict[i].Reading < dict[j].Reading
	})
	return dict, nil
}

// Augment appends forced candidates for every dictionary entry whose
// surface occurs verbatim in text. Each hit contributes one synthetic token
// to the retained list and its surface dictWeight times to the word list.
func (d Dictionary) Augment(text string, words []string, retained Tokens) ([]string, Tokens) {
	for _, entry := range d {
		if entry.Surface == "" || !strings.Contains(text, entry.Surface) {
			continue
		}
		Logger.Debug().Str("surface", entry.Surface).Str("category", entry.Category).Msg("dictionary hit")

		retained = append(retained, Token{
			Surface:     entry.Surface,
			Reading:     entry.Reading,
			Feature:     entry.Feature + "," + dictFeatureMark,
			Category:    entry.Category,
			Description: entry.Description,
		})
		for n := 0; n < dictWeight; n++ {
			words = append(words, entry.Surface)
		}
	}
	return words, retained
}

// Categories returns the distinct categories present in the dictionary, in
// first-seen order.
func (d Dictionary) Categories() (categories []string) {
	seen := make(map[string]struct{}, len(d))
	for _, entry := range d {
		if _, dup := seen[entry.Category]; dup {
			continue
		}
		seen[entry.Category] = struct{}{}
		categories = append(categories, entry.Category)
	}
	return
}
