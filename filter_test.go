package kotodame

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestExtractMergesAdjacentPhrase(t *testing.T) {
	tokens := Tokens{
		{Surface: "美しい", Reading: "ウツクシイ", Feature: "形容詞,自立"},
		{Surface: "花", Reading: "ハナ", Feature: "名詞,一般"},
	}
	e := NewExtractor(PatternSet{{"形容詞", "名詞"}}, nil)

	words, retained := e.Extract(tokens, "美しい花が咲く")

	assert.Equal(t, []string{"美しい花"}, words)
	assert.Len(t, retained, 2)
}

func TestExtractIsDeterministic(t *testing.T) {
	tokens := Tokens{
		{Surface: "小さな", Reading: "チイサナ", Feature: "連体詞"},
		{Surface: "庭", Reading: "ニワ", Feature: "名詞,一般"},
		{Surface: "に", Reading: "ニ", Feature: "助詞,格助詞"},
		{Surface: "咲く", Reading: "サク", Feature: "動詞,自立"},
	}
	text := "小さな庭に咲く"
	e := NewExtractor(DefaultPatternSet(), []string{"咲く"})

	words1, retained1 := e.Extract(tokens, text)
	words2, retained2 := e.Extract(tokens, text)

	assert.Empty(t, cmp.Diff(words1, words2))
	assert.Empty(t, cmp.Diff(retained1, retained2))
}

func TestExtractDropsShortCandidates(t *testing.T) {
	tokens := Tokens{
		{Surface: "猫", Reading: "ネコ", Feature: "名詞,一般"},
		{Surface: "は", Reading: "ハ", Feature: "助詞,係助詞"},
		{Surface: "子猫", Reading: "コネコ", Feature: "名詞,一般"},
	}
	// No merge possible: the concatenations never occur in the text.
	e := NewExtractor(nil, nil)

	words, _ := e.Extract(tokens, "猫、そして子猫")

	// "猫" is a single character and must never survive post-processing.
	assert.Equal(t, []string{"子猫"}, words)
}

func TestExtractHashtagPadding(t *testing.T) {
	tokens := Tokens{
		{Surface: "#猫の日", Reading: "ネコノヒ", Feature: "名詞,固有名詞"},
	}
	e := NewExtractor(nil, nil)

	words, _ := e.Extract(tokens, "今日は#猫の日")

	assert.Equal(t, []string{" #猫の日 "}, words)
}

func TestExtractBannedWords(t *testing.T) {
	tokens := Tokens{
		{Surface: "宿題", Reading: "シュクダイ", Feature: "名詞,サ変接続"},
		{Surface: "勉強", Reading: "ベンキョウ", Feature: "名詞,サ変接続"},
	}
	e := NewExtractor(nil, []string{"宿題"})

	words, retained := e.Extract(tokens, "宿題と勉強")

	assert.Equal(t, []string{"勉強"}, words)
	assert.Len(t, retained, 1)
}

func TestExtractBracketSpanMerges(t *testing.T) {
	tokens := Tokens{
		{Surface: "「", Reading: "「", Feature: "記号,括弧開"},
		{Surface: "猫", Reading: "ネコ", Feature: "名詞,一般"},
		{Surface: "が", Reading: "ガ", Feature: "助詞,格助詞"},
		{Surface: "好き", Reading: "スキ", Feature: "名詞,形容動詞語幹"},
		{Surface: "」", Reading: "」", Feature: "記号,括弧閉"},
		{Surface: "犬", Reading: "イヌ", Feature: "名詞,一般"},
	}
	// The particle would fail the strict check outside brackets; inside the
	// span everything is kept and merged into one candidate.
	e := NewExtractor(nil, nil)

	words, _ := e.Extract(tokens, "「猫が好き」犬")

	assert.Equal(t, []string{"「猫が好き」犬"}, words)
}

func TestExtractLineBreakAndWhitespace(t *testing.T) {
	tokens := Tokens{
		{Surface: "\n", Reading: "\n", Feature: "記号,制御"},
		{Surface: "ネコ", Reading: "ネコ", Feature: "名詞,一般"},
		{Surface: " ", Reading: " ", Feature: "記号,空白"},
		{Surface: "イヌ", Reading: "イヌ", Feature: "名詞,一般"},
	}
	e := NewExtractor(nil, nil)

	words, retained := e.Extract(tokens, "ネコ イヌ")

	assert.Equal(t, []string{"ネコ イヌ"}, words)
	// The line break never reaches the retained list; the whitespace token
	// does, with its surface rewritten to a single space.
	assert.Len(t, retained, 3)
	assert.Equal(t, " ", retained[1].Surface)
}

func TestExtractSpuriousMergeQuirk(t *testing.T) {
	// Known limitation, reproduced deliberately: the merge test looks for
	// the concatenation anywhere in the text, so a bigram recurring
	// elsewhere merges tokens that were not adjacent in the source.
	tokens := Tokens{
		{Surface: "花", Reading: "ハナ", Feature: "名詞,一般"},
		{Surface: "が", Reading: "ガ", Feature: "助詞,格助詞"},
		{Surface: "猫", Reading: "ネコ", Feature: "名詞,一般"},
	}
	e := NewExtractor(nil, nil)

	words, _ := e.Extract(tokens, "花が散る。花猫もいる")

	assert.Equal(t, []string{"花猫"}, words)
}

func TestExtractEmptyInput(t *testing.T) {
	e := NewExtractor(DefaultPatternSet(), nil)

	words, retained := e.Extract(nil, "")

	assert.Empty(t, words)
	assert.Empty(t, retained)
}
