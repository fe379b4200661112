package fit

import (
	"log/slog"
	"strings"
	"unicode"

	prose "github.com/jdkato/prose/v2"
)

// minKeywordRunes: tokens of 4+ runes survive extraction; shorter ones are
// almost always noise in free-text descriptions (explicit requirement lists
// bypass extraction entirely).
const minKeywordRunes = 4

// ExtractKeywords turns a free-text job description into normalized candidate
// keyword tokens. The text is lowercased and POS-tagged; nouns, proper nouns
// and adjectives survive, minus stopwords, numbers, short tokens and generic
// noise words. Empty or whitespace-only text yields an empty set.
//
// The tagger model is loaded once per process and is read-only, so extraction
// is deterministic and safe to call concurrently.
func ExtractKeywords(text string) map[string]bool {
	kw := make(map[string]bool)
	text = strings.TrimSpace(strings.ToLower(text))
	if text == "" {
		return kw
	}

	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		// Advisory only: extraction failure degrades to "no description
		// keywords", explicit requirements still score.
		slog.Debug("keyword extraction failed", slog.Any("error", err))
		return kw
	}

	for _, tok := range doc.Tokens() {
		if !keywordTag(tok.Tag) {
			continue
		}
		w := strings.Trim(tok.Text, ".,!?;:()[]{}\"'`")
		if len([]rune(w)) < minKeywordRunes {
			continue
		}
		if stopWords[w] || genericNoise[w] || isNumeric(w) {
			continue
		}
		kw[w] = true
	}
	return kw
}

// keywordTag reports whether a Penn Treebank tag marks a noun, proper noun or
// adjective (NN, NNS, NNP, NNPS, JJ, JJR, JJS).
func keywordTag(tag string) bool {
	return strings.HasPrefix(tag, "NN") || strings.HasPrefix(tag, "JJ")
}

func isNumeric(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
