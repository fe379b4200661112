package fit

import (
	"math"
	"strings"
	"unicode"
)

// Similarity computes TF-IDF cosine similarity between resume narrative text
// and a job description, scaled to [0,100]. The vector space is built over
// exactly the two documents with unigrams and bigrams, stopwords removed and
// smoothed inverse document frequency. Degenerate inputs (empty text, empty
// vocabulary after filtering) return 0.0 without error.
func Similarity(resumeText, jobText string) float64 {
	a := termFrequencies(resumeText)
	b := termFrequencies(jobText)
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	// Smoothed IDF over a two-document corpus: idf = ln((1+N)/(1+df)) + 1.
	const numDocs = 2.0
	idf := func(term string) float64 {
		df := 0.0
		if a[term] > 0 {
			df++
		}
		if b[term] > 0 {
			df++
		}
		return math.Log((1+numDocs)/(1+df)) + 1
	}

	var dot, normA, normB float64
	for term, tf := range a {
		w := float64(tf) * idf(term)
		normA += w * w
		if tfB := b[term]; tfB > 0 {
			dot += w * float64(tfB) * idf(term)
		}
	}
	for term, tf := range b {
		w := float64(tf) * idf(term)
		normB += w * w
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}

	cos := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return clamp(cos*100, 0, 100)
}

// termFrequencies counts unigrams and bigrams in text after lowercasing and
// stopword removal. Bigrams are formed over the filtered token stream, the
// same way scikit-style vectorizers build n-grams.
func termFrequencies(text string) map[string]int {
	tokens := tokenizeTerms(text)
	freq := make(map[string]int, len(tokens)*2)
	for i, tok := range tokens {
		freq[tok]++
		if i > 0 {
			freq[tokens[i-1]+" "+tok]++
		}
	}
	return freq
}

// tokenizeTerms splits text into lowercase tokens, skipping stopwords.
// Preserves tech suffixes like "c++", "c#", "node.js" by treating + # . as
// word chars.
func tokenizeTerms(text string) []string {
	var tokens []string
	var word strings.Builder
	flush := func() {
		w := word.String()
		word.Reset()
		w = strings.TrimRight(w, ".") // drop trailing dots
		if len(w) >= 2 && !stopWords[w] {
			tokens = append(tokens, w)
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
