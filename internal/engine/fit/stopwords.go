package fit

// stopWords filters common English words that add noise to keyword extraction
// and TF-IDF vectorization.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "been": true, "being": true, "but": true, "by": true,
	"can": true, "could": true, "did": true, "do": true, "does": true,
	"each": true, "for": true, "from": true, "had": true, "has": true,
	"have": true, "having": true, "her": true, "here": true, "him": true,
	"his": true, "how": true, "if": true, "in": true, "into": true,
	"is": true, "it": true, "its": true, "more": true, "most": true,
	"must": true, "my": true, "no": true, "nor": true, "not": true,
	"of": true, "on": true, "once": true, "only": true, "or": true,
	"other": true, "our": true, "out": true, "over": true, "own": true,
	"same": true, "shall": true, "should": true, "so": true, "some": true,
	"such": true, "than": true, "that": true, "the": true, "their": true,
	"them": true, "then": true, "there": true, "these": true, "they": true,
	"this": true, "those": true, "through": true, "to": true, "too": true,
	"under": true, "until": true, "up": true, "upon": true, "us": true,
	"very": true, "was": true, "we": true, "were": true, "what": true,
	"when": true, "where": true, "which": true, "while": true, "who": true,
	"whom": true, "why": true, "will": true, "with": true, "would": true,
	"you": true, "your": true, "yours": true, "about": true, "above": true,
	"after": true, "again": true, "all": true, "also": true, "any": true,
	"because": true, "before": true, "below": true, "between": true,
	"both": true, "down": true, "during": true, "few": true, "further": true,
	"get": true, "new": true, "now": true, "off": true, "set": true,
	"use": true, "used": true, "using": true, "well": true,
}

// genericNoise lists domain-generic nouns that survive POS filtering but
// never describe a skill.
var genericNoise = map[string]bool{
	"company":   true,
	"position":  true,
	"candidate": true,
	"team":      true,
}
