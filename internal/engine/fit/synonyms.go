package fit

// SynonymTable is an immutable, bidirectional skill-equivalence table.
// Built once at startup; safe for concurrent reads from any number of
// scoring goroutines.
type SynonymTable struct {
	pairs map[[2]string]struct{}
}

// defaultSynonymPairs carries the curated equivalences. Order within a pair
// does not matter; lookups are symmetric.
var defaultSynonymPairs = [][2]string{
	{"chemistry", "chemical engineering"},
	{"process control", "control systems"},
	{"mineral processing", "hydrometallurgy"},
	{"data science", "machine learning"},
	{"ai", "artificial intelligence"},
	{"ml", "machine learning"},
	{"k8s", "kubernetes"},
	{"golang", "go"},
	{"js", "javascript"},
	{"ts", "typescript"},
	{"postgres", "postgresql"},
	{"ci/cd", "continuous integration"},
}

// NewSynonymTable builds a table from unordered skill pairs.
func NewSynonymTable(pairs [][2]string) *SynonymTable {
	t := &SynonymTable{pairs: make(map[[2]string]struct{}, len(pairs))}
	for _, p := range pairs {
		t.pairs[orderPair(p[0], p[1])] = struct{}{}
	}
	return t
}

// DefaultSynonymTable returns the built-in equivalence table.
func DefaultSynonymTable() *SynonymTable {
	return NewSynonymTable(defaultSynonymPairs)
}

// IsSynonym reports whether the unordered pair (a, b) is in the table.
// Symmetric: IsSynonym(a, b) == IsSynonym(b, a).
func (t *SynonymTable) IsSynonym(a, b string) bool {
	if t == nil {
		return false
	}
	_, ok := t.pairs[orderPair(a, b)]
	return ok
}

// Len returns the number of equivalence pairs.
func (t *SynonymTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.pairs)
}

func orderPair(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}
