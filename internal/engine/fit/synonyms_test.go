package fit

import "testing"

func TestSynonymTable_Symmetry(t *testing.T) {
	table := DefaultSynonymTable()
	for _, p := range defaultSynonymPairs {
		if !table.IsSynonym(p[0], p[1]) {
			t.Errorf("IsSynonym(%q, %q) = false, want true", p[0], p[1])
		}
		if table.IsSynonym(p[0], p[1]) != table.IsSynonym(p[1], p[0]) {
			t.Errorf("IsSynonym not symmetric for (%q, %q)", p[0], p[1])
		}
	}
}

func TestSynonymTable_Misses(t *testing.T) {
	table := DefaultSynonymTable()
	tests := [][2]string{
		{"python", "java"},
		{"chemistry", "machine learning"},
		{"", ""},
		{"go", "rust"},
	}
	for _, tt := range tests {
		if table.IsSynonym(tt[0], tt[1]) {
			t.Errorf("IsSynonym(%q, %q) = true, want false", tt[0], tt[1])
		}
	}
}

func TestSynonymTable_NilSafe(t *testing.T) {
	var table *SynonymTable
	if table.IsSynonym("ai", "artificial intelligence") {
		t.Error("nil table should match nothing")
	}
	if table.Len() != 0 {
		t.Errorf("nil table Len = %d, want 0", table.Len())
	}
}

func TestNewSynonymTable_UnorderedPairs(t *testing.T) {
	table := NewSynonymTable([][2]string{{"b", "a"}})
	if !table.IsSynonym("a", "b") || !table.IsSynonym("b", "a") {
		t.Error("pair order at construction should not matter")
	}
	if table.Len() != 1 {
		t.Errorf("Len = %d, want 1", table.Len())
	}
}
