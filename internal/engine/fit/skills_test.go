package fit

import (
	"reflect"
	"testing"
)

func reqSet(items ...string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, s := range items {
		m[s] = true
	}
	return m
}

func TestMatchSkills_Rules(t *testing.T) {
	syn := DefaultSynonymTable()
	tests := []struct {
		name    string
		skills  []string
		reqs    map[string]bool
		matched []string
		gaps    []string
	}{
		{
			name:    "exact match",
			skills:  []string{"python"},
			reqs:    reqSet("python", "java"),
			matched: []string{"python"},
			gaps:    []string{"java"},
		},
		{
			name:    "compound partial both multi-word",
			skills:  []string{"process engineering"},
			reqs:    reqSet("chemical engineering"),
			matched: []string{"process engineering"},
			gaps:    []string{},
		},
		{
			name:    "no partial when one side is single word",
			skills:  []string{"engineering"},
			reqs:    reqSet("chemical engineering"),
			matched: []string{},
			gaps:    []string{"chemical engineering"},
		},
		{
			name:    "synonym match",
			skills:  []string{"ai"},
			reqs:    reqSet("artificial intelligence"),
			matched: []string{"ai"},
			gaps:    []string{},
		},
		{
			name:    "synonym match reversed",
			skills:  []string{"artificial intelligence"},
			reqs:    reqSet("ai"),
			matched: []string{"artificial intelligence"},
			gaps:    []string{},
		},
		{
			name:    "empty requirements",
			skills:  []string{"python", "go"},
			reqs:    reqSet(),
			matched: []string{},
			gaps:    []string{},
		},
		{
			name:    "no skills all gaps",
			skills:  nil,
			reqs:    reqSet("docker", "aws"),
			matched: []string{},
			gaps:    []string{"aws", "docker"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, gaps := MatchSkills(tt.skills, tt.reqs, syn)
			if !reflect.DeepEqual(matched, tt.matched) {
				t.Errorf("matched = %v, want %v", matched, tt.matched)
			}
			if !reflect.DeepEqual(gaps, tt.gaps) {
				t.Errorf("gaps = %v, want %v", gaps, tt.gaps)
			}
		})
	}
}

// Adding a skill that exactly matches an unmatched requirement never shrinks
// the matched set.
func TestMatchSkills_Monotonicity(t *testing.T) {
	syn := DefaultSynonymTable()
	reqs := reqSet("python", "docker", "kubernetes")

	before, _ := MatchSkills([]string{"python"}, reqs, syn)
	after, _ := MatchSkills([]string{"python", "docker"}, reqs, syn)
	if len(after) < len(before) {
		t.Errorf("matched shrank from %d to %d after adding a skill", len(before), len(after))
	}
	if len(after) != 2 {
		t.Errorf("matched = %v, want 2 entries", after)
	}
}

func TestEffectiveRequirements_Union(t *testing.T) {
	job := JobPosting{
		Title:        "Backend Engineer",
		Requirements: []string{"Go", "  PostgreSQL "},
		Skills:       []string{"docker", ""},
	}
	reqs := EffectiveRequirements(job)
	for _, want := range []string{"go", "postgresql", "docker"} {
		if !reqs[want] {
			t.Errorf("effective requirements missing %q: %v", want, reqs)
		}
	}
	if reqs[""] {
		t.Error("empty strings must not survive normalization")
	}
}

func TestEffectiveRequirements_Empty(t *testing.T) {
	if reqs := EffectiveRequirements(JobPosting{Title: "Unknown"}); len(reqs) != 0 {
		t.Errorf("expected empty set for empty job, got %v", reqs)
	}
}
