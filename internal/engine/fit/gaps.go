package fit

import (
	"strings"
)

// DefaultGapTopN bounds the pooled skill gap list.
const DefaultGapTopN = 10

// AnalyzeGaps pools skill gaps across low-fit jobs into a deduplicated,
// bounded list for course-suggestion consumers. A requirement covered by any
// resume skill under a relaxed rule — exact match or substring containment in
// either direction — is excluded even if a per-job matcher reported it as a
// gap; this second pass catches near-misses the stricter rules leave behind.
//
// Pooling order is input order (job order, then each job's gap order), so the
// result is deterministic for a given input sequence.
func AnalyzeGaps(resumeSkills []string, lowFit []ScoredJob, topN int) []string {
	if topN <= 0 {
		topN = DefaultGapTopN
	}
	skills := normalizeSet(resumeSkills)

	gaps := []string{}
	seen := make(map[string]bool)
	for _, sj := range lowFit {
		for _, req := range sj.Result.SkillGaps {
			req = strings.ToLower(strings.TrimSpace(req))
			if req == "" || seen[req] {
				continue
			}
			seen[req] = true
			if coveredBy(req, skills) {
				continue
			}
			gaps = append(gaps, req)
			if len(gaps) >= topN {
				return gaps
			}
		}
	}
	return gaps
}

// coveredBy applies the relaxed coverage rule.
func coveredBy(req string, skills []string) bool {
	for _, skill := range skills {
		if req == skill || strings.Contains(skill, req) || strings.Contains(req, skill) {
			return true
		}
	}
	return false
}
