package fit

import (
	"sort"
	"strings"
)

// MatchSkills reconciles resume skills against the effective requirement set.
// Per (skill, requirement) pair the first rule that fires wins:
//
//  1. exact — case-normalized string equality
//  2. compound partial — both strings are multi-word phrases and their word
//     sets intersect
//  3. synonym — the unordered pair is in the synonym table
//
// Returns the matched resume skills and the requirements no resume skill
// satisfied under any rule, both sorted. Empty requirements yield empty
// matched and empty gaps.
func MatchSkills(resumeSkills []string, requirements map[string]bool, syn *SynonymTable) (matched, gaps []string) {
	matched = []string{}
	gaps = []string{}
	if len(requirements) == 0 {
		return matched, gaps
	}

	satisfied := make(map[string]bool, len(requirements))
	matchedSet := make(map[string]bool, len(resumeSkills))

	for _, skill := range resumeSkills {
		for req := range requirements {
			if !skillMatches(skill, req, syn) {
				continue
			}
			matchedSet[skill] = true
			satisfied[req] = true
		}
	}

	for skill := range matchedSet {
		matched = append(matched, skill)
	}
	for req := range requirements {
		if !satisfied[req] {
			gaps = append(gaps, req)
		}
	}
	sort.Strings(matched)
	sort.Strings(gaps)
	return matched, gaps
}

// skillMatches applies the three matching rules in order.
func skillMatches(skill, req string, syn *SynonymTable) bool {
	if skill == req {
		return true
	}
	if strings.Contains(skill, " ") && strings.Contains(req, " ") {
		if wordOverlap(skill, req) {
			return true
		}
	}
	return syn.IsSynonym(skill, req)
}

// wordOverlap reports whether two phrases share at least one word.
func wordOverlap(a, b string) bool {
	aWords := strings.Fields(a)
	bWords := make(map[string]bool)
	for _, w := range strings.Fields(b) {
		bWords[w] = true
	}
	for _, w := range aWords {
		if bWords[w] {
			return true
		}
	}
	return false
}

// EffectiveRequirements is the union of a job's explicit requirements,
// explicit skills, and keywords extracted from its description.
func EffectiveRequirements(job JobPosting) map[string]bool {
	reqs := ExtractKeywords(job.Description)
	for _, r := range job.Requirements {
		r = strings.ToLower(strings.TrimSpace(r))
		if r != "" {
			reqs[r] = true
		}
	}
	for _, s := range job.Skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			reqs[s] = true
		}
	}
	return reqs
}
