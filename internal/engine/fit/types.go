// Package fit scores structured resumes against job postings. All scoring is
// pure and deterministic: the only process-wide state is the read-only synonym
// table and the POS tagger model, both safe for concurrent use.
package fit

import (
	"strings"
)

// WorkExperience is one resume employment entry. Dates are free-form strings;
// entries whose dates cannot be parsed contribute zero tenure.
type WorkExperience struct {
	StartDate        string   `json:"start_date,omitempty"`
	EndDate          string   `json:"end_date,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

// Resume is the structured input supplied by the ingestion layer.
type Resume struct {
	Skills              []string         `json:"skills" validate:"required,min=1"`
	ProfessionalSummary string           `json:"professional_summary,omitempty"`
	WorkExperience      []WorkExperience `json:"work_experience,omitempty"`
}

// JobPosting is one listing supplied by the retrieval layer, already deduplicated.
type JobPosting struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
	Skills       []string `json:"skills,omitempty"`
}

// MatchResult is the complete outcome of scoring one (resume, job) pair.
// Every sub-score is in [0,100]; degenerate inputs degrade to zero scores,
// never to errors.
type MatchResult struct {
	OverallScore    float64  `json:"overall_score"`
	KeywordScore    float64  `json:"keyword_score"`
	SimilarityScore float64  `json:"similarity_score"`
	ExperienceScore float64  `json:"experience_score"`
	MatchedSkills   []string `json:"matched_skills"`
	SkillGaps       []string `json:"skill_gaps"`
	Tier            Tier     `json:"recommendation_tier"`
}

// ScoredJob pairs a posting with its match result. Batch partitions and the
// gap analyzer both consume this shape.
type ScoredJob struct {
	Job    JobPosting  `json:"job"`
	Result MatchResult `json:"result"`
}

// normalizeSet lowercases, trims, dedupes and drops empty strings.
func normalizeSet(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, s := range items {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// Normalized returns a copy with skills case-folded, trimmed and deduplicated.
func (r Resume) Normalized() Resume {
	r.Skills = normalizeSet(r.Skills)
	return r
}

// Normalized returns a copy with requirements and skills case-folded,
// trimmed and deduplicated.
func (j JobPosting) Normalized() JobPosting {
	j.Requirements = normalizeSet(j.Requirements)
	j.Skills = normalizeSet(j.Skills)
	return j
}
