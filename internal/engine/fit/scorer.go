package fit

import (
	"math"
	"strings"
)

// maxNarrativeExperiences caps how many recent work entries feed the
// similarity narrative.
const maxNarrativeExperiences = 3

// Scorer scores (resume, job) pairs. It holds only immutable configuration —
// the synonym table and aggregation weights — so one Scorer serves any number
// of concurrent calls.
type Scorer struct {
	syn     *SynonymTable
	weights Weights
}

// NewScorer builds a scorer. nil syn selects the default synonym table;
// zero weights select the balanced preset.
func NewScorer(syn *SynonymTable, w Weights) *Scorer {
	if syn == nil {
		syn = DefaultSynonymTable()
	}
	if w.IsZero() {
		w = WeightsBalanced
	}
	return &Scorer{syn: syn, weights: w}
}

// WithWeights returns a copy of the scorer using different weights.
func (s *Scorer) WithWeights(w Weights) *Scorer {
	if w.IsZero() {
		return s
	}
	return &Scorer{syn: s.syn, weights: w}
}

// Weights returns the scorer's aggregation weights.
func (s *Scorer) Weights() Weights { return s.weights }

// resumeProfile caches the resume-derived inputs that are invariant across
// jobs in a batch: normalized skills, narrative text and total tenure.
type resumeProfile struct {
	skills    []string
	narrative string
	years     int
}

func (s *Scorer) profile(resume Resume) resumeProfile {
	r := resume.Normalized()
	return resumeProfile{
		skills:    r.Skills,
		narrative: resumeNarrative(r),
		years:     ResumeYears(r),
	}
}

// Score produces a complete MatchResult for one (resume, job) pair.
// Always returns a full result; malformed fragments degrade individual
// sub-scores instead of failing the call.
func (s *Scorer) Score(resume Resume, job JobPosting) MatchResult {
	return s.scoreProfile(s.profile(resume), job)
}

func (s *Scorer) scoreProfile(prof resumeProfile, job JobPosting) MatchResult {
	job = job.Normalized()
	reqs := EffectiveRequirements(job)

	// Nothing to match against: the whole score degenerates to zero rather
	// than leaking a neutral experience term into an empty comparison.
	if len(reqs) == 0 {
		return MatchResult{
			MatchedSkills: []string{},
			SkillGaps:     []string{},
			Tier:          TierLimited,
		}
	}

	matched, gaps := MatchSkills(prof.skills, reqs, s.syn)

	keyword := math.Min(100, float64(len(matched))/float64(len(reqs))*100)
	similarity := Similarity(prof.narrative, job.Description)
	experience := scoreExperience(prof.years, job.Description)

	overall, tier := Aggregate(keyword, similarity, experience, s.weights)

	return MatchResult{
		OverallScore:    overall,
		KeywordScore:    keyword,
		SimilarityScore: similarity,
		ExperienceScore: experience,
		MatchedSkills:   matched,
		SkillGaps:       gaps,
		Tier:            tier,
	}
}

// resumeNarrative concatenates the professional summary, the skill list and
// the responsibilities of the most recent work experience entries.
func resumeNarrative(r Resume) string {
	var parts []string
	if r.ProfessionalSummary != "" {
		parts = append(parts, r.ProfessionalSummary)
	}
	if len(r.Skills) > 0 {
		parts = append(parts, strings.Join(r.Skills, " "))
	}
	n := len(r.WorkExperience)
	if n > maxNarrativeExperiences {
		n = maxNarrativeExperiences
	}
	for _, exp := range r.WorkExperience[:n] {
		if len(exp.Responsibilities) > 0 {
			parts = append(parts, strings.Join(exp.Responsibilities, " "))
		}
	}
	return strings.Join(parts, " ")
}
