package fit

import (
	"math"
	"reflect"
	"testing"
)

func TestScore_AllRequirementsMatched(t *testing.T) {
	resume := Resume{
		Skills: []string{
			"python", "machine learning", "sql", "docker",
			"kubernetes", "aws", "airflow", "spark",
		},
	}
	job := JobPosting{
		Title:        "Data Platform Engineer",
		Requirements: []string{"python", "machine learning", "sql", "docker", "kubernetes"},
		Skills:       []string{"aws", "airflow", "spark"},
	}

	result := NewScorer(nil, WeightsBalanced).Score(resume, job)

	if result.KeywordScore != 100 {
		t.Errorf("keyword score = %v, want 100", result.KeywordScore)
	}
	if len(result.SkillGaps) != 0 {
		t.Errorf("skill gaps = %v, want none", result.SkillGaps)
	}
	if len(result.MatchedSkills) != 8 {
		t.Errorf("matched = %v, want all 8 skills", result.MatchedSkills)
	}
	// No description: similarity degrades to 0 and experience is neutral.
	if result.SimilarityScore != 0 {
		t.Errorf("similarity = %v, want 0", result.SimilarityScore)
	}
	if result.ExperienceScore != 50 {
		t.Errorf("experience = %v, want 50", result.ExperienceScore)
	}
	want := 0.5*100 + 0.2*50
	if math.Abs(result.OverallScore-want) > 1e-9 {
		t.Errorf("overall = %v, want %v", result.OverallScore, want)
	}
}

func TestScore_EmptyJob(t *testing.T) {
	resume := Resume{Skills: []string{"python", "go"}}
	result := NewScorer(nil, WeightsBalanced).Score(resume, JobPosting{Title: "Mystery Role"})

	if result.OverallScore != 0 {
		t.Errorf("overall = %v, want 0", result.OverallScore)
	}
	if result.Tier != TierLimited {
		t.Errorf("tier = %q, want %q", result.Tier, TierLimited)
	}
	if len(result.MatchedSkills) != 0 || len(result.SkillGaps) != 0 {
		t.Errorf("matched = %v, gaps = %v, want both empty", result.MatchedSkills, result.SkillGaps)
	}
}

func TestScore_SubScoreRanges(t *testing.T) {
	resume := Resume{
		Skills:              []string{"go", "postgresql", "kafka"},
		ProfessionalSummary: "Backend engineer focused on event-driven systems.",
		WorkExperience: []WorkExperience{
			{StartDate: "2019-2024", Responsibilities: []string{"Built streaming pipelines with kafka and go."}},
		},
	}
	job := JobPosting{
		Title:        "Senior Backend Engineer",
		Description:  "We need 3+ years of experience building event-driven backends in go with kafka and postgresql.",
		Requirements: []string{"go", "kafka"},
	}

	result := NewScorer(nil, WeightsBalanced).Score(resume, job)

	for name, score := range map[string]float64{
		"overall":    result.OverallScore,
		"keyword":    result.KeywordScore,
		"similarity": result.SimilarityScore,
		"experience": result.ExperienceScore,
	} {
		if score < 0 || score > 100 {
			t.Errorf("%s score = %v, out of [0,100]", name, score)
		}
	}
	if result.ExperienceScore != 100 {
		t.Errorf("experience = %v, want 100 (5 years vs 3 required)", result.ExperienceScore)
	}
	if len(result.MatchedSkills) == 0 {
		t.Error("expected matched skills")
	}
}

func TestScore_Deterministic(t *testing.T) {
	resume := Resume{
		Skills:              []string{"python", "airflow"},
		ProfessionalSummary: "Data engineer.",
	}
	job := JobPosting{
		Title:        "Data Engineer",
		Description:  "Python and airflow pipelines, 2 years experience.",
		Requirements: []string{"python", "airflow", "dbt"},
	}

	scorer := NewScorer(nil, WeightsBalanced)
	first := scorer.Score(resume, job)
	for i := 0; i < 3; i++ {
		if got := scorer.Score(resume, job); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: result %+v differs from %+v", i, got, first)
		}
	}
}

func TestScorer_WithWeights(t *testing.T) {
	base := NewScorer(nil, WeightsBalanced)
	heavy := base.WithWeights(WeightsKeywordHeavy)
	if heavy.Weights() != WeightsKeywordHeavy {
		t.Errorf("weights = %+v, want keyword_heavy", heavy.Weights())
	}
	if base.Weights() != WeightsBalanced {
		t.Error("WithWeights must not mutate the receiver")
	}
	if same := base.WithWeights(Weights{}); same != base {
		t.Error("zero weights should return the receiver unchanged")
	}
}

func TestScore_SkillNormalization(t *testing.T) {
	resume := Resume{Skills: []string{" Python ", "PYTHON", "python"}}
	job := JobPosting{Requirements: []string{"python"}}

	result := NewScorer(nil, WeightsBalanced).Score(resume, job)
	if !reflect.DeepEqual(result.MatchedSkills, []string{"python"}) {
		t.Errorf("matched = %v, want deduplicated [python]", result.MatchedSkills)
	}
	if result.KeywordScore != 100 {
		t.Errorf("keyword = %v, want 100", result.KeywordScore)
	}
}
