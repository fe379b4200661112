package fit

import (
	"context"
	"sync"
	"testing"
)

// resetHistory resets the singleton so each test gets a fresh DB.
func resetHistory(t *testing.T) {
	t.Helper()
	SetHistoryDir(t.TempDir())
	historyDB = nil
	historyErr = nil
	historyOnce = sync.Once{}
}

func sampleResult() MatchResult {
	return MatchResult{
		OverallScore:    72.5,
		KeywordScore:    80,
		SimilarityScore: 55,
		ExperienceScore: 80,
		MatchedSkills:   []string{"python"},
		SkillGaps:       []string{"kubernetes", "terraform"},
		Tier:            TierGood,
	}
}

func TestSaveMatch_Basic(t *testing.T) {
	resetHistory(t)
	ctx := context.Background()

	rec, err := SaveMatch(ctx, HistoryAddInput{
		Title:   "Senior Python Engineer",
		Company: "Acme",
		URL:     "https://acme.example/jobs/42",
		Result:  sampleResult(),
	})
	if err != nil {
		t.Fatalf("SaveMatch error: %v", err)
	}
	if rec.ID <= 0 {
		t.Errorf("expected positive ID, got %d", rec.ID)
	}
	if rec.CreatedAt == "" {
		t.Error("expected non-empty created_at")
	}
	if rec.Tier != string(TierGood) {
		t.Errorf("tier = %q, want %q", rec.Tier, TierGood)
	}
}

func TestSaveMatch_Invalid(t *testing.T) {
	resetHistory(t)
	ctx := context.Background()

	if _, err := SaveMatch(ctx, HistoryAddInput{Result: sampleResult()}); err == nil {
		t.Error("expected error when title is missing")
	}

	bad := sampleResult()
	bad.Tier = "stellar"
	if _, err := SaveMatch(ctx, HistoryAddInput{Title: "Role", Result: bad}); err == nil {
		t.Error("expected error for unknown tier")
	}
}

func TestListMatches_TierFilter(t *testing.T) {
	resetHistory(t)
	ctx := context.Background()

	good := sampleResult()
	limited := sampleResult()
	limited.OverallScore = 12
	limited.Tier = TierLimited

	for _, in := range []HistoryAddInput{
		{Title: "Good Fit Role", Result: good},
		{Title: "Poor Fit Role", Result: limited},
	} {
		if _, err := SaveMatch(ctx, in); err != nil {
			t.Fatalf("SaveMatch error: %v", err)
		}
	}

	res, err := ListMatches(ctx, HistoryListInput{Tier: "good"})
	if err != nil {
		t.Fatalf("ListMatches error: %v", err)
	}
	if res.Total != 1 {
		t.Fatalf("total = %d, want 1", res.Total)
	}
	if res.Matches[0].Title != "Good Fit Role" {
		t.Errorf("title = %q, want Good Fit Role", res.Matches[0].Title)
	}
	if len(res.Matches[0].SkillGaps) != 2 {
		t.Errorf("skill gaps = %v, want 2 entries round-tripped", res.Matches[0].SkillGaps)
	}
}

func TestListMatches_InvalidTier(t *testing.T) {
	resetHistory(t)
	if _, err := ListMatches(context.Background(), HistoryListInput{Tier: "stellar"}); err == nil {
		t.Error("expected error for unknown tier filter")
	}
}

func TestListMatches_Limit(t *testing.T) {
	resetHistory(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := SaveMatch(ctx, HistoryAddInput{Title: "Role", Result: sampleResult()}); err != nil {
			t.Fatalf("SaveMatch error: %v", err)
		}
	}

	res, err := ListMatches(ctx, HistoryListInput{Limit: 3})
	if err != nil {
		t.Fatalf("ListMatches error: %v", err)
	}
	if res.Total != 3 {
		t.Errorf("total = %d, want 3", res.Total)
	}
}
