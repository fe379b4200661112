package fit

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// yearRe finds the first 4-digit year in free-form date text.
	yearRe = regexp.MustCompile(`\b(\d{4})\b`)
	// yearRangeRe matches "2018-2023" style ranges with dash-like delimiters.
	yearRangeRe = regexp.MustCompile(`(\d{4})\s*[-–—~]\s*(\d{4})`)

	// requiredYearsRes covers the observed surface forms: "5 years experience",
	// "5+ years of experience", "experience of 5 years".
	requiredYearsRes = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?experience`),
		regexp.MustCompile(`experience\s*(?:of\s*)?(\d+)\+?\s*years?`),
	}
)

// ResumeYears sums tenure across work experience entries. Entries whose dates
// cannot be parsed contribute zero years; the computation never fails.
func ResumeYears(r Resume) int {
	total := 0
	for _, exp := range r.WorkExperience {
		total += entryYears(exp)
	}
	return total
}

// entryYears extracts a start and end year from one entry. Accepts separate
// start/end fields or a combined "2018-2023" range in the start field.
func entryYears(exp WorkExperience) int {
	start := firstYear(exp.StartDate)
	end := firstYear(exp.EndDate)
	if start == 0 || end == 0 {
		if m := yearRangeRe.FindStringSubmatch(exp.StartDate); m != nil {
			start, _ = strconv.Atoi(m[1])
			end, _ = strconv.Atoi(m[2])
		}
	}
	if start == 0 || end == 0 {
		return 0
	}
	if years := end - start; years > 0 {
		return years
	}
	return 0
}

func firstYear(s string) int {
	m := yearRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	y, _ := strconv.Atoi(m[1])
	return y
}

// RequiredYears scans a job description for an experience requirement and
// returns the maximum N found. ok is false when the description specifies
// no requirement.
func RequiredYears(description string) (years int, ok bool) {
	desc := strings.ToLower(description)
	for _, re := range requiredYearsRes {
		for _, m := range re.FindAllStringSubmatch(desc, -1) {
			if n, err := strconv.Atoi(m[1]); err == nil && n > years {
				years = n
			}
		}
	}
	return years, years > 0
}

// MatchExperience compares resume tenure against the job's stated requirement.
// The tiers are deliberately coarse and must stay exact for downstream
// compatibility: no requirement → 50, met → 100, ≥80% → 80, ≥50% → 60,
// otherwise 30.
func MatchExperience(resume Resume, jobDescription string) float64 {
	return scoreExperience(ResumeYears(resume), jobDescription)
}

func scoreExperience(resumeYears int, jobDescription string) float64 {
	required, ok := RequiredYears(jobDescription)
	if !ok {
		return 50.0
	}
	have := float64(resumeYears)
	need := float64(required)
	switch {
	case have >= need:
		return 100.0
	case have >= 0.8*need:
		return 80.0
	case have >= 0.5*need:
		return 60.0
	default:
		return 30.0
	}
}
