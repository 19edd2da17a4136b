package analysis

import (
	"reflect"
	"strings"
	"testing"
)

func TestBuildReportBounds(t *testing.T) {
	e := NewEngine(nil)
	ent := e.Extract(sampleResume)
	report := e.BuildReport(ent, nil)

	if report.OverallScore < 0 || report.OverallScore > 100 {
		t.Fatalf("overall score %v out of range", report.OverallScore)
	}
	if report.Quality.ATS.Score < 0 || report.Quality.ATS.Score > 100 {
		t.Fatalf("ats score %v out of range", report.Quality.ATS.Score)
	}
	if report.Contact.CompletenessScore != 100 {
		t.Fatalf("completeness = %v, want 100", report.Contact.CompletenessScore)
	}
}

func TestBuildReportDeterministic(t *testing.T) {
	e := NewEngine(nil)
	ent := e.Extract(sampleResume)
	first := e.BuildReport(ent, nil)
	second := e.BuildReport(ent, nil)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("reports differ:\n%+v\n%+v", first, second)
	}
}

func TestBuildReportMissingSummaryQuickWin(t *testing.T) {
	text := "Experience\n- Built APIs\nEducation\nBachelor of Science in Computer Science\nSkills\nGo, Python"
	e := NewEngine(nil)
	ent := e.Extract(text)

	if ent.Summary.Found {
		t.Fatalf("expected no summary in %q", text)
	}
	report := e.BuildReport(ent, nil)
	if report.Summary.Found {
		t.Fatalf("summary analysis should report found=false")
	}

	found := false
	for _, win := range report.Recommendations.QuickWins {
		if strings.Contains(win, "professional summary") {
			found = true
		}
	}
	if !found {
		t.Fatalf("quick wins missing summary fix: %v", report.Recommendations.QuickWins)
	}
}

func TestBuildReportWithFitNamesMissingSkills(t *testing.T) {
	e := NewEngine(nil)
	text := "Summary\nGo developer shipping services.\n\nExperience\n- Built APIs in Go"
	ent := e.Extract(text)

	fit, err := e.ScoreFit(text, Profile{Skills: []string{"Go", "COBOL", "Fortran"}})
	if err != nil {
		t.Fatalf("ScoreFit: %v", err)
	}
	report := e.BuildReport(ent, &fit)

	found := false
	for _, p := range report.Recommendations.Priority {
		if strings.Contains(p, "cobol") && strings.Contains(p, "fortran") {
			found = true
		}
	}
	if !found {
		t.Fatalf("priority advice missing required skills: %v", report.Recommendations.Priority)
	}
	if len(report.Recommendations.Priority) > 5 {
		t.Fatalf("priority list too long: %v", report.Recommendations.Priority)
	}

	// keyword targets switch to the requirement skills when fit is present
	if _, ok := report.Quality.Keywords.Counts["cobol"]; !ok {
		t.Fatalf("keyword analysis should track required skills, got %v", report.Quality.Keywords.Counts)
	}
}
