package analysis

import (
	"reflect"
	"strings"
	"testing"
)

func TestATSPenaltyPerIssue(t *testing.T) {
	text := "| Role | Years |\nsome unstructured text"
	got := atsAnalysis(text, Contact{})

	// table, three missing headers, missing email, missing phone
	if len(got.Issues) != 6 {
		t.Fatalf("issues = %v, want 6 entries", got.Issues)
	}
	if got.Score != 10 {
		t.Fatalf("ats score = %v, want 10", got.Score)
	}
}

func TestATSScoreFloorsAtZero(t *testing.T) {
	text := "café " + strings.Repeat("@", specialCharLimit+1) +
		" | a | b |\nJan 2020 and 2018 - 2019"
	got := atsAnalysis(text, Contact{})
	if got.Score != 0 {
		t.Fatalf("ats score = %v, want 0", got.Score)
	}
}

func TestATSCleanResume(t *testing.T) {
	got := atsAnalysis(sampleResume, Contact{Email: true, Phone: true})
	if len(got.Issues) != 0 {
		t.Fatalf("expected no issues, got %v", got.Issues)
	}
	if got.Score != 100 {
		t.Fatalf("ats score = %v, want 100", got.Score)
	}
}

func TestContactAnalysisCompleteness(t *testing.T) {
	full := contactAnalysis(Contact{Email: true, Phone: true, LinkedIn: true, GitHub: true}, "")
	if full.CompletenessScore != 100 || len(full.Issues) != 0 {
		t.Fatalf("full contact = %+v", full)
	}

	none := contactAnalysis(Contact{}, "Software developer resume")
	if none.CompletenessScore != 0 {
		t.Fatalf("completeness = %v, want 0", none.CompletenessScore)
	}
	if len(none.Issues) != 4 {
		t.Fatalf("issues = %v, want 4 entries including the GitHub nudge", none.Issues)
	}

	nonTech := contactAnalysis(Contact{}, "Office manager resume")
	if len(nonTech.Issues) != 3 {
		t.Fatalf("issues = %v, want 3 entries without the GitHub nudge", nonTech.Issues)
	}
}

func TestSummaryAnalysisLengthBounds(t *testing.T) {
	short := summaryAnalysis(Summary{Found: true, Text: "Engineer who ships", WordCount: 3})
	if len(short.Issues) == 0 || !strings.Contains(short.Issues[0], "too short") {
		t.Fatalf("short summary issues = %v", short.Issues)
	}

	long := summaryAnalysis(Summary{Found: true, Text: strings.Repeat("word ", 120), WordCount: 120})
	if len(long.Issues) == 0 || !strings.Contains(long.Issues[0], "too long") {
		t.Fatalf("long summary issues = %v", long.Issues)
	}

	missing := summaryAnalysis(Summary{})
	if len(missing.Issues) != 1 || len(missing.Suggestions) != 1 {
		t.Fatalf("missing summary analysis = %+v", missing)
	}
}

func TestKeywordAnalysisRecommendations(t *testing.T) {
	got := keywordAnalysis("go go go go", []string{"Go", "rust"})

	if got.Counts["go"].Count != 4 {
		t.Fatalf("go count = %d, want 4", got.Counts["go"].Count)
	}
	if got.Counts["rust"].Count != 0 {
		t.Fatalf("rust count = %d, want 0", got.Counts["rust"].Count)
	}
	want := []string{
		"Reduce keyword density - avoid keyword stuffing",
		`Reduce overuse of "go"`,
		`Consider adding "rust" if relevant`,
	}
	if !reflect.DeepEqual(got.Recommendations, want) {
		t.Fatalf("recommendations = %v, want %v", got.Recommendations, want)
	}
}

func TestKeywordAnalysisEmptyInputs(t *testing.T) {
	got := keywordAnalysis("", []string{"go"})
	if got.OverallDensity != 0 {
		t.Fatalf("density = %v, want 0", got.OverallDensity)
	}

	noKeywords := keywordAnalysis("plenty of text", nil)
	if len(noKeywords.Recommendations) != 0 {
		t.Fatalf("recommendations = %v, want none", noKeywords.Recommendations)
	}
}

func TestGrammarIssueRules(t *testing.T) {
	repeated := grammarIssues("We built built the platform.")
	if len(repeated) == 0 || !strings.Contains(repeated[0], `"built"`) {
		t.Fatalf("repeated-word issues = %v", repeated)
	}

	long := grammarIssues(strings.Repeat("word ", longSentenceWords+5) + ".")
	found := false
	for _, iss := range long {
		if strings.Contains(iss, "longer than") {
			found = true
		}
	}
	if !found {
		t.Fatalf("long-sentence issues = %v", long)
	}

	mixed := grammarIssues("- Built the API\n- Led the team\n- Building dashboards\n- Managing releases")
	found = false
	for _, iss := range mixed {
		if strings.Contains(iss, "tense") {
			found = true
		}
	}
	if !found {
		t.Fatalf("tense issues = %v", mixed)
	}

	lower := grammarIssues("we built the platform. it scaled well.")
	found = false
	for _, iss := range lower {
		if strings.Contains(iss, "lowercase") {
			found = true
		}
	}
	if !found {
		t.Fatalf("lowercase issues = %v", lower)
	}

	if clean := grammarIssues("Built the API. Led the team."); len(clean) != 0 {
		t.Fatalf("expected no issues, got %v", clean)
	}
}

func TestReadabilityStats(t *testing.T) {
	simple := readabilityStats("The cat sat on the mat.")
	if simple.AvgSentenceLength != 6 {
		t.Fatalf("avg sentence length = %v, want 6", simple.AvgSentenceLength)
	}

	dense := readabilityStats("Orchestrated multidisciplinary organizational transformation initiatives, systematically operationalizing comprehensive infrastructure modernization strategies across heterogeneous technological environments.")
	if dense.FleschReadingEase >= simple.FleschReadingEase {
		t.Fatalf("dense text should read harder: dense=%v simple=%v",
			dense.FleschReadingEase, simple.FleschReadingEase)
	}
	if dense.SMOGIndex <= simple.SMOGIndex {
		t.Fatalf("dense text should have higher SMOG: dense=%v simple=%v",
			dense.SMOGIndex, simple.SMOGIndex)
	}

	if empty := readabilityStats(""); empty != (Readability{}) {
		t.Fatalf("empty text stats = %+v", empty)
	}
}

func TestCountSyllables(t *testing.T) {
	cases := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"table", 2},
		{"code", 1},
		{"communication", 5},
		{"strength", 1},
		{"", 1},
	}
	for _, c := range cases {
		if got := countSyllables(c.word); got != c.want {
			t.Fatalf("countSyllables(%q) = %d, want %d", c.word, got, c.want)
		}
	}
}

func TestWritingSuggestionsSignals(t *testing.T) {
	tips := writingSuggestions("I was responsible for stuff.")
	joined := strings.Join(tips, " | ")
	for _, want := range []string{"adding sections", "action verbs", "generic phrase", "Quantify"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("tips missing %q: %v", want, tips)
		}
	}
}
