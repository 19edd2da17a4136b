package analysis

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// QualityReport covers requirement-independent resume quality: writing
// signals, readability, ATS compatibility and keyword usage.
type QualityReport struct {
	Readability   Readability     `json:"readability"`
	GrammarIssues []string        `json:"grammarIssues"`
	Suggestions   []string        `json:"suggestions"`
	ATS           ATSAnalysis     `json:"ats"`
	Keywords      KeywordAnalysis `json:"keywordAnalysis"`
}

// ContactAnalysis scores contact-channel completeness.
type ContactAnalysis struct {
	Email             bool     `json:"email"`
	Phone             bool     `json:"phone"`
	LinkedIn          bool     `json:"linkedin"`
	GitHub            bool     `json:"github"`
	CompletenessScore float64  `json:"completenessScore"`
	Issues            []string `json:"issues"`
}

// SummaryAnalysis evaluates the professional summary block.
type SummaryAnalysis struct {
	Found       bool     `json:"found"`
	Text        string   `json:"text"`
	WordCount   int      `json:"wordCount"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// ATSAnalysis reports formatting traits that trip applicant tracking
// systems. Every issue costs a fixed penalty off a 100 base.
type ATSAnalysis struct {
	Score       float64  `json:"atsScore"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// KeywordStat is the occurrence count and per-100-words density of one
// keyword.
type KeywordStat struct {
	Count   int     `json:"count"`
	Density float64 `json:"density"`
}

// KeywordAnalysis reports keyword usage against a target list.
type KeywordAnalysis struct {
	Counts          map[string]KeywordStat `json:"counts"`
	OverallDensity  float64                `json:"overallDensity"`
	Recommendations []string               `json:"recommendations"`
}

const (
	contactFieldWeight = 25.0

	atsIssuePenalty  = 15.0
	specialCharLimit = 15

	minOverallDensity  = 1.0
	maxOverallDensity  = 3.0
	maxKeywordDensity  = 2.0
	summaryMinWords    = 20
	summaryMaxWords    = 100
	longSentenceWords  = 30
	maxGrammarIssues   = 10
	maxMissingSections = 3
)

var actionVerbs = []string{
	"built", "developed", "designed", "led", "optimized", "implemented", "launched",
	"automated", "reduced", "increased", "improved", "delivered", "owned", "created",
	"engineered", "constructed", "initiated", "executed", "analyzed", "produced",
	"managed", "mentored", "collaborated", "pioneered", "streamlined", "transformed",
	"generated", "identified", "resolved", "researched", "trained", "verified",
	"conceptualized",
}

var genericPhrases = []string{
	"responsible for", "worked on", "helped with", "involved in", "participated in",
	"hardworking", "team player", "result-oriented", "self-starter",
	"duties included", "tasked with", "a strong communicator", "goal-oriented", "flexible",
}

var resumeSections = []string{
	"education", "experience", "projects", "skills", "certifications",
	"summary", "achievements", "objective", "internships", "work",
}

var (
	passiveHint    = regexp.MustCompile(`(?i)\b(?:was|were|is|are|been|being|be)\b\s+\w+ed\b`)
	percentPattern = regexp.MustCompile(`\b\d+%`)
	numberPattern  = regexp.MustCompile(`\b\d+\b`)
	quantifiedHint = regexp.MustCompile(`(?i)\b\d+%|\b\d+\s*(?:years?|months?|people|projects?|dollars?)`)
	techRoleHint   = regexp.MustCompile(`(?i)\b(?:developer|programmer|engineer|coding)\b`)

	nonASCIIPattern    = regexp.MustCompile("[^\x00-\x7f]")
	specialCharPattern = regexp.MustCompile(`[^\w\s\-.,:;()\[\]/]`)
	tablePattern       = regexp.MustCompile(`\|.*\|`)
	experienceHeader   = regexp.MustCompile(`(?im)^(?:experience|work history|employment)\b`)
	educationHeader    = regexp.MustCompile(`(?im)^(?:education|academic)\b`)
	skillsHeader       = regexp.MustCompile(`(?im)^(?:skills|technical skills|technologies)\b`)

	monthYearDate = regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{4}`)
	numericDate   = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`)
	yearRangeDate = regexp.MustCompile(`\b\d{4}\s*[-–]\s*\d{4}\b`)

	bulletPrefix = regexp.MustCompile(`^[-*•]\s*`)
)

// ScoreQuality evaluates extracted entities without any requirement
// profile. keywords drives the density section; pass the extracted
// skills for a standalone report or the requirement skills when a
// profile is known.
func (e *Engine) ScoreQuality(ent Entities, keywords []string) QualityReport {
	return QualityReport{
		Readability:   readabilityStats(ent.RawText),
		GrammarIssues: grammarIssues(ent.RawText),
		Suggestions:   writingSuggestions(ent.RawText),
		ATS:           atsAnalysis(ent.RawText, ent.Contact),
		Keywords:      keywordAnalysis(ent.RawText, keywords),
	}
}

// writingSuggestions produces ordered improvement tips from content
// signals: section coverage, verb strength, generic phrasing, passive
// voice, quantification and bullet length.
func writingSuggestions(text string) []string {
	var tips []string
	norm := Normalize(text)
	padded := " " + norm + " "

	if missing := missingSections(text); len(missing) > 0 {
		tips = append(tips, "Consider adding sections: "+strings.Join(missing, ", ")+".")
	}

	hasActionVerb := false
	for _, v := range actionVerbs {
		if strings.Contains(padded, " "+v+" ") {
			hasActionVerb = true
			break
		}
	}
	if !hasActionVerb {
		tips = append(tips, "Use strong action verbs (e.g., built, optimized, implemented) at bullet starts.")
	}

	for _, gp := range genericPhrases {
		if strings.Contains(norm, gp) {
			tips = append(tips, fmt.Sprintf("Replace generic phrase %q with specific, impact-focused wording.", gp))
			break
		}
	}

	if passiveHint.MatchString(text) {
		tips = append(tips, "Reduce passive voice; prefer active constructions (e.g., 'Designed X' vs 'X was designed').")
	}

	if !percentPattern.MatchString(text) && !numberPattern.MatchString(text) {
		tips = append(tips, "Quantify impact with numbers (e.g., 'reduced latency by 35%').")
	}

	tips = append(tips, "Aim for concise bullets (typically 10-20 words). Avoid long sentences.")
	return tips
}

// grammarIssues runs the rule-based checks. Each rule contributes at
// most one issue string, in a fixed order.
func grammarIssues(text string) []string {
	var issues []string

	if w := firstRepeatedWord(text); w != "" {
		issues = append(issues, fmt.Sprintf("Repeated word %q.", w))
	}

	if n := countLongSentences(text); n > 0 {
		issues = append(issues, fmt.Sprintf("%d sentence(s) longer than %d words; split them up.", n, longSentenceWords))
	}

	if heading := headingMissingSeparator(text); heading != "" {
		issues = append(issues, fmt.Sprintf("Section heading %q runs straight into its content; add punctuation or a blank line.", heading))
	}

	if mixedBulletTense(text) {
		issues = append(issues, "Inconsistent verb tense across bullet points.")
	}

	if n := countLowercaseStarts(text); n > 0 {
		issues = append(issues, fmt.Sprintf("%d sentence(s) starting with a lowercase letter.", n))
	}

	if len(issues) > maxGrammarIssues {
		issues = issues[:maxGrammarIssues]
	}
	return issues
}

func firstRepeatedWord(text string) string {
	prev := ""
	for _, f := range strings.Fields(text) {
		w := strings.ToLower(strings.Trim(f, ".,;:!?()"))
		if w != "" && w == prev && isAlphaWord(w) && len(w) >= 2 {
			return w
		}
		prev = w
	}
	return ""
}

func isAlphaWord(w string) bool {
	for _, r := range w {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

func countLongSentences(text string) int {
	n := 0
	for _, s := range sentenceSplit.Split(text, -1) {
		if len(strings.Fields(s)) > longSentenceWords {
			n++
		}
	}
	return n
}

// countLowercaseStarts counts sentences whose first letter is
// lowercase. Bullet markers and other punctuation before the first
// letter are skipped.
func countLowercaseStarts(text string) int {
	n := 0
	for _, s := range sentenceSplit.Split(text, -1) {
		for _, r := range strings.TrimSpace(s) {
			if !unicode.IsLetter(r) {
				continue
			}
			if unicode.IsLower(r) {
				n++
			}
			break
		}
	}
	return n
}

// headingMissingSeparator finds a known section heading with no colon
// that is immediately followed by content on the next line.
func headingMissingSeparator(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !sectionHeading.MatchString(trimmed) || strings.Contains(trimmed, ":") {
			continue
		}
		if len(strings.Fields(trimmed)) > 3 {
			continue
		}
		if i+1 < len(lines) && strings.TrimSpace(lines[i+1]) != "" {
			return trimmed
		}
	}
	return ""
}

// mixedBulletTense reports bullets split between past-tense openers and
// -ing openers. A couple of each is a style inconsistency worth a flag.
func mixedBulletTense(text string) bool {
	past, gerund := 0, 0
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		body := bulletPrefix.ReplaceAllString(trimmed, "")
		fields := strings.Fields(strings.ToLower(body))
		if len(fields) == 0 {
			continue
		}
		first := strings.Trim(fields[0], ".,;:")
		switch {
		case containsString(actionVerbs, first):
			past++
		case strings.HasSuffix(first, "ing") && len(first) > 4:
			gerund++
		}
	}
	return past >= 2 && gerund >= 2
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// contactAnalysis turns channel presence into a completeness score and
// the matching issue strings. The GitHub nudge only fires for texts
// that read like technical roles.
func contactAnalysis(c Contact, text string) ContactAnalysis {
	out := ContactAnalysis{
		Email:    c.Email,
		Phone:    c.Phone,
		LinkedIn: c.LinkedIn,
		GitHub:   c.GitHub,
	}
	fields := 0
	for _, present := range []bool{c.Email, c.Phone, c.LinkedIn, c.GitHub} {
		if present {
			fields++
		}
	}
	out.CompletenessScore = float64(fields) * contactFieldWeight

	if !c.Email {
		out.Issues = append(out.Issues, "Missing email address")
	}
	if !c.Phone {
		out.Issues = append(out.Issues, "Missing phone number")
	}
	if !c.LinkedIn {
		out.Issues = append(out.Issues, "Consider adding LinkedIn profile")
	}
	if !c.GitHub && techRoleHint.MatchString(text) {
		out.Issues = append(out.Issues, "Consider adding GitHub profile for technical roles")
	}
	return out
}

// summaryAnalysis checks the detected summary block against length and
// content expectations.
func summaryAnalysis(s Summary) SummaryAnalysis {
	out := SummaryAnalysis{Found: s.Found, Text: s.Text, WordCount: s.WordCount}
	if !s.Found {
		out.Issues = append(out.Issues, "Missing professional summary section")
		out.Suggestions = append(out.Suggestions, "Add a compelling 2-3 line professional summary")
		return out
	}

	switch {
	case s.WordCount < summaryMinWords:
		out.Issues = append(out.Issues, "Professional summary too short")
		out.Suggestions = append(out.Suggestions, fmt.Sprintf("Expand summary to %d-50 words", summaryMinWords))
	case s.WordCount > summaryMaxWords:
		out.Issues = append(out.Issues, "Professional summary too long")
		out.Suggestions = append(out.Suggestions, fmt.Sprintf("Keep summary concise (%d-50 words)", summaryMinWords))
	}

	lower := strings.ToLower(s.Text)
	hasVerb := false
	for _, v := range actionVerbs {
		if strings.Contains(lower, v) {
			hasVerb = true
			break
		}
	}
	if !hasVerb {
		out.Suggestions = append(out.Suggestions, "Use strong action verbs in summary")
	}
	if !quantifiedHint.MatchString(s.Text) {
		out.Suggestions = append(out.Suggestions, "Include quantifiable achievements in summary")
	}
	return out
}

// atsAnalysis runs the formatting checks an applicant tracking system
// cares about. Each failed check costs atsIssuePenalty.
func atsAnalysis(text string, c Contact) ATSAnalysis {
	var issues, suggestions []string

	if nonASCIIPattern.MatchString(text) {
		issues = append(issues, "Contains non-ASCII characters that may cause ATS issues")
		suggestions = append(suggestions, "Use standard ASCII characters only")
	}
	if len(specialCharPattern.FindAllString(text, specialCharLimit+1)) > specialCharLimit {
		issues = append(issues, "Contains excessive special characters that may confuse ATS")
		suggestions = append(suggestions, "Avoid decorative symbols; keep punctuation simple")
	}
	if tablePattern.MatchString(text) {
		issues = append(issues, "Contains tables which may not parse well in ATS")
		suggestions = append(suggestions, "Convert tables to bullet points or simple text")
	}
	if !experienceHeader.MatchString(text) {
		issues = append(issues, "Missing clear 'Experience' section header")
		suggestions = append(suggestions, "Use standard section headers: Experience, Education, Skills")
	}
	if !educationHeader.MatchString(text) {
		issues = append(issues, "Missing clear 'Education' section header")
	}
	if !skillsHeader.MatchString(text) {
		issues = append(issues, "Missing clear 'Skills' section header")
	}
	if !c.Email {
		issues = append(issues, "No email address for recruiters to reach")
	}
	if !c.Phone {
		issues = append(issues, "No phone number for recruiters to reach")
	}
	if mixedDateStyles(text) {
		issues = append(issues, "Inconsistent date formatting")
		suggestions = append(suggestions, "Use one date format throughout (e.g., Jan 2023)")
	}

	score := 100 - atsIssuePenalty*float64(len(issues))
	return ATSAnalysis{Score: clamp(score, 0, 100), Issues: issues, Suggestions: suggestions}
}

// mixedDateStyles reports whether the text mixes date style families
// (month-name, numeric, bare year range).
func mixedDateStyles(text string) bool {
	families := 0
	for _, p := range []*regexp.Regexp{monthYearDate, numericDate, yearRangeDate} {
		if p.MatchString(text) {
			families++
		}
	}
	return families >= 2
}

// keywordAnalysis counts keyword occurrences and densities per 100
// words. Keywords are deduplicated and processed in sorted order so the
// recommendation list is stable.
func keywordAnalysis(text string, keywords []string) KeywordAnalysis {
	lower := strings.ToLower(text)
	wordCount := len(strings.Fields(lower))

	uniq := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			uniq[k] = struct{}{}
		}
	}
	ordered := make([]string, 0, len(uniq))
	for k := range uniq {
		ordered = append(ordered, k)
	}
	sort.Strings(ordered)

	counts := make(map[string]KeywordStat, len(ordered))
	total := 0
	for _, k := range ordered {
		n := strings.Count(lower, k)
		total += n
		density := 0.0
		if wordCount > 0 {
			density = round2(float64(n) / float64(wordCount) * 100)
		}
		counts[k] = KeywordStat{Count: n, Density: density}
	}

	overall := 0.0
	if wordCount > 0 {
		overall = round2(float64(total) / float64(wordCount) * 100)
	}

	var recs []string
	if len(ordered) > 0 {
		if overall < minOverallDensity {
			recs = append(recs, "Increase keyword density - aim for 1-2%")
		} else if overall > maxOverallDensity {
			recs = append(recs, "Reduce keyword density - avoid keyword stuffing")
		}
		for _, k := range ordered {
			switch stat := counts[k]; {
			case stat.Count == 0:
				recs = append(recs, fmt.Sprintf("Consider adding %q if relevant", k))
			case stat.Density > maxKeywordDensity:
				recs = append(recs, fmt.Sprintf("Reduce overuse of %q", k))
			}
		}
	}

	return KeywordAnalysis{Counts: counts, OverallDensity: overall, Recommendations: recs}
}
