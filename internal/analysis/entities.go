package analysis

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Contact flags which contact channels were found in the text.
type Contact struct {
	Email    bool `json:"email"`
	Phone    bool `json:"phone"`
	LinkedIn bool `json:"linkedin"`
	GitHub   bool `json:"github"`
}

// Summary is the professional summary block detected near the top of a
// resume, if any.
type Summary struct {
	Found     bool   `json:"found"`
	Text      string `json:"text"`
	WordCount int    `json:"wordCount"`
}

// Entities is everything the extractor pulls out of raw resume text.
// Skills and EducationMatches are canonicalized and sorted. RawText
// keeps the source text for downstream scorers but never serializes;
// API responses carry the derived fields only.
type Entities struct {
	RawText          string   `json:"-"`
	Skills           []string `json:"skills"`
	ExperienceYears  *float64 `json:"experienceYears,omitempty"`
	EducationMatches []string `json:"educationMatches"`
	HasDegree        bool     `json:"hasDegree"`
	Contact          Contact  `json:"contact"`
	Summary          Summary  `json:"summary"`
}

var (
	yearsPattern    = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*\+?\s*(?:years?|yrs?)`)
	emailPattern    = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern    = regexp.MustCompile(`(\+?1[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[\w\-]+`)
	githubPattern   = regexp.MustCompile(`(?i)github\.com/[\w\-]+`)

	summaryHeading = regexp.MustCompile(`(?i)^\s*(?:professional\s+)?(?:summary|profile|objective|about me)\b[:\s]*(.*)$`)
	sectionHeading = regexp.MustCompile(`(?i)^\s*(?:experience|work history|employment|education|academic|skills|technical skills|technologies|projects|certifications|achievements|internships)\b`)
)

const summaryMaxLines = 6

// Extract runs every extractor over text. Contact and summary detection
// work on the raw text since normalization strips the characters they
// key on; skill, experience and education detection work on normalized
// tokens.
func (e *Engine) Extract(text string) Entities {
	toks := Tokenize(text)
	eduMatches, hasDegree := e.extractEducation(toks)
	return Entities{
		RawText:          text,
		Skills:           e.extractSkills(toks, nil),
		ExperienceYears:  extractYears(text),
		EducationMatches: eduMatches,
		HasDegree:        hasDegree,
		Contact:          extractContact(text),
		Summary:          extractSummary(text),
	}
}

// extractSkills collects vocabulary hits over n-grams of the token
// stream, up to the longest phrase the vocabulary holds. extra widens
// the match set with already-canonicalized requirement skills so a
// profile can match terms outside the built-in lexicon.
func (e *Engine) extractSkills(toks []string, extra map[string]struct{}) []string {
	found := make(map[string]struct{})
	maxN := e.vocab.MaxPhraseWords()
	for s := range extra {
		if n := strings.Count(s, " ") + 1; n > maxN {
			maxN = n
		}
	}
	for i := range toks {
		for n := 1; n <= maxN && i+n <= len(toks); n++ {
			c := e.vocab.Canonical(strings.Join(toks[i:i+n], " "))
			if _, ok := e.vocab.skills[c]; ok {
				found[c] = struct{}{}
				continue
			}
			if extra != nil {
				if _, ok := extra[c]; ok {
					found[c] = struct{}{}
				}
			}
		}
	}
	return sortedKeys(found)
}

// extractYears returns the largest years-of-experience mention, or nil
// when the text never states one. Largest wins because resumes list
// per-role durations alongside a total.
func extractYears(text string) *float64 {
	var best float64
	found := false
	for _, m := range yearsPattern.FindAllStringSubmatch(text, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if !found || v > best {
			best = v
			found = true
		}
	}
	if !found {
		return nil
	}
	return &best
}

// extractEducation matches degree and field keywords as whole words or
// phrases against the token stream. Substring matching is deliberately
// avoided: "ai" must not match inside "maintained".
func (e *Engine) extractEducation(toks []string) (matches []string, hasDegree bool) {
	padded := " " + strings.Join(toks, " ") + " "
	found := make(map[string]struct{})
	for _, f := range e.vocab.eduFields {
		if strings.Contains(padded, " "+f+" ") {
			found[f] = struct{}{}
		}
	}
	for _, d := range e.vocab.degrees {
		if strings.Contains(padded, " "+d+" ") {
			hasDegree = true
			break
		}
	}
	return sortedKeys(found), hasDegree
}

func extractContact(text string) Contact {
	return Contact{
		Email:    emailPattern.MatchString(text),
		Phone:    phonePattern.MatchString(text),
		LinkedIn: linkedinPattern.MatchString(text),
		GitHub:   githubPattern.MatchString(text),
	}
}

// extractSummary scans for a summary/objective heading and captures the
// block that follows: inline text after the heading, then subsequent
// lines until a blank line, another section heading, or the line cap.
func extractSummary(text string) Summary {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		m := summaryHeading.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		var parts []string
		if inline := strings.TrimSpace(m[1]); inline != "" {
			parts = append(parts, inline)
		}
		for j := i + 1; j < len(lines) && len(parts) < summaryMaxLines; j++ {
			next := strings.TrimSpace(lines[j])
			if next == "" {
				if len(parts) > 0 {
					break
				}
				continue
			}
			if sectionHeading.MatchString(next) {
				break
			}
			parts = append(parts, next)
		}
		body := strings.TrimSpace(strings.Join(parts, " "))
		if body == "" {
			continue
		}
		return Summary{Found: true, Text: body, WordCount: len(strings.Fields(body))}
	}
	return Summary{}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
