package analysis

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidProfile marks a requirement profile the scorer cannot use.
var ErrInvalidProfile = errors.New("invalid requirement profile")

// Profile is the requirement side of a fit evaluation. An empty skill
// or education list means no requirement on that dimension, not an
// impossible one.
type Profile struct {
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experienceYears"`
	Education       []string `json:"education"`
}

// Validate rejects profiles the scorer cannot interpret. Empty lists
// are fine; blank entries and negative experience are not.
func (p Profile) Validate() error {
	if p.ExperienceYears < 0 {
		return fmt.Errorf("%w: experience years %d", ErrInvalidProfile, p.ExperienceYears)
	}
	for _, s := range p.Skills {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%w: blank skill entry", ErrInvalidProfile)
		}
	}
	for _, e := range p.Education {
		if strings.TrimSpace(e) == "" {
			return fmt.Errorf("%w: blank education entry", ErrInvalidProfile)
		}
	}
	return nil
}

// FitBreakdown reports every sub-score behind a fit score, plus the
// matched and missing requirement skills, both sorted.
type FitBreakdown struct {
	SkillsScore     float64  `json:"skillsScore"`
	ExperienceScore float64  `json:"experienceScore"`
	EducationScore  float64  `json:"educationScore"`
	SemanticScore   float64  `json:"semanticScore"`
	MatchedSkills   []string `json:"matchedSkills"`
	MissingSkills   []string `json:"missingSkills"`
}

// FitResult is the weighted overall fit with its breakdown.
type FitResult struct {
	Score     float64      `json:"score"`
	Breakdown FitBreakdown `json:"breakdown"`
}

const (
	weightSkills     = 0.40
	weightExperience = 0.25
	weightEducation  = 0.15
	weightSemantic   = 0.20

	eduExactScore   = 100.0
	eduPartialScore = 50.0
)

// ScoreFit evaluates resume text against a requirement profile. All
// sub-scores land in [0,100]; the overall score is their weighted sum.
// Requirement skills join the match set, so a profile can require
// terms outside the built-in vocabulary.
func (e *Engine) ScoreFit(text string, p Profile) (FitResult, error) {
	if err := p.Validate(); err != nil {
		return FitResult{}, err
	}

	toks := Tokenize(text)
	reqSkills := e.canonicalSet(p.Skills)
	candidate := e.extractSkills(toks, reqSkills)

	matched := make([]string, 0, len(reqSkills))
	missing := make([]string, 0, len(reqSkills))
	candSet := make(map[string]struct{}, len(candidate))
	for _, s := range candidate {
		candSet[s] = struct{}{}
	}
	for s := range reqSkills {
		if _, ok := candSet[s]; ok {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	skillsScore := 100.0
	if len(reqSkills) > 0 {
		skillsScore = round1(float64(len(matched)) / float64(len(reqSkills)) * 100)
	}

	expScore := scoreExperience(p.ExperienceYears, extractYears(text))
	eduScore := e.scoreEducation(p.Education, toks)
	semScore := round1(semanticSimilarity(strings.Join(p.Skills, " "), text) * 100)

	overall := round2(skillsScore*weightSkills +
		expScore*weightExperience +
		eduScore*weightEducation +
		semScore*weightSemantic)

	return FitResult{
		Score: overall,
		Breakdown: FitBreakdown{
			SkillsScore:     skillsScore,
			ExperienceScore: expScore,
			EducationScore:  eduScore,
			SemanticScore:   semScore,
			MatchedSkills:   matched,
			MissingSkills:   missing,
		},
	}, nil
}

func (e *Engine) canonicalSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		if c := e.vocab.Canonical(Normalize(s)); c != "" {
			set[c] = struct{}{}
		}
	}
	return set
}

// scoreExperience grants full credit when the requirement is zero or
// the candidate meets it, otherwise scales linearly with the shortfall.
func scoreExperience(required int, candidate *float64) float64 {
	if required == 0 {
		return 100
	}
	have := 0.0
	if candidate != nil {
		have = *candidate
	}
	if have >= float64(required) {
		return 100
	}
	return round1(clamp(have/float64(required), 0, 1) * 100)
}

// scoreEducation grants full credit when a required education keyword
// appears in the text, partial credit when any degree or field signal
// does, zero otherwise. No required keywords means no requirement.
func (e *Engine) scoreEducation(required []string, toks []string) float64 {
	if len(required) == 0 {
		return eduExactScore
	}
	padded := " " + strings.Join(toks, " ") + " "
	for _, r := range required {
		if n := Normalize(r); n != "" && strings.Contains(padded, " "+n+" ") {
			return eduExactScore
		}
	}
	matches, hasDegree := e.extractEducation(toks)
	if hasDegree || len(matches) > 0 {
		return eduPartialScore
	}
	return 0
}

