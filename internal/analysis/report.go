package analysis

import (
	"strings"

	"resume-screener/internal/analysis/recommend"
)

// ComprehensiveReport is the full requirement-independent evaluation of
// one resume, plus composed improvement advice. When a fit result is
// supplied the advice also covers the requirement gaps.
type ComprehensiveReport struct {
	OverallScore    float64                   `json:"overallScore"`
	Quality         QualityReport             `json:"quality"`
	Contact         ContactAnalysis           `json:"contact"`
	Summary         SummaryAnalysis           `json:"summary"`
	Recommendations recommend.Recommendations `json:"recommendations"`
}

const (
	qualityWeightReadability = 0.20
	qualityWeightContact     = 0.25
	qualityWeightATS         = 0.35
	qualityWeightSummary     = 0.20

	summaryPresentScore   = 100.0
	maxNamedMissingSkills = 3
)

// BuildReport scores the extracted entities on every quality dimension
// and composes the advice lists. fit may be nil; when present, its
// breakdown feeds the priority advice and the keyword density targets
// become the required skills instead of the extracted ones.
func (e *Engine) BuildReport(ent Entities, fit *FitResult) ComprehensiveReport {
	keywords := ent.Skills
	if fit != nil {
		keywords = append(append([]string{}, fit.Breakdown.MatchedSkills...), fit.Breakdown.MissingSkills...)
	}

	quality := e.ScoreQuality(ent, keywords)
	contact := contactAnalysis(ent.Contact, ent.RawText)
	summary := summaryAnalysis(ent.Summary)

	summaryComponent := 0.0
	if summary.Found {
		summaryComponent = summaryPresentScore
	}
	overall := clamp(quality.Readability.FleschReadingEase, 0, 100)*qualityWeightReadability +
		contact.CompletenessScore*qualityWeightContact +
		quality.ATS.Score*qualityWeightATS +
		summaryComponent*qualityWeightSummary

	return ComprehensiveReport{
		OverallScore:    round1(clamp(overall, 0, 100)),
		Quality:         quality,
		Contact:         contact,
		Summary:         summary,
		Recommendations: composeAdvice(ent.RawText, quality, contact, summary, fit),
	}
}

func composeAdvice(text string, quality QualityReport, contact ContactAnalysis, summary SummaryAnalysis, fit *FitResult) recommend.Recommendations {
	var dims []recommend.Dimension
	if fit != nil {
		dims = append(dims,
			recommend.Dimension{
				Name:   "skills",
				Score:  fit.Breakdown.SkillsScore,
				Advice: missingSkillsAdvice(fit.Breakdown.MissingSkills),
			},
			recommend.Dimension{
				Name:   "experience",
				Score:  fit.Breakdown.ExperienceScore,
				Advice: "State your total years of experience explicitly",
			},
			recommend.Dimension{
				Name:   "education",
				Score:  fit.Breakdown.EducationScore,
				Advice: "Highlight your degree and field of study",
			},
			recommend.Dimension{
				Name:   "semantic",
				Score:  fit.Breakdown.SemanticScore,
				Advice: "Mirror the role's terminology in your experience bullets",
			},
		)
	}
	dims = append(dims,
		recommend.Dimension{
			Name:   "readability",
			Score:  clamp(quality.Readability.FleschReadingEase, 0, 100),
			Advice: "Shorten sentences and simplify wording for easier scanning",
		},
		recommend.Dimension{
			Name:   "ats",
			Score:  quality.ATS.Score,
			Advice: "Fix ATS formatting: standard section headers, no tables, plain characters",
		},
	)

	return recommend.Compose(recommend.Input{
		Dimensions: dims,
		Flags: recommend.Flags{
			MissingEmail:    !contact.Email,
			MissingPhone:    !contact.Phone,
			MissingLinkedIn: !contact.LinkedIn,
			MissingGitHub:   !contact.GitHub,
			MissingSummary:  !summary.Found,
		},
		MissingSections: missingSections(text),
	})
}

func missingSkillsAdvice(missing []string) string {
	if len(missing) == 0 {
		return "Strengthen the skills section with the technologies the role names"
	}
	named := missing
	if len(named) > maxNamedMissingSkills {
		named = named[:maxNamedMissingSkills]
	}
	return "Add evidence of required skills: " + strings.Join(named, ", ")
}

// missingSections lists the standard resume sections the text never
// mentions, capped for advice brevity.
func missingSections(text string) []string {
	norm := Normalize(text)
	var missing []string
	for _, s := range resumeSections {
		if !strings.Contains(norm, s) {
			missing = append(missing, s)
		}
	}
	if len(missing) > maxMissingSections {
		missing = missing[:maxMissingSections]
	}
	return missing
}
