package recommend

import (
	"sort"
	"strings"
	"unicode"
)

const (
	maxPriority  = 5
	maxQuickWins = 6

	// Dimensions scoring at or above this need no priority advice.
	priorityCeiling = 85.0
)

type candidate struct {
	id     string
	score  float64
	name   string
	advice string
}

// Compose builds the advice lists. Priority advice comes from the
// lowest-scoring dimensions, worst first; quick wins come from the
// binary flags in a fixed order. Same input, same output, always.
func Compose(in Input) Recommendations {
	candidates := make([]candidate, 0, len(in.Dimensions))
	for _, d := range in.Dimensions {
		advice := strings.TrimSpace(d.Advice)
		name := strings.TrimSpace(d.Name)
		if advice == "" || name == "" || d.Score >= priorityCeiling {
			continue
		}
		candidates = append(candidates, candidate{
			id:     slugify(advice),
			score:  d.Score,
			name:   name,
			advice: advice,
		})
	}

	deduped := dedupe(candidates)
	sort.Slice(deduped, func(i, j int) bool {
		a, b := deduped[i], deduped[j]
		if a.score != b.score {
			return a.score < b.score
		}
		return strings.ToLower(a.name) < strings.ToLower(b.name)
	})
	if len(deduped) > maxPriority {
		deduped = deduped[:maxPriority]
	}

	priority := make([]string, 0, len(deduped))
	for _, c := range deduped {
		priority = append(priority, c.advice)
	}

	return Recommendations{
		Priority:  priority,
		QuickWins: quickWins(in),
	}
}

// quickWins emits flag-driven fixes in a fixed order so two resumes
// with the same gaps get the same list.
func quickWins(in Input) []string {
	var wins []string
	if in.Flags.MissingEmail {
		wins = append(wins, "Add an email address")
	}
	if in.Flags.MissingPhone {
		wins = append(wins, "Add a phone number")
	}
	if in.Flags.MissingLinkedIn {
		wins = append(wins, "Link your LinkedIn profile")
	}
	if in.Flags.MissingGitHub {
		wins = append(wins, "Link your GitHub profile")
	}
	if in.Flags.MissingSummary {
		wins = append(wins, "Add a professional summary at the top")
	}
	if sections := uniqueSortedStrings(in.MissingSections); len(sections) > 0 {
		wins = append(wins, "Add missing sections: "+strings.Join(sections, ", "))
	}
	if len(wins) > maxQuickWins {
		wins = wins[:maxQuickWins]
	}
	return wins
}

func dedupe(items []candidate) []candidate {
	seen := make(map[string]struct{}, len(items))
	out := make([]candidate, 0, len(items))
	for _, item := range items {
		if item.id == "" {
			continue
		}
		if _, ok := seen[item.id]; ok {
			continue
		}
		seen[item.id] = struct{}{}
		out = append(out, item)
	}
	return out
}

func slugify(input string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(input)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "item"
	}
	return out
}

func uniqueSortedStrings(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trimmed)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}
