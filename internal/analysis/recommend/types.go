// Package recommend composes ordered, deterministic improvement advice
// from scored analysis dimensions and binary resume signals.
package recommend

// Dimension is one scored axis of an analysis (skills, experience,
// readability, ats compatibility, ...) together with the advice to
// surface when it scores low.
type Dimension struct {
	Name   string
	Score  float64
	Advice string
}

// Flags are the binary signals that map to cheap fixes.
type Flags struct {
	MissingEmail    bool
	MissingPhone    bool
	MissingLinkedIn bool
	MissingGitHub   bool
	MissingSummary  bool
}

// Input is the normalized data the composer works from.
type Input struct {
	Dimensions      []Dimension
	Flags           Flags
	MissingSections []string
}

// Recommendations are the composed advice lists: priority items ordered
// most impactful first, quick wins in a fixed cheap-fix order.
type Recommendations struct {
	Priority  []string `json:"priority"`
	QuickWins []string `json:"quickWins"`
}
