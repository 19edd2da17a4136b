// Package analysis implements the deterministic resume scoring engine:
// entity extraction, requirement-fit scoring and quality/ATS reporting.
// It never calls the network and never mutates its inputs, so the same
// text and profile always produce the same report.
package analysis

import "math"

// Engine evaluates resume text against the vocabulary it was built with.
type Engine struct {
	vocab *Vocabulary
}

// NewEngine returns an engine bound to vocab. A nil vocab selects the
// built-in lexicon.
func NewEngine(vocab *Vocabulary) *Engine {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Engine{vocab: vocab}
}

// Vocab exposes the engine's vocabulary for callers that canonicalize
// their own inputs before scoring.
func (e *Engine) Vocab() *Vocabulary { return e.vocab }

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func clamp(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}
