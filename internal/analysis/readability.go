package analysis

import (
	"math"
	"regexp"
	"strings"
)

// Readability carries the standard readability statistics for a text.
type Readability struct {
	FleschReadingEase float64 `json:"fleschReadingEase"`
	SMOGIndex         float64 `json:"smogIndex"`
	AvgSentenceLength float64 `json:"avgSentenceLength"`
}

const (
	fleschBase           = 206.835
	fleschSentenceWeight = 1.015
	fleschSyllableWeight = 84.6
	smogCoefficient      = 1.043
	smogIntercept        = 3.1291
	smogSentenceScale    = 30.0
)

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// readabilityStats computes Flesch reading ease, SMOG index and average
// sentence length from word, sentence and syllable counts. Texts with
// no terminal punctuation count as a single sentence so the ratios stay
// defined.
func readabilityStats(text string) Readability {
	words := strings.Fields(text)
	if len(words) == 0 {
		return Readability{}
	}

	sentences := countSentences(text)
	var syllables, polysyllables int
	for _, w := range words {
		s := countSyllables(w)
		syllables += s
		if s >= 3 {
			polysyllables++
		}
	}

	wordCount := float64(len(words))
	sentenceCount := float64(sentences)

	flesch := fleschBase -
		fleschSentenceWeight*(wordCount/sentenceCount) -
		fleschSyllableWeight*(float64(syllables)/wordCount)
	smog := smogCoefficient*math.Sqrt(float64(polysyllables)*smogSentenceScale/sentenceCount) + smogIntercept

	return Readability{
		FleschReadingEase: round2(flesch),
		SMOGIndex:         round2(smog),
		AvgSentenceLength: round2(wordCount / sentenceCount),
	}
}

func countSentences(text string) int {
	n := 0
	for _, part := range sentenceSplit.Split(text, -1) {
		if strings.TrimSpace(part) != "" {
			n++
		}
	}
	if n == 0 {
		return 1
	}
	return n
}

// countSyllables approximates syllables as vowel groups, discounting a
// trailing silent e. Every word counts at least one.
func countSyllables(word string) int {
	w := strings.ToLower(strings.TrimFunc(word, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	}))
	if w == "" {
		return 1
	}
	count := 0
	prevVowel := false
	for _, r := range w {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	if count > 1 && strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") && !isVowel(rune(w[len(w)-2])) {
		count--
	}
	if count < 1 {
		return 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
