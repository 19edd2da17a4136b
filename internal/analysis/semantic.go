package analysis

import "math"

// semanticSimilarity scores how close two texts are as term-frequency
// vectors over their normalized tokens, cosine in [0,1]. Either side
// empty scores 0.
func semanticSimilarity(a, b string) float64 {
	va := termFrequency(Tokenize(a))
	vb := termFrequency(Tokenize(b))
	if len(va) == 0 || len(vb) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for term, fa := range va {
		if fb, ok := vb[term]; ok {
			dot += fa * fb
		}
		normA += fa * fa
	}
	for _, fb := range vb {
		normB += fb * fb
	}
	if dot == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func termFrequency(toks []string) map[string]float64 {
	if len(toks) == 0 {
		return nil
	}
	tf := make(map[string]float64, len(toks))
	for _, t := range toks {
		tf[t]++
	}
	total := float64(len(toks))
	for t := range tf {
		tf[t] /= total
	}
	return tf
}
