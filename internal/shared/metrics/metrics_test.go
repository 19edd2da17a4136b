package metrics

import (
	"strings"
	"testing"
)

func TestRenderCountersAndHistogram(t *testing.T) {
	IncScreeningStarted()
	IncScreeningStarted()
	IncScreeningCompleted()
	IncScreeningFailed()
	IncResumeUploaded()
	ObserveScreeningDurationMs(3)
	ObserveScreeningDurationMs(40)
	ObserveScreeningDurationMs(-5)

	out := Render()

	wantLines := []string{
		"# TYPE screenings_started_total counter",
		"screenings_started_total 2",
		"screenings_completed_total 1",
		"screenings_failed_total 1",
		"resumes_uploaded_total 1",
		"# TYPE screening_duration_ms histogram",
		// -5 clamps to 0 and lands in the first bucket with the 3ms sample.
		`screening_duration_ms_bucket{le="5"} 2`,
		`screening_duration_ms_bucket{le="50"} 3`,
		`screening_duration_ms_bucket{le="+Inf"} 3`,
		"screening_duration_ms_sum 43",
		"screening_duration_ms_count 3",
	}
	for _, want := range wantLines {
		if !strings.Contains(out, want+"\n") {
			t.Fatalf("render output missing %q:\n%s", want, out)
		}
	}

	// Bucket counts must be cumulative.
	idx5 := strings.Index(out, `screening_duration_ms_bucket{le="5"}`)
	idx50 := strings.Index(out, `screening_duration_ms_bucket{le="50"}`)
	if idx5 < 0 || idx50 < 0 || idx5 > idx50 {
		t.Fatalf("bucket lines out of order:\n%s", out)
	}
}
