package analysis

import (
	"reflect"
	"testing"
)

const sampleResume = `John Doe
john.doe@example.com | (555) 123-4567
linkedin.com/in/johndoe | github.com/johndoe

Summary
Software engineer with 6 years of experience building Go services and React frontends.

Experience
Senior Software Engineer, Acme (2019 - 2023)
- Built machine learning pipelines with Python and TensorFlow
- Led migration to Kubernetes, cutting deploy time by 40%

Education
Bachelor of Science in Computer Science, State University

Skills
Go, Python, React, k8s, PostgreSQL, natural language processing
`

func TestExtractSkillsFromResume(t *testing.T) {
	ent := NewEngine(nil).Extract(sampleResume)

	want := []string{
		"golang", "kubernetes", "machine learning", "natural language processing",
		"postgres", "python", "react", "tensorflow",
	}
	if !reflect.DeepEqual(ent.Skills, want) {
		t.Fatalf("skills = %v, want %v", ent.Skills, want)
	}
}

func TestExtractYears(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		none bool
	}{
		{"over 3.5 years of Go experience", 3.5, false},
		{"7+ yrs shipping software", 7, false},
		{"2 years here and 5 years there", 5, false},
		{"worked from 2019 to 2023", 0, true},
		{"", 0, true},
	}
	for _, c := range cases {
		got := extractYears(c.in)
		if c.none {
			if got != nil {
				t.Fatalf("extractYears(%q) = %v, want nil", c.in, *got)
			}
			continue
		}
		if got == nil || *got != c.want {
			t.Fatalf("extractYears(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestExtractEducationWholeWordsOnly(t *testing.T) {
	e := NewEngine(nil)

	matches, hasDegree := e.extractEducation(Tokenize("maintained legacy systems and trained new hires"))
	if len(matches) != 0 || hasDegree {
		t.Fatalf("expected no education signal, got matches=%v degree=%v", matches, hasDegree)
	}

	matches, hasDegree = e.extractEducation(Tokenize("MSc in Artificial Intelligence, minor in Statistics"))
	if !hasDegree {
		t.Fatalf("expected degree keyword to match")
	}
	want := []string{"artificial intelligence", "statistics"}
	if !reflect.DeepEqual(matches, want) {
		t.Fatalf("matches = %v, want %v", matches, want)
	}
}

func TestExtractContact(t *testing.T) {
	ent := NewEngine(nil).Extract(sampleResume)
	c := ent.Contact
	if !c.Email || !c.Phone || !c.LinkedIn || !c.GitHub {
		t.Fatalf("expected all contact channels, got %+v", c)
	}

	none := NewEngine(nil).Extract("Plain text with no contact details at all.")
	if none.Contact != (Contact{}) {
		t.Fatalf("expected no contact channels, got %+v", none.Contact)
	}
}

func TestExtractSummary(t *testing.T) {
	ent := NewEngine(nil).Extract(sampleResume)
	if !ent.Summary.Found {
		t.Fatalf("expected summary to be found")
	}
	if ent.Summary.WordCount != 13 {
		t.Fatalf("summary word count = %d, want 13", ent.Summary.WordCount)
	}

	inline := extractSummary("Objective: Ship reliable systems at scale.\n\nExperience\n...")
	if !inline.Found || inline.Text != "Ship reliable systems at scale." {
		t.Fatalf("inline summary = %+v", inline)
	}

	missing := extractSummary("Experience\n- Built things\nEducation\n- Degree")
	if missing.Found {
		t.Fatalf("expected no summary, got %+v", missing)
	}
}

func TestExtractEmptyText(t *testing.T) {
	ent := NewEngine(nil).Extract("")
	if len(ent.Skills) != 0 || ent.ExperienceYears != nil || ent.Summary.Found {
		t.Fatalf("expected empty entities, got %+v", ent)
	}
}
