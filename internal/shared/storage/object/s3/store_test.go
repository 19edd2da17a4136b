package s3

import "testing"

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "2024/05/01/file.pdf", want: "2024/05/01/file.pdf"},
		{name: "simple prefix", prefix: "resumes", key: "2024/05/01/file.pdf", want: "resumes/2024/05/01/file.pdf"},
		{name: "prefix trailing slash", prefix: "resumes/", key: "2024/05/01/file.pdf", want: "resumes/2024/05/01/file.pdf"},
		{name: "prefix and key slashes", prefix: "/resumes/", key: "/2024/05/01/file.pdf", want: "resumes/2024/05/01/file.pdf"},
		{name: "nested prefix", prefix: "resumes/prod", key: "2024/05/01/file.pdf", want: "resumes/prod/2024/05/01/file.pdf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}
