package analysis

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    Kind
	}{
		{"plain_text", "Why did the chicken cross the road?", KindText},
		{"jpg", "https://example.com/funny.jpg", KindImage},
		{"jpeg", "http://example.com/funny.jpeg", KindImage},
		{"png", "https://example.com/funny.png", KindImage},
		{"gif", "https://example.com/funny.gif", KindImage},
		{"uppercase_suffix", "https://example.com/FUNNY.PNG", KindImage},
		{"mixed_case_scheme", "HTTPS://example.com/funny.jpg", KindImage},
		{"query_after_suffix", "https://example.com/funny.png?size=large", KindImage},
		{"suffix_only_in_query", "https://example.com/page?img=.png", KindText},
		{"no_scheme", "example.com/funny.jpg", KindText},
		{"ftp_scheme", "ftp://example.com/funny.jpg", KindText},
		{"wrong_suffix", "https://example.com/funny.webp", KindText},
		{"suffix_mid_path", "https://example.com/funny.jpg.html", KindText},
		{"bare_suffix", ".png", KindText},
		{"empty", "", KindText},
		{"leading_whitespace", "  https://example.com/funny.gif", KindImage},
	}

	for _, cse := range cases {
		t.Run(cse.name, func(t *testing.T) {
			if got := Classify(cse.content); got != cse.want {
				t.Fatalf("Classify(%q) = %v, want %v", cse.content, got, cse.want)
			}
		})
	}
}

func TestNewRequest(t *testing.T) {
	req := NewRequest("https://example.com/funny.png")
	if req.Kind != KindImage {
		t.Fatalf("unexpected kind: %v", req.Kind)
	}
	if req.Content != "https://example.com/funny.png" {
		t.Fatalf("unexpected content: %q", req.Content)
	}
	if req.ID == NewRequest("x").ID {
		t.Fatal("request IDs must be unique")
	}
}
