package catalog

import "testing"

func TestExtractTitle(t *testing.T) {
	cases := []struct {
		name string
		html string
		want string
	}{
		{"simple", "<html><title>Alpha</title></html>", "Alpha"},
		{"case insensitive", "<TITLE>Alpha</TITLE>", "Alpha"},
		{"multi-line", "<title>\n  Alpha\n  Tool\n</title>", "Alpha\n  Tool"},
		{"first wins", "<title>First</title><title>Second</title>", "First"},
		{"absent", "<html><body><p>no title</p></body></html>", ""},
		{"whitespace only", "<title>   </title>", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractTitle(tc.html); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestExtractDescriptionPrefersMeta(t *testing.T) {
	html := `<head><meta name="description" content="From meta."></head>
<body><p>From paragraph.</p></body>`
	if got := ExtractDescription(html); got != "From meta." {
		t.Fatalf("expected meta description, got %q", got)
	}
}

func TestExtractDescriptionMetaSingleQuotes(t *testing.T) {
	html := `<meta name='description' content='Single quoted.'>`
	if got := ExtractDescription(html); got != "Single quoted." {
		t.Fatalf("expected single-quoted meta, got %q", got)
	}
}

func TestExtractDescriptionParagraphFallback(t *testing.T) {
	html := `<body><p class="lead">A <b>bold</b> little <em>tool</em>.</p></body>`
	if got := ExtractDescription(html); got != "A bold little tool." {
		t.Fatalf("expected stripped paragraph text, got %q", got)
	}
}

func TestExtractDescriptionAbsent(t *testing.T) {
	if got := ExtractDescription("<html><title>x</title></html>"); got != "" {
		t.Fatalf("expected empty description, got %q", got)
	}
}
