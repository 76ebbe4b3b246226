package patch

import (
	"errors"
	"strings"
	"testing"
)

const (
	start = "<!-- tools-start -->"
	end   = "<!-- tools-end -->"
)

func TestReplaceRoundTrip(t *testing.T) {
	doc := "before\n" + start + "\nold content\nmore old\n" + end + "\nafter\n"
	got, err := Replace(doc, start, end, "new content")
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if !strings.Contains(got, start+"\nnew content\n"+end) {
		t.Fatalf("markers or content not preserved: %q", got)
	}
	if strings.Contains(got, "old content") {
		t.Fatalf("old content survived: %q", got)
	}

	inner, err := Inner(got, start, end)
	if err != nil {
		t.Fatalf("inner: %v", err)
	}
	if inner != "new content" {
		t.Fatalf("expected inner %q, got %q", "new content", inner)
	}
}

func TestReplacePreservesSurroundingText(t *testing.T) {
	doc := "# Heading\n\n" + start + "\nx\n" + end + "\n\ntrailer"
	got, err := Replace(doc, start, end, "y")
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if !strings.HasPrefix(got, "# Heading\n\n") {
		t.Fatalf("prefix lost: %q", got)
	}
	if !strings.HasSuffix(got, "\n\ntrailer") {
		t.Fatalf("suffix lost: %q", got)
	}
}

func TestReplaceMissingMarkers(t *testing.T) {
	if _, err := Replace("no markers here", start, end, "x"); !errors.Is(err, ErrMarkersNotFound) {
		t.Fatalf("expected ErrMarkersNotFound, got %v", err)
	}
	if _, err := Replace("only "+start+" present", start, end, "x"); !errors.Is(err, ErrMarkersNotFound) {
		t.Fatalf("expected ErrMarkersNotFound for missing end, got %v", err)
	}
}

func TestReplaceFirstPairOnly(t *testing.T) {
	doc := start + "\na\n" + end + "\nmiddle\n" + start + "\nb\n" + end + "\n"
	got, err := Replace(doc, start, end, "patched")
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	want := start + "\npatched\n" + end + "\nmiddle\n" + start + "\nb\n" + end + "\n"
	if got != want {
		t.Fatalf("expected only first pair patched:\nwant %q\ngot  %q", want, got)
	}
}

func TestReplaceIsIdempotent(t *testing.T) {
	doc := "a\n" + start + "\nstale\n" + end + "\nb"
	once, err := Replace(doc, start, end, "fresh")
	if err != nil {
		t.Fatalf("first replace: %v", err)
	}
	twice, err := Replace(once, start, end, "fresh")
	if err != nil {
		t.Fatalf("second replace: %v", err)
	}
	if once != twice {
		t.Fatalf("replace not idempotent:\nonce  %q\ntwice %q", once, twice)
	}
}

func TestUpsertReplacesExistingBlock(t *testing.T) {
	doc := "<html><body>\n" + start + "\nold\n" + end + "\n</body></html>"
	got, err := Upsert(doc, start, end, "new")
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if strings.Count(got, start) != 1 {
		t.Fatalf("expected exactly one block, got %q", got)
	}
	if !strings.Contains(got, start+"\nnew\n"+end) {
		t.Fatalf("content not replaced: %q", got)
	}
}

func TestUpsertInsertsBeforeBodyClose(t *testing.T) {
	doc := "<html><body>\n<p>hi</p>\n</body></html>"
	got, err := Upsert(doc, start, end, "stamp")
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	idx := strings.Index(got, start)
	bodyIdx := strings.Index(got, "</body>")
	if idx == -1 || bodyIdx == -1 || idx > bodyIdx {
		t.Fatalf("block not inserted before </body>: %q", got)
	}
	if !strings.Contains(got, start+"\nstamp\n"+end+"\n</body>") {
		t.Fatalf("unexpected insertion shape: %q", got)
	}
}

func TestUpsertWithoutInsertionPoint(t *testing.T) {
	if _, err := Upsert("<html>no body close", start, end, "x"); !errors.Is(err, ErrMarkersNotFound) {
		t.Fatalf("expected ErrMarkersNotFound, got %v", err)
	}
}
