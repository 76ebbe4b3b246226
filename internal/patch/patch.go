package patch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMarkersNotFound is returned when a document does not contain the
// requested marker pair. Callers treat it as fatal for required targets.
var ErrMarkersNotFound = errors.New("markers not found")

// Replace swaps the span from the first occurrence of start through the
// first occurrence of end at or after it (both markers included) with
// start + "\n" + inner + "\n" + end. Later marker pairs in the document
// are left untouched.
func Replace(doc, start, end, inner string) (string, error) {
	startIdx := strings.Index(doc, start)
	if startIdx == -1 {
		return "", fmt.Errorf("%w: %q", ErrMarkersNotFound, start)
	}
	rest := doc[startIdx+len(start):]
	endIdx := strings.Index(rest, end)
	if endIdx == -1 {
		return "", fmt.Errorf("%w: %q", ErrMarkersNotFound, end)
	}
	spanEnd := startIdx + len(start) + endIdx + len(end)

	var b strings.Builder
	b.Grow(len(doc) - (spanEnd - startIdx) + len(start) + len(inner) + len(end) + 2)
	b.WriteString(doc[:startIdx])
	b.WriteString(start)
	b.WriteString("\n")
	b.WriteString(inner)
	b.WriteString("\n")
	b.WriteString(end)
	b.WriteString(doc[spanEnd:])
	return b.String(), nil
}

// Inner extracts the content between the first marker pair, without the
// markers or the surrounding newlines Replace adds.
func Inner(doc, start, end string) (string, error) {
	startIdx := strings.Index(doc, start)
	if startIdx == -1 {
		return "", fmt.Errorf("%w: %q", ErrMarkersNotFound, start)
	}
	rest := doc[startIdx+len(start):]
	endIdx := strings.Index(rest, end)
	if endIdx == -1 {
		return "", fmt.Errorf("%w: %q", ErrMarkersNotFound, end)
	}
	inner := rest[:endIdx]
	inner = strings.TrimPrefix(inner, "\n")
	inner = strings.TrimSuffix(inner, "\n")
	return inner, nil
}

// Upsert replaces the marker pair's content when the pair is present,
// and otherwise inserts a fresh block immediately before the first
// closing body tag. A document with neither the pair nor a body close
// has no insertion point and the upsert fails.
func Upsert(doc, start, end, inner string) (string, error) {
	if strings.Contains(doc, start) {
		return Replace(doc, start, end, inner)
	}
	idx := bodyCloseIndex(doc)
	if idx == -1 {
		return "", fmt.Errorf("%w and no </body> insertion point", ErrMarkersNotFound)
	}
	block := start + "\n" + inner + "\n" + end + "\n"
	return doc[:idx] + block + doc[idx:], nil
}

func bodyCloseIndex(doc string) int {
	lower := strings.ToLower(doc)
	return strings.Index(lower, "</body>")
}
