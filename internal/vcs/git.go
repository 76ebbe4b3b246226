package vcs

import (
	"context"
	"os/exec"
	"regexp"
	"strings"
	"time"
)

// DefaultTimeout bounds a single git invocation. A lookup that hangs is
// treated the same as one that fails: unknown.
const DefaultTimeout = 10 * time.Second

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Git answers last-modified queries from the repository history at Dir.
type Git struct {
	Dir     string
	Timeout time.Duration
}

// LastModified returns the commit date (YYYY-MM-DD) of the most recent
// change touching name, relative to Dir. Every failure mode — no git
// binary, no repository, no history for the file, timeout — degrades to
// an empty string; callers render that as "unknown".
func (g Git) LastModified(ctx context.Context, name string) string {
	timeout := g.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "log", "-1", "--date=short", "--format=%ad", "--", name)
	cmd.Dir = g.Dir
	out, err := cmd.Output()
	if err != nil {
		return ""
	}
	date := strings.TrimSpace(string(out))
	if !isoDateRe.MatchString(date) {
		return ""
	}
	return date
}

// None is the lookup used when revision history is disabled. Every file
// reports an unknown date.
type None struct{}

func (None) LastModified(context.Context, string) string { return "" }
