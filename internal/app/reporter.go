package app

type StatusKind string

const (
	StatusOK      StatusKind = "ok"
	StatusStale   StatusKind = "stale"
	StatusMissing StatusKind = "missing"
)

type ProgressReporter interface {
	Increment(label string)
	Done()
}

type Reporter interface {
	Info(message string)
	Notice(message string)
	Warn(message string)
	Found(file, title string)
	Patched(target string, tools int)
	Skipped(target, reason string)
	Status(kind StatusKind, target string)
	StatusSummary(ok, stale, missing int)
	Progress(label string, total int) ProgressReporter
}

type noopReporter struct{}

func (n noopReporter) Info(string)                           {}
func (n noopReporter) Notice(string)                         {}
func (n noopReporter) Warn(string)                           {}
func (n noopReporter) Found(string, string)                  {}
func (n noopReporter) Patched(string, int)                   {}
func (n noopReporter) Skipped(string, string)                {}
func (n noopReporter) Status(StatusKind, string)             {}
func (n noopReporter) StatusSummary(int, int, int)           {}
func (n noopReporter) Progress(string, int) ProgressReporter { return noopProgress{} }

type noopProgress struct{}

func (n noopProgress) Increment(string) {}
func (n noopProgress) Done()            {}

func ensureReporter(reporter Reporter) Reporter {
	if reporter == nil {
		return noopReporter{}
	}
	return reporter
}
