package internal

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Outcome is the terminal state a file reaches in a run.
type Outcome int

const (
	Applied Outcome = iota
	SkippedNoDate
	SkippedInvalid
	Excepted
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case SkippedNoDate:
		return "skipped_no_date"
	case SkippedInvalid:
		return "skipped_invalid"
	case Excepted:
		return "excepted"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is what an action returns for one file. The walker merges it into
// the run's WalkReport, so actions never share state between files.
type Result struct {
	Outcome Outcome
	Lines   []string
	Err     error
	// Tally, when set, is counted in the report's histogram.
	Tally string
}

// WalkStats tracks the counters of a run
type WalkStats struct {
	Processed      int
	Applied        int
	SkippedNoDate  int
	SkippedInvalid int
	Excepted       int
}

// Skipped counts both skip outcomes.
func (s WalkStats) Skipped() int {
	return s.SkippedNoDate + s.SkippedInvalid
}

// Balanced reports whether every processed file reached exactly one outcome.
func (s WalkStats) Balanced() bool {
	return s.Processed == s.Applied+s.SkippedNoDate+s.SkippedInvalid+s.Excepted
}

// Labels name the outcome counters in the report footer.
type Labels struct {
	Applied        string
	SkippedNoDate  string
	SkippedInvalid string
	Excepted       string
}

var defaultLabels = Labels{
	Applied:        "applied",
	SkippedNoDate:  "skipped, no date",
	SkippedInvalid: "skipped, invalid date",
	Excepted:       "exceptions",
}

func (l Labels) orDefault() Labels {
	if l.Applied == "" {
		l.Applied = defaultLabels.Applied
	}
	if l.SkippedNoDate == "" {
		l.SkippedNoDate = defaultLabels.SkippedNoDate
	}
	if l.SkippedInvalid == "" {
		l.SkippedInvalid = defaultLabels.SkippedInvalid
	}
	if l.Excepted == "" {
		l.Excepted = defaultLabels.Excepted
	}
	return l
}

// WalkReport accumulates counters and report lines for one run. Every line
// is forwarded to the logger as soon as it is added.
type WalkReport struct {
	Tool string
	Root string

	logger     *Logger
	stats      WalkStats
	lines      []string
	tally      map[string]int
	byCategory map[ErrorCategory]int
}

func NewWalkReport(tool, root string, logger *Logger) *WalkReport {
	return &WalkReport{
		Tool:       tool,
		Root:       root,
		logger:     logger,
		tally:      make(map[string]int),
		byCategory: make(map[ErrorCategory]int),
	}
}

// Printf appends one line (which may contain newlines) to the report.
func (r *WalkReport) Printf(format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	r.lines = append(r.lines, line)
	if r.logger != nil {
		r.logger.Log("%s", line)
	}
}

// LogHeader writes the banner at the top of the report.
func (r *WalkReport) LogHeader(extra ...string) {
	r.Printf("\n===================== %s =====================\n", r.Tool)
	r.Printf("     Processing directory: %s", r.Root)
	for _, line := range extra {
		r.Printf("%s", line)
	}
}

// Merge records one file's result.
func (r *WalkReport) Merge(entry FileEntry, res Result) {
	r.stats.Processed++
	switch res.Outcome {
	case Applied:
		r.stats.Applied++
	case SkippedNoDate:
		r.stats.SkippedNoDate++
	case SkippedInvalid:
		r.stats.SkippedInvalid++
	default:
		r.stats.Excepted++
	}

	for _, line := range res.Lines {
		r.Printf("%s", line)
	}

	if res.Err != nil {
		procErr := CategorizeError(entry.Path, res.Err)
		r.byCategory[procErr.Category]++
		if res.Outcome == Excepted && procErr.Suggestion != "" {
			r.Printf("     ...hint: %s", procErr.Suggestion)
		}
	}

	if res.Tally != "" {
		r.tally[res.Tally]++
	}
}

// LogFooter writes the aggregate counts and the runtime.
func (r *WalkReport) LogFooter(labels Labels, elapsed time.Duration, interrupted bool) {
	labels = labels.orDefault()

	var b strings.Builder
	if interrupted {
		b.WriteString("\n\n  Run interrupted, remaining files were not processed.")
	}
	fmt.Fprintf(&b, "\n\n  Files processed: %d", r.stats.Processed)
	fmt.Fprintf(&b, "\n  ...%s: %d", labels.Applied, r.stats.Applied)
	fmt.Fprintf(&b, "\n  ...%s: %d", labels.SkippedNoDate, r.stats.SkippedNoDate)
	fmt.Fprintf(&b, "\n  ...%s: %d", labels.SkippedInvalid, r.stats.SkippedInvalid)
	fmt.Fprintf(&b, "\n  ...%s: %d", labels.Excepted, r.stats.Excepted)

	if len(r.byCategory) > 0 {
		b.WriteString("\n\n  Reasons:")
		for _, cat := range sortedCategories(r.byCategory) {
			fmt.Fprintf(&b, "\n   .......... %s: %d", cat, r.byCategory[cat])
		}
	}
	r.Printf("%s", b.String())

	r.Printf("\n\n    Script runtime: %d seconds", int(elapsed.Round(time.Second)/time.Second))
	r.Printf("======================= end of script =======================\n")
}

// LogTally writes the histogram, most frequent entry first.
func (r *WalkReport) LogTally(title string, describe func(key string) string) {
	var b strings.Builder
	fmt.Fprintf(&b, "\n\n  %s", title)
	for _, key := range r.TallyKeys() {
		fmt.Fprintf(&b, "\n   .......... %s: %d", key, r.tally[key])
		if describe != nil {
			if d := describe(key); d != "" {
				fmt.Fprintf(&b, " (%s)", d)
			}
		}
	}
	r.Printf("%s", b.String())
}

// TallyKeys returns histogram keys by descending count, then by name.
func (r *WalkReport) TallyKeys() []string {
	keys := make([]string, 0, len(r.tally))
	for k := range r.tally {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if r.tally[keys[i]] != r.tally[keys[j]] {
			return r.tally[keys[i]] > r.tally[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

func sortedCategories(m map[ErrorCategory]int) []ErrorCategory {
	cats := make([]ErrorCategory, 0, len(m))
	for c := range m {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}

// GetStats returns the current counters
func (r *WalkReport) GetStats() WalkStats {
	return r.stats
}

// Lines returns every line written so far.
func (r *WalkReport) Lines() []string {
	return r.lines
}

// Tally returns the count recorded for key.
func (r *WalkReport) Tally(key string) int {
	return r.tally[key]
}

// Err reports a failed write to the report file.
func (r *WalkReport) Err() error {
	if r.logger == nil {
		return nil
	}
	return r.logger.Err()
}
