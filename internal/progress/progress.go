// Package progress reports interactive feedback while a source batch is
// read from disk. The engine itself runs silently; only the CLI's loading
// phase is long enough to warrant a bar.
package progress

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
)

// BatchTracker counts loaded source files against the batch total.
type BatchTracker struct {
	bar *progressbar.ProgressBar
}

// NewBatch returns a tracker for reading total source files. The bar writes
// to stderr so piped stdout output stays clean.
func NewBatch(total int) *BatchTracker {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetDescription("Loading sources"),
		progressbar.OptionUseANSICodes(true),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
	return &BatchTracker{bar: bar}
}

// FileLoaded records one loaded file. Safe for concurrent use.
func (t *BatchTracker) FileLoaded() {
	t.bar.Add(1)
}

// Done clears the bar, leaving no residue before the results render.
func (t *BatchTracker) Done() {
	t.bar.Finish()
	t.bar.Clear()
}

// Fail clears the bar and reports the load error to stderr.
func (t *BatchTracker) Fail(err error) {
	t.bar.Finish()
	t.bar.Clear()
	fmt.Fprintf(os.Stderr, "loading sources: %v\n", err)
}
