// Package ui provides stderr-based progress output for magnetar. Reports go
// to stdout; everything here stays on stderr so piped output remains clean.
package ui

import (
	"fmt"
	"os"
	"time"
)

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	yellow = "\033[33m"
	green  = "\033[32m"
	red    = "\033[31m"
	cyan   = "\033[36m"
)

type Printer struct {
	// Verbose enables the per-stage progress lines; errors always print.
	Verbose bool
}

func New(verbose bool) *Printer {
	return &Printer{Verbose: verbose}
}

func (p *Printer) CorpusLoaded(dir string, pages, links int) {
	if !p.Verbose {
		return
	}
	fmt.Fprintf(os.Stderr, cyan+"● corpus"+reset+dim+" %s: %d pages, %d links"+reset+"\n", dir, pages, links)
}

func (p *Printer) SamplingDone(samples int, dur time.Duration) {
	if !p.Verbose {
		return
	}
	fmt.Fprintf(os.Stderr, green+"✓ sampling"+reset+dim+" n=%d (%.1fs)"+reset+"\n", samples, dur.Seconds())
}

func (p *Printer) IterationDone(dur time.Duration) {
	if !p.Verbose {
		return
	}
	fmt.Fprintf(os.Stderr, green+"✓ iteration"+reset+dim+" converged (%.1fs)"+reset+"\n", dur.Seconds())
}

func (p *Printer) WatchStart(dir string) {
	fmt.Fprintf(os.Stderr, bold+cyan+"▶ watching"+reset+" %s"+dim+" — ^C to stop"+reset+"\n", dir)
}

func (p *Printer) Rescan(page string) {
	fmt.Fprintf(os.Stderr, yellow+"⟳ %s changed"+reset+" — re-ranking\n", page)
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(os.Stderr, red+bold+"error: "+reset+"%s\n", msg)
}
