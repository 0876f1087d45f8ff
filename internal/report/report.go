// Package report renders the output of a ranking run: the sampling estimate
// and the iterative estimate over the same corpus, as text, JSON, or TOML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/magnetar/internal/rank"
)

// Run holds the results of one ranking pass and the parameters that
// produced them.
type Run struct {
	Corpus    string
	Damping   float64
	Samples   int
	Tolerance float64
	Sampled   rank.Table
	Iterated  rank.Table
}

// Entry is one page's rank in an exported document.
type Entry struct {
	Page string  `json:"page" toml:"page"`
	Rank float64 `json:"rank" toml:"rank"`
}

// document is the export shape shared by the JSON and TOML encoders.
type document struct {
	Corpus    string  `json:"corpus" toml:"corpus"`
	Damping   float64 `json:"damping" toml:"damping"`
	Samples   int     `json:"samples" toml:"samples"`
	Tolerance float64 `json:"tolerance" toml:"tolerance"`
	Sampling  []Entry `json:"sampling" toml:"sampling"`
	Iteration []Entry `json:"iteration" toml:"iteration"`
}

// Write renders the run in the given format ("text", "json", or "toml").
func Write(w io.Writer, run Run, format string) error {
	switch format {
	case "text":
		return WriteText(w, run)
	case "json":
		return WriteJSON(w, run)
	case "toml":
		return WriteTOML(w, run)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// WriteText renders the two classic labeled reports: every page in
// lexicographic order with its rank to four decimal places.
func WriteText(w io.Writer, run Run) error {
	if _, err := fmt.Fprintf(w, "PageRank Results from Sampling (n = %d)\n", run.Samples); err != nil {
		return err
	}
	writeTable(w, run.Sampled)
	if _, err := fmt.Fprintln(w, "PageRank Results from Iteration"); err != nil {
		return err
	}
	writeTable(w, run.Iterated)
	return nil
}

// WriteJSON renders the run as an indented JSON document.
func WriteJSON(w io.Writer, run Run) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toDocument(run))
}

// WriteTOML renders the run as a TOML document.
func WriteTOML(w io.Writer, run Run) error {
	return toml.NewEncoder(w).Encode(toDocument(run))
}

func toDocument(run Run) document {
	return document{
		Corpus:    run.Corpus,
		Damping:   run.Damping,
		Samples:   run.Samples,
		Tolerance: run.Tolerance,
		Sampling:  toEntries(run.Sampled),
		Iteration: toEntries(run.Iterated),
	}
}

func toEntries(t rank.Table) []Entry {
	entries := make([]Entry, 0, len(t))
	for page, r := range t {
		entries = append(entries, Entry{Page: page, Rank: r})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Page < entries[j].Page })
	return entries
}

func writeTable(w io.Writer, t rank.Table) {
	pages := make([]string, 0, len(t))
	for page := range t {
		pages = append(pages, page)
	}
	sort.Strings(pages)
	for _, page := range pages {
		fmt.Fprintf(w, "  %s: %.4f\n", page, t[page])
	}
}
