// Package corpus loads a directory of HTML documents into a link graph and
// watches it for changes. Each .html file is a page; anchor hrefs pointing at
// other pages of the same directory become links.
package corpus

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/papapumpkin/magnetar/internal/graph"
)

// ErrEmptyCorpus is returned when the corpus directory contains no pages.
var ErrEmptyCorpus = errors.New("empty corpus")

// hrefPattern matches the target of an HTML anchor tag.
var hrefPattern = regexp.MustCompile(`<a\s+(?:[^>]*?)href="([^"]*)"`)

// Load scans dir (non-recursively) for .html files and builds the link
// graph. Link targets that are not themselves pages of the corpus are
// discarded, as are self-references, so the resulting graph satisfies the
// invariants the rank algorithms rely on.
func Load(dir string) (*graph.Graph, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading corpus directory: %w", err)
	}

	raw := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		targets, err := extractLinks(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		raw[entry.Name()] = targets
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: no .html pages in %s", ErrEmptyCorpus, dir)
	}

	// Keep only in-corpus targets and drop self-references.
	pages := make(map[string][]string, len(raw))
	for page, targets := range raw {
		var kept []string
		seen := make(map[string]bool)
		for _, target := range targets {
			if target == page || seen[target] {
				continue
			}
			if _, ok := raw[target]; !ok {
				continue
			}
			seen[target] = true
			kept = append(kept, target)
		}
		pages[page] = kept
	}

	return graph.FromMap(pages)
}

// extractLinks returns every anchor-href target found in the file, in
// document order, duplicates included.
func extractLinks(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading page %s: %w", path, err)
	}
	matches := hrefPattern.FindAllStringSubmatch(string(data), -1)
	targets := make([]string, 0, len(matches))
	for _, m := range matches {
		targets = append(targets, m[1])
	}
	return targets, nil
}
