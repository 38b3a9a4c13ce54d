// Package explain retrieves per-question explanation text.
//
// Explanations live as markdown files next to the question pools,
// named after the question ID. Retrieval is one-shot and on demand:
// the session screen fires a fetch each time the explanation is
// toggled open, and a miss degrades to the question's embedded text or
// a placeholder. A failed fetch never blocks the quiz flow.
package explain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when no explanation file exists for a
// question.
var ErrNotFound = errors.New("explain: not found")

// Placeholder is shown when neither an explanation file nor embedded
// text exists.
const Placeholder = "No explanation available for this question."

// Fetcher reads explanation files from a bank directory tree.
type Fetcher struct {
	root string
}

// NewFetcher creates a fetcher rooted at the bank directory.
func NewFetcher(root string) *Fetcher {
	return &Fetcher{root: root}
}

// Fetch reads the explanation for a question ID from the given
// explanations directory (relative to the bank root). Returns
// ErrNotFound when dir or id is empty or the file does not exist.
func (f *Fetcher) Fetch(ctx context.Context, dir, id string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if dir == "" || id == "" {
		return "", ErrNotFound
	}

	path := filepath.Join(f.root, dir, id+".md")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("read explanation: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrNotFound, path)
	}
	return text, nil
}

// Resolve applies the fallback chain: fetched text when the fetch
// succeeded, otherwise the question's embedded explanation, otherwise
// the placeholder.
func Resolve(fetched string, err error, embedded string) string {
	if err == nil && fetched != "" {
		return fetched
	}
	if e := strings.TrimSpace(embedded); e != "" {
		return e
	}
	return Placeholder
}
