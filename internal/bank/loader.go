package bank

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuwei/qdrill/internal/session"
)

// Loader reads catalogs and question pools from a bank directory.
type Loader struct {
	dir string
}

// NewLoader creates a loader rooted at the given bank directory.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Dir returns the bank directory the loader reads from.
func (l *Loader) Dir() string {
	return l.dir
}

// Catalog reads and parses catalog.json from the bank directory.
func (l *Loader) Catalog(ctx context.Context) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(l.dir, "catalog.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return &cat, nil
}

// Load resolves a selection against the catalog and returns its
// question pool plus the resolved source. One-shot, no retry: a
// failure here aborts the session start and is surfaced to the user.
func (l *Loader) Load(ctx context.Context, sel Selection) ([]session.Question, Source, error) {
	cat, err := l.Catalog(ctx)
	if err != nil {
		return nil, Source{}, err
	}

	src, err := cat.Resolve(sel)
	if err != nil {
		return nil, Source{}, fmt.Errorf("%w: %s/%s/%s", ErrNotFound, sel.Subject, sel.Unit, sel.Chapter)
	}

	pool, err := l.readPool(src.File)
	if err != nil {
		return nil, Source{}, err
	}

	if src.IDPrefix != "" {
		filtered := pool[:0]
		for _, q := range pool {
			if strings.HasPrefix(q.ID, src.IDPrefix) {
				filtered = append(filtered, q)
			}
		}
		pool = filtered
	}
	return pool, src, nil
}

// readPool reads one pool file, validates its shape, and converts the
// records to session questions.
func (l *Loader) readPool(file string) ([]session.Question, error) {
	path := filepath.Join(l.dir, file)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read pool %s: %w", file, err)
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse pool %s: %w", file, err)
	}
	if err := validatePool(parsed); err != nil {
		return nil, fmt.Errorf("pool %s: %w", file, err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode pool %s: %w", file, err)
	}

	pool := make([]session.Question, 0, len(records))
	for i, rec := range records {
		if rec.Answer >= len(rec.Options) {
			return nil, fmt.Errorf("pool %s: record %d: answer index %d out of range (%d options)",
				file, i, rec.Answer, len(rec.Options))
		}
		pool = append(pool, session.Question{
			ID:          rec.ID,
			Prompt:      rec.Prompt,
			Options:     rec.Options,
			Answer:      rec.Answer,
			Explanation: rec.Explanation,
		})
	}
	return pool, nil
}
