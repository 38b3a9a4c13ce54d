// Package bank loads question pools from a bank directory.
//
// A bank directory contains a catalog.json describing the available
// subjects and one JSON file per question pool. Subjects either point
// straight at a pool file or break down into units and chapters, each
// chapter with its own file and an optional id-prefix filter so several
// chapters can share one file.
package bank

import "errors"

// ErrNotFound is returned when a selection does not resolve to a pool
// file in the catalog.
var ErrNotFound = errors.New("bank: not found")

// Record is a question as stored on disk. Field names follow the bank
// file format.
type Record struct {
	ID          string   `json:"id,omitempty"`
	Prompt      string   `json:"question"`
	Options     []string `json:"options"`
	Answer      int      `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
}

// Catalog is the parsed catalog.json.
type Catalog struct {
	Subjects []Subject `json:"subjects"`
}

// Subject is a top-level entry in the catalog. A subject carries either
// a pool file of its own or a unit/chapter breakdown.
type Subject struct {
	Name string `json:"name"`

	// File is the subject's pool file, relative to the bank directory.
	// Empty when the subject is broken into units.
	File string `json:"file,omitempty"`

	// Explanations is the directory holding per-question explanation
	// files, relative to the bank directory. Optional.
	Explanations string `json:"explanations,omitempty"`

	Units []Unit `json:"units,omitempty"`
}

// Unit groups chapters within a subject.
type Unit struct {
	Name     string    `json:"name"`
	Chapters []Chapter `json:"chapters"`
}

// Chapter maps to a pool file, optionally narrowed to the questions
// whose IDs start with IDPrefix.
type Chapter struct {
	Name         string `json:"name"`
	File         string `json:"file"`
	IDPrefix     string `json:"id_prefix,omitempty"`
	Explanations string `json:"explanations,omitempty"`
}

// Selection names a pool to load. Unit and Chapter are empty for
// subjects without a breakdown.
type Selection struct {
	Subject string
	Unit    string
	Chapter string
}

// Source is a resolved selection: the pool file to read, the id-prefix
// filter to apply, and where explanation files live.
type Source struct {
	File         string
	IDPrefix     string
	Explanations string
}

// Subject returns the catalog entry with the given name, or nil.
func (c *Catalog) Subject(name string) *Subject {
	for i := range c.Subjects {
		if c.Subjects[i].Name == name {
			return &c.Subjects[i]
		}
	}
	return nil
}

// Resolve maps a selection onto its pool source. Returns ErrNotFound
// for names absent from the catalog.
func (c *Catalog) Resolve(sel Selection) (Source, error) {
	subj := c.Subject(sel.Subject)
	if subj == nil {
		return Source{}, ErrNotFound
	}

	if len(subj.Units) == 0 {
		if subj.File == "" {
			return Source{}, ErrNotFound
		}
		return Source{File: subj.File, Explanations: subj.Explanations}, nil
	}

	for _, u := range subj.Units {
		if u.Name != sel.Unit {
			continue
		}
		for _, ch := range u.Chapters {
			if ch.Name != sel.Chapter {
				continue
			}
			expl := ch.Explanations
			if expl == "" {
				expl = subj.Explanations
			}
			return Source{File: ch.File, IDPrefix: ch.IDPrefix, Explanations: expl}, nil
		}
		return Source{}, ErrNotFound
	}
	return Source{}, ErrNotFound
}
