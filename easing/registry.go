// SPDX-License-Identifier: Unlicense OR MIT

package easing

import (
	"iter"

	"github.com/pkg/errors"
)

// ErrUnknownKind is returned when looking up a kind that has no curve.
var ErrUnknownKind = errors.New("easing: unknown curve kind")

// Entry describes a supported curve.
type Entry struct {
	Kind Kind
	// Name is the human readable name of the curve.
	Name string
}

// Eval is a shorthand for e.Kind.Eval.
func (e Entry) Eval(x float64) float64 {
	return e.Kind.Eval(x)
}

// Registry is an ordered, read-only table of curves. A Registry is
// safe for concurrent use.
type Registry struct {
	entries []Entry
	index   map[Kind]int
}

var defaultRegistry = newRegistry(Linear, InOutSine, InOutQuad, InOutCirc, InOutElastic)

// Default returns the registry of every curve implemented by the
// package.
func Default() *Registry {
	return defaultRegistry
}

func newRegistry(kinds ...Kind) *Registry {
	r := &Registry{
		entries: make([]Entry, 0, len(kinds)),
		index:   make(map[Kind]int, len(kinds)),
	}
	for _, k := range kinds {
		if _, dup := r.index[k]; dup {
			panic("easing: duplicate curve " + k.String())
		}
		r.index[k] = len(r.entries)
		r.entries = append(r.entries, Entry{Kind: k, Name: k.String()})
	}
	return r
}

// Len returns the number of curves in the registry.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Kinds returns the registered kinds in table order. The sequence can
// be iterated any number of times and yields the same order each time.
func (r *Registry) Kinds() iter.Seq[Kind] {
	return func(yield func(Kind) bool) {
		for _, e := range r.entries {
			if !yield(e.Kind) {
				return
			}
		}
	}
}

// Entries is like Kinds but yields the full entries.
func (r *Registry) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range r.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Lookup returns the entry for k. The error matches ErrUnknownKind
// if k is not in the registry.
func (r *Registry) Lookup(k Kind) (Entry, error) {
	i, ok := r.index[k]
	if !ok {
		return Entry{}, errors.Wrapf(ErrUnknownKind, "lookup %v", k)
	}
	return r.entries[i], nil
}
