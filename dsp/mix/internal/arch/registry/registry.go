// Package registry holds the mono-to-stereo kernel variants available to
// package mix. Architecture packages register themselves from init() and
// mix picks the highest-priority entry the running CPU supports.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// BlockWidth is the number of source samples every kernel consumes per
// block. Callers must pass a source length that is a multiple of it.
const BlockWidth = 4

// MonoToStereoFn writes dst[2i] = src[i]*gainL and dst[2i+1] = src[i]*gainR
// for every i in [0, len(src)). len(src) must be a multiple of BlockWidth
// and len(dst) at least 2*len(src).
type MonoToStereoFn func(dst, src []float32, gainL, gainR float32)

// OpEntry is one registered kernel implementation.
type OpEntry struct {
	// Name identifies the variant ("generic", "sse2", "avx2").
	Name string

	// SIMDLevel is the instruction set the variant needs.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible variants; higher wins.
	//   - generic: 0
	//   - sse2:    10
	//   - avx2:    20
	Priority int

	// Width is the number of source samples processed per vector step.
	Width int

	MonoToStereo MonoToStereoFn
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features,
// or nil if none is.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// Find returns the entry registered under name, regardless of CPU support.
func (r *OpRegistry) Find(name string) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			return &r.entries[i]
		}
	}

	return nil
}

func (r *OpRegistry) ensureSorted() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
}

// sortByPriority orders entries by descending priority. Must be called with
// r.mu held for writing.
func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all entries, highest priority first.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
