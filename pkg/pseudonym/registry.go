// Copyright 2025 the anonydoc authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package pseudonym maintains the reversible original↔pseudonym mapping
// used in pseudonymization mode. A Registry lives for the process lifetime
// and only grows; persistence across restarts is opt-in via the JSON table
// format or a BoltStore.
package pseudonym

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Registry generates pseudonyms of the form LABEL_N and tracks both
// directions of the mapping. All methods are safe for concurrent use: the
// check-then-insert in Generate is one atomic unit under the mutex, so the
// same original text never receives two different pseudonyms.
type Registry struct {
	mu       sync.Mutex
	counters map[string]int
	forward  map[string]string // original text → pseudonym
	reverse  map[string]string // pseudonym → original text
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		counters: make(map[string]int),
		forward:  make(map[string]string),
		reverse:  make(map[string]string),
	}
}

// Generate returns the pseudonym for original. If original was seen before
// the existing pseudonym is returned unchanged and no counter moves —
// Generate is idempotent per distinct original text. A repeated original
// under a different label keeps its first pseudonym (first-writer-wins
// across labels).
func (r *Registry) Generate(label, original string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.forward[original]; ok {
		return p
	}

	r.counters[label]++
	p := fmt.Sprintf("%s_%d", label, r.counters[label])
	r.forward[original] = p
	r.reverse[p] = original
	return p
}

// Reverse replaces every known pseudonym occurring literally in text with
// its original value. Pseudonyms are substituted longest-first so that
// PERSON_10 is never corrupted by a PERSON_1 substitution; unknown tokens
// are left verbatim (reversal is best-effort).
func (r *Registry) Reverse(text string) string {
	r.mu.Lock()
	keys := make([]string, 0, len(r.reverse))
	for p := range r.reverse {
		keys = append(keys, p)
	}
	originals := make(map[string]string, len(r.reverse))
	for p, o := range r.reverse {
		originals[p] = o
	}
	r.mu.Unlock()

	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	for _, p := range keys {
		text = strings.ReplaceAll(text, p, originals[p])
	}
	return text
}

// Table returns a copy of the forward mapping (original → pseudonym).
func (r *Registry) Table() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]string, len(r.forward))
	for k, v := range r.forward {
		out[k] = v
	}
	return out
}

// ReverseTable returns a copy of the reverse mapping (pseudonym →
// original). This is the persisted interchange format.
func (r *Registry) ReverseTable() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]string, len(r.reverse))
	for k, v := range r.reverse {
		out[k] = v
	}
	return out
}

// Len returns the number of distinct originals registered.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.forward)
}

// seed installs one pseudonym→original pair and advances the label counter
// past the pseudonym's numeric suffix, so Generate stays collision-free
// after an import. Callers hold no lock.
func (r *Registry) seed(pseudo, original string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.forward[original] = pseudo
	r.reverse[pseudo] = original

	label, n, ok := splitPseudonym(pseudo)
	if ok && n > r.counters[label] {
		r.counters[label] = n
	}
}

// splitPseudonym splits LABEL_N at the last underscore. Labels may
// themselves contain underscores.
func splitPseudonym(p string) (label string, n int, ok bool) {
	i := strings.LastIndex(p, "_")
	if i <= 0 || i == len(p)-1 {
		return "", 0, false
	}
	n, err := strconv.Atoi(p[i+1:])
	if err != nil {
		return "", 0, false
	}
	return p[:i], n, true
}
