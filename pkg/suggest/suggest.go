// Package suggest provides prefix completion over a fixed candidate set,
// backed by a radix tree so lookups stay cheap for large vocabularies.
package suggest

import radix "github.com/armon/go-radix"

// Suggest answers prefix queries against a candidate vocabulary. The
// vocabulary is fixed at construction; Suggest values can be shared.
type Suggest struct {
	tree *radix.Tree
}

// New builds a suggester over the given candidates.
func New(candidates ...string) *Suggest {
	t := radix.New()
	for _, c := range candidates {
		t.Insert(c, struct{}{})
	}
	return &Suggest{tree: t}
}

// Search returns every candidate with the given prefix, in lexicographic
// order. An empty prefix matches the whole vocabulary.
func (s *Suggest) Search(prefix string) []string {
	var out []string
	s.tree.WalkPrefix(prefix, func(key string, _ interface{}) bool {
		out = append(out, key)
		return false
	})
	return out
}
