package skill

import "sort"

// Resolver answers transferability questions over a directed graph of
// canonical skills. It is immutable once built.
type Resolver struct {
	graph map[string]map[string]struct{}
}

var defaultResolver = NewResolver(relationships)

// DefaultResolver returns the resolver over the built-in relationship table.
func DefaultResolver() *Resolver { return defaultResolver }

// NewResolver builds a resolver from key → related skills. Keys and members
// are normalized; keys colliding after normalization are merged.
func NewResolver(table map[string][]string) *Resolver {
	graph := make(map[string]map[string]struct{}, len(table))
	for from, tos := range table {
		key := Normalize(from)
		if key == "" {
			continue
		}
		set, ok := graph[key]
		if !ok {
			set = make(map[string]struct{}, len(tos))
			graph[key] = set
		}
		for _, to := range tos {
			n := Normalize(to)
			if n == "" || n == key {
				continue
			}
			set[n] = struct{}{}
		}
	}
	return &Resolver{graph: graph}
}

// Implies reports whether holding a indicates capability in b (directed).
func (r *Resolver) Implies(a, b string) bool {
	set, ok := r.graph[Normalize(a)]
	if !ok {
		return false
	}
	_, ok = set[Normalize(b)]
	return ok
}

// Related reports whether a and b are linked in either direction.
func (r *Resolver) Related(a, b string) bool {
	return r.Implies(a, b) || r.Implies(b, a)
}

// Neighbors returns the skills a directly implies, sorted.
func (r *Resolver) Neighbors(a string) []string {
	set := r.graph[Normalize(a)]
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
