// Package skill holds the canonical skill vocabulary: normalization,
// category classification and the transferability graph between skills.
//
// All tables are package-level, built once and never mutated at runtime,
// so every function here is safe for concurrent use.
package skill

import (
	"sort"
	"strings"
)

// Skill is a canonical skill name with its category tags.
type Skill struct {
	name       string
	categories []Category
}

// Parse normalizes raw text into a Skill. Empty input yields the zero Skill.
func Parse(raw string) Skill {
	name := Normalize(raw)
	if name == "" {
		return Skill{}
	}
	return Skill{name: name, categories: CategoriesOf(name)}
}

// Name returns the canonical form.
func (s Skill) Name() string { return s.name }

// Categories returns the category tags, sorted.
func (s Skill) Categories() []Category { return s.categories }

// IsZero reports whether the skill came from empty input.
func (s Skill) IsZero() bool { return s.name == "" }

// Normalize lower-cases, trims and rewrites known synonyms to one canonical
// form. Unknown names pass through lower-cased and trimmed.
func Normalize(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return ""
	}
	if canon, ok := synonyms[key]; ok {
		return canon
	}
	return key
}

// NormalizeSet returns the distinct canonical names of raw, sorted.
// Names that normalize to "" are dropped.
func NormalizeSet(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		n := Normalize(r)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// NormalizeLevels canonicalizes the keys of a skill → level map. When two
// raw names collapse to the same canonical name the higher level wins.
func NormalizeLevels(raw map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(raw))
	for name, level := range raw {
		n := Normalize(name)
		if n == "" {
			continue
		}
		if cur, ok := out[n]; !ok || level > cur {
			out[n] = level
		}
	}
	return out
}

// Names returns the keys of a skill → level map, sorted.
func Names(levels map[string]float64) []string {
	out := make([]string, 0, len(levels))
	for name := range levels {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// NormalizedMatch is the share of required skills the user holds after
// normalization. 1.0 when nothing is required, 0.0 when the user has nothing.
func NormalizedMatch(user, required []string) float64 {
	req := NormalizeSet(required)
	if len(req) == 0 {
		return 1.0
	}
	have := toSet(NormalizeSet(user))
	if len(have) == 0 {
		return 0.0
	}
	matched := 0
	for _, r := range req {
		if _, ok := have[r]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(req))
}

// Matched returns the canonical required skills the user holds exactly.
func Matched(user, required []string) []string {
	have := toSet(NormalizeSet(user))
	var out []string
	for _, r := range NormalizeSet(required) {
		if _, ok := have[r]; ok {
			out = append(out, r)
		}
	}
	return out
}

// Missing returns the canonical required skills the user lacks.
func Missing(user, required []string) []string {
	have := toSet(NormalizeSet(user))
	var out []string
	for _, r := range NormalizeSet(required) {
		if _, ok := have[r]; !ok {
			out = append(out, r)
		}
	}
	return out
}

func toSet(items []string) map[string]struct{} {
	s := make(map[string]struct{}, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}
