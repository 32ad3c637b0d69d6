package skill

import (
	"sort"
	"strings"
	"unicode"
)

// Category is a coarse skill domain.
type Category string

// Known categories.
const (
	Frontend Category = "frontend"
	Backend  Category = "backend"
	Cloud    Category = "cloud"
	Database Category = "database"
	ML       Category = "ml"
	Mobile   Category = "mobile"
	Testing  Category = "testing"
)

// CategoriesOf returns the categories whose terms are contained in the
// normalized skill, sorted. A skill may have none.
func CategoriesOf(raw string) []Category {
	s := Normalize(raw)
	if s == "" {
		return nil
	}
	var out []Category
	for _, ct := range categoryTerms {
		for _, term := range ct.terms {
			if strings.Contains(s, term) {
				out = append(out, ct.category)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// categorySet collects the categories of every skill.
func categorySet(skills []string) map[Category]struct{} {
	set := make(map[Category]struct{})
	for _, s := range skills {
		for _, c := range CategoriesOf(s) {
			set[c] = struct{}{}
		}
	}
	return set
}

// CategoryMatch is |C(required) ∩ C(user)| / |C(required)|.
// It is 1.0 when nothing is required, 0.0 when the user has no skills,
// and 0.0 when the required skills fall into no category.
func CategoryMatch(user, required []string) float64 {
	req := NormalizeSet(required)
	if len(req) == 0 {
		return 1.0
	}
	usr := NormalizeSet(user)
	if len(usr) == 0 {
		return 0.0
	}
	reqCats := categorySet(req)
	if len(reqCats) == 0 {
		return 0.0
	}
	userCats := categorySet(usr)
	matched := 0
	for c := range reqCats {
		if _, ok := userCats[c]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(reqCats))
}

// MatchedCategories returns required categories the user also covers, sorted.
func MatchedCategories(user, required []string) []Category {
	userCats := categorySet(NormalizeSet(user))
	var out []Category
	for c := range categorySet(NormalizeSet(required)) {
		if _, ok := userCats[c]; ok {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Transferability blends exact normalized overlap with category overlap.
func Transferability(user, required []string) float64 {
	return 0.7*NormalizedMatch(user, required) + 0.3*CategoryMatch(user, required)
}

// IsSpecialized reports whether the skill touches a highly specialized
// domain (ML, security, blockchain, embedded, game dev, big data, ...).
func IsSpecialized(raw string) bool {
	s := Normalize(raw)
	if s == "" {
		return false
	}
	var tokens map[string]struct{}
	for _, term := range specializedTerms {
		if len(term) > shortTermLen {
			if strings.Contains(s, term) {
				return true
			}
			continue
		}
		if tokens == nil {
			tokens = toSet(strings.FieldsFunc(s, func(r rune) bool {
				return !unicode.IsLetter(r) && !unicode.IsDigit(r)
			}))
		}
		if _, ok := tokens[term]; ok {
			return true
		}
	}
	return false
}

// Terms this short ("ml", "ai", "iot") only match a whole token, so that
// "html" or "email" do not count as specialized.
const shortTermLen = 3
