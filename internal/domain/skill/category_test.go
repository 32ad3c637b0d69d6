package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoriesOf(t *testing.T) {
	tests := []struct {
		skill string
		want  []Category
	}{
		{"react", []Category{Frontend}},
		{"node.js", []Category{Backend}},
		{"javascript", []Category{Backend, Frontend}}, // "java" is a backend term
		{"k8s", []Category{Cloud}},
		{"react native", []Category{Frontend, Mobile}},
		{"cooking", nil},
		{"", nil},
	}
	for _, tc := range tests {
		t.Run(tc.skill, func(t *testing.T) {
			assert.Equal(t, tc.want, CategoriesOf(tc.skill))
		})
	}
}

func TestCategoryMatch(t *testing.T) {
	tests := []struct {
		name     string
		user     []string
		required []string
		want     float64
	}{
		{"empty required", nil, nil, 1.0},
		{"empty user", nil, []string{"react"}, 0.0},
		{"uncategorized requirement", []string{"react"}, []string{"cooking"}, 0.0},
		{"full overlap", []string{"react", "javascript"}, []string{"React", "Node.js"}, 1.0},
		{"half overlap", []string{"vue"}, []string{"angular", "mysql"}, 0.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, CategoryMatch(tc.user, tc.required), 1e-9)
		})
	}
}

func TestTransferability(t *testing.T) {
	// normalized 0.5, category 1.0
	got := Transferability([]string{"react", "javascript"}, []string{"React", "Node.js"})
	assert.InDelta(t, 0.65, got, 1e-9)
}

func TestMatchedCategories(t *testing.T) {
	got := MatchedCategories([]string{"vue", "docker"}, []string{"angular", "mysql", "kubernetes"})
	assert.Equal(t, []Category{Cloud, Frontend}, got)
}

func TestIsSpecialized(t *testing.T) {
	assert.True(t, IsSpecialized("Machine Learning"))
	assert.True(t, IsSpecialized("ML"))
	assert.True(t, IsSpecialized("Cybersecurity"))
	assert.True(t, IsSpecialized("unity"))
	assert.False(t, IsSpecialized("react"))
	assert.False(t, IsSpecialized(""))
}

func TestIsSpecialized_ShortTermsMatchWholeTokens(t *testing.T) {
	tests := map[string]bool{
		"AI":            true,
		"ai/ml":         true,
		"applied ai":    true,
		"IoT devices":   true,
		"nlp":           true,
		"HTML":          false,
		"email":         false,
		"yaml":          false,
		"xml":           false,
		"containers":    false,
		"domain driven": false,
		"kubernetes":    true,
		"cybersecurity": true,
		"spark":         true,
	}
	for raw, want := range tests {
		assert.Equal(t, want, IsSpecialized(raw), raw)
	}
}
