package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slicelab/pizzasearch/internal/catalog"
)

func TestMatch(t *testing.T) {
	menu := catalog.Default().Items()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"pepperoni", "Pepperoni", []string{"Pepperoni", "Pepperoni Special"}},
		{"chicken", "Chicken", []string{"Chicken Supreme", "Chicken Sweetcorn", "Chicken Mushroom"}},
		{"lowercase does not match", "pepperoni", []string{}},
		{"no match", "Z", []string{}},
		{"single letter", "M", []string{"Margharita", "Mexicana"}},
		{"trailing space is literal", "Chicken ", []string{"Chicken Supreme", "Chicken Sweetcorn", "Chicken Mushroom"}},
		{"leading space is literal", " Chicken", []string{}},
		{"prefix only", "Special", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(menu, tt.query, MatchOptions{})
			assert.Equal(t, tt.want, got)
			assert.NotNil(t, got)
		})
	}
}

func TestMatch_ResultIsOrderedSubset(t *testing.T) {
	menu := catalog.Default().Items()

	for _, q := range []string{"", "P", "Pe", "C", "Chicken S", "T", "H", "Mex", "xyz"} {
		got := Match(menu, q, MatchOptions{})

		next := 0
		for _, item := range got {
			assert.True(t, strings.HasPrefix(item, q), "%q does not start with %q", item, q)
			for next < len(menu) && menu[next] != item {
				next++
			}
			assert.Less(t, next, len(menu), "%q out of candidate order for %q", item, q)
			next++
		}
	}
}

func TestMatch_IgnoreCase(t *testing.T) {
	got := Match(catalog.Default().Items(), "pepperoni", MatchOptions{IgnoreCase: true})
	assert.Equal(t, []string{"Pepperoni", "Pepperoni Special"}, got)
}

func TestMatch_EmptyCandidates(t *testing.T) {
	got := Match(nil, "P", MatchOptions{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMatch_KeepsDuplicates(t *testing.T) {
	got := Match([]string{"Pep", "Hawaiian", "Pep"}, "P", MatchOptions{})
	assert.Equal(t, []string{"Pep", "Pep"}, got)
}
