package textview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/rm-browser/internal/browse"
	"github.com/ytget/rm-browser/internal/model"
)

func characters() []model.Character {
	return []model.Character{
		{ID: 1, Name: "Rick Sanchez", Status: "Alive", Species: "Human"},
		{ID: 2, Name: "Morty Smith", Status: "Alive", Species: "Human"},
		{ID: 8, Name: "Adjudicator Rick", Status: "Dead", Species: "Human"},
		{ID: 9, Name: "Agency Director", Status: "unknown", Species: "Alien"},
	}
}

func TestRender_ShowsEveryCharacter(t *testing.T) {
	out := Render(characters(), nil)

	for _, c := range characters() {
		assert.Contains(t, out, c.Name)
	}
	assert.Contains(t, out, "Dead")
	assert.Contains(t, out, "Alien")
	assert.NotContains(t, out, glyphFavorite)
}

func TestRender_FavoriteGlyph(t *testing.T) {
	r := NewRenderer(DefaultStyles(), 1)
	out := r.Render(characters(), func(id model.CharacterID) bool { return id == 8 })

	assert.Equal(t, 1, strings.Count(out, glyphFavorite))
	assert.Equal(t, 3, strings.Count(out, glyphNotFavorite))
}

func TestRender_Empty(t *testing.T) {
	assert.Empty(t, Render(nil, nil))
}

func TestCard_Placeholders(t *testing.T) {
	r := NewRenderer(DefaultStyles(), 0)
	out := r.Card(model.Character{ID: 3}, false)

	assert.Contains(t, out, placeholder)
	assert.Contains(t, out, "#3")
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name string
		ind  browse.Indicator
		want []string
		not  []string
	}{
		{
			name: "single page search",
			ind:  browse.Indicator{Message: browse.MessageAll, Page: 1, TotalPages: 1, TotalCount: 2},
			want: []string{"All characters (2):", "Page 1 of 1"},
			not:  []string{"prev", "next"},
		},
		{
			name: "dead with nothing",
			ind:  browse.Indicator{Message: browse.MessageNoResults, Page: 1},
			want: []string{"No results", "Page 1"},
			not:  []string{"prev", "next", "("},
		},
		{
			name: "middle page",
			ind:  browse.Indicator{Message: browse.MessageAlive, Page: 2, TotalPages: 3, PrevEnabled: true, NextEnabled: true},
			want: []string{"Alive characters:", "Page 2 of 3", "prev next"},
		},
		{
			name: "before first load",
			ind:  browse.Indicator{Message: browse.MessageNone, Page: 1},
			want: []string{"Loading...", "Page 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Summary(tt.ind)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, n := range tt.not {
				assert.NotContains(t, out, n)
			}
		})
	}
}
