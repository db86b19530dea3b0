package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafe(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want bool
	}{
		{"clean item", Item{Title: "Morning light", Tags: []string{"cozy", "warm"}}, true},
		{"denylisted tag", Item{Title: "photo", Tags: []string{"nsfw"}}, false},
		{"denylisted caption", Item{Caption: "explicit lyrics ahead"}, false},
		{"substring catches inflection", Item{Caption: "masturbation"}, false},
		{"case insensitive", Item{Title: "XXX marks the spot"}, false},
		{"empty item", Item{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Safe(tt.item))
		})
	}
}

func TestQuality_Music(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want bool
	}{
		{"popular clean track", Item{Kind: KindMusic, Popularity: 55}, true},
		{"threshold exactly", Item{Kind: KindMusic, Popularity: 30}, true},
		{"too obscure", Item{Kind: KindMusic, Popularity: 20}, false},
		{"explicit flag", Item{Kind: KindMusic, Popularity: 80, Explicit: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quality(tt.item, 0))
		})
	}
}

func TestQuality_Film(t *testing.T) {
	good := Item{Kind: KindFilm, VoteAverage: 7.2, VoteCount: 500, ImageURL: "https://img/poster.jpg"}

	assert.True(t, Quality(good, 0))
	assert.False(t, Quality(good, 8.0), "threshold override must apply")

	noPoster := good
	noPoster.ImageURL = ""
	assert.False(t, Quality(noPoster, 0))

	fewVotes := good
	fewVotes.VoteCount = 50
	assert.False(t, Quality(fewVotes, 0))

	adult := good
	adult.Adult = true
	assert.False(t, Quality(adult, 0))
}

func TestQuality_Blog(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want bool
	}{
		{"large photo", Item{Kind: KindBlog, Width: 500, Height: 500, ImageURL: "https://x/y.jpg"}, true},
		{"too small", Item{Kind: KindBlog, Width: 300, Height: 600, ImageURL: "https://x/y.jpg"}, false},
		{"animated gif", Item{Kind: KindBlog, Width: 500, Height: 500, ImageURL: "https://x/y.GIF"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quality(tt.item, 0))
		})
	}
}

func TestQuality_Image(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want bool
	}{
		{"portrait", Item{Kind: KindImage, Width: 800, Height: 1200}, true},
		{"too narrow", Item{Kind: KindImage, Width: 400, Height: 2000}, false},
		{"too small", Item{Kind: KindImage, Width: 300, Height: 400}, false},
		{"wide but short", Item{Kind: KindImage, Width: 800, Height: 350}, false},
		{"zero height", Item{Kind: KindImage, Width: 800}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quality(tt.item, 0))
		})
	}
}

func TestProduct_StrictVsLenient(t *testing.T) {
	// One non-product indicator, zero product indicators: both modes reject.
	scenery := Item{Kind: KindImage, Title: "sunset"}
	assert.False(t, Product(scenery, true))
	assert.False(t, Product(scenery, false))

	// No indicators either way: strict rejects, lenient passes through.
	ambiguous := Item{Kind: KindImage, Title: "misty dawn"}
	assert.False(t, Product(ambiguous, true))
	assert.True(t, Product(ambiguous, false))

	// Clear product signal: both accept.
	handbag := Item{Kind: KindImage, Title: "leather handbag", Tags: []string{"designer"}}
	assert.True(t, Product(handbag, true))
	assert.True(t, Product(handbag, false))

	// Mixed signals: strict rejects on any non-product indicator.
	mixed := Item{Kind: KindImage, Title: "handbag on the beach", Tags: []string{"designer", "luxury"}}
	assert.False(t, Product(mixed, true))
	assert.True(t, Product(mixed, false), "more product than non-product indicators")
}

func TestFilter_Idempotent(t *testing.T) {
	items := []Item{
		{Kind: KindMusic, ID: "1", Popularity: 60},
		{Kind: KindMusic, ID: "2", Popularity: 10},
		{Kind: KindFilm, ID: "3", VoteAverage: 7.5, VoteCount: 900, ImageURL: "https://x/p.jpg"},
		{Kind: KindBlog, ID: "4", Width: 600, Height: 600, ImageURL: "https://x/a.jpg", Tags: []string{"nsfw"}},
		{Kind: KindImage, ID: "5", Width: 900, Height: 1200},
	}

	opts := FilterOptions{}
	once := Filter(items, opts)
	twice := Filter(once, opts)

	require.Equal(t, once, twice)

	ids := make([]string, 0, len(once))
	for _, it := range once {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"1", "3", "5"}, ids)
}

func TestFilter_ProductsOnlyAppliesToVisualKinds(t *testing.T) {
	items := []Item{
		{Kind: KindMusic, ID: "track", Popularity: 70, Title: "sunset boulevard"},
		{Kind: KindImage, ID: "pic", Width: 800, Height: 1000, Title: "sunset over the ocean"},
	}

	got := Filter(items, FilterOptions{ProductsOnly: true})

	require.Len(t, got, 1)
	assert.Equal(t, "track", got[0].ID, "product heuristic must not touch music items")
}

func TestDedupe(t *testing.T) {
	items := []Item{
		{ID: "a", Title: "first"},
		{ID: "b"},
		{ID: "a", Title: "second"},
		{Title: "no id"},
		{Title: "also no id"},
	}

	got := Dedupe(items)

	require.Len(t, got, 4)
	assert.Equal(t, "first", got[0].Title, "first occurrence wins")
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "no id", got[2].Title)
}
