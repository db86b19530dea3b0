package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rankNow = time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

func TestRank_FilmComposite(t *testing.T) {
	recent := Item{
		Kind: KindFilm, ID: "recent",
		VoteAverage: 8.0, VoteCount: 1000, Popularity: 100,
		ReleasedAt: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	weak := Item{
		Kind: KindFilm, ID: "weak",
		VoteAverage: 5.0, VoteCount: 100, Popularity: 1,
		ReleasedAt: time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	got := Rank([]Item{weak, recent}, RankOptions{Now: rankNow})

	require.Len(t, got, 2)
	assert.Equal(t, "recent", got[0].ID)
	assert.Greater(t, got[0].Score, got[1].Score)
}

func TestRank_MusicFeatureMatch(t *testing.T) {
	targets := map[string]float64{"energy": 0.9, "valence": 0.8}

	near := Item{
		Kind: KindMusic, ID: "near", Artist: "a", Popularity: 50,
		Features: map[string]float64{"energy": 0.85, "valence": 0.8},
	}
	far := Item{
		Kind: KindMusic, ID: "far", Artist: "b", Popularity: 50,
		Features: map[string]float64{"energy": 0.1, "valence": 0.2},
	}

	got := Rank([]Item{far, near}, RankOptions{Targets: targets, Now: rankNow})

	require.Len(t, got, 2)
	assert.Equal(t, "near", got[0].ID)
}

func TestRank_MusicArtistDiversity(t *testing.T) {
	// Four tracks with equal popularity and no features: the only signal
	// separating them is how often their artist repeats.
	items := []Item{
		{Kind: KindMusic, ID: "dup1", Artist: "Same Artist", Popularity: 40},
		{Kind: KindMusic, ID: "dup2", Artist: "same artist", Popularity: 40},
		{Kind: KindMusic, ID: "dup3", Artist: "SAME ARTIST", Popularity: 40},
		{Kind: KindMusic, ID: "solo", Artist: "Unique", Popularity: 40},
	}

	got := Rank(items, RankOptions{Now: rankNow})

	require.Len(t, got, 4)
	assert.Equal(t, "solo", got[0].ID, "unique artist must outrank a repeated one")
}

func TestRank_ImageComposite(t *testing.T) {
	big := Item{Kind: KindImage, ID: "big", Likes: 900, Width: 1600, Height: 2000}
	small := Item{Kind: KindImage, ID: "small", Likes: 2, Width: 400, Height: 500}

	got := Rank([]Item{small, big}, RankOptions{Now: rankNow})

	require.Len(t, got, 2)
	assert.Equal(t, "big", got[0].ID)
}

func TestRank_BlogRecency(t *testing.T) {
	fresh := Item{
		Kind: KindBlog, ID: "fresh", Width: 600, Height: 600,
		ReleasedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	stale := Item{
		Kind: KindBlog, ID: "stale", Width: 600, Height: 600,
		ReleasedAt: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	got := Rank([]Item{stale, fresh}, RankOptions{Now: rankNow})

	require.Len(t, got, 2)
	assert.Equal(t, "fresh", got[0].ID)
}

func TestRank_StableForEqualScores(t *testing.T) {
	a := Item{Kind: KindMusic, ID: "a", Artist: "x", Popularity: 40}
	b := Item{Kind: KindMusic, ID: "b", Artist: "y", Popularity: 40}

	got := Rank([]Item{a, b}, RankOptions{Now: rankNow})

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID, "equal scores keep input order")
	assert.Equal(t, got[0].Score, got[1].Score)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	items := []Item{
		{Kind: KindFilm, ID: "x", VoteAverage: 9, VoteCount: 500},
		{Kind: KindFilm, ID: "y", VoteAverage: 2, VoteCount: 500},
	}

	_ = Rank(items, RankOptions{Now: rankNow})

	assert.Equal(t, "x", items[0].ID)
	assert.Equal(t, "y", items[1].ID)
}
