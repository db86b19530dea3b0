package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paletteapp/palette-server/internal/aesthetic"
)

func detection(t *testing.T, id string, confidence float64) aesthetic.Detection {
	t.Helper()
	p := aesthetic.Lookup(id)
	require.NotNil(t, p, "catalog must contain %s", id)
	return aesthetic.Detection{Profile: p, Confidence: confidence}
}

func TestProject_SingleDetectionReproducesMapping(t *testing.T) {
	// With one contributor every value carries the same weight, so the merged
	// parameters are exactly the mapping in declaration order.
	m, ok := MappingFor("girlblogger")
	require.True(t, ok)

	got := Project([]aesthetic.Detection{detection(t, "girlblogger", 0.82)})

	assert.Equal(t, m.Music.Genres, got.Music.Genres)
	assert.Equal(t, m.Music.Moods, got.Music.Moods)
	assert.Equal(t, m.Music.Artists, got.Music.Artists)
	assert.Equal(t, m.Music.SearchTerms, got.Music.SearchTerms)
	assert.InDelta(t, m.Music.Features.Energy, got.Music.Targets.Energy, 1e-9)
	assert.InDelta(t, m.Music.Features.Valence, got.Music.Targets.Valence, 1e-9)
	assert.InDelta(t, m.Music.Features.Danceability, got.Music.Targets.Danceability, 1e-9)
	assert.InDelta(t, m.Music.Features.Acousticness, got.Music.Targets.Acousticness, 1e-9)

	assert.Equal(t, m.Film.Genres, got.Film.Genres)
	assert.Equal(t, m.Film.Keywords, got.Film.Keywords)
	assert.Equal(t, m.Film.YearRanges, got.Film.YearRanges)
	assert.Equal(t, m.Film.Countries, got.Film.Countries)
	assert.Equal(t, m.Film.VoteThreshold, got.Film.VoteThreshold)

	assert.Equal(t, m.Image.SearchTerms, got.Image.SearchTerms)
	assert.Equal(t, m.Blog.PrimaryTags, got.Blog.PrimaryTags)
	assert.Equal(t, m.Blog.Hashtags, got.Blog.Hashtags)
}

func TestProject_EmptyInputYieldsDefaults(t *testing.T) {
	assert.Equal(t, DefaultParams(), Project(nil))
	assert.Equal(t, DefaultParams(), Project([]aesthetic.Detection{}))
}

func TestProject_ZeroWeightYieldsDefaults(t *testing.T) {
	got := Project([]aesthetic.Detection{detection(t, "girlblogger", 0)})
	assert.Equal(t, DefaultParams(), got)
}

func TestProject_HeavierDetectionRanksFirst(t *testing.T) {
	got := Project([]aesthetic.Detection{
		detection(t, "dark-academia", 0.9),
		detection(t, "girlblogger", 0.5),
	})

	darkMapping, _ := MappingFor("dark-academia")
	girlMapping, _ := MappingFor("girlblogger")

	// Values unique to the heavier contributor outrank values unique to the
	// lighter one. "classical" is only in the dark-academia mapping and
	// "indie-pop" only in the girlblogger one.
	require.NotEmpty(t, got.Music.Genres)

	genreIndex := make(map[string]int)
	for i, g := range got.Music.Genres {
		genreIndex[g] = i
	}
	heavy, heavyOK := genreIndex[darkMapping.Music.Genres[0]]
	light, lightOK := genreIndex[girlMapping.Music.Genres[0]]
	require.True(t, heavyOK)
	if lightOK {
		assert.Less(t, heavy, light)
	}
}

func TestProject_SharedValuesAccumulateWeight(t *testing.T) {
	// "folk" appears in both cottagecore and coastal-grandmother mappings, so
	// two modest contributors together outrank a single heavier unique value.
	got := Project([]aesthetic.Detection{
		detection(t, "cottagecore", 0.5),
		detection(t, "coastal-grandmother", 0.5),
	})

	require.NotEmpty(t, got.Music.Genres)
	assert.Equal(t, "folk", got.Music.Genres[0])
}

func TestProject_AudioTargetsWeightedMean(t *testing.T) {
	// girlblogger energy 0.4, y2k-revival energy 0.8; equal weights average
	// to 0.6, skewed weights shift toward the heavier contributor.
	equal := Project([]aesthetic.Detection{
		detection(t, "girlblogger", 0.5),
		detection(t, "y2k-revival", 0.5),
	})
	assert.InDelta(t, 0.6, equal.Music.Targets.Energy, 1e-9)

	skewed := Project([]aesthetic.Detection{
		detection(t, "girlblogger", 0.25),
		detection(t, "y2k-revival", 0.75),
	})
	assert.InDelta(t, 0.7, skewed.Music.Targets.Energy, 1e-9)

	assert.GreaterOrEqual(t, equal.Music.Targets.Valence, 0.0)
	assert.LessOrEqual(t, equal.Music.Targets.Valence, 1.0)
}

func TestProject_VoteThresholdTakesMax(t *testing.T) {
	got := Project([]aesthetic.Detection{
		detection(t, "girlblogger", 0.9),   // 6.0
		detection(t, "dark-academia", 0.5), // 6.5
	})
	assert.Equal(t, 6.5, got.Film.VoteThreshold)
}

func TestProject_VoteThresholdFloor(t *testing.T) {
	got := Project([]aesthetic.Detection{detection(t, "cottagecore", 0.9)})
	assert.GreaterOrEqual(t, got.Film.VoteThreshold, minVoteThreshold)
}

func TestProject_YearRangesUnion(t *testing.T) {
	got := Project([]aesthetic.Detection{
		detection(t, "y2k-revival", 0.8), // two ranges
		detection(t, "girlblogger", 0.6), // one range
	})
	assert.Len(t, got.Film.YearRanges, 3)

	// Duplicate contributions collapse.
	doubled := Project([]aesthetic.Detection{
		detection(t, "girlblogger", 0.6),
		detection(t, "girlblogger", 0.6),
	})
	assert.Len(t, doubled.Film.YearRanges, 1)
}

func TestProject_ListsCappedAtTen(t *testing.T) {
	got := Project([]aesthetic.Detection{
		detection(t, "girlblogger", 0.7),
		detection(t, "indie-sleaze", 0.7),
		detection(t, "y2k-revival", 0.7),
		detection(t, "dark-academia", 0.7),
	})

	assert.Len(t, got.Music.Moods, 10)
	assert.LessOrEqual(t, len(got.Music.Genres), 10)
	assert.LessOrEqual(t, len(got.Music.Artists), 10)
	assert.LessOrEqual(t, len(got.Film.Keywords), 10)
	assert.LessOrEqual(t, len(got.Image.SearchTerms), 10)
	assert.LessOrEqual(t, len(got.Blog.PrimaryTags), 10)
}

func TestProject_DeduplicatesValues(t *testing.T) {
	got := Project([]aesthetic.Detection{
		detection(t, "girlblogger", 0.7),
		detection(t, "coquette", 0.7),
	})

	seen := make(map[string]bool)
	for _, tag := range got.Blog.PrimaryTags {
		assert.False(t, seen[tag], "duplicate primary tag %q", tag)
		seen[tag] = true
	}
}

func TestMappings_CoverCatalog(t *testing.T) {
	for _, p := range aesthetic.Profiles() {
		m, ok := MappingFor(p.ID)
		require.True(t, ok, "profile %s must have a provider mapping", p.ID)

		assert.NotEmpty(t, m.Music.Genres, p.ID)
		assert.NotEmpty(t, m.Music.SearchTerms, p.ID)
		assert.NotEmpty(t, m.Film.Genres, p.ID)
		assert.NotEmpty(t, m.Film.YearRanges, p.ID)
		assert.GreaterOrEqual(t, m.Film.VoteThreshold, minVoteThreshold, p.ID)
		assert.NotEmpty(t, m.Image.SearchTerms, p.ID)
		assert.NotEmpty(t, m.Blog.PrimaryTags, p.ID)

		for _, f := range []float64{m.Music.Features.Energy, m.Music.Features.Valence, m.Music.Features.Danceability, m.Music.Features.Acousticness} {
			assert.GreaterOrEqual(t, f, 0.0, p.ID)
			assert.LessOrEqual(t, f, 1.0, p.ID)
		}
	}
}
