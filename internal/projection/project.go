// Package projection turns aesthetic detections into concrete provider
// query parameters, blending multiple detections by confidence weight.
package projection

import (
	"sort"

	"github.com/paletteapp/palette-server/internal/aesthetic"
)

// topN caps each list-valued parameter after weighted merging.
const topN = 10

// minVoteThreshold is the floor for the film vote-average cutoff. Contributing
// profiles can only raise it.
const minVoteThreshold = 6.0

// MusicParams are the merged music-provider query parameters.
type MusicParams struct {
	Genres      []string      `json:"genres"`
	Moods       []string      `json:"moods"`
	Artists     []string      `json:"artists"`
	SearchTerms []string      `json:"search_terms"`
	Targets     AudioFeatures `json:"targets"`
}

// FilmParams are the merged film-provider query parameters.
type FilmParams struct {
	Genres        []int       `json:"genres"`
	Keywords      []string    `json:"keywords"`
	YearRanges    []YearRange `json:"year_ranges"`
	Countries     []string    `json:"countries"`
	VoteThreshold float64     `json:"vote_threshold"`
}

// ImageParams are the merged image-provider query parameters.
type ImageParams struct {
	SearchTerms []string `json:"search_terms"`
}

// BlogParams are the merged blog-provider query parameters.
type BlogParams struct {
	PrimaryTags   []string `json:"primary_tags"`
	SecondaryTags []string `json:"secondary_tags"`
	Hashtags      []string `json:"hashtags"`
	BlogTypes     []string `json:"blog_types"`
}

// Params bundles the merged parameters for all providers.
type Params struct {
	Music MusicParams `json:"music"`
	Film  FilmParams  `json:"film"`
	Image ImageParams `json:"image"`
	Blog  BlogParams  `json:"blog"`
}

// bucket accumulates weight per value while remembering first-seen order,
// so equal weights rank in contribution order rather than map order.
type bucket[T comparable] struct {
	weights map[T]float64
	order   []T
}

func newBucket[T comparable]() *bucket[T] {
	return &bucket[T]{weights: make(map[T]float64)}
}

func (b *bucket[T]) add(values []T, weight float64) {
	for _, v := range values {
		if _, ok := b.weights[v]; !ok {
			b.order = append(b.order, v)
		}
		b.weights[v] += weight
	}
}

// top returns the n highest-weighted values, deduplicated, heaviest first.
func (b *bucket[T]) top(n int) []T {
	ranked := make([]T, len(b.order))
	copy(ranked, b.order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return b.weights[ranked[i]] > b.weights[ranked[j]]
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Project merges the provider mappings of the given detections into a single
// parameter bundle. Each detection contributes its mapping's values weighted
// by its confidence: list parameters accumulate weight per value and keep the
// heaviest ten, audio targets take the confidence-weighted mean clamped to
// [0,1], the film vote threshold takes the maximum, and year ranges union.
//
// Empty input (or input with no mapped profiles) yields DefaultParams.
func Project(detections []aesthetic.Detection) Params {
	musicGenres := newBucket[string]()
	moods := newBucket[string]()
	artists := newBucket[string]()
	musicTerms := newBucket[string]()
	filmGenres := newBucket[int]()
	keywords := newBucket[string]()
	countries := newBucket[string]()
	imageTerms := newBucket[string]()
	primaryTags := newBucket[string]()
	secondaryTags := newBucket[string]()
	hashtags := newBucket[string]()
	blogTypes := newBucket[string]()

	var totalWeight float64
	var features AudioFeatures
	voteThreshold := minVoteThreshold
	var yearRanges []YearRange

	for _, d := range detections {
		if d.Profile == nil {
			continue
		}
		m, ok := mappings[d.Profile.ID]
		if !ok {
			continue
		}
		w := d.Confidence
		if w <= 0 {
			continue
		}
		totalWeight += w

		musicGenres.add(m.Music.Genres, w)
		moods.add(m.Music.Moods, w)
		artists.add(m.Music.Artists, w)
		musicTerms.add(m.Music.SearchTerms, w)
		features.Energy += m.Music.Features.Energy * w
		features.Valence += m.Music.Features.Valence * w
		features.Danceability += m.Music.Features.Danceability * w
		features.Acousticness += m.Music.Features.Acousticness * w

		filmGenres.add(m.Film.Genres, w)
		keywords.add(m.Film.Keywords, w)
		countries.add(m.Film.Countries, w)
		if m.Film.VoteThreshold > voteThreshold {
			voteThreshold = m.Film.VoteThreshold
		}
		for _, yr := range m.Film.YearRanges {
			if !containsRange(yearRanges, yr) {
				yearRanges = append(yearRanges, yr)
			}
		}

		imageTerms.add(m.Image.SearchTerms, w)

		primaryTags.add(m.Blog.PrimaryTags, w)
		secondaryTags.add(m.Blog.SecondaryTags, w)
		hashtags.add(m.Blog.Hashtags, w)
		blogTypes.add(m.Blog.BlogTypes, w)
	}

	if totalWeight <= 0 {
		return DefaultParams()
	}

	features.Energy = clamp01(features.Energy / totalWeight)
	features.Valence = clamp01(features.Valence / totalWeight)
	features.Danceability = clamp01(features.Danceability / totalWeight)
	features.Acousticness = clamp01(features.Acousticness / totalWeight)

	return Params{
		Music: MusicParams{
			Genres:      musicGenres.top(topN),
			Moods:       moods.top(topN),
			Artists:     artists.top(topN),
			SearchTerms: musicTerms.top(topN),
			Targets:     features,
		},
		Film: FilmParams{
			Genres:        filmGenres.top(topN),
			Keywords:      keywords.top(topN),
			YearRanges:    yearRanges,
			Countries:     countries.top(topN),
			VoteThreshold: voteThreshold,
		},
		Image: ImageParams{
			SearchTerms: imageTerms.top(topN),
		},
		Blog: BlogParams{
			PrimaryTags:   primaryTags.top(topN),
			SecondaryTags: secondaryTags.top(topN),
			Hashtags:      hashtags.top(topN),
			BlogTypes:     blogTypes.top(topN),
		},
	}
}

// DefaultParams is the neutral parameter bundle used when no aesthetic could
// be detected at all.
func DefaultParams() Params {
	return Params{
		Music: MusicParams{
			Genres:      []string{"pop", "indie"},
			Moods:       []string{"chill", "upbeat"},
			SearchTerms: []string{"indie", "alternative", "popular music"},
			Targets:     AudioFeatures{Energy: 0.5, Valence: 0.5, Danceability: 0.5, Acousticness: 0.5},
		},
		Film: FilmParams{
			Genres:        []int{genreDrama, genreComedy},
			Keywords:      []string{"indie", "contemporary"},
			YearRanges:    []YearRange{{Min: 2000, Max: 2024}},
			Countries:     []string{"US"},
			VoteThreshold: minVoteThreshold,
		},
		Image: ImageParams{
			SearchTerms: []string{"aesthetic", "minimalist", "trendy", "modern", "artistic"},
		},
		Blog: BlogParams{
			PrimaryTags: []string{"aesthetic", "mood", "vibes", "artsy", "indie"},
			BlogTypes:   []string{"aesthetic", "photography"},
		},
	}
}

func containsRange(ranges []YearRange, yr YearRange) bool {
	for _, r := range ranges {
		if r == yr {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
