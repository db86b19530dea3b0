package content

import (
	"math"
	"sort"
	"strings"
	"time"
)

// fullHDArea normalizes image-area scores; anything at least 1920x1080
// scores a full point.
const fullHDArea = 1920 * 1080

// portraitAspect is the width/height ratio image ranking treats as ideal.
const portraitAspect = 0.8

// RankOptions parameterize composite scoring.
type RankOptions struct {
	// Targets are the audio-feature targets used for the music
	// feature-match signal, keyed by feature name. Missing keys are
	// skipped.
	Targets map[string]float64

	// Now anchors recency decay. Zero means time.Now().
	Now time.Time
}

// Rank assigns each item a composite score and returns a new slice sorted by
// score descending. Equal scores keep their input order. The scoring weights
// are fixed per kind:
//
//	film:  40% vote average, 20% log popularity, 20% log vote count, 20% recency
//	music: 40% popularity, 30% feature match, 30% artist diversity
//	image: 40% log likes, 30% resolution, 30% aspect fit
//	blog:  50% recency, 50% image area
//
// Artist diversity penalizes sets dominated by one artist with 1/sqrt(n)
// where n is the artist's occurrence count across the input.
func Rank(items []Item, opts RankOptions) []Item {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	artistCounts := make(map[string]int)
	for _, it := range items {
		if it.Kind == KindMusic && it.Artist != "" {
			artistCounts[strings.ToLower(it.Artist)]++
		}
	}

	out := make([]Item, len(items))
	copy(out, items)
	for i := range out {
		switch out[i].Kind {
		case KindFilm:
			out[i].Score = filmScore(out[i], now)
		case KindMusic:
			out[i].Score = musicScore(out[i], opts.Targets, artistCounts)
		case KindImage:
			out[i].Score = imageScore(out[i])
		case KindBlog:
			out[i].Score = blogScore(out[i], now)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

func filmScore(it Item, now time.Time) float64 {
	vote := 0.4 * (it.VoteAverage / 10)
	popularity := 0.2 * (math.Log10(math.Max(it.Popularity, 1)) / 3)
	volume := 0.2 * (math.Log10(math.Max(float64(it.VoteCount), 1)) / 5)
	return vote + popularity + volume + 0.2*recency(it.ReleasedAt, now)
}

func musicScore(it Item, targets map[string]float64, artistCounts map[string]int) float64 {
	popularity := 0.4 * (it.Popularity / 100)

	match := 1.0
	if len(targets) > 0 && len(it.Features) > 0 {
		var diff float64
		var n int
		for name, target := range targets {
			if value, ok := it.Features[name]; ok {
				diff += math.Abs(value - target)
				n++
			}
		}
		if n > 0 {
			match = 1 - diff/float64(n)
		}
	}

	diversity := 1.0
	if it.Artist != "" {
		if count := artistCounts[strings.ToLower(it.Artist)]; count > 1 {
			diversity = 1 / math.Sqrt(float64(count))
		}
	}

	return popularity + 0.3*match + 0.3*diversity
}

func imageScore(it Item) float64 {
	likes := 0.4 * (math.Log10(math.Max(float64(it.Likes), 1)) / 3)
	resolution := 0.3 * math.Min(float64(it.Width*it.Height)/fullHDArea, 1)

	fit := 0.0
	if it.Height > 0 {
		aspect := float64(it.Width) / float64(it.Height)
		fit = 0.3 * math.Max(0, 1-math.Abs(aspect-portraitAspect))
	}
	return likes + resolution + fit
}

func blogScore(it Item, now time.Time) float64 {
	area := 0.5 * math.Min(float64(it.Width*it.Height)/fullHDArea, 1)
	return 0.5*recency(it.ReleasedAt, now) + area
}

// recency decays linearly from 1 to 0 over fifty years. Items without a
// release time score 0.
func recency(released time.Time, now time.Time) float64 {
	if released.IsZero() {
		return 0
	}
	years := float64(now.Year() - released.Year())
	return math.Max(0, 1-years/50)
}
