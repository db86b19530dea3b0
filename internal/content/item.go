// Package content defines the normalized moodboard item model plus the
// filtering and ranking applied to provider results.
package content

import "time"

// Kind classifies a moodboard item by the medium it came from.
type Kind string

const (
	KindMusic Kind = "music"
	KindFilm  Kind = "film"
	KindImage Kind = "image"
	KindBlog  Kind = "blog"
)

// Item is a single moodboard entry in provider-neutral form. Providers map
// their raw responses into this shape; only the fields relevant to the item's
// Kind are populated.
type Item struct {
	Kind        Kind      `json:"kind"`
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ImageURL    string    `json:"image_url,omitempty"`
	SourceURL   string    `json:"source_url,omitempty"`
	Artist      string    `json:"artist,omitempty"`
	Attribution string    `json:"attribution,omitempty"`
	Caption     string    `json:"caption,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Popularity  float64   `json:"popularity,omitempty"`
	VoteAverage float64   `json:"vote_average,omitempty"`
	VoteCount   int       `json:"vote_count,omitempty"`
	Likes       int       `json:"likes,omitempty"`
	Explicit    bool      `json:"explicit,omitempty"`
	Adult       bool      `json:"adult,omitempty"`
	Width       int       `json:"width,omitempty"`
	Height      int       `json:"height,omitempty"`
	ReleasedAt  time.Time `json:"released_at,omitzero"`

	// Features holds the item's audio features when Kind is music,
	// keyed by feature name (energy, valence, danceability, acousticness).
	Features map[string]float64 `json:"features,omitempty"`

	// Score is filled in by ranking; higher sorts earlier.
	Score float64 `json:"score"`
}

// Dedupe returns items with duplicate IDs removed, keeping the first
// occurrence of each ID and preserving order. Items without an ID are kept
// unconditionally.
func Dedupe(items []Item) []Item {
	seen := make(map[string]bool, len(items))
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ID != "" {
			if seen[it.ID] {
				continue
			}
			seen[it.ID] = true
		}
		out = append(out, it)
	}
	return out
}
