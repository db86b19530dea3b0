package aesthetic

import (
	"sort"
	"strings"

	"github.com/paletteapp/palette-server/internal/vector"
)

// DefaultMinConfidence is the floor applied when a caller passes a
// non-positive minimum confidence.
const DefaultMinConfidence = 0.4

// Detection pairs a catalog profile with the confidence it was detected at.
type Detection struct {
	Profile    *Profile `json:"profile"`
	Confidence float64  `json:"confidence"`
}

// Detect scores the input tags against every catalog profile and returns the
// profiles whose similarity clears both minConfidence and the profile's own
// threshold, sorted by confidence descending. Ties are broken by profile ID
// so repeated calls with the same input produce the same order.
//
// Empty input or no confident match yields an empty slice, never an error.
func Detect(tags []string, minConfidence float64) []Detection {
	if minConfidence <= 0 {
		minConfidence = DefaultMinConfidence
	}
	if len(tags) == 0 {
		return []Detection{}
	}

	results := make([]Detection, 0, 4)
	for i := range profiles {
		p := &profiles[i]
		confidence := Similarity(tags, p)

		threshold := max(minConfidence, p.ConfidenceThreshold)
		if confidence >= threshold {
			results = append(results, Detection{Profile: p, Confidence: confidence})
		}
	}

	sortDetections(results)
	return results
}

// Rank is the relaxed variant of Detect: profiles only need to clear
// minConfidence, not their own thresholds. Strict detection requires the
// input to mirror most of a profile's vocabulary, which short tag lists
// rarely do, so callers use Rank as the first fallback stage before giving
// up entirely.
func Rank(tags []string, minConfidence float64) []Detection {
	if minConfidence <= 0 {
		minConfidence = DefaultMinConfidence
	}
	if len(tags) == 0 {
		return []Detection{}
	}

	results := make([]Detection, 0, 4)
	for i := range profiles {
		p := &profiles[i]
		confidence := Similarity(tags, p)
		if confidence >= minConfidence {
			results = append(results, Detection{Profile: p, Confidence: confidence})
		}
	}

	sortDetections(results)
	return results
}

func sortDetections(results []Detection) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Confidence != results[j].Confidence {
			return results[i].Confidence > results[j].Confidence
		}
		return results[i].Profile.ID < results[j].Profile.ID
	})
}

// Similarity computes the cosine similarity between the input tags and a
// profile's tag vocabulary.
//
// Both sides are expanded into frequency vectors over the union vocabulary,
// where a vocabulary entry counts as matched by a tag when either string
// contains the other, case-insensitively. Substring containment is
// deliberate: it lets "film photography" match "photography" and "vintage
// camera" match "vintage" without a stemmer, and the profile thresholds are
// tuned to the score inflation it produces.
func Similarity(tags []string, p *Profile) float64 {
	profileTags := p.Tags()

	vocab := make([]string, 0, len(tags)+len(profileTags))
	seen := make(map[string]bool, len(tags)+len(profileTags))
	for _, t := range tags {
		lower := strings.ToLower(t)
		if !seen[lower] {
			seen[lower] = true
			vocab = append(vocab, lower)
		}
	}
	for _, t := range profileTags {
		lower := strings.ToLower(t)
		if !seen[lower] {
			seen[lower] = true
			vocab = append(vocab, lower)
		}
	}

	tagVec := frequencyVector(vocab, tags)
	profileVec := frequencyVector(vocab, profileTags)

	return vector.Cosine(vector.Normalize(tagVec), vector.Normalize(profileVec))
}

// frequencyVector counts, for each vocabulary entry, how many of the given
// terms match it by bidirectional containment.
func frequencyVector(vocab, terms []string) []float64 {
	vec := make([]float64, len(vocab))
	for i, entry := range vocab {
		for _, term := range terms {
			lower := strings.ToLower(term)
			if strings.Contains(lower, entry) || strings.Contains(entry, lower) {
				vec[i]++
			}
		}
	}
	return vec
}
