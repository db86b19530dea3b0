package aesthetic

import "hash/fnv"

// fallbackConfidence is the fixed confidence assigned to hash-selected
// profiles. High enough to drive parameter projection, low enough to signal
// that the choice was not evidence-based.
const fallbackConfidence = 0.75

// Fallback deterministically selects a catalog profile from an opaque seed
// string. The same seed always yields the same profile, so repeated requests
// for an unrecognized vibe stay stable while different vibes spread across
// the catalog.
func Fallback(seed string) Detection {
	h := fnv.New32a()
	_, _ = h.Write([]byte(seed))
	idx := int(h.Sum32()) % len(profiles)
	if idx < 0 {
		idx += len(profiles)
	}
	return Detection{
		Profile:    &profiles[idx],
		Confidence: fallbackConfidence,
	}
}
