package content

import "strings"

// nsfwKeywords is the denylist matched by substring against an item's
// combined text. Broad terms like "adult" or "nude" are deliberately absent:
// they flag too much ordinary content.
var nsfwKeywords = []string{
	"nsfw", "porn", "sex", "xxx", "explicit",
	"erotic", "sexual", "fetish", "kink", "bdsm",
	"orgasm", "masturbat", "dildo", "vibrator",
	"hardcore", "gangbang", "threesome", "orgy",
}

// productIndicators are terms whose presence suggests an image depicts a
// shoppable object.
var productIndicators = []string{
	// Fashion & accessories
	"bag", "handbag", "purse", "backpack", "tote", "clutch", "satchel",
	"shoes", "boots", "sneakers", "heels", "sandals", "flats",
	"jewelry", "necklace", "earrings", "bracelet", "ring", "watch",
	"dress", "outfit", "clothing", "jacket", "coat", "sweater",

	// Beauty & skincare
	"makeup", "lipstick", "perfume", "fragrance", "skincare", "cosmetics",
	"nail polish", "mascara", "foundation", "blush", "eyeshadow",

	// Tech & lifestyle objects
	"phone", "laptop", "headphones", "camera", "gadget", "tech",
	"book", "diary", "journal", "notebook", "planner",
	"candle", "home decor", "mug", "cup", "bottle", "tumbler",

	// Luxury & collectibles
	"luxury", "designer", "vintage", "collectible", "antique",
	"crystal", "ceramic", "glass", "metal", "wood",

	// Art objects & decorative items
	"sculpture", "figurine", "vase", "ornament", "decoration",
	"mirror", "frame", "artwork", "poster", "print",

	// Product photography & shopping terms
	"flatlay", "product", "haul", "wishlist", "shopping", "aesthetic",
	"object", "item", "thing", "stuff", "collection",
}

// nonProductIndicators are terms suggesting scenery, abstract art, people or
// architecture rather than objects.
var nonProductIndicators = []string{
	// Landscapes & environments
	"landscape", "mountain", "ocean", "beach", "forest", "sky", "sunset", "sunrise",
	"nature", "outdoor", "scenery", "wilderness", "field", "desert",

	// Abstract & artistic
	"abstract", "pattern", "texture", "gradient", "background", "wallpaper",
	"geometric", "minimal", "color study", "digital art", "illustration",

	// People-focused
	"portrait", "selfie", "group photo", "candid", "lifestyle photo",
	"street photography", "documentary", "photojournalism",

	// Architecture
	"building", "architecture", "cityscape", "urban", "street",
	"interior design", "room", "space",
}

// FilterOptions control the optional stages of the filter pipeline.
type FilterOptions struct {
	// VoteThreshold overrides the film vote-average cutoff when positive.
	VoteThreshold float64

	// ProductsOnly enables the product heuristic for image and blog items.
	ProductsOnly bool

	// StrictProducts tightens the product heuristic: any non-product
	// indicator rejects, and at least one product indicator is required.
	// Ignored unless ProductsOnly is set.
	StrictProducts bool
}

// Filter applies the safety, quality and optional product predicates to the
// items, in order, and returns the survivors. Order is preserved. Filtering
// is idempotent: survivors pass a second application unchanged.
func Filter(items []Item, opts FilterOptions) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if !Safe(it) {
			continue
		}
		if !Quality(it, opts.VoteThreshold) {
			continue
		}
		if opts.ProductsOnly && (it.Kind == KindImage || it.Kind == KindBlog) {
			if !Product(it, opts.StrictProducts) {
				continue
			}
		}
		out = append(out, it)
	}
	return out
}

// Safe reports whether the item's combined text is free of denylisted terms.
// Matching is case-insensitive substring containment, so "masturbat" catches
// inflected forms.
func Safe(it Item) bool {
	text := combinedText(it)
	for _, kw := range nsfwKeywords {
		if strings.Contains(text, kw) {
			return false
		}
	}
	return true
}

// Quality applies the per-kind quality floor. voteThreshold is the film
// vote-average cutoff; non-positive values fall back to 5.0.
func Quality(it Item, voteThreshold float64) bool {
	switch it.Kind {
	case KindMusic:
		return it.Popularity >= 30 && !it.Explicit
	case KindFilm:
		if voteThreshold <= 0 {
			voteThreshold = 5.0
		}
		return it.VoteAverage >= voteThreshold &&
			it.VoteCount >= 100 &&
			it.ImageURL != "" &&
			!it.Adult
	case KindBlog:
		return it.Width >= 400 &&
			it.Height >= 400 &&
			!strings.Contains(strings.ToLower(it.ImageURL), ".gif")
	case KindImage:
		if it.Width < 400 || it.Height < 400 {
			return false
		}
		aspect := float64(it.Width) / float64(it.Height)
		return aspect >= 0.3 && aspect <= 3.0
	default:
		return true
	}
}

// Product scores the item's text against the product and non-product
// indicator lists.
//
// Strict mode rejects on any non-product indicator and requires at least one
// product indicator. Lenient mode accepts whenever product indicators are at
// least as numerous as non-product ones, which includes items with no
// indicators either way.
func Product(it Item, strict bool) bool {
	text := combinedText(it)

	productScore := 0
	for _, ind := range productIndicators {
		if strings.Contains(text, ind) {
			productScore++
		}
	}
	nonProductScore := 0
	for _, ind := range nonProductIndicators {
		if strings.Contains(text, ind) {
			nonProductScore++
		}
	}

	if strict {
		if nonProductScore > 0 {
			return false
		}
		return productScore > 0
	}
	return productScore >= nonProductScore
}

func combinedText(it Item) string {
	parts := make([]string, 0, len(it.Tags)+3)
	parts = append(parts, it.Tags...)
	parts = append(parts, it.Title, it.Caption, it.Artist)
	return strings.ToLower(strings.Join(parts, " "))
}
