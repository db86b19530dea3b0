// Package aesthetic provides the aesthetic category catalog and tag-based
// detection of aesthetics from descriptive text.
package aesthetic

// Profile describes a single aesthetic category: its identity, the tag
// vocabulary that characterizes it, and the minimum similarity required
// before a detection against it is considered confident.
type Profile struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	Keywords            []string `json:"keywords"`
	Colors              []string `json:"colors"`
	Emotions            []string `json:"emotions"`
	VisualElements      []string `json:"visual_elements"`
	Lifestyle           []string `json:"lifestyle"`
	Fashion             []string `json:"fashion"`
	ConfidenceThreshold float64  `json:"confidence_threshold"`
}

// Tags returns the flattened tag vocabulary of the profile, in declaration
// order. Detection builds its frequency vectors over this list.
func (p *Profile) Tags() []string {
	tags := make([]string, 0, len(p.Keywords)+len(p.Colors)+len(p.Emotions)+len(p.VisualElements)+len(p.Lifestyle)+len(p.Fashion))
	tags = append(tags, p.Keywords...)
	tags = append(tags, p.Colors...)
	tags = append(tags, p.Emotions...)
	tags = append(tags, p.VisualElements...)
	tags = append(tags, p.Lifestyle...)
	tags = append(tags, p.Fashion...)
	return tags
}

// profiles is the built-in aesthetic catalog. Order is significant: it is
// the deterministic iteration order for detection and the index space for
// hash-based fallback selection.
var profiles = []Profile{
	{
		ID:          "girlblogger",
		Name:        "Girlblogger",
		Description: "Nostalgic feminine internet culture aesthetic",
		Keywords:    []string{"girlblogger", "tumblr girl", "lana del rey", "coquette", "dollette", "nymphet", "soft grunge", "indie girl"},
		Colors:      []string{"beige", "cream", "soft pink", "brown", "vintage", "sepia", "muted"},
		Emotions:    []string{"melancholy", "romantic", "nostalgic", "dreamy", "vulnerable", "introspective"},
		VisualElements: []string{
			"film photography", "polaroids", "flowers", "books", "coffee", "vintage cars", "cigarettes",
		},
		Lifestyle:           []string{"reading", "journaling", "thrifting", "coffee shops", "vintage shopping"},
		Fashion:             []string{"slip dresses", "cardigans", "mary janes", "tights", "vintage band tees", "mini skirts"},
		ConfidenceThreshold: 0.7,
	},
	{
		ID:          "indie-sleaze",
		Name:        "Indie Sleaze",
		Description: "2000s-2010s alternative party culture revival",
		Keywords:    []string{"indie sleaze", "indiesleaze", "hipster", "party", "flash photography", "american apparel", "cigarettes"},
		Colors:      []string{"neon", "flash white", "black", "metallic", "harsh lighting", "high contrast"},
		Emotions:    []string{"rebellious", "hedonistic", "carefree", "edgy", "confident"},
		VisualElements: []string{
			"flash photography", "party scenes", "cigarettes", "alcohol", "urban nightlife", "leather jackets",
		},
		Lifestyle:           []string{"nightlife", "concerts", "house parties", "art galleries", "underground venues"},
		Fashion:             []string{"skinny jeans", "leather jackets", "band tees", "boots", "dark eyeliner", "messy hair"},
		ConfidenceThreshold: 0.75,
	},
	{
		ID:          "y2k-revival",
		Name:        "Y2K Revival",
		Description: "Futuristic 2000s technology aesthetic",
		Keywords:    []string{"y2k", "cyber", "futuristic", "2000s", "tech", "metallic", "holographic", "digital"},
		Colors:      []string{"metallic silver", "electric blue", "hot pink", "lime green", "holographic", "chrome"},
		Emotions:    []string{"optimistic", "futuristic", "energetic", "bold", "confident"},
		VisualElements: []string{
			"chrome", "holograms", "tech gadgets", "CD-ROMs", "digital screens", "matrix code",
		},
		Lifestyle:           []string{"tech enthusiasm", "gaming", "early internet culture", "digital art"},
		Fashion:             []string{"metallic clothing", "platform shoes", "cargo pants", "bucket hats", "chunky jewelry"},
		ConfidenceThreshold: 0.8,
	},
	{
		ID:          "dark-academia",
		Name:        "Dark Academia",
		Description: "Gothic scholarly aesthetic with classical elements",
		Keywords:    []string{"dark academia", "academia", "scholarly", "gothic", "classical", "library", "books", "university"},
		Colors:      []string{"dark brown", "black", "burgundy", "forest green", "gold", "ivory", "sepia"},
		Emotions:    []string{"intellectual", "mysterious", "contemplative", "melancholic", "sophisticated"},
		VisualElements: []string{
			"old books", "libraries", "gothic architecture", "candles", "manuscripts", "vintage maps",
		},
		Lifestyle:           []string{"reading", "writing", "studying", "museums", "classical music", "poetry"},
		Fashion:             []string{"tweed jackets", "turtlenecks", "oxford shoes", "wool coats", "vintage glasses", "pleated skirts"},
		ConfidenceThreshold: 0.7,
	},
	{
		ID:          "cottagecore",
		Name:        "Cottagecore",
		Description: "Romanticized rural and domestic lifestyle",
		Keywords:    []string{"cottagecore", "cottage", "rural", "countryside", "pastoral", "fairytale", "mushrooms", "bread"},
		Colors:      []string{"earth tones", "sage green", "cream", "brown", "muted pastels", "natural"},
		Emotions:    []string{"peaceful", "wholesome", "nostalgic", "cozy", "nurturing"},
		VisualElements: []string{
			"flowers", "gardens", "baking", "knitting", "farms", "forests", "vintage kitchens",
		},
		Lifestyle:           []string{"gardening", "baking", "crafting", "reading", "nature walks", "sustainable living"},
		Fashion:             []string{"linen dresses", "cardigans", "floral prints", "aprons", "mary janes", "straw hats"},
		ConfidenceThreshold: 0.75,
	},
	{
		ID:          "coquette",
		Name:        "Coquette",
		Description: "Hyperfeminine romantic aesthetic",
		Keywords:    []string{"coquette", "coquetteaesthetic", "dollette", "feminine", "romantic", "bows", "lace", "pink"},
		Colors:      []string{"soft pink", "white", "cream", "baby blue", "lavender", "pearl", "pastel"},
		Emotions:    []string{"romantic", "innocent", "playful", "delicate", "dreamy"},
		VisualElements: []string{
			"bows", "ribbons", "lace", "flowers", "pearls", "vintage dolls", "ballet",
		},
		Lifestyle:           []string{"ballet", "poetry", "vintage shopping", "tea parties", "classical arts"},
		Fashion:             []string{"mini skirts", "bows", "ballet flats", "cardigans", "pearl jewelry", "vintage lingerie"},
		ConfidenceThreshold: 0.8,
	},
	{
		ID:          "coastal-grandmother",
		Name:        "Coastal Grandmother",
		Description: "Relaxed coastal luxury lifestyle",
		Keywords:    []string{"coastal grandmother", "coastal", "linen", "neutral", "beige", "nancy meyers", "hamptons"},
		Colors:      []string{"beige", "cream", "white", "sage green", "soft blue", "natural linen", "sandy"},
		Emotions:    []string{"relaxed", "sophisticated", "calm", "luxurious", "timeless"},
		VisualElements: []string{
			"linen", "natural textures", "coastal views", "white kitchens", "fresh flowers",
		},
		Lifestyle:           []string{"cooking", "reading", "gardening", "hosting", "beach walks", "quality time"},
		Fashion:             []string{"linen shirts", "wide-leg pants", "cashmere", "neutral tones", "minimal jewelry"},
		ConfidenceThreshold: 0.7,
	},
	{
		ID:          "clean-girl",
		Name:        "Clean Girl",
		Description: "Minimalist natural beauty aesthetic",
		Keywords:    []string{"clean girl", "minimal", "natural", "glowing skin", "effortless", "dewy", "wellness"},
		Colors:      []string{"natural skin tones", "clear", "white", "nude", "minimal color palette"},
		Emotions:    []string{"confident", "natural", "effortless", "healthy", "minimalist"},
		VisualElements: []string{
			"natural lighting", "minimal makeup", "healthy skin", "simple styling",
		},
		Lifestyle:           []string{"skincare routine", "wellness", "minimal lifestyle", "self-care", "fitness"},
		Fashion:             []string{"minimal jewelry", "neutral clothing", "quality basics", "comfortable fits"},
		ConfidenceThreshold: 0.75,
	},
	{
		ID:          "cyber-fairy",
		Name:        "Cyber Fairy",
		Description: "Digital fantasy with ethereal tech elements",
		Keywords:    []string{"cyber fairy", "digital fairy", "tech fairy", "cyberpunk", "ethereal", "holographic", "futuristic"},
		Colors:      []string{"holographic", "electric purple", "neon pink", "cyber blue", "metallic", "iridescent"},
		Emotions:    []string{"otherworldly", "futuristic", "mystical", "bold", "creative"},
		VisualElements: []string{
			"holograms", "digital art", "LED lights", "crystals", "tech accessories",
		},
		Lifestyle:           []string{"digital art", "gaming", "experimental fashion", "electronic music"},
		Fashion:             []string{"metallic fabrics", "LED accessories", "platform boots", "holographic materials"},
		ConfidenceThreshold: 0.8,
	},
	{
		ID:          "kidcore",
		Name:        "Kidcore",
		Description: "Nostalgic childhood memories aesthetic",
		Keywords:    []string{"kidcore", "nostalgic", "childhood", "rainbow", "colorful", "toys", "playful", "90s kids"},
		Colors:      []string{"bright rainbow", "primary colors", "neon", "plastic colors", "saturated"},
		Emotions:    []string{"nostalgic", "playful", "innocent", "joyful", "carefree"},
		VisualElements: []string{
			"toys", "stickers", "cartoons", "candy", "playground equipment",
		},
		Lifestyle:           []string{"collecting", "gaming", "cartoon watching", "craft projects"},
		Fashion:             []string{"colorful clothing", "hair clips", "platform shoes", "graphic tees", "fun accessories"},
		ConfidenceThreshold: 0.75,
	},
	{
		ID:          "old-money",
		Name:        "Old Money",
		Description: "Understated luxury and generational wealth aesthetic",
		Keywords:    []string{"old money", "quiet luxury", "preppy", "understated", "timeless", "ivy league", "heritage"},
		Colors:      []string{"navy", "cream", "forest green", "burgundy", "camel", "white", "neutral"},
		Emotions:    []string{"sophisticated", "timeless", "refined", "confident", "understated"},
		VisualElements: []string{
			"equestrian", "sailing", "country clubs", "libraries", "antiques",
		},
		Lifestyle:           []string{"equestrian sports", "sailing", "country clubs", "art collecting", "philanthropy"},
		Fashion:             []string{"blazers", "pearls", "loafers", "cashmere", "silk scarves", "quality fabrics"},
		ConfidenceThreshold: 0.7,
	},
}

// byID indexes the catalog for lookup. Built once at init.
var byID = func() map[string]*Profile {
	m := make(map[string]*Profile, len(profiles))
	for i := range profiles {
		m[profiles[i].ID] = &profiles[i]
	}
	return m
}()

// Profiles returns the full catalog in deterministic order.
// The returned slice must not be modified.
func Profiles() []Profile {
	return profiles
}

// Lookup returns the profile with the given ID, or nil if unknown.
func Lookup(id string) *Profile {
	return byID[id]
}
