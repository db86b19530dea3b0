package projection

// AudioFeatures are numeric music targets, each in [0,1].
type AudioFeatures struct {
	Energy       float64 `json:"energy"`
	Valence      float64 `json:"valence"`
	Danceability float64 `json:"danceability"`
	Acousticness float64 `json:"acousticness"`
}

// YearRange bounds film release years, inclusive.
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// MusicMapping holds the music-provider parameters for one aesthetic.
type MusicMapping struct {
	Genres      []string
	Moods       []string
	Artists     []string
	SearchTerms []string
	Features    AudioFeatures
}

// FilmMapping holds the film-provider parameters for one aesthetic.
type FilmMapping struct {
	Genres        []int
	Keywords      []string
	YearRanges    []YearRange
	Countries     []string
	VoteThreshold float64
}

// ImageMapping holds the image-provider parameters for one aesthetic.
type ImageMapping struct {
	SearchTerms []string
}

// BlogMapping holds the blog-provider parameters for one aesthetic.
type BlogMapping struct {
	PrimaryTags   []string
	SecondaryTags []string
	Hashtags      []string
	BlogTypes     []string
}

// Mapping bundles the per-provider parameters of one aesthetic profile.
type Mapping struct {
	Music MusicMapping
	Film  FilmMapping
	Image ImageMapping
	Blog  BlogMapping
}

// Film genre IDs follow the TMDb numbering scheme.
const (
	genreAction    = 28
	genreAnimation = 16
	genreComedy    = 35
	genreCrime     = 80
	genreDrama     = 18
	genreFamily    = 10751
	genreFantasy   = 14
	genreHistory   = 36
	genreMystery   = 9648
	genreRomance   = 10749
	genreSciFi     = 878
	genreThriller  = 53
)

// mappings is keyed by aesthetic profile ID. Every catalog profile has an
// entry; projection quietly skips detections without one.
var mappings = map[string]Mapping{
	"girlblogger": {
		Music: MusicMapping{
			Genres:      []string{"indie-pop", "dream-pop", "bedroom-pop", "folk", "alternative", "indie-folk"},
			Moods:       []string{"melancholy", "dreamy", "romantic", "nostalgic", "introspective"},
			Artists:     []string{"lana del rey", "mitski", "phoebe bridgers", "clairo", "boygenius", "beach house"},
			SearchTerms: []string{"sad girl", "indie girl", "tumblr music", "soft grunge", "coquette playlist"},
			Features:    AudioFeatures{Energy: 0.4, Valence: 0.4, Danceability: 0.3, Acousticness: 0.6},
		},
		Film: FilmMapping{
			Genres:        []int{genreDrama, genreRomance, genreComedy},
			Keywords:      []string{"coming of age", "female protagonist", "indie film", "sofia coppola", "teenage"},
			YearRanges:    []YearRange{{Min: 1995, Max: 2024}},
			Countries:     []string{"US", "FR", "GB"},
			VoteThreshold: 6.0,
		},
		Image: ImageMapping{
			SearchTerms: []string{"indie aesthetic", "tumblr girl", "vintage camera", "coffee shop", "books aesthetic", "minimal room"},
		},
		Blog: BlogMapping{
			PrimaryTags:   []string{"girlblogger", "coquette", "dollette", "lana del rey", "soft grunge"},
			SecondaryTags: []string{"indie girl", "tumblr girl", "nymphet", "vintage", "melancholy"},
			Hashtags:      []string{"girlblogger aesthetic", "coquetteaesthetic", "lanadelreyaesthetic"},
			BlogTypes:     []string{"aesthetic", "vintage", "indie", "photography", "poetry"},
		},
	},
	"indie-sleaze": {
		Music: MusicMapping{
			Genres:      []string{"indie-rock", "garage-rock", "post-punk", "alternative-rock", "electroclash"},
			Moods:       []string{"rebellious", "edgy", "party", "underground", "raw"},
			Artists:     []string{"the strokes", "yeah yeah yeahs", "interpol", "lcd soundsystem", "arctic monkeys"},
			SearchTerms: []string{"indie sleaze", "garage rock revival", "2000s indie", "hipster music"},
			Features:    AudioFeatures{Energy: 0.7, Valence: 0.5, Danceability: 0.6, Acousticness: 0.2},
		},
		Film: FilmMapping{
			Genres:        []int{genreDrama, genreComedy, genreCrime},
			Keywords:      []string{"indie", "underground", "party", "music scene", "urban", "alternative"},
			YearRanges:    []YearRange{{Min: 2000, Max: 2015}},
			Countries:     []string{"US", "GB"},
			VoteThreshold: 6.5,
		},
		Image: ImageMapping{
			SearchTerms: []string{"party aesthetic", "flash photography", "concert", "urban nightlife", "vintage club", "neon lights"},
		},
		Blog: BlogMapping{
			PrimaryTags:   []string{"indie sleaze", "indiesleaze", "hipster", "party", "flash photography"},
			SecondaryTags: []string{"american apparel", "2000s", "cigarettes", "alternative", "underground"},
			Hashtags:      []string{"indiesleazeaesthetic", "hipsteraesthetic", "partyphotography"},
			BlogTypes:     []string{"party", "music", "photography", "alternative", "indie"},
		},
	},
	"y2k-revival": {
		Music: MusicMapping{
			Genres:      []string{"pop", "electronic", "dance-pop", "hyperpop", "breakbeat"},
			Moods:       []string{"energetic", "futuristic", "nostalgic", "optimistic", "cyber"},
			Artists:     []string{"britney spears", "dua lipa", "charli xcx", "100 gecs", "bladee"},
			SearchTerms: []string{"y2k", "cyber pop", "futuristic pop", "2000s revival", "tech pop"},
			Features:    AudioFeatures{Energy: 0.8, Valence: 0.7, Danceability: 0.8, Acousticness: 0.1},
		},
		Film: FilmMapping{
			Genres:        []int{genreSciFi, genreAction, genreThriller},
			Keywords:      []string{"technology", "cyber", "future", "digital", "matrix", "virtual reality"},
			YearRanges:    []YearRange{{Min: 1995, Max: 2005}, {Min: 2015, Max: 2024}},
			Countries:     []string{"US", "JP"},
			VoteThreshold: 6.0,
		},
		Image: ImageMapping{
			SearchTerms: []string{"2000s aesthetic", "retro technology", "holographic", "metallic", "cyber", "futuristic fashion"},
		},
		Blog: BlogMapping{
			PrimaryTags:   []string{"y2k", "cyber", "futuristic", "2000s", "tech aesthetic"},
			SecondaryTags: []string{"metallic", "holographic", "digital", "matrix", "chrome"},
			Hashtags:      []string{"y2kaesthetic", "cyberaesthetic", "futristicaesthetic"},
			BlogTypes:     []string{"tech", "aesthetic", "cyber", "futuristic", "digital art"},
		},
	},
	"dark-academia": {
		Music: MusicMapping{
			Genres:      []string{"classical", "indie-folk", "ambient", "post-rock"},
			Moods:       []string{"intellectual", "mysterious", "contemplative", "melancholic", "moody"},
			Artists:     []string{"max richter", "ludovico einaudi", "agnes obel", "hozier", "florence and the machine"},
			SearchTerms: []string{"dark academia", "study music", "classical instrumental", "moody chamber music"},
			Features:    AudioFeatures{Energy: 0.2, Valence: 0.3, Danceability: 0.3, Acousticness: 0.8},
		},
		Film: FilmMapping{
			Genres:        []int{genreDrama, genreMystery, genreThriller},
			Keywords:      []string{"university", "gothic", "literary adaptation", "secret society", "boarding school"},
			YearRanges:    []YearRange{{Min: 1980, Max: 2024}},
			Countries:     []string{"US", "GB", "IE"},
			VoteThreshold: 6.5,
		},
		Image: ImageMapping{
			SearchTerms: []string{"library", "vintage books", "candles", "classical architecture", "study aesthetic", "gothic"},
		},
		Blog: BlogMapping{
			PrimaryTags:   []string{"dark academia", "light academia", "academia aesthetic", "books", "library"},
			SecondaryTags: []string{"vintage", "gothic", "poetry", "study", "classic literature"},
			Hashtags:      []string{"darkacademiaaesthetic", "academiacore", "bookblr"},
			BlogTypes:     []string{"literature", "academia", "photography", "poetry", "vintage"},
		},
	},
	"cottagecore": {
		Music: MusicMapping{
			Genres:      []string{"folk", "indie-folk", "acoustic", "chamber-pop"},
			Moods:       []string{"peaceful", "wholesome", "cozy", "pastoral", "gentle"},
			Artists:     []string{"hozier", "the lumineers", "iron and wine", "fleet foxes", "taylor swift"},
			SearchTerms: []string{"cottagecore playlist", "folk acoustic", "pastoral folk", "cabin music"},
			Features:    AudioFeatures{Energy: 0.4, Valence: 0.8, Danceability: 0.3, Acousticness: 0.85},
		},
		Film: FilmMapping{
			Genres:        []int{genreDrama, genreRomance, genreFamily},
			Keywords:      []string{"pastoral", "countryside", "period drama", "village", "farm"},
			YearRanges:    []YearRange{{Min: 1990, Max: 2024}},
			Countries:     []string{"GB", "US", "FR"},
			VoteThreshold: 6.0,
		},
		Image: ImageMapping{
			SearchTerms: []string{"cottage", "flowers", "countryside", "vintage kitchen", "garden", "rustic"},
		},
		Blog: BlogMapping{
			PrimaryTags:   []string{"cottagecore", "cottage", "countryside", "gardening", "baking"},
			SecondaryTags: []string{"rural", "flowers", "mushrooms", "fairytale", "vintage cottage"},
			Hashtags:      []string{"cottagecoreaesthetic", "naturecore", "farmcore"},
			BlogTypes:     []string{"nature", "baking", "crafts", "photography", "vintage"},
		},
	},
	"coquette": {
		Music: MusicMapping{
			Genres:      []string{"chamber-pop", "dream-pop", "classical", "french"},
			Moods:       []string{"romantic", "delicate", "dreamy", "playful", "innocent"},
			Artists:     []string{"lana del rey", "melanie martinez", "kate bush", "lizzy mcalpine"},
			SearchTerms: []string{"coquette playlist", "balletcore", "soft romantic music", "french chanson"},
			Features:    AudioFeatures{Energy: 0.35, Valence: 0.6, Danceability: 0.4, Acousticness: 0.7},
		},
		Film: FilmMapping{
			Genres:        []int{genreRomance, genreDrama, genreComedy},
			Keywords:      []string{"romance", "ballet", "french new wave", "marie antoinette", "doll"},
			YearRanges:    []YearRange{{Min: 1995, Max: 2024}},
			Countries:     []string{"FR", "US"},
			VoteThreshold: 6.0,
		},
		Image: ImageMapping{
			SearchTerms: []string{"bows", "lace", "ballet", "pearls", "soft pink aesthetic", "vintage romance"},
		},
		Blog: BlogMapping{
			PrimaryTags:   []string{"coquette", "dollette", "balletcore", "bows", "lace"},
			SecondaryTags: []string{"feminine", "romantic", "pearls", "ribbons", "vintage lingerie"},
			Hashtags:      []string{"coquetteaesthetic", "dolletteaesthetic", "balletcoreaesthetic"},
			BlogTypes:     []string{"aesthetic", "fashion", "ballet", "vintage", "photography"},
		},
	},
	"coastal-grandmother": {
		Music: MusicMapping{
			Genres:      []string{"folk", "singer-songwriter", "soft-rock", "classical"},
			Moods:       []string{"relaxed", "calm", "mellow", "timeless", "warm"},
			Artists:     []string{"joni mitchell", "carole king", "james taylor", "norah jones"},
			SearchTerms: []string{"coastal grandmother playlist", "mellow folk", "sunday morning acoustic"},
			Features:    AudioFeatures{Energy: 0.3, Valence: 0.7, Danceability: 0.4, Acousticness: 0.75},
		},
		Film: FilmMapping{
			Genres:        []int{genreDrama, genreRomance, genreFamily},
			Keywords:      []string{"family drama", "seaside", "mature romance", "nancy meyers", "beach house"},
			YearRanges:    []YearRange{{Min: 1990, Max: 2020}},
			Countries:     []string{"US"},
			VoteThreshold: 6.0,
		},
		Image: ImageMapping{
			SearchTerms: []string{"coastal living", "linen", "natural light", "beach house", "organic", "minimalist home"},
		},
		Blog: BlogMapping{
			PrimaryTags:   []string{"coastal grandmother", "coastal", "linen", "neutral aesthetic", "hygge"},
			SecondaryTags: []string{"minimalist", "beach house", "slow living", "natural textures", "fresh flowers"},
			Hashtags:      []string{"coastalgrandmotheraesthetic", "slowliving", "linenaesthetic"},
			BlogTypes:     []string{"interior", "lifestyle", "photography", "minimalist", "food"},
		},
	},
	"clean-girl": {
		Music: MusicMapping{
			Genres:      []string{"r-n-b", "soul", "indie-pop", "minimal-techno"},
			Moods:       []string{"confident", "effortless", "fresh", "smooth", "minimal"},
			Artists:     []string{"sza", "snoh aalegra", "kali uchis", "daniel caesar"},
			SearchTerms: []string{"clean girl playlist", "that girl music", "morning routine r&b"},
			Features:    AudioFeatures{Energy: 0.5, Valence: 0.65, Danceability: 0.6, Acousticness: 0.3},
		},
		Film: FilmMapping{
			Genres:        []int{genreComedy, genreRomance, genreDrama},
			Keywords:      []string{"wellness", "fashion", "minimalism", "self improvement"},
			YearRanges:    []YearRange{{Min: 2010, Max: 2024}},
			Countries:     []string{"US"},
			VoteThreshold: 6.0,
		},
		Image: ImageMapping{
			SearchTerms: []string{"clean girl aesthetic", "skincare", "gold hoops", "iced coffee", "minimal beauty", "natural glow"},
		},
		Blog: BlogMapping{
			PrimaryTags:   []string{"clean girl", "that girl", "wellness", "minimal", "skincare"},
			SecondaryTags: []string{"self care", "glow", "routine", "neutral tones", "effortless"},
			Hashtags:      []string{"cleangirlaesthetic", "thatgirlaesthetic", "wellnessaesthetic"},
			BlogTypes:     []string{"beauty", "wellness", "lifestyle", "fitness", "minimalist"},
		},
	},
	"cyber-fairy": {
		Music: MusicMapping{
			Genres:      []string{"electronic", "hyperpop", "experimental", "ambient", "techno", "synthwave"},
			Moods:       []string{"ethereal", "futuristic", "mystical", "energetic", "otherworldly"},
			Artists:     []string{"grimes", "arca", "bjork", "fka twigs", "sophie", "iglooghost"},
			SearchTerms: []string{"cyber", "digital", "ethereal electronic", "hyperpop", "experimental"},
			Features:    AudioFeatures{Energy: 0.7, Valence: 0.6, Danceability: 0.5, Acousticness: 0.2},
		},
		Film: FilmMapping{
			Genres:        []int{genreSciFi, genreAction, genreFantasy},
			Keywords:      []string{"cyberpunk", "digital", "virtual reality", "technology", "futuristic", "artificial intelligence"},
			YearRanges:    []YearRange{{Min: 2010, Max: 2024}},
			Countries:     []string{"US", "JP", "KR"},
			VoteThreshold: 6.5,
		},
		Image: ImageMapping{
			SearchTerms: []string{"neon", "futuristic", "technology", "cyberpunk", "synthwave", "digital art"},
		},
		Blog: BlogMapping{
			PrimaryTags:   []string{"cyber fairy", "digital fairy", "cyberpunk", "holographic", "tech aesthetic"},
			SecondaryTags: []string{"ethereal", "futuristic", "neon", "digital art", "LED lights"},
			Hashtags:      []string{"cyberfairyaesthetic", "digitalfairy", "cyberpunkaesthetic"},
			BlogTypes:     []string{"digital art", "cyberpunk", "tech", "futuristic", "experimental"},
		},
	},
	"kidcore": {
		Music: MusicMapping{
			Genres:      []string{"hyperpop", "pop", "electronic", "indie-pop"},
			Moods:       []string{"playful", "joyful", "nostalgic", "sugary", "carefree"},
			Artists:     []string{"melanie martinez", "rico nasty", "clairo", "boy pablo", "100 gecs"},
			SearchTerms: []string{"kidcore playlist", "bubblegum pop", "hyperpop party", "y2k nostalgia"},
			Features:    AudioFeatures{Energy: 0.75, Valence: 0.85, Danceability: 0.7, Acousticness: 0.1},
		},
		Film: FilmMapping{
			Genres:        []int{genreAnimation, genreFamily, genreComedy},
			Keywords:      []string{"cartoon", "toys", "childhood", "nostalgia", "playground"},
			YearRanges:    []YearRange{{Min: 1990, Max: 2010}},
			Countries:     []string{"US", "JP"},
			VoteThreshold: 6.0,
		},
		Image: ImageMapping{
			SearchTerms: []string{"rainbow", "toys", "stickers", "candy colors", "playground", "retro cartoon"},
		},
		Blog: BlogMapping{
			PrimaryTags:   []string{"kidcore", "rainbowcore", "toys", "nostalgiacore", "90s kids"},
			SecondaryTags: []string{"colorful", "stickers", "cartoons", "candy", "playful"},
			Hashtags:      []string{"kidcoreaesthetic", "rainbowcore", "nostalgiacore"},
			BlogTypes:     []string{"aesthetic", "art", "nostalgia", "collecting", "photography"},
		},
	},
	"old-money": {
		Music: MusicMapping{
			Genres:      []string{"jazz", "classical", "folk", "swing"},
			Moods:       []string{"sophisticated", "refined", "timeless", "elegant", "understated"},
			Artists:     []string{"frank sinatra", "ella fitzgerald", "chet baker", "billie holiday"},
			SearchTerms: []string{"old money playlist", "quiet luxury jazz", "classic standards"},
			Features:    AudioFeatures{Energy: 0.3, Valence: 0.6, Danceability: 0.4, Acousticness: 0.7},
		},
		Film: FilmMapping{
			Genres:        []int{genreDrama, genreHistory, genreRomance},
			Keywords:      []string{"aristocracy", "inheritance", "ivy league", "country club", "period drama"},
			YearRanges:    []YearRange{{Min: 1980, Max: 2024}},
			Countries:     []string{"US", "GB", "IT"},
			VoteThreshold: 6.5,
		},
		Image: ImageMapping{
			SearchTerms: []string{"old money aesthetic", "equestrian", "sailing", "country club", "tailoring", "heritage"},
		},
		Blog: BlogMapping{
			PrimaryTags:   []string{"old money", "quiet luxury", "preppy", "ivy league", "heritage"},
			SecondaryTags: []string{"timeless", "equestrian", "sailing", "tailoring", "pearls"},
			Hashtags:      []string{"oldmoneyaesthetic", "quietluxury", "preppyaesthetic"},
			BlogTypes:     []string{"fashion", "luxury", "photography", "lifestyle", "vintage"},
		},
	},
}

// MappingFor returns the provider mapping for an aesthetic profile ID.
func MappingFor(profileID string) (Mapping, bool) {
	m, ok := mappings[profileID]
	return m, ok
}
