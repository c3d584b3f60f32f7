package media

// Static substitute catalog served when the upstream is unreachable or
// exhausted, so primary browsing surfaces never show a hard failure. The
// records are pre-normalized and bundled with the binary; no I/O happens at
// runtime.

// Fallback returns a fresh copy of the bundled dataset so callers can
// never mutate the originals.
func Fallback() []Media {
	out := make([]Media, len(fallbackCatalog))
	copy(out, fallbackCatalog)
	return out
}

func ip(v int) *int { return &v }

func fp(v float64) *float64 { return &v }

var fallbackCatalog = []Media{
	{
		ID:            "1",
		Title:         "Attack on Titan",
		TitleEnglish:  "Attack on Titan",
		TitleJapanese: "進撃の巨人",
		Description:   "Humanity fights for survival against giant humanoid Titans that have breached their last safe haven.",
		Synopsis:      "Centuries ago, mankind was slaughtered to near extinction by monstrous humanoid creatures called Titans, forcing humans to hide in fear behind enormous concentric walls. To ensure their survival, the remnants of humanity began living within defensive barriers, resulting in one hundred years without a single titan encounter. However, that fragile calm is soon shattered when a colossal Titan manages to breach the supposedly impregnable outer wall, reigniting the fight for survival.",
		Type:          TypeAnime,
		Status:        StatusCompleted,
		Genres:        []Genre{GenreAction, GenreDrama, GenreFantasy, GenreHorror},
		ReleaseYear:   2013,
		EndYear:       ip(2023),
		Episodes:      ip(87),
		Seasons:       ip(4),
		Duration:      ip(24),
		Rating:        9.0,
		Popularity:    1,
		CoverImage:    "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=600&fit=crop&crop=faces",
		BannerImage:   "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=1200&h=400&fit=crop",
		Trailer:       "MGRm4IzK1SQ",
		Studio:        "Studio Pierrot",
		Source:        "Manga",
		Platforms:     []string{"Crunchyroll", "Funimation", "Hulu", "Netflix"},
		Tags:          []string{"Military", "Post-Apocalyptic", "Survival", "Tragedy"},
		AgeRating:     "TV-MA",
		MALScore:      fp(9.0),
	},
	{
		ID:            "2",
		Title:         "One Piece",
		TitleEnglish:  "One Piece",
		TitleJapanese: "ワンピース",
		Description:   "Follow Monkey D. Luffy and his pirate crew in search of the ultimate treasure known as One Piece.",
		Synopsis:      "Gol D. Roger was known as the \"Pirate King,\" the strongest and most infamous being to have sailed the Grand Line. His last words before his death revealed the existence of the greatest treasure in the world, One Piece. It was this revelation that brought about the Grand Age of Pirates, men who dreamed of finding One Piece and with it the title of the Pirate King.",
		Type:          TypeAnime,
		Status:        StatusAiring,
		Genres:        []Genre{GenreAction, GenreAdventure, GenreComedy, GenreDrama},
		ReleaseYear:   1999,
		Episodes:      ip(1000),
		Seasons:       ip(21),
		Duration:      ip(24),
		Rating:        9.2,
		Popularity:    2,
		CoverImage:    "https://images.unsplash.com/photo-1607604276583-eef5d076aa5f?w=400&h=600&fit=crop&crop=faces",
		BannerImage:   "https://images.unsplash.com/photo-1607604276583-eef5d076aa5f?w=1200&h=400&fit=crop",
		Trailer:       "Ades3pQbeh8",
		Studio:        "Toei Animation",
		Source:        "Manga",
		Platforms:     []string{"Crunchyroll", "Funimation", "Netflix"},
		Tags:          []string{"Pirates", "Friendship", "Adventure", "Shounen"},
		AgeRating:     "TV-14",
		MALScore:      fp(9.2),
	},
	{
		ID:            "3",
		Title:         "Demon Slayer",
		TitleEnglish:  "Demon Slayer: Kimetsu no Yaiba",
		TitleJapanese: "鬼滅の刃",
		Description:   "A young boy becomes a demon slayer to avenge his family and cure his sister.",
		Synopsis:      "Ever since the death of his father, the burden of supporting the family has fallen upon Tanjirou Kamado's shoulders. One day, Tanjirou decides to go down to the local village to make a little money selling charcoal. On his way back, night falls, forcing Tanjirou to take shelter in the house of a strange man, who warns him of the existence of flesh-eating demons that lurk in the woods at night.",
		Type:          TypeAnime,
		Status:        StatusAiring,
		Genres:        []Genre{GenreAction, GenreSupernatural, GenreHistorical},
		ReleaseYear:   2019,
		Episodes:      ip(44),
		Seasons:       ip(3),
		Duration:      ip(24),
		Rating:        8.7,
		Popularity:    3,
		CoverImage:    "https://images.unsplash.com/photo-1606041008023-472dfb5e530f?w=400&h=600&fit=crop&crop=faces",
		BannerImage:   "https://images.unsplash.com/photo-1606041008023-472dfb5e530f?w=1200&h=400&fit=crop",
		Trailer:       "VQGCKyvzIM4",
		Studio:        "Ufotable",
		Source:        "Manga",
		Platforms:     []string{"Crunchyroll", "Funimation", "Netflix", "Hulu"},
		Tags:          []string{"Demons", "Family", "Sword Fighting", "Shounen"},
		AgeRating:     "TV-14",
		MALScore:      fp(8.7),
	},
	{
		ID:            "4",
		Title:         "My Hero Academia",
		TitleEnglish:  "My Hero Academia",
		TitleJapanese: "僕のヒーローアカデミア",
		Description:   "In a world where most people have superpowers, a powerless boy enrolls in a hero academy.",
		Synopsis:      "The appearance of \"quirks,\" newly discovered super powers, has been steadily increasing over the years, with 80 percent of humanity possessing various abilities. This leaves the remainder of the world completely powerless, and Izuku Midoriya is one such individual. Since he was a child, the ambitious middle schooler has wanted nothing more than to be a hero.",
		Type:          TypeAnime,
		Status:        StatusAiring,
		Genres:        []Genre{GenreAction, GenreAdventure, GenreSchool, GenreSupernatural},
		ReleaseYear:   2016,
		Episodes:      ip(138),
		Seasons:       ip(6),
		Duration:      ip(24),
		Rating:        8.5,
		Popularity:    4,
		CoverImage:    "https://images.unsplash.com/photo-1612198188060-c7c2a3b66eae?w=400&h=600&fit=crop&crop=faces",
		BannerImage:   "https://images.unsplash.com/photo-1612198188060-c7c2a3b66eae?w=1200&h=400&fit=crop",
		Trailer:       "D5fYOnwYkj4",
		Studio:        "Studio Bones",
		Source:        "Manga",
		Platforms:     []string{"Crunchyroll", "Funimation", "Hulu"},
		Tags:          []string{"Heroes", "School", "Superpowers", "Shounen"},
		AgeRating:     "TV-14",
		MALScore:      fp(8.5),
	},
	{
		ID:            "5",
		Title:         "Jujutsu Kaisen",
		TitleEnglish:  "Jujutsu Kaisen",
		TitleJapanese: "呪術廻戦",
		Description:   "A student joins a secret organization of sorcerers to eliminate cursed spirits.",
		Synopsis:      "Although Yuji Itadori looks like your average teenager, his immense physical strength is something to behold. Every sports club wants him to join, but Itadori would rather hang out with the school outcasts in the Occult Research Club. One day, the club manages to get their hands on a sealed cursed object, and little do they know the terror they'll unleash when they break the seal.",
		Type:          TypeAnime,
		Status:        StatusAiring,
		Genres:        []Genre{GenreAction, GenreSupernatural, GenreSchool},
		ReleaseYear:   2020,
		Episodes:      ip(24),
		Seasons:       ip(2),
		Duration:      ip(24),
		Rating:        8.8,
		Popularity:    5,
		CoverImage:    "https://images.unsplash.com/photo-1618336753974-aae8e04506aa?w=400&h=600&fit=crop&crop=faces",
		BannerImage:   "https://images.unsplash.com/photo-1618336753974-aae8e04506aa?w=1200&h=400&fit=crop",
		Trailer:       "4A_X-Dvl0ws",
		Studio:        "MAPPA",
		Source:        "Manga",
		Platforms:     []string{"Crunchyroll", "Funimation"},
		Tags:          []string{"Curses", "School", "Dark Fantasy", "Shounen"},
		AgeRating:     "TV-14",
		MALScore:      fp(8.8),
	},
	{
		ID:          "6",
		Title:       "One Punch Man",
		Description: "A superhero who can defeat any enemy with a single punch searches for a worthy opponent.",
		Synopsis:    "Saitama has a rather peculiar hobby: being a hero. After three years of special training he became so strong that every opponent falls to a single punch, and with that strength came an overwhelming boredom he cannot shake.",
		Type:        TypeAnime,
		Status:      StatusAiring,
		Genres:      []Genre{GenreAction, GenreComedy, GenreSupernatural},
		ReleaseYear: 2015,
		Episodes:    ip(24),
		Duration:    ip(24),
		Rating:      8.9,
		Popularity:  6,
		CoverImage:  "https://images.unsplash.com/photo-1611207543305-a79ad7c94229?w=400&h=600&fit=crop&crop=faces",
		BannerImage: "https://images.unsplash.com/photo-1611207543305-a79ad7c94229?w=1200&h=400&fit=crop",
		Studio:      "Madhouse",
		Source:      "Manga",
		Platforms:   []string{"Crunchyroll", "Netflix"},
		Tags:        []string{"Parody", "Super Power", "Seinen"},
		AgeRating:   "TV-14",
		MALScore:    fp(8.9),
	},
	{
		ID:          "7",
		Title:       "Death Note",
		Description: "A high school student finds a supernatural notebook that grants the power to kill.",
		Synopsis:    "A shinigami, as a god of death, can kill any person provided they see their victim's face and write their name in a notebook called a Death Note. One day, Ryuk, bored by the shinigami lifestyle, drops his Death Note into the human realm, where the brilliant student Light Yagami picks it up.",
		Type:        TypeAnime,
		Status:      StatusCompleted,
		Genres:      []Genre{GenrePsychological, GenreSupernatural, GenreThriller},
		ReleaseYear: 2006,
		Episodes:    ip(37),
		Duration:    ip(23),
		Rating:      9.0,
		Popularity:  7,
		CoverImage:  "https://images.unsplash.com/photo-1574375927938-d5a98e8ffe85?w=400&h=600&fit=crop&crop=faces",
		BannerImage: "https://images.unsplash.com/photo-1574375927938-d5a98e8ffe85?w=1200&h=400&fit=crop",
		Studio:      "Madhouse",
		Source:      "Manga",
		Platforms:   []string{"Netflix", "Hulu"},
		Tags:        []string{"Detective", "Psychological", "Shounen"},
		AgeRating:   "TV-14",
		MALScore:    fp(9.0),
	},
	{
		ID:          "8",
		Title:       "Naruto",
		Description: "A young ninja seeks recognition from his peers and dreams of becoming the village leader.",
		Synopsis:    "Moments prior to Naruto Uzumaki's birth, a huge demon known as the Nine-Tailed Fox attacked the Hidden Leaf Village. To put an end to the rampage, the village leader sealed the beast inside the newborn Naruto, dooming him to a childhood of scorn he is determined to overcome.",
		Type:        TypeAnime,
		Status:      StatusCompleted,
		Genres:      []Genre{GenreAction, GenreAdventure, GenreDrama},
		ReleaseYear: 2002,
		Episodes:    ip(720),
		Duration:    ip(23),
		Rating:      8.4,
		Popularity:  8,
		CoverImage:  "https://images.unsplash.com/photo-1612198188060-c7c2a3b66eae?w=400&h=600&fit=crop&crop=top",
		BannerImage: "https://images.unsplash.com/photo-1612198188060-c7c2a3b66eae?w=1200&h=400&fit=crop",
		Studio:      "Studio Pierrot",
		Source:      "Manga",
		Platforms:   []string{"Crunchyroll", "Hulu"},
		Tags:        []string{"Ninja", "Friendship", "Shounen"},
		AgeRating:   "TV-PG",
		MALScore:    fp(8.4),
	},
	{
		ID:          "9",
		Title:       "Tokyo Ghoul",
		Description: "A college student becomes half-ghoul after a chance encounter with one of these flesh-eating creatures.",
		Synopsis:    "Ken Kaneki, a bookish college student, barely survives a deadly encounter with a ghoul, a being that survives by consuming human flesh. Taken in by the ghouls of the Anteiku coffee shop, he must learn to live on both sides of a world he never knew existed.",
		Type:        TypeManga,
		Status:      StatusCompleted,
		Genres:      []Genre{GenreAction, GenreHorror, GenreSupernatural},
		ReleaseYear: 2011,
		Chapters:    ip(143),
		Rating:      8.6,
		Popularity:  9,
		CoverImage:  "https://images.unsplash.com/photo-1586953208448-b95a79798f07?w=400&h=600&fit=crop&crop=faces",
		BannerImage: "https://images.unsplash.com/photo-1586953208448-b95a79798f07?w=1200&h=400&fit=crop",
		Author:      "Sui Ishida",
		Platforms:   []string{"MyAnimeList", "Viz Media"},
		Tags:        []string{"Ghouls", "Tragedy", "Seinen"},
		AgeRating:   "Not Rated",
		MALScore:    fp(8.6),
	},
	{
		ID:          "10",
		Title:       "Chainsaw Man",
		Description: "A young man fuses with his pet devil to become a chainsaw-wielding hero.",
		Synopsis:    "Denji has a simple dream: to live a happy and peaceful life with the girl he likes. Crushed by debt and betrayed, he merges with his devil companion Pochita and is reborn as Chainsaw Man, a devil hunter with an engine for a heart.",
		Type:        TypeManga,
		Status:      StatusAiring,
		Genres:      []Genre{GenreAction, GenreHorror, GenreSupernatural},
		ReleaseYear: 2018,
		Chapters:    ip(97),
		Rating:      8.8,
		Popularity:  10,
		CoverImage:  "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=600&fit=crop&crop=center",
		BannerImage: "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=1200&h=400&fit=crop",
		Author:      "Tatsuki Fujimoto",
		Platforms:   []string{"MyAnimeList", "MangaPlus"},
		Tags:        []string{"Devils", "Dark Fantasy", "Shounen"},
		AgeRating:   "Not Rated",
		MALScore:    fp(8.8),
	},
}
