package catalog

// Demo returns the built-in demo catalog. It is used by the default config
// and by the CLI when no catalog file is supplied.
func Demo() *Catalog {
	cat, err := New(demoCreators)
	if err != nil {
		// The seed data is compile-time constant; a failure here is a bug.
		panic(err)
	}
	return cat
}

var demoCreators = []Creator{
	{
		ID:                "c1",
		Name:              "Maya Lin",
		Handle:            "@mayamakes",
		ShortBio:          "DIY electronics and studio builds.",
		LongBio:           "Maya documents end-to-end hardware builds, from breadboard to enclosure. Weekly long-form videos plus daily shorts.",
		ImageURL:          "https://img.pulse.dev/creators/mayamakes.jpg",
		InitialTokenPrice: 10.00,
		TokenSupply:       100_000,
		SocialLinks:       map[string]string{"tiktok": "https://tiktok.com/@mayamakes", "youtube": "https://youtube.com/@mayamakes"},
		Tags:              []string{"tech", "diy"},
		Region:            "NA",
	},
	{
		ID:                "c2",
		Name:              "Jonas Park",
		Handle:            "@jonaseats",
		ShortBio:          "Street food tours, one city a week.",
		LongBio:           "Jonas films unscripted food walks with local guides. Known for the 'five dollar dinner' series.",
		ImageURL:          "https://img.pulse.dev/creators/jonaseats.jpg",
		InitialTokenPrice: 4.50,
		TokenSupply:       250_000,
		SocialLinks:       map[string]string{"tiktok": "https://tiktok.com/@jonaseats"},
		Tags:              []string{"food", "travel"},
		Region:            "APAC",
	},
	{
		ID:                "c3",
		Name:              "Amara Diallo",
		Handle:            "@amarafit",
		ShortBio:          "No-equipment training programs.",
		LongBio:           "Former track athlete. Publishes a free 30-day program every quarter and daily form-check clips.",
		ImageURL:          "https://img.pulse.dev/creators/amarafit.jpg",
		InitialTokenPrice: 7.25,
		TokenSupply:       150_000,
		SocialLinks:       map[string]string{"instagram": "https://instagram.com/amarafit"},
		Tags:              []string{"fitness"},
		Region:            "EMEA",
	},
	{
		ID:                "c4",
		Name:              "Theo Brandt",
		Handle:            "@theoplays",
		ShortBio:          "Speedruns and game design breakdowns.",
		LongBio:           "Theo alternates world-record attempts with slow-paced design essays. Streams three nights a week.",
		ImageURL:          "https://img.pulse.dev/creators/theoplays.jpg",
		InitialTokenPrice: 12.80,
		TokenSupply:       80_000,
		SocialLinks:       map[string]string{"twitch": "https://twitch.tv/theoplays", "youtube": "https://youtube.com/@theoplays"},
		Tags:              []string{"gaming"},
		Region:            "EMEA",
	},
	{
		ID:                "c5",
		Name:              "Lucia Ferreira",
		Handle:            "@luciasings",
		ShortBio:          "Bossa nova covers and originals.",
		LongBio:           "Lucia records one-take sessions from her balcony in Lisbon. First EP funded entirely by her backers.",
		ImageURL:          "https://img.pulse.dev/creators/luciasings.jpg",
		InitialTokenPrice: 3.10,
		TokenSupply:       300_000,
		SocialLinks:       map[string]string{"tiktok": "https://tiktok.com/@luciasings", "spotify": "https://open.spotify.com/artist/luciasings"},
		Tags:              []string{"music"},
		Region:            "EMEA",
	},
}
