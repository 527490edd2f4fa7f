package genre

// relation is one curated (genreX, genreY, score) row. Values are in
// canonical (normalized) form; lookup is symmetric.
type relation struct {
	a, b  string
	score float64
}

// curatedRelations covers the common genre-family relationships. The
// table is a fixed asset; scores sit in [0.4, 0.9].
var curatedRelations = []relation{
	// Pop family
	{"pop", "dance", 0.8},
	{"pop", "dance pop", 0.9},
	{"pop", "synth pop", 0.8},
	{"pop", "electropop", 0.8},
	{"pop", "pop rock", 0.8},
	{"pop", "indie pop", 0.8},
	{"pop", "k pop", 0.7},
	{"pop", "j pop", 0.7},
	{"pop", "teen pop", 0.9},
	{"pop", "disco", 0.6},
	{"pop", "r&b", 0.6},
	{"pop", "soul", 0.5},
	{"pop", "rock", 0.5},
	{"pop", "electronic", 0.5},
	{"dance pop", "dance", 0.9},
	{"dance pop", "electropop", 0.8},
	{"synth pop", "electropop", 0.9},
	{"synth pop", "new wave", 0.8},
	{"indie pop", "indie rock", 0.7},
	{"k pop", "j pop", 0.6},

	// Rock family
	{"rock", "hard rock", 0.9},
	{"rock", "classic rock", 0.9},
	{"rock", "alternative rock", 0.8},
	{"rock", "indie rock", 0.8},
	{"rock", "punk", 0.7},
	{"rock", "punk rock", 0.7},
	{"rock", "metal", 0.6},
	{"rock", "grunge", 0.7},
	{"rock", "pop rock", 0.8},
	{"rock", "progressive rock", 0.8},
	{"rock", "psychedelic rock", 0.7},
	{"rock", "rock and roll", 0.9},
	{"rock", "garage rock", 0.8},
	{"rock", "blues rock", 0.8},
	{"rock", "folk rock", 0.7},
	{"rock", "southern rock", 0.7},
	{"hard rock", "metal", 0.8},
	{"hard rock", "classic rock", 0.8},
	{"hard rock", "grunge", 0.6},
	{"alternative rock", "indie rock", 0.9},
	{"alternative rock", "grunge", 0.8},
	{"alternative rock", "punk rock", 0.6},
	{"punk", "punk rock", 0.9},
	{"punk", "hardcore", 0.7},
	{"punk", "ska", 0.6},
	{"grunge", "indie rock", 0.6},
	{"progressive rock", "psychedelic rock", 0.7},
	{"classic rock", "rock and roll", 0.8},
	{"classic rock", "blues rock", 0.7},
	{"rockabilly", "rock and roll", 0.8},
	{"rockabilly", "country", 0.6},

	// Metal family
	{"metal", "heavy metal", 0.9},
	{"metal", "death metal", 0.8},
	{"metal", "black metal", 0.8},
	{"metal", "thrash metal", 0.8},
	{"metal", "doom metal", 0.7},
	{"metal", "metalcore", 0.7},
	{"metal", "nu metal", 0.7},
	{"heavy metal", "thrash metal", 0.8},
	{"death metal", "black metal", 0.7},
	{"metalcore", "hardcore", 0.7},
	{"nu metal", "hard rock", 0.6},

	// Electronic family
	{"electronic", "house", 0.8},
	{"electronic", "techno", 0.8},
	{"electronic", "trance", 0.8},
	{"electronic", "dubstep", 0.7},
	{"electronic", "drum and bass", 0.7},
	{"electronic", "ambient", 0.6},
	{"electronic", "idm", 0.7},
	{"electronic", "synthwave", 0.7},
	{"electronic", "dance", 0.8},
	{"electronic", "electro", 0.9},
	{"electronic", "downtempo", 0.7},
	{"electronic", "trip hop", 0.6},
	{"house", "techno", 0.8},
	{"house", "deep house", 0.9},
	{"house", "dance", 0.8},
	{"house", "disco", 0.6},
	{"techno", "trance", 0.7},
	{"techno", "minimal", 0.7},
	{"dubstep", "drum and bass", 0.7},
	{"ambient", "downtempo", 0.7},
	{"ambient", "chillout", 0.8},
	{"ambient", "new age", 0.6},
	{"chillout", "lo fi", 0.7},
	{"trip hop", "downtempo", 0.8},
	{"dance", "disco", 0.7},

	// Hip-hop family
	{"hip hop", "rap", 0.9},
	{"hip hop", "trap", 0.8},
	{"hip hop", "r&b", 0.6},
	{"hip hop", "grime", 0.7},
	{"hip hop", "trip hop", 0.5},
	{"rap", "trap", 0.8},
	{"rap", "grime", 0.7},
	{"trap", "dubstep", 0.5},

	// Soul / R&B / funk family
	{"r&b", "soul", 0.9},
	{"r&b", "funk", 0.7},
	{"r&b", "neo soul", 0.8},
	{"soul", "funk", 0.8},
	{"soul", "motown", 0.9},
	{"soul", "gospel", 0.7},
	{"soul", "neo soul", 0.9},
	{"funk", "disco", 0.7},
	{"gospel", "blues", 0.5},

	// Jazz family
	{"jazz", "blues", 0.7},
	{"jazz", "swing", 0.8},
	{"jazz", "bebop", 0.8},
	{"jazz", "fusion", 0.8},
	{"jazz", "smooth jazz", 0.9},
	{"jazz", "big band", 0.8},
	{"jazz", "bossa nova", 0.6},
	{"jazz", "soul", 0.5},
	{"jazz", "funk", 0.5},
	{"swing", "big band", 0.9},
	{"bossa nova", "latin", 0.7},

	// Blues family
	{"blues", "blues rock", 0.8},
	{"blues", "soul", 0.6},
	{"blues", "rock and roll", 0.6},
	{"blues", "country", 0.5},
	{"blues", "folk", 0.5},

	// Country / folk family
	{"country", "folk", 0.7},
	{"country", "bluegrass", 0.8},
	{"country", "americana", 0.8},
	{"country", "southern rock", 0.6},
	{"folk", "americana", 0.8},
	{"folk", "folk rock", 0.8},
	{"folk", "singer songwriter", 0.8},
	{"folk", "acoustic", 0.7},
	{"bluegrass", "americana", 0.7},
	{"singer songwriter", "acoustic", 0.7},

	// Classical family
	{"classical", "baroque", 0.8},
	{"classical", "romantic", 0.8},
	{"classical", "opera", 0.7},
	{"classical", "chamber music", 0.8},
	{"classical", "symphony", 0.9},
	{"classical", "piano", 0.6},
	{"classical", "score", 0.6},
	{"score", "orchestral", 0.8},
	{"classical", "orchestral", 0.8},

	// Reggae / latin / world
	{"reggae", "ska", 0.8},
	{"reggae", "dub", 0.8},
	{"reggae", "dancehall", 0.8},
	{"latin", "salsa", 0.8},
	{"latin", "reggaeton", 0.7},
	{"reggaeton", "dancehall", 0.6},
	{"world", "latin", 0.5},
	{"world", "afrobeat", 0.6},
	{"afrobeat", "funk", 0.6},

	// Misc bridges
	{"new wave", "post punk", 0.8},
	{"post punk", "punk", 0.7},
	{"emo", "pop punk", 0.8},
	{"pop punk", "punk rock", 0.8},
	{"shoegaze", "dream pop", 0.8},
	{"dream pop", "indie pop", 0.7},
	{"lo fi", "indie rock", 0.5},
	{"synthwave", "synth pop", 0.7},
	{"industrial", "electronic", 0.6},
	{"industrial", "metal", 0.5},
}

// relations is the symmetric lookup table built from curatedRelations.
var relations = func() map[string]float64 {
	m := make(map[string]float64, len(curatedRelations))
	for _, r := range curatedRelations {
		m[pairKey(r.a, r.b)] = r.score
	}
	return m
}()
