package station

// genreImages is the static genre-to-artwork table used when a
// discovered station gets its picture. Paths are relative to the
// application's asset directory.
var genreImages = map[string]string{
	"rock":             "images/stations/rock.jpg",
	"pop":              "images/stations/pop.jpg",
	"jazz":             "images/stations/jazz.jpg",
	"blues":            "images/stations/blues.jpg",
	"classical":        "images/stations/classical.jpg",
	"electronic":       "images/stations/electronic.jpg",
	"house":            "images/stations/house.jpg",
	"techno":           "images/stations/techno.jpg",
	"hip hop":          "images/stations/hiphop.jpg",
	"rap":              "images/stations/rap.jpg",
	"r&b":              "images/stations/rnb.jpg",
	"soul":             "images/stations/soul.jpg",
	"funk":             "images/stations/funk.jpg",
	"country":          "images/stations/country.jpg",
	"folk":             "images/stations/folk.jpg",
	"metal":            "images/stations/metal.jpg",
	"punk":             "images/stations/punk.jpg",
	"reggae":           "images/stations/reggae.jpg",
	"latin":            "images/stations/latin.jpg",
	"ambient":          "images/stations/ambient.jpg",
	"disco":            "images/stations/disco.jpg",
	"indie rock":       "images/stations/indie.jpg",
	"alternative rock": "images/stations/alternative.jpg",
}
