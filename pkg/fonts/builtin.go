package fonts

// DefaultStyle is the style every catalog must contain and the one used
// when a requested style is unknown.
const DefaultStyle = "standard"

// DefaultListCount is how many entries --list-fonts shows without a value.
const DefaultListCount = 20

// PreviewSubset is the fixed set of representative styles used by preview.
var PreviewSubset = []string{"standard", "block", "slant", "banner", "doom"}

// builtinNames is the built-in catalog. go-figure bundles every font here
// except fraktur and smiscript1, which render only once a matching .flf is
// placed in the fonts directory. "standard" appears twice: once up front as
// the default and once in its sorted slot.
var builtinNames = []string{
	"standard", "3-d", "3x5", "5lineoblique", "acrobatic",
	"alligator", "alligator2", "alphabet", "avatar", "banner",
	"banner3-D", "banner3", "banner4", "barbwire", "basic",
	"bell", "big", "bigchief", "binary", "block",
	"bubble", "bulbhead", "calgphy2", "caligraphy", "catwalk",
	"chunky", "coinstak", "colossal", "computer", "contessa",
	"contrast", "cosmic", "cosmike", "cricket", "cursive",
	"cyberlarge", "cybermedium", "cybersmall", "diamond",
	"digital", "doh", "doom", "dotmatrix", "drpepper",
	"eftichess", "eftifont", "eftipiti", "eftirobot",
	"eftitalic", "eftiwall", "eftiwater", "epic", "fender",
	"fourtops", "fraktur", "fuzzy", "goofy", "gothic",
	"graffiti", "hollywood", "invita", "isometric1",
	"isometric2", "isometric3", "isometric4", "italic",
	"ivrit", "jazmine", "jerusalem", "katakana", "kban",
	"larry3d", "lcd", "lean", "letters", "linux", "lockergnome",
	"madrid", "marquee", "maxfour", "mike", "mini", "mirror",
	"mnemonic", "morse", "moscow", "nancyj-fancy", "nancyj-underlined",
	"nancyj", "nipples", "ntgreek", "o8", "ogre", "pawp",
	"peaks", "pebbles", "pepper", "poison", "puffy", "pyramid",
	"rectangles", "relief", "relief2", "rev", "roman", "rot13",
	"rounded", "rowancap", "rozzo", "runic", "runyc", "sblood",
	"script", "serifcap", "shadow", "short", "slant", "slide",
	"small", "smiscript1", "smkeyboard", "smscript", "smshadow",
	"smslant", "smtengwar", "speed", "stampatello", "standard",
	"starwars", "stellar", "stop", "straight", "tanja", "tengwar",
	"term", "thick", "thin", "threepoint", "ticks", "ticksslant",
	"tinker-toy", "tombstone", "trek", "tsalagi", "twopoint",
	"univers", "usaflag", "weird",
}

// Builtin returns the catalog of fonts bundled with the renderer.
func Builtin() *Catalog {
	c, err := NewCatalog(builtinNames, DefaultStyle)
	if err != nil {
		// builtinNames always contains DefaultStyle
		panic(err)
	}
	return c
}
