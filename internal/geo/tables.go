package geo

// Rule tables for Arabic text handling and the Amman/Oman disambiguation.
// Kept as plain data so the normalizer and filter stay pure functions over
// them and each table can be tested on its own.

// arabicDiacriticRanges covers the tashkeel marks (fatha through sukun),
// the superscript alef, and the tatweel stretch character.
var arabicDiacriticRanges = [][2]rune{
	{0x064B, 0x0652}, // fathatan .. sukun
	{0x0670, 0x0670}, // superscript alef
	{0x0640, 0x0640}, // tatweel
}

func isArabicDiacritic(r rune) bool {
	for _, rng := range arabicDiacriticRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}

// arabicLetterForms collapses hamza-bearing and positional letter variants to
// a single representative so spelling variants of the same name compare equal.
var arabicLetterForms = map[rune]rune{
	'أ': 'ا',
	'إ': 'ا',
	'آ': 'ا',
	'ٱ': 'ا',
	'ؤ': 'و',
	'ئ': 'ي',
	'ى': 'ي',
	'ة': 'ه',
}

// arabicFillers are short prepositions users prefix or suffix to a city name
// ("in", "from", "to", "on", "about"). Stored in normalized form.
var arabicFillers = map[string]struct{}{
	"في":  {},
	"من":  {},
	"الي": {},
	"علي": {},
	"عن":  {},
	"ب":   {},
}

// Undiacritized Arabic writes Amman (the Jordanian capital) and Oman (the
// country) identically, so lookups for the city need a guard that pins the
// result to Jordan. All entries below are in normalized form.

// ammanSpellings are the spellings of Amman that trigger the guarded lookup.
var ammanSpellings = []string{
	"عمان",
	"amman",
}

// omanPhrases are explicit country-level references to Oman; their presence
// means the user wants the country, and the guard must stay out of the way.
// "سلطنه عمان" is the normalized form of سلطنة عمان, "Sultanate of Oman".
var omanPhrases = []string{
	"سلطنه عمان",
	"sultanate of oman",
}

// omanTokens are standalone words naming Oman. Matched on word boundaries so
// that "amman" does not trip them.
var omanTokens = []string{
	"oman",
}

// jordanNames identify Jordan across the forms the geocoding service returns.
var jordanNames = []string{
	"jordan",
	"الاردن",
	"اردن",
}

const jordanISO = "JO"

// Population gates for the guarded Amman lookup and the general ranking rule.
const (
	guardPopulationHigh  = 100_000
	guardPopulationLow   = 50_000
	generalPopulationMin = 10_000
)
