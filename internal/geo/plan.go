package geo

import "strings"

// Language hints passed to the geocoding service.
const (
	LangArabic  = "ar"
	LangDefault = "en"
)

// commaSeparators accepts both the ASCII comma and the Arabic comma, so a
// "city, country" suffix is recognized in either script.
const commaSeparators = ",،"

// Plan derives the ordered fallback ladder of geocoding attempts for raw
// input. Earlier candidates are the most faithful to what the user typed;
// later ones are progressively more permissive rewrites. The same
// (query, language) pair is never emitted twice.
func Plan(raw string) []CandidateQuery {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	city := strings.TrimSpace(firstSegment(raw))
	if city == "" {
		city = raw
	}

	var out []CandidateQuery
	seen := make(map[CandidateQuery]struct{})
	add := func(query, lang string) {
		q := CandidateQuery{Query: query, Lang: lang}
		if _, dup := seen[q]; dup || query == "" {
			return
		}
		seen[q] = struct{}{}
		out = append(out, q)
	}

	if ContainsArabic(city) {
		normalized := Normalize(city)
		add(city, LangArabic)
		if normalized != city {
			add(normalized, LangArabic)
		}
		add(city, LangDefault)
		if normalized != city {
			add(normalized, LangDefault)
		}
		if cleaned := stripFillers(city); cleaned != city {
			add(cleaned, LangArabic)
			add(cleaned, LangDefault)
		}
	} else {
		normalized := Normalize(city)
		add(city, LangDefault)
		if normalized != city {
			add(normalized, LangDefault)
		}
	}

	// Last resort: the untouched input including any "city, country" suffix.
	if raw != city {
		add(raw, LangDefault)
	}

	return out
}

func firstSegment(s string) string {
	if idx := strings.IndexAny(s, commaSeparators); idx >= 0 {
		return s[:idx]
	}
	return s
}

// stripFillers drops short Arabic prepositions from the edges of a query, so
// "في عمان" and "عمان" plan the same lookups. At least one word is always
// kept.
func stripFillers(s string) string {
	words := strings.Fields(s)
	for len(words) > 1 {
		if _, ok := arabicFillers[Normalize(words[0])]; !ok {
			break
		}
		words = words[1:]
	}
	for len(words) > 1 {
		if _, ok := arabicFillers[Normalize(words[len(words)-1])]; !ok {
			break
		}
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}
