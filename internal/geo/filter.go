package geo

import (
	"sort"
	"strings"
)

// Filter decides whether one batch of geocoding candidates yields an
// acceptable resolution for the raw input, and if so which candidate.
// Returning false is a normal outcome that sends the orchestrator to the
// next planned query; it is never an error.
func Filter(cands []Candidate, raw string) (Resolved, bool) {
	if len(cands) == 0 {
		return Resolved{}, false
	}
	if guardedAmmanLookup(raw) {
		return filterAmman(cands)
	}
	return filterGeneral(cands)
}

// guardedAmmanLookup reports whether the input denotes the city of Amman
// rather than the country of Oman. Explicit country phrasing wins: anyone
// writing "Sultanate of Oman" (or the Latin word "oman") means the country,
// and the general rule applies instead.
func guardedAmmanLookup(raw string) bool {
	text := Normalize(raw)
	if text == "" {
		return false
	}
	for _, phrase := range omanPhrases {
		if strings.Contains(text, phrase) {
			return false
		}
	}
	for _, tok := range tokens(text) {
		for _, oman := range omanTokens {
			if tok == oman {
				return false
			}
		}
	}
	for _, spelling := range ammanSpellings {
		if strings.Contains(text, spelling) {
			return true
		}
	}
	return false
}

// filterAmman resolves a guarded lookup. Candidates outside Jordan are
// rejected outright; among the rest the best-ranked one that is spelled like
// Amman or flagged as a national capital, and that clears the population
// gates, wins. No qualifying candidate means no resolution: the guard never
// falls back to a match in the wrong country.
func filterAmman(cands []Candidate) (Resolved, bool) {
	for _, c := range rank(cands) {
		if !inJordan(c) {
			continue
		}
		if !matchesAmmanSpelling(c.Name) && c.FeatureCode != FeatureNationalCapital {
			continue
		}
		if c.Population >= guardPopulationHigh ||
			isCapitalFeature(c.FeatureCode) ||
			c.Population >= guardPopulationLow {
			return resolvedFrom(c), true
		}
	}
	return Resolved{}, false
}

func inJordan(c Candidate) bool {
	if strings.EqualFold(c.CountryCode, jordanISO) {
		return true
	}
	country := Normalize(c.Country)
	for _, name := range jordanNames {
		if country == name {
			return true
		}
	}
	return false
}

func matchesAmmanSpelling(name string) bool {
	name = Normalize(name)
	for _, spelling := range ammanSpellings {
		if name == spelling {
			return true
		}
	}
	return false
}

// filterGeneral applies the default ranking: capital status beats everything,
// then population decides. The top candidate is accepted only when it is a
// capital-level place or populous enough to be a plausible city match.
func filterGeneral(cands []Candidate) (Resolved, bool) {
	top := rank(cands)[0]
	if isCapitalFeature(top.FeatureCode) || top.Population > generalPopulationMin {
		return resolvedFrom(top), true
	}
	return Resolved{}, false
}

// rank orders candidates by capital status, then descending population.
// Missing population counts as zero. The input slice is left untouched.
func rank(cands []Candidate) []Candidate {
	ranked := make([]Candidate, len(cands))
	copy(ranked, cands)
	sort.SliceStable(ranked, func(i, j int) bool {
		ri, rj := capitalRank(ranked[i].FeatureCode), capitalRank(ranked[j].FeatureCode)
		if ri != rj {
			return ri > rj
		}
		return ranked[i].Population > ranked[j].Population
	})
	return ranked
}
