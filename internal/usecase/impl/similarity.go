package impl

import (
	"strings"
	"time"
	"unicode"

	"lostfound/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {}, "by": {}, "for": {},
	"from": {}, "has": {}, "have": {}, "i": {}, "in": {}, "is": {}, "it": {}, "its": {}, "my": {},
	"near": {}, "of": {}, "on": {}, "or": {}, "the": {}, "this": {}, "that": {}, "to": {}, "was": {},
	"were": {}, "with": {}, "found": {}, "lost": {}, "left": {}, "some": {}, "one": {},
}

// tokenize lower-cases text, drops punctuation and stop words and folds simple plurals.
func tokenize(text string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		if _, stop := stopWords[field]; stop {
			continue
		}
		tokens[foldPlural(field)] = struct{}{}
	}

	return tokens
}

func foldPlural(word string) string {
	switch {
	case len(word) > 4 && strings.HasSuffix(word, "ies"):
		return word[:len(word)-3] + "y"
	case len(word) > 4 && (strings.HasSuffix(word, "sses") || strings.HasSuffix(word, "xes") ||
		strings.HasSuffix(word, "ches") || strings.HasSuffix(word, "shes")):
		return word[:len(word)-2]
	case len(word) > 3 && strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") &&
		!strings.HasSuffix(word, "us"):
		return word[:len(word)-1]
	default:
		return word
	}
}

// textSimilarity is the Dice coefficient of the two token sets.
func textSimilarity(a, b string) float64 {
	left, right := tokenize(a), tokenize(b)
	if len(left) == 0 || len(right) == 0 {
		return 0
	}

	shared := 0
	for token := range left {
		if _, ok := right[token]; ok {
			shared++
		}
	}

	return 2 * float64(shared) / float64(len(left)+len(right))
}

// locationSimilarity is 1 for the same building and decays with distance otherwise.
func locationSimilarity(a, b entity.Location, falloffMeters float64) float64 {
	if entity.SameBuilding(a.Building, b.Building) {
		return 1
	}
	if !a.HasCoordinates() || !b.HasCoordinates() || falloffMeters <= 0 {
		return 0
	}

	meters := geo.Distance(
		orb.Point{a.Longitude, a.Latitude},
		orb.Point{b.Longitude, b.Latitude},
	)

	return 1 / (1 + meters/falloffMeters)
}

// recencySimilarity is 1 inside window and falls linearly to 0 at twice the window.
// ok is false when the reports are further apart than that.
func recencySimilarity(a, b time.Time, window time.Duration) (score float64, ok bool) {
	if window <= 0 {
		return 1, true
	}

	age := a.Sub(b)
	if age < 0 {
		age = -age
	}

	switch {
	case age <= window:
		return 1, true
	case age > 2*window:
		return 0, false
	default:
		return 1 - float64(age-window)/float64(window), true
	}
}
