// Package similarity scores how close two strings are using the
// Sørensen–Dice coefficient over character bigrams. It backs the
// near-duplicate title check on movie creation.
package similarity

import (
	"errors"
	"strings"
	"unicode"
)

// ErrEmptyCorpus is returned by BestMatch when there are no strings to
// compare against.
var ErrEmptyCorpus = errors.New("similarity: empty corpus")

// Match is the best-scoring pairing found by BestMatch.
type Match struct {
	Target string
	Score  float64
}

// Compare returns a score in [0,1] for how similar a and b are.
// Whitespace is ignored and comparison is case-sensitive. Strings with
// fewer than two non-space characters only match themselves.
func Compare(a, b string) float64 {
	a = stripSpace(a)
	b = stripSpace(b)

	if a == b {
		return 1
	}
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) < 2 || len(rb) < 2 {
		return 0
	}

	bigrams := make(map[string]int, len(ra)-1)
	for i := 0; i < len(ra)-1; i++ {
		bigrams[string(ra[i:i+2])]++
	}

	var matches int
	for i := 0; i < len(rb)-1; i++ {
		bg := string(rb[i : i+2])
		if bigrams[bg] > 0 {
			bigrams[bg]--
			matches++
		}
	}

	return 2 * float64(matches) / float64(len(ra)+len(rb)-2)
}

// BestMatch scores candidate against every string in corpus and returns
// the highest-scoring one. Ties go to the earliest entry.
func BestMatch(candidate string, corpus []string) (Match, error) {
	if len(corpus) == 0 {
		return Match{}, ErrEmptyCorpus
	}

	best := Match{Target: corpus[0], Score: Compare(candidate, corpus[0])}
	for _, target := range corpus[1:] {
		if score := Compare(candidate, target); score > best.Score {
			best = Match{Target: target, Score: score}
		}
	}
	return best, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
