package nlp

import (
	"regexp"

	"github.com/intentd/intentd/pkg/models"
)

// Builtin entity patterns, matched in precedence order so a number inside
// an email or URL is not reported twice.
var entityPatterns = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"email", regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)},
	{"url", regexp.MustCompile(`https?://[^\s]+`)},
	{"number", regexp.MustCompile(`-?\d+(?:\.\d+)?`)},
}

// ExtractEntities finds builtin named entities (email, url, number) in an
// utterance. Offsets are byte offsets into the utterance.
func ExtractEntities(utterance string) []models.Entity {
	entities := []models.Entity{}
	var claimed [][2]int

	for _, ep := range entityPatterns {
		for _, loc := range ep.pattern.FindAllStringIndex(utterance, -1) {
			if overlaps(claimed, loc[0], loc[1]) {
				continue
			}
			claimed = append(claimed, [2]int{loc[0], loc[1]})
			entities = append(entities, models.Entity{
				Entity:     ep.name,
				SourceText: utterance[loc[0]:loc[1]],
				Start:      loc[0],
				End:        loc[1],
			})
		}
	}
	return entities
}

func overlaps(claimed [][2]int, start, end int) bool {
	for _, span := range claimed {
		if start < span[1] && end > span[0] {
			return true
		}
	}
	return false
}
