package domain

import (
	"strings"

	"github.com/stormdb-contrib/tpcgen/internal/distro"
	"github.com/stormdb-contrib/tpcgen/internal/rng"
)

// GenerateText is a grammar-driven text generator: keep appending
// sentences (built from a noun/verb/preposition/adjective
// grammar) until the cumulative length reaches [minLen, maxLen], then
// trim the final sentence to fit.
func GenerateText(store *distro.Store, s *rng.Stream, minLen, maxLen int) (string, error) {
	target := int(s.NextUniform(int64(minLen), int64(maxLen)))

	var b strings.Builder
	for b.Len() < target {
		sentence, err := generateSentence(store, s)
		if err != nil {
			return "", err
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(sentence)
	}
	out := b.String()
	if len(out) > target {
		out = strings.TrimSpace(out[:target])
	}
	return out, nil
}

func generateSentence(store *distro.Store, s *rng.Stream) (string, error) {
	patterns, err := store.Find("grammar_sentence_patterns")
	if err != nil {
		return "", err
	}
	pattern := patterns.Pick(s).Text

	var parts []string
	for _, token := range strings.Split(pattern, ",") {
		phrase, err := generatePhrase(store, s, token)
		if err != nil {
			return "", err
		}
		parts = append(parts, phrase)
	}
	return strings.Join(parts, " "), nil
}

func generatePhrase(store *distro.Store, s *rng.Stream, token string) (string, error) {
	switch token {
	case "NP":
		article, err := store.Find("articles")
		if err != nil {
			return "", err
		}
		adj, err := store.Find("adjectives")
		if err != nil {
			return "", err
		}
		noun, err := store.Find("nouns")
		if err != nil {
			return "", err
		}
		return strings.Join([]string{article.Pick(s).Text, adj.Pick(s).Text, noun.Pick(s).Text}, " "), nil
	case "VP":
		adv, err := store.Find("adverbs")
		if err != nil {
			return "", err
		}
		verb, err := store.Find("verbs")
		if err != nil {
			return "", err
		}
		aux, err := store.Find("auxiliaries")
		if err != nil {
			return "", err
		}
		return strings.Join([]string{adv.Pick(s).Text, aux.Pick(s).Text, verb.Pick(s).Text}, " "), nil
	case "PREP":
		prep, err := store.Find("prepositions")
		if err != nil {
			return "", err
		}
		noun, err := store.Find("nouns")
		if err != nil {
			return "", err
		}
		return strings.Join([]string{prep.Pick(s).Text, "the", noun.Pick(s).Text}, " "), nil
	case "TERM":
		term, err := store.Find("terminators")
		if err != nil {
			return "", err
		}
		return term.Pick(s).Text, nil
	default:
		return "", nil
	}
}
