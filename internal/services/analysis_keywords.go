package services

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tidelog/tidelog/internal/models"
)

// analysisStopwords is a closed English list; articles, conjunctions,
// common auxiliaries and personal pronouns never make the keyword section.
var analysisStopwords = buildStopwordSet(
	"a an the and or but in on at to for of with by from as is was are were be been being " +
		"have has had do does did will would could should may might must can " +
		"i you we they it this that")

var (
	keywordStripPattern = regexp.MustCompile(`[^\w\s'-]`)
	keywordDigitPattern = regexp.MustCompile(`^\d+$`)
)

type KeywordCount struct {
	Word  string
	Count int
}

// TopIncidentKeywords tokenizes every incident's symptoms and notes and
// returns the topN most frequent surviving tokens. Ties keep
// first-encountered order so the output is deterministic over a fixed
// store snapshot.
func TopIncidentKeywords(incidents []models.Incident, topN int) []KeywordCount {
	counts := make(map[string]int)
	order := make([]string, 0)

	accumulate := func(text string) {
		for _, word := range tokenizeKeywords(text) {
			if _, seen := counts[word]; !seen {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	for _, incident := range incidents {
		accumulate(incident.Symptoms)
		accumulate(incident.Notes)
	}

	keywords := make([]KeywordCount, 0, len(order))
	for _, word := range order {
		keywords = append(keywords, KeywordCount{Word: word, Count: counts[word]})
	}
	sort.SliceStable(keywords, func(i, j int) bool {
		return keywords[i].Count > keywords[j].Count
	})

	if topN >= 0 && len(keywords) > topN {
		keywords = keywords[:topN]
	}
	return keywords
}

func tokenizeKeywords(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	cleaned := keywordStripPattern.ReplaceAllString(strings.ToLower(text), " ")
	words := make([]string, 0)
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 1 {
			continue
		}
		if keywordDigitPattern.MatchString(word) {
			continue
		}
		if _, stopped := analysisStopwords[word]; stopped {
			continue
		}
		words = append(words, word)
	}
	return words
}

func buildStopwordSet(words string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, word := range strings.Fields(words) {
		set[word] = struct{}{}
	}
	return set
}
