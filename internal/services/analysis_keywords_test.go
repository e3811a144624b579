package services

import (
	"fmt"
	"testing"

	"github.com/tidelog/tidelog/internal/models"
)

func TestTopIncidentKeywordsFiltersTokens(t *testing.T) {
	incidents := []models.Incident{
		{Symptoms: "The dizzy spells, again!", Notes: "at 3 pm, dizzy"},
	}

	keywords := TopIncidentKeywords(incidents, 15)

	counts := make(map[string]int)
	for _, keyword := range keywords {
		counts[keyword.Word] = keyword.Count
	}

	if counts["dizzy"] != 2 {
		t.Fatalf("expected dizzy counted across symptoms and notes, got %d", counts["dizzy"])
	}
	if _, found := counts["the"]; found {
		t.Fatal("expected stopword excluded")
	}
	if _, found := counts["at"]; found {
		t.Fatal("expected stopword excluded")
	}
	if _, found := counts["3"]; found {
		t.Fatal("expected pure digits excluded")
	}
	if counts["pm"] != 1 {
		t.Fatalf("expected two-letter non-stopword kept, got %d", counts["pm"])
	}
	if counts["spells"] != 1 || counts["again"] != 1 {
		t.Fatalf("expected punctuation stripped, got %v", counts)
	}
}

func TestTopIncidentKeywordsOrderAndTies(t *testing.T) {
	incidents := []models.Incident{
		{Symptoms: "nausea headache nausea"},
		{Symptoms: "headache tremor"},
	}

	keywords := TopIncidentKeywords(incidents, 15)
	if len(keywords) != 3 {
		t.Fatalf("expected 3 keywords, got %d", len(keywords))
	}
	if keywords[0].Word != "nausea" || keywords[0].Count != 2 {
		t.Fatalf("unexpected leader %+v", keywords[0])
	}
	if keywords[1].Word != "headache" || keywords[1].Count != 2 {
		t.Fatalf("expected tie broken by first encounter, got %+v", keywords[1])
	}
	if keywords[2].Word != "tremor" || keywords[2].Count != 1 {
		t.Fatalf("unexpected tail %+v", keywords[2])
	}
}

func TestTopIncidentKeywordsTruncatesToTopN(t *testing.T) {
	incidents := make([]models.Incident, 0, 20)
	for index := 0; index < 20; index++ {
		incidents = append(incidents, models.Incident{Symptoms: fmt.Sprintf("symptomword%02d", index)})
	}

	keywords := TopIncidentKeywords(incidents, KeywordTopN)
	if len(keywords) != KeywordTopN {
		t.Fatalf("expected %d keywords, got %d", KeywordTopN, len(keywords))
	}
}
