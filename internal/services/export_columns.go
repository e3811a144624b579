package services

import (
	"fmt"
	"strconv"
	"time"
)

const exportDateLayout = "2006-01-02"

// ExportRow is one flat exported day: the report's daily fields plus a
// fixed-size block of incident cells sized by the export request.
type ExportRow struct {
	Date             time.Time
	Diet             string
	Exercise         string
	Medicine         string
	FeelingMorning   string
	FeelingAfternoon string
	FeelingNight     string
	OverallRating    *int
	Incidents        []ExportIncidentCell
}

type ExportIncidentCell struct {
	Filled   bool
	Time     string
	Symptoms string
	Notes    string
}

type ExportColumn struct {
	Key   string
	Label string
	Value func(row ExportRow) string
}

// BuildExportColumns fixes the column shape for one export request: the
// daily columns in declared order, then one Time/Symptoms/Notes triplet per
// incident slot up to maxIncidents.
func BuildExportColumns(maxIncidents int) []ExportColumn {
	columns := []ExportColumn{
		{Key: "date", Label: "Date", Value: func(row ExportRow) string {
			return DayStartUTC(row.Date).Format(exportDateLayout)
		}},
		{Key: "diet", Label: "Diet", Value: func(row ExportRow) string { return row.Diet }},
		{Key: "exercise", Label: "Exercise", Value: func(row ExportRow) string { return row.Exercise }},
		{Key: "medicine", Label: "Medicine", Value: func(row ExportRow) string { return row.Medicine }},
		{Key: "feelingMorning", Label: "Feeling (morning)", Value: func(row ExportRow) string { return row.FeelingMorning }},
		{Key: "feelingAfternoon", Label: "Feeling (afternoon)", Value: func(row ExportRow) string { return row.FeelingAfternoon }},
		{Key: "feelingNight", Label: "Feeling (night)", Value: func(row ExportRow) string { return row.FeelingNight }},
		{Key: "overallRating", Label: "Overall rating", Value: func(row ExportRow) string {
			if row.OverallRating == nil {
				return ""
			}
			return strconv.Itoa(*row.OverallRating)
		}},
	}

	for slot := 1; slot <= maxIncidents; slot++ {
		index := slot - 1
		columns = append(columns,
			ExportColumn{
				Key:   fmt.Sprintf("incident%dTime", slot),
				Label: fmt.Sprintf("Incident %d - Time", slot),
				Value: func(row ExportRow) string { return row.Incidents[index].Time },
			},
			ExportColumn{
				Key:   fmt.Sprintf("incident%dSymptoms", slot),
				Label: fmt.Sprintf("Incident %d - Symptoms", slot),
				Value: func(row ExportRow) string { return row.Incidents[index].Symptoms },
			},
			ExportColumn{
				Key:   fmt.Sprintf("incident%dNotes", slot),
				Label: fmt.Sprintf("Incident %d - Notes", slot),
				Value: func(row ExportRow) string { return row.Incidents[index].Notes },
			},
		)
	}
	return columns
}
