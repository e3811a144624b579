package ai

import "fmt"

// BuildHistoryAnalysisPrompt asks for a JSON analysis of a pre-aggregated
// health history summary. The model never sees raw log rows.
func BuildHistoryAnalysisPrompt(dataSummary, dateRangeLabel string) string {
	return fmt.Sprintf(`You are a careful health-pattern assistant for someone tracking chronic symptoms day by day.

Analyze the aggregated history below for the period %s and respond with a single JSON object of this exact shape:
{
  "summary": "2-3 sentence plain-language overview of the period",
  "trends": ["short observed trend", "..."],
  "insights": ["short pattern worth noticing", "..."],
  "suggestions": ["small, gentle, practical next step", "..."],
  "weeklyHighlight": "one encouraging sentence about the period, or an empty string"
}

Rules:
- Base every statement only on the data below. Never invent numbers or events.
- Keep each list to at most 4 items; plain text entries, no markdown.
- Do not give medical advice or mention medication changes; suggest talking to a clinician for anything clinical.
- If the data is sparse, say so in the summary instead of speculating.

Data:
%s`, dateRangeLabel, dataSummary)
}

// BuildOnOpenMessagePrompt asks for the short greeting shown when the
// dashboard opens.
func BuildOnOpenMessagePrompt() string {
	return `You are a supportive assistant for someone living with a chronic illness and tracking their symptoms daily.

Return exactly one short, kind message (1-2 sentences). Plain text only; no markdown or quotes.

CRITICAL - Variety and avoiding repetition:
- Vary the type every time. Rotate among: gentle encouragement, validation ("this is hard"), solidarity ("you're not alone"), self-compassion, pacing or rest without being preachy, something light or gently humorous, or a nod to the chronic-illness community.
- Do NOT default to common management tips they have almost certainly heard before: avoid suggesting hydration, rest schedules, or diet changes unless you have a genuinely surprising angle. Repeating that advice often does more harm than comfort.
- Each message should feel different. Surprise and variety matter more than repeating what sounds "helpful."`
}
