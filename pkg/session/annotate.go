package session

import (
	"strings"

	"github.com/greenloop/plantcare/pkg/client"
)

// Weather notes attached to recommendations. Rain or cloud cover outranks
// temperature.
const (
	NoteRainy = "Consider skipping or reducing watering due to rain/cloudy conditions."
	NoteHot   = "High temperature—ensure extra hydration or shade."
	NoteCold  = "Low temperature—avoid overwatering."
)

// AnnotatedRecommendation is a care recommendation with a weather note
type AnnotatedRecommendation struct {
	client.Recommendation
	WeatherNote string `json:"weatherNote"`
}

// Annotate attaches a weather note to each recommendation. With no weather
// available every note is empty. Annotate never mutates its input.
func Annotate(recs []client.Recommendation, weather *client.Weather) []AnnotatedRecommendation {
	note := weatherNote(weather)
	annotated := make([]AnnotatedRecommendation, 0, len(recs))
	for _, rec := range recs {
		annotated = append(annotated, AnnotatedRecommendation{
			Recommendation: rec,
			WeatherNote:    note,
		})
	}
	return annotated
}

func weatherNote(weather *client.Weather) string {
	if weather == nil {
		return ""
	}
	condition := strings.ToLower(weather.Condition)
	switch {
	case strings.Contains(condition, "rain") || strings.Contains(condition, "cloud"):
		return NoteRainy
	case weather.Temp >= 30:
		return NoteHot
	case weather.Temp <= 10:
		return NoteCold
	default:
		return ""
	}
}
