package session_test

import (
	"testing"

	"github.com/greenloop/plantcare/pkg/client"
	"github.com/greenloop/plantcare/pkg/session"
	"github.com/stretchr/testify/assert"
)

func TestWeatherNote(t *testing.T) {
	recs := []client.Recommendation{{PlantName: "Tomato", WateringSchedule: "Every 2 days"}}

	tests := []struct {
		name    string
		weather *client.Weather
		want    string
	}{
		{"no weather", nil, ""},
		{"rain", &client.Weather{Temp: 22, Condition: "Rain"}, session.NoteRainy},
		{"cloudy any case", &client.Weather{Temp: 22, Condition: "light CLOUDs"}, session.NoteRainy},
		{"rain wins over heat", &client.Weather{Temp: 35, Condition: "heavy rain"}, session.NoteRainy},
		{"rain wins over cold", &client.Weather{Temp: 4, Condition: "Drizzling rain"}, session.NoteRainy},
		{"hot boundary", &client.Weather{Temp: 30, Condition: "Clear"}, session.NoteHot},
		{"hot", &client.Weather{Temp: 35, Condition: "Sunny"}, session.NoteHot},
		{"cold boundary", &client.Weather{Temp: 10, Condition: "Clear"}, session.NoteCold},
		{"cold", &client.Weather{Temp: 5, Condition: "Snow"}, session.NoteCold},
		{"mild", &client.Weather{Temp: 20, Condition: "Clear"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			annotated := session.Annotate(recs, tt.weather)
			assert.Len(t, annotated, 1)
			assert.Equal(t, tt.want, annotated[0].WeatherNote)
			assert.Equal(t, "Tomato", annotated[0].PlantName)
		})
	}
}

func TestAnnotateDoesNotMutateInput(t *testing.T) {
	recs := []client.Recommendation{
		{PlantName: "Tomato"},
		{PlantName: "Kale"},
	}
	original := make([]client.Recommendation, len(recs))
	copy(original, recs)

	session.Annotate(recs, &client.Weather{Temp: 35, Condition: "Clear"})
	assert.Equal(t, original, recs)
}

func TestAnnotateEmpty(t *testing.T) {
	annotated := session.Annotate(nil, &client.Weather{Temp: 20})
	assert.NotNil(t, annotated)
	assert.Empty(t, annotated)
}
