package session_test

import (
	"testing"

	"github.com/greenloop/plantcare/pkg/client"
	"github.com/greenloop/plantcare/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI implements session.API with pluggable responses
type fakeAPI struct {
	profile    *client.Profile
	profileErr error

	taxonomy    *client.Taxonomy
	taxonomyErr error

	suggestFn  func(query client.ConditionsQuery) ([]string, error)
	weatherFn  func(location string) (*client.Weather, error)
	searchFn   func(query client.ConditionsQuery) ([]client.Recommendation, error)
	suggestHit int
	weatherHit int
	searchHit  int
}

func (f *fakeAPI) GetProfile() (*client.Profile, error) {
	return f.profile, f.profileErr
}

func (f *fakeAPI) GetTaxonomy() (*client.Taxonomy, error) {
	return f.taxonomy, f.taxonomyErr
}

func (f *fakeAPI) AutoSuggest(query client.ConditionsQuery) ([]string, error) {
	f.suggestHit++
	if f.suggestFn == nil {
		return []string{}, nil
	}
	return f.suggestFn(query)
}

func (f *fakeAPI) GetWeather(location string) (*client.Weather, error) {
	f.weatherHit++
	if f.weatherFn == nil {
		return &client.Weather{Temp: 20, Condition: "Clear"}, nil
	}
	return f.weatherFn(location)
}

func (f *fakeAPI) GetRecommendations(query client.ConditionsQuery) ([]client.Recommendation, error) {
	f.searchHit++
	if f.searchFn == nil {
		return []client.Recommendation{}, nil
	}
	return f.searchFn(query)
}

func completeProfile() *client.Profile {
	return &client.Profile{Location: "Nairobi", Climate: "Tropical", SoilType: "Loamy"}
}

func TestStartSeedsFiltersFromProfile(t *testing.T) {
	api := &fakeAPI{
		profile:  completeProfile(),
		taxonomy: &client.Taxonomy{Locations: []string{"Nairobi"}, Climates: []string{"Tropical"}, SoilTypes: []string{"Loamy"}},
		suggestFn: func(query client.ConditionsQuery) ([]string, error) {
			assert.Equal(t, "Nairobi", query.Location)
			return []string{"Banana", "Tomato"}, nil
		},
	}

	s := session.New(api)
	require.NoError(t, s.Start())

	filters := s.Filters()
	assert.Equal(t, "Nairobi", filters.Location)
	assert.Equal(t, "Tropical", filters.Climate)
	assert.Equal(t, "Loamy", filters.SoilType)
	assert.Empty(t, filters.Plant)

	assert.Equal(t, []string{"Nairobi"}, s.Taxonomy().Locations)
	assert.Equal(t, []string{"Banana", "Tomato"}, s.Suggestions())
	require.NotNil(t, s.Weather())
	assert.Empty(t, s.WeatherMessage())
	assert.False(t, s.LoggedOut())
}

func TestStartDegradesWithoutProfile(t *testing.T) {
	api := &fakeAPI{
		profileErr: &client.Error{StatusCode: 404, Kind: client.KindNotFound, Message: "no profile"},
		taxonomy:   &client.Taxonomy{Locations: []string{"Nairobi"}},
	}

	s := session.New(api)
	require.NoError(t, s.Start())

	assert.Empty(t, s.Filters().Location)
	assert.Equal(t, []string{"Nairobi"}, s.Taxonomy().Locations)
	// No location means no suggestion or weather request
	assert.Zero(t, api.suggestHit)
	assert.Zero(t, api.weatherHit)
}

func TestStartRejectedCredentialEndsSession(t *testing.T) {
	api := &fakeAPI{
		profileErr: &client.Error{StatusCode: 401, Kind: client.KindUnauthorized, Message: "token expired"},
	}

	s := session.New(api)
	err := s.Start()
	require.Error(t, err)
	assert.True(t, client.IsUnauthorized(err))
	assert.True(t, s.LoggedOut())
}

func TestSuggestionsRequireCompleteTriple(t *testing.T) {
	api := &fakeAPI{
		profile: &client.Profile{Location: "Nairobi", Climate: "Tropical"},
	}

	s := session.New(api)
	require.NoError(t, s.Start())
	assert.Zero(t, api.suggestHit)
	assert.Empty(t, s.Suggestions())

	api.suggestFn = func(query client.ConditionsQuery) ([]string, error) {
		return []string{"Tomato"}, nil
	}
	s.SetSoilType("Loamy")
	assert.Equal(t, 1, api.suggestHit)
	assert.Equal(t, []string{"Tomato"}, s.Suggestions())

	// Clearing any leg empties the suggestions without a request
	s.SetClimate("")
	assert.Equal(t, 1, api.suggestHit)
	assert.Empty(t, s.Suggestions())
}

func TestStartWithoutTaxonomy(t *testing.T) {
	// An API with no taxonomy at all must leave the option sets empty, not
	// crash the session.
	api := &fakeAPI{profile: completeProfile()}

	s := session.New(api)
	require.NoError(t, s.Start())

	taxonomy := s.Taxonomy()
	assert.Empty(t, taxonomy.Locations)
	assert.Empty(t, taxonomy.Climates)
	assert.Empty(t, taxonomy.SoilTypes)

	// Free entry still drives the reactive chain
	assert.Equal(t, 1, api.suggestHit)
}

func TestSuggestionFailureKeepsPrior(t *testing.T) {
	api := &fakeAPI{
		profile: completeProfile(),
		suggestFn: func(query client.ConditionsQuery) ([]string, error) {
			return []string{"Tomato"}, nil
		},
	}

	s := session.New(api)
	require.NoError(t, s.Start())
	require.Equal(t, []string{"Tomato"}, s.Suggestions())

	// The next refresh fails; the stale-but-valid list stays on screen.
	api.suggestFn = func(query client.ConditionsQuery) ([]string, error) {
		return nil, &client.Error{Kind: client.KindTransport, Message: "connection refused"}
	}
	s.SetSoilType("Clay")
	assert.Equal(t, []string{"Tomato"}, s.Suggestions())
	assert.False(t, s.LoggedOut())

	// A later valid answer replaces it.
	api.suggestFn = func(query client.ConditionsQuery) ([]string, error) {
		return []string{"Rose"}, nil
	}
	s.SetSoilType("Loamy")
	assert.Equal(t, []string{"Rose"}, s.Suggestions())

	// An incomplete triple still clears rather than keeps.
	s.SetClimate("")
	assert.Empty(t, s.Suggestions())
}

func TestWeatherFailureSetsWarning(t *testing.T) {
	api := &fakeAPI{
		profile: completeProfile(),
		weatherFn: func(location string) (*client.Weather, error) {
			return nil, &client.Error{Kind: client.KindNotFound, Message: "no such city"}
		},
	}

	s := session.New(api)
	require.NoError(t, s.Start())

	assert.Nil(t, s.Weather())
	assert.Equal(t, session.WeatherWarning, s.WeatherMessage())
}

func TestClearingLocationClearsWeather(t *testing.T) {
	api := &fakeAPI{profile: completeProfile()}

	s := session.New(api)
	require.NoError(t, s.Start())
	require.NotNil(t, s.Weather())

	weatherCalls := api.weatherHit
	s.SetLocation("")
	assert.Nil(t, s.Weather())
	assert.Empty(t, s.WeatherMessage())
	assert.Equal(t, weatherCalls, api.weatherHit)
}

func TestStaleSuggestionsDiscarded(t *testing.T) {
	var s *session.Session
	api := &fakeAPI{
		profile: completeProfile(),
		suggestFn: func(query client.ConditionsQuery) ([]string, error) {
			return []string{"Banana", "Tomato"}, nil
		},
	}

	s = session.New(api)
	require.NoError(t, s.Start())
	require.Equal(t, []string{"Banana", "Tomato"}, s.Suggestions())

	// The climate changes while the suggestion request is in flight. The
	// late response must not land.
	mutated := false
	api.suggestFn = func(query client.ConditionsQuery) ([]string, error) {
		if !mutated {
			mutated = true
			s.SetClimate("")
		}
		return []string{"Cactus"}, nil
	}
	s.SetSoilType("Loamy")

	assert.Empty(t, s.Suggestions())
}

func TestStaleWeatherDiscarded(t *testing.T) {
	var s *session.Session
	moved := false
	api := &fakeAPI{
		profile: completeProfile(),
		weatherFn: func(location string) (*client.Weather, error) {
			if location == "Nairobi" && !moved {
				moved = true
				s.SetLocation("Oslo")
				return &client.Weather{Temp: 28, Condition: "Clear"}, nil
			}
			return &client.Weather{Temp: 4, Condition: "Snow"}, nil
		},
	}

	s = session.New(api)
	require.NoError(t, s.Start())

	// Oslo's response applies; Nairobi's late one is dropped.
	require.NotNil(t, s.Weather())
	assert.Equal(t, 4.0, s.Weather().Temp)
	assert.Equal(t, "Oslo", s.Filters().Location)
}

func TestSearchAnnotatesResults(t *testing.T) {
	api := &fakeAPI{
		profile: completeProfile(),
		weatherFn: func(location string) (*client.Weather, error) {
			return &client.Weather{Temp: 24, Condition: "light rain"}, nil
		},
		searchFn: func(query client.ConditionsQuery) ([]client.Recommendation, error) {
			assert.Equal(t, "Nairobi", query.Location)
			return []client.Recommendation{
				{PlantName: "Tomato", WateringSchedule: "Every 2 days"},
				{PlantName: "Banana", WateringSchedule: "Weekly"},
			}, nil
		},
	}

	s := session.New(api)
	require.NoError(t, s.Start())
	require.NoError(t, s.Search())

	results := s.Results()
	require.Len(t, results, 2)
	assert.Equal(t, "Tomato", results[0].PlantName)
	assert.Equal(t, session.NoteRainy, results[0].WeatherNote)
	assert.Equal(t, session.NoteRainy, results[1].WeatherNote)
	assert.Empty(t, s.ResultMessage())
}

func TestSearchEmptyAndFailedAreDistinct(t *testing.T) {
	api := &fakeAPI{profile: completeProfile()}
	s := session.New(api)
	require.NoError(t, s.Start())

	api.searchFn = func(query client.ConditionsQuery) ([]client.Recommendation, error) {
		return []client.Recommendation{}, nil
	}
	require.NoError(t, s.Search())
	assert.Empty(t, s.Results())
	assert.Equal(t, session.MsgNoResults, s.ResultMessage())

	api.searchFn = func(query client.ConditionsQuery) ([]client.Recommendation, error) {
		return nil, &client.Error{Kind: client.KindTransport, Message: "connection refused"}
	}
	require.Error(t, s.Search())
	assert.Empty(t, s.Results())
	assert.Equal(t, session.MsgSearchError, s.ResultMessage())
	assert.False(t, s.LoggedOut())
}

func TestSearchUnauthorizedEndsSession(t *testing.T) {
	api := &fakeAPI{
		profile: completeProfile(),
		searchFn: func(query client.ConditionsQuery) ([]client.Recommendation, error) {
			return nil, &client.Error{StatusCode: 401, Kind: client.KindUnauthorized, Message: "token expired"}
		},
	}

	s := session.New(api)
	require.NoError(t, s.Start())
	require.Error(t, s.Search())
	assert.True(t, s.LoggedOut())
}

func TestStaleSearchDiscarded(t *testing.T) {
	var s *session.Session
	api := &fakeAPI{
		profile: completeProfile(),
		searchFn: func(query client.ConditionsQuery) ([]client.Recommendation, error) {
			// The user picks a different plant while the search is in
			// flight; the response must not land.
			s.SetPlant("Banana")
			return []client.Recommendation{{PlantName: "Tomato"}}, nil
		},
	}

	s = session.New(api)
	require.NoError(t, s.Start())
	require.NoError(t, s.Search())

	assert.Empty(t, s.Results())
	assert.Empty(t, s.ResultMessage())
}
