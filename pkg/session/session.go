// Package session implements the recommendation dashboard workflow: profile
// seeded filters, reactive suggestion and weather refresh, and weather
// annotated care search results.
package session

import (
	"sync"

	"github.com/greenloop/plantcare/pkg/client"
)

// WeatherWarning is shown when conditions for the chosen location cannot
// be fetched. Recommendations still work, unannotated.
const WeatherWarning = "Could not fetch weather for this location."

// Messages for the search result area.
const (
	MsgNoResults   = "No recommendations found."
	MsgSearchError = "Something went wrong."
)

// API is the surface of the plantcare client the session depends on
type API interface {
	GetProfile() (*client.Profile, error)
	GetTaxonomy() (*client.Taxonomy, error)
	AutoSuggest(query client.ConditionsQuery) ([]string, error)
	GetWeather(location string) (*client.Weather, error)
	GetRecommendations(query client.ConditionsQuery) ([]client.Recommendation, error)
}

// Filters is the dashboard filter state
type Filters struct {
	Plant    string
	Location string
	Climate  string
	SoilType string
}

// conditions drops the plant selection; suggestions and recommendations
// key off the environment triple.
func (f Filters) conditions() client.ConditionsQuery {
	return client.ConditionsQuery{
		Location: f.Location,
		Climate:  f.Climate,
		SoilType: f.SoilType,
	}
}

// Session is one user's dashboard state. Filter changes trigger refreshes;
// a response is discarded when the filters moved on while it was in flight.
type Session struct {
	api API

	mu             sync.Mutex
	filters        Filters
	taxonomy       client.Taxonomy
	suggestions    []string
	weather        *client.Weather
	weatherWarning string
	results        []AnnotatedRecommendation
	resultMessage  string
	loggedOut      bool
}

// New creates a session over the given API
func New(api API) *Session {
	return &Session{
		api:         api,
		suggestions: []string{},
		results:     []AnnotatedRecommendation{},
	}
}

// Start seeds the session: the stored profile pre-fills the filters, the
// taxonomy fills the dropdowns, and the dependent refreshes run. Each load
// degrades independently; only a rejected credential ends the session.
func (s *Session) Start() error {
	profile, err := s.api.GetProfile()
	if err != nil {
		if client.IsUnauthorized(err) {
			s.logout()
			return err
		}
		// A missing profile leaves the filters blank.
	} else {
		s.mu.Lock()
		s.filters.Location = profile.Location
		s.filters.Climate = profile.Climate
		s.filters.SoilType = profile.SoilType
		s.mu.Unlock()
	}

	// A failed taxonomy load leaves all three option sets empty; free entry
	// still works.
	if taxonomy, err := s.api.GetTaxonomy(); err == nil && taxonomy != nil {
		s.mu.Lock()
		s.taxonomy = *taxonomy
		s.mu.Unlock()
	}

	s.refreshSuggestions()
	s.refreshWeather()
	return nil
}

// SetPlant selects a plant from the suggestions
func (s *Session) SetPlant(plant string) {
	s.mu.Lock()
	s.filters.Plant = plant
	s.mu.Unlock()
}

// SetLocation changes the location filter and refreshes suggestions
// and weather
func (s *Session) SetLocation(location string) {
	s.mu.Lock()
	s.filters.Location = location
	if location == "" {
		s.weather = nil
		s.weatherWarning = ""
	}
	s.mu.Unlock()

	s.refreshSuggestions()
	if location != "" {
		s.refreshWeather()
	}
}

// SetClimate changes the climate filter and refreshes suggestions
func (s *Session) SetClimate(climate string) {
	s.mu.Lock()
	s.filters.Climate = climate
	s.mu.Unlock()

	s.refreshSuggestions()
}

// SetSoilType changes the soil type filter and refreshes suggestions
func (s *Session) SetSoilType(soilType string) {
	s.mu.Lock()
	s.filters.SoilType = soilType
	s.mu.Unlock()

	s.refreshSuggestions()
}

// refreshSuggestions reloads the plant suggestions for the current triple.
// An incomplete triple clears the suggestions without a request. The
// response only applies if the filters still match the snapshot taken when
// the request went out.
func (s *Session) refreshSuggestions() {
	s.mu.Lock()
	snapshot := s.filters
	s.mu.Unlock()

	if snapshot.Location == "" || snapshot.Climate == "" || snapshot.SoilType == "" {
		s.mu.Lock()
		s.suggestions = []string{}
		s.mu.Unlock()
		return
	}

	names, err := s.api.AutoSuggest(snapshot.conditions())

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.filters.Location != snapshot.Location ||
		s.filters.Climate != snapshot.Climate ||
		s.filters.SoilType != snapshot.SoilType {
		return // stale
	}
	if err != nil {
		// Prior suggestions stay in place until a new valid triple answers.
		if client.IsUnauthorized(err) {
			s.loggedOut = true
		}
		return
	}
	if names == nil {
		names = []string{}
	}
	s.suggestions = names
}

// refreshWeather reloads conditions for the current location, applying the
// response only if the location has not changed in the meantime.
func (s *Session) refreshWeather() {
	s.mu.Lock()
	location := s.filters.Location
	s.mu.Unlock()

	if location == "" {
		return
	}

	weather, err := s.api.GetWeather(location)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.filters.Location != location {
		return // stale
	}
	if err != nil {
		s.weather = nil
		s.weatherWarning = WeatherWarning
		return
	}
	s.weather = weather
	s.weatherWarning = ""
}

// Search resolves recommendations for the current filters and annotates
// them with the current weather. An empty result and a failed request are
// distinct outcomes with distinct messages.
func (s *Session) Search() error {
	s.mu.Lock()
	snapshot := s.filters
	weather := s.weather
	s.mu.Unlock()

	recs, err := s.api.GetRecommendations(client.ConditionsQuery{
		Plant:    snapshot.Plant,
		Location: snapshot.Location,
		Climate:  snapshot.Climate,
		SoilType: snapshot.SoilType,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.filters != snapshot {
		return nil // stale
	}
	if err != nil {
		if client.IsUnauthorized(err) {
			s.loggedOut = true
		}
		s.results = []AnnotatedRecommendation{}
		s.resultMessage = MsgSearchError
		return err
	}

	s.results = Annotate(recs, weather)
	if len(recs) == 0 {
		s.resultMessage = MsgNoResults
	} else {
		s.resultMessage = ""
	}
	return nil
}

func (s *Session) logout() {
	s.mu.Lock()
	s.loggedOut = true
	s.mu.Unlock()
}

// Filters returns the current filter state
func (s *Session) Filters() Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// Taxonomy returns the dropdown option sets
func (s *Session) Taxonomy() client.Taxonomy {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.taxonomy
}

// Suggestions returns the plant names for the current triple
func (s *Session) Suggestions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.suggestions
}

// Weather returns the current conditions, or nil when unavailable
func (s *Session) Weather() *client.Weather {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.weather
}

// WeatherMessage returns the weather warning, empty when conditions loaded
func (s *Session) WeatherMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.weatherWarning
}

// Results returns the annotated recommendations from the last search
func (s *Session) Results() []AnnotatedRecommendation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

// ResultMessage returns the message for the result area, empty when the
// last search produced rows
func (s *Session) ResultMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resultMessage
}

// LoggedOut reports whether the session hit a rejected credential
func (s *Session) LoggedOut() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggedOut
}
