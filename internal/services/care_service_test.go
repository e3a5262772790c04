package services_test

import (
	"testing"

	"github.com/greenloop/plantcare/internal/services"
)

// TestGetTaxonomy tests the distinct option sets
func TestGetTaxonomy(t *testing.T) {
	db := setupTestDB(t)
	seedTestCatalog(t, db)

	taxonomy, err := services.GetTaxonomy(db)
	if err != nil {
		t.Fatalf("Failed to get taxonomy: %v", err)
	}

	if len(taxonomy.Locations) != 2 {
		t.Errorf("Expected 2 locations, got %v", taxonomy.Locations)
	}
	if len(taxonomy.Climates) != 2 {
		t.Errorf("Expected 2 distinct climates, got %v", taxonomy.Climates)
	}
	if len(taxonomy.SoilTypes) != 1 {
		t.Errorf("Expected 1 distinct soil type, got %v", taxonomy.SoilTypes)
	}
}

// TestGetTaxonomyEmpty tests that an empty database yields empty slices,
// not nil
func TestGetTaxonomyEmpty(t *testing.T) {
	db := setupTestDB(t)

	taxonomy, err := services.GetTaxonomy(db)
	if err != nil {
		t.Fatalf("Failed to get taxonomy: %v", err)
	}

	if taxonomy.Locations == nil || taxonomy.Climates == nil || taxonomy.SoilTypes == nil {
		t.Error("Expected empty slices, got nil")
	}
}

// TestAutoSuggest tests triple-gated suggestion behavior
func TestAutoSuggest(t *testing.T) {
	db := setupTestDB(t)
	seedTestCatalog(t, db)

	// Any empty member of the triple yields no suggestions
	for _, triple := range [][3]string{
		{"", "Tropical", "Loamy"},
		{"Nairobi", "", "Loamy"},
		{"Nairobi", "Tropical", ""},
		{"", "", ""},
	} {
		names, err := services.AutoSuggest(db, triple[0], triple[1], triple[2])
		if err != nil {
			t.Fatalf("Auto-suggest failed: %v", err)
		}
		if len(names) != 0 {
			t.Errorf("Expected no suggestions for partial triple %v, got %v", triple, names)
		}
		if names == nil {
			t.Error("Expected empty slice, got nil")
		}
	}

	// The full triple narrows by climate and soil
	names, err := services.AutoSuggest(db, "Nairobi", "Tropical", "Loamy")
	if err != nil {
		t.Fatalf("Auto-suggest failed: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("Expected 2 suggestions, got %v", names)
	}
	if names[0] != "Banana" || names[1] != "Tomato" {
		t.Errorf("Expected [Banana Tomato], got %v", names)
	}

	// A known location whose region contradicts the chosen conditions is
	// not viable
	names, err = services.AutoSuggest(db, "Oslo", "Tropical", "Loamy")
	if err != nil {
		t.Fatalf("Auto-suggest failed: %v", err)
	}
	if len(names) != 0 || names == nil {
		t.Errorf("Expected no suggestions for contradicted region, got %v", names)
	}

	// An unknown location is free entry, constrained by climate and soil
	names, err = services.AutoSuggest(db, "Atlantis", "Tropical", "Loamy")
	if err != nil {
		t.Fatalf("Auto-suggest failed: %v", err)
	}
	if len(names) != 2 {
		t.Errorf("Expected free-entry location to suggest by conditions, got %v", names)
	}
}

// TestGetRecommendations tests constraint handling and region resolution
func TestGetRecommendations(t *testing.T) {
	db := setupTestDB(t)
	seedTestCatalog(t, db)

	// Climate constraint alone
	recs, err := services.GetRecommendations(db, services.RecommendationQuery{Climate: "Tropical"})
	if err != nil {
		t.Fatalf("Recommendations failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("Expected 2 tropical recommendations, got %d", len(recs))
	}
	if recs[0].WateringSchedule == "" || recs[0].PestControl == "" {
		t.Errorf("Expected populated care fields, got %+v", recs[0])
	}

	// A known location substitutes its region climate
	recs, err = services.GetRecommendations(db, services.RecommendationQuery{Location: "Nairobi"})
	if err != nil {
		t.Fatalf("Recommendations failed: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("Expected Nairobi to resolve to Tropical, got %d rows", len(recs))
	}

	// An explicit climate beats the location's region
	recs, err = services.GetRecommendations(db, services.RecommendationQuery{
		Location: "Nairobi",
		Climate:  "Temperate",
	})
	if err != nil {
		t.Fatalf("Recommendations failed: %v", err)
	}
	if len(recs) != 1 || recs[0].PlantName != "Kale" {
		t.Errorf("Expected only Kale for Temperate, got %+v", recs)
	}

	// A plant constraint narrows to one row
	recs, err = services.GetRecommendations(db, services.RecommendationQuery{Plant: "Tomato"})
	if err != nil {
		t.Fatalf("Recommendations failed: %v", err)
	}
	if len(recs) != 1 || recs[0].PlantName != "Tomato" {
		t.Errorf("Expected only Tomato, got %+v", recs)
	}

	// No matches is a valid empty outcome
	recs, err = services.GetRecommendations(db, services.RecommendationQuery{Climate: "Arctic"})
	if err != nil {
		t.Fatalf("Recommendations failed: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("Expected no rows for Arctic, got %+v", recs)
	}
	if recs == nil {
		t.Error("Expected empty slice, got nil")
	}

	// An unknown location with no climate applies no climate constraint
	recs, err = services.GetRecommendations(db, services.RecommendationQuery{Location: "Atlantis"})
	if err != nil {
		t.Fatalf("Recommendations failed: %v", err)
	}
	if len(recs) != 3 {
		t.Errorf("Expected full catalog for unknown location, got %d rows", len(recs))
	}
}

// TestSearchPlants tests substring and exact constraints
func TestSearchPlants(t *testing.T) {
	db := setupTestDB(t)
	seedTestCatalog(t, db)

	// Empty form returns the full listing
	plants, err := services.SearchPlants(db, "", "", "", "")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(plants) != 3 {
		t.Errorf("Expected full listing, got %d", len(plants))
	}

	// Name is a substring match
	plants, err = services.SearchPlants(db, "mat", "", "", "")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(plants) != 1 || plants[0].Name != "Tomato" {
		t.Errorf("Expected Tomato for substring 'mat', got %+v", plants)
	}

	// Category is exact
	plants, err = services.SearchPlants(db, "", "Fruit", "", "")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(plants) != 1 || plants[0].Name != "Banana" {
		t.Errorf("Expected Banana for category Fruit, got %+v", plants)
	}

	// No matches yields an empty slice, not nil
	plants, err = services.SearchPlants(db, "cactus", "", "", "")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if plants == nil || len(plants) != 0 {
		t.Errorf("Expected empty slice, got %+v", plants)
	}
}
