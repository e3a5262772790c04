package database

import (
	"log"

	"github.com/greenloop/plantcare/internal/models"
	"gorm.io/gorm"
)

// seedPlants is the bootstrap catalog used when SEED_CATALOG is set. In
// production the catalog importer owns these rows; this set exists so a fresh
// database can serve the dashboard immediately.
var seedPlants = []models.CatalogPlant{
	{
		Name:              "Tomato",
		Category:          "Vegetable",
		SoilType:          "Loamy",
		Climate:           "Tropical",
		WateringSchedule:  "Every 2 days, deep watering at the base",
		FertilizationPlan: "Balanced NPK every 2 weeks after transplant",
		PestControl:       "Neem oil spray for aphids and whiteflies",
		CareInstructions:  "Stake early and prune suckers for airflow.",
	},
	{
		Name:              "Kale",
		Category:          "Vegetable",
		SoilType:          "Loamy",
		Climate:           "Tropical",
		WateringSchedule:  "Twice a week, keep soil evenly moist",
		FertilizationPlan: "Nitrogen-rich feed monthly",
		PestControl:       "Row covers against cabbage moths",
		CareInstructions:  "Harvest outer leaves to keep the plant producing.",
	},
	{
		Name:              "Banana",
		Category:          "Fruit",
		SoilType:          "Loamy",
		Climate:           "Tropical",
		WateringSchedule:  "Every 2-3 days, generous amounts",
		FertilizationPlan: "Potassium-heavy feed monthly",
		PestControl:       "Remove dead leaves to deter banana weevils",
		CareInstructions:  "Needs wind shelter and steady warmth.",
	},
	{
		Name:              "Lavender",
		Category:          "Flowering",
		SoilType:          "Sandy",
		Climate:           "Mediterranean",
		WateringSchedule:  "Weekly, let soil dry out between waterings",
		FertilizationPlan: "Light compost in spring only",
		PestControl:       "Rarely troubled; ensure good drainage",
		CareInstructions:  "Prune after flowering to keep shape.",
	},
	{
		Name:              "Cactus",
		Category:          "Flowering",
		SoilType:          "Sandy",
		Climate:           "Arid",
		WateringSchedule:  "Every 2-3 weeks, sparingly",
		FertilizationPlan: "Diluted cactus feed in growing season",
		PestControl:       "Inspect for mealybugs at the base",
		CareInstructions:  "Full sun, minimal handling.",
	},
	{
		Name:              "Blueberry",
		Category:          "Fruit",
		SoilType:          "Peaty",
		Climate:           "Temperate",
		WateringSchedule:  "Twice a week, rainwater preferred",
		FertilizationPlan: "Acidic ericaceous feed in spring",
		PestControl:       "Netting against birds when fruiting",
		CareInstructions:  "Keep soil pH below 5.5.",
	},
	{
		Name:              "Rose",
		Category:          "Flowering",
		SoilType:          "Clay",
		Climate:           "Temperate",
		WateringSchedule:  "Twice a week at the base, avoid wetting leaves",
		FertilizationPlan: "Rose feed after each flush of blooms",
		PestControl:       "Watch for black spot and aphids; spray early",
		CareInstructions:  "Deadhead spent blooms through the season.",
	},
}

var seedRegions = []models.Region{
	{Location: "Nairobi", Climate: "Tropical", SoilType: "Loamy"},
	{Location: "Mombasa", Climate: "Tropical", SoilType: "Sandy"},
	{Location: "Cairo", Climate: "Arid", SoilType: "Sandy"},
	{Location: "Athens", Climate: "Mediterranean", SoilType: "Sandy"},
	{Location: "London", Climate: "Temperate", SoilType: "Clay"},
	{Location: "Oslo", Climate: "Continental", SoilType: "Peaty"},
}

// SeedCatalog inserts the bootstrap catalog and regions, skipping rows that
// already exist so it is safe to run on every startup.
func SeedCatalog(db *gorm.DB) error {
	for _, plant := range seedPlants {
		p := plant
		if err := db.Where("name = ?", p.Name).FirstOrCreate(&p).Error; err != nil {
			return err
		}
	}

	for _, region := range seedRegions {
		r := region
		if err := db.Where("location = ?", r.Location).FirstOrCreate(&r).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded catalog: %d plants, %d regions", len(seedPlants), len(seedRegions))
	return nil
}
