package integration_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/greenloop/plantcare/internal/config"
	"github.com/greenloop/plantcare/internal/database"
	"github.com/greenloop/plantcare/internal/services"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

const testUser = "6fa459ea-ee8a-3ca4-894e-db77e160355e"

// TestWithMariaDB tests the service with a real MariaDB container
func TestWithMariaDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// Start MariaDB container
	mariadbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("DB_IMAGE"),
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      "testdb",
				"MYSQL_USER":          "testuser",
				"MYSQL_PASSWORD":      "testpass",
			},
			WaitingFor: wait.ForLog("ready for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariadbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	// Get container host and port
	host, err := mariadbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := mariadbContainer.MappedPort(ctx, "3306")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	// Create config
	cfg := &config.Config{
		DBType:            "mysql",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "testdb",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
	}

	// Wait for database to be ready
	time.Sleep(5 * time.Second)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run migrations and seed the catalog
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.SeedCatalog(db); err != nil {
		t.Fatalf("Failed to seed catalog: %v", err)
	}

	// Run tests
	t.Run("TrackAndConflict", func(t *testing.T) {
		testTrackAndConflict(t, db)
	})

	t.Run("CascadeDelete", func(t *testing.T) {
		testCascadeDelete(t, db)
	})

	t.Run("Recommendations", func(t *testing.T) {
		testRecommendations(t, db)
	})
}

// TestWithPostgreSQL tests the service with a real PostgreSQL container
func TestWithPostgreSQL(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// Start PostgreSQL container
	postgresContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("POSTGRES_IMAGE"),
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_USER":     "testuser",
				"POSTGRES_DB":       "testdb",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	defer func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	}()

	// Get container host and port
	host, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := postgresContainer.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	// Create config
	cfg := &config.Config{
		DBType:            "postgres",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "testdb",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
	}

	// Wait for database to be ready
	time.Sleep(2 * time.Second)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run migrations and seed the catalog
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.SeedCatalog(db); err != nil {
		t.Fatalf("Failed to seed catalog: %v", err)
	}

	// Run tests
	t.Run("TrackAndConflict", func(t *testing.T) {
		testTrackAndConflict(t, db)
	})

	t.Run("CascadeDelete", func(t *testing.T) {
		testCascadeDelete(t, db)
	})

	t.Run("Recommendations", func(t *testing.T) {
		testRecommendations(t, db)
	})
}

// testTrackAndConflict tests that a plant can be tracked once per user
func testTrackAndConflict(t *testing.T, db *gorm.DB) {
	plants, err := services.ListPlants(db)
	if err != nil || len(plants) == 0 {
		t.Fatalf("Expected seeded catalog, got %d plants, err: %v", len(plants), err)
	}
	plantID := plants[0].ID

	instance, err := services.TrackPlant(db, testUser, plantID, "windowsill")
	if err != nil {
		t.Fatalf("Failed to track plant: %v", err)
	}
	if instance.ID == "" {
		t.Error("Expected a generated tracking id")
	}

	// The same (user, plant) pair must conflict
	_, err = services.TrackPlant(db, testUser, plantID, "")
	if err == nil {
		t.Fatal("Expected conflict on duplicate tracking")
	}

	// A different user is allowed to track the same plant
	otherUser := "7fa459ea-ee8a-3ca4-894e-db77e160355f"
	if _, err := services.TrackPlant(db, otherUser, plantID, ""); err != nil {
		t.Errorf("Expected second user to track the same plant: %v", err)
	}

	// Untracking and re-tracking produces a fresh instance
	if err := services.UntrackPlant(db, testUser, instance.ID); err != nil {
		t.Fatalf("Failed to untrack: %v", err)
	}
	fresh, err := services.TrackPlant(db, testUser, plantID, "")
	if err != nil {
		t.Fatalf("Failed to re-track: %v", err)
	}
	if fresh.ID == instance.ID {
		t.Error("Expected a new tracking id after untrack")
	}
	if err := services.UntrackPlant(db, testUser, fresh.ID); err != nil {
		t.Fatalf("Failed to clean up tracking: %v", err)
	}
}

// testCascadeDelete tests that untracking removes growth logs and health
// records with the instance
func testCascadeDelete(t *testing.T, db *gorm.DB) {
	plants, err := services.ListPlants(db)
	if err != nil || len(plants) < 2 {
		t.Fatalf("Expected seeded catalog, got %d plants, err: %v", len(plants), err)
	}

	instance, err := services.TrackPlant(db, testUser, plants[1].ID, "")
	if err != nil {
		t.Fatalf("Failed to track plant: %v", err)
	}

	if _, err := services.AddGrowthLog(db, testUser, services.GrowthLogInput{
		TrackingID:      instance.ID,
		HeightCm:        12.5,
		HeightSet:       true,
		GrowthStage:     "Seedling",
		ObservationDate: "2026-08-01",
	}); err != nil {
		t.Fatalf("Failed to add growth log: %v", err)
	}

	if _, err := services.AddHealthRecord(db, testUser, services.HealthRecordInput{
		TrackingID:      instance.ID,
		MoistureLevel:   "Medium",
		PestPresence:    false,
		PestPresenceSet: true,
	}); err != nil {
		t.Fatalf("Failed to add health record: %v", err)
	}

	if err := services.UntrackPlant(db, testUser, instance.ID); err != nil {
		t.Fatalf("Failed to untrack: %v", err)
	}

	// Children must be gone with the instance
	var logCount, recordCount int64
	db.Table("growth_logs").Where("tracking_id = ?", instance.ID).Count(&logCount)
	db.Table("health_records").Where("tracking_id = ?", instance.ID).Count(&recordCount)
	if logCount != 0 {
		t.Errorf("Expected 0 growth logs after untrack, got %d", logCount)
	}
	if recordCount != 0 {
		t.Errorf("Expected 0 health records after untrack, got %d", recordCount)
	}
}

// testRecommendations tests taxonomy, auto-suggest, and recommendation
// resolution against the seeded catalog
func testRecommendations(t *testing.T, db *gorm.DB) {
	taxonomy, err := services.GetTaxonomy(db)
	if err != nil {
		t.Fatalf("Failed to get taxonomy: %v", err)
	}
	if len(taxonomy.Locations) == 0 || len(taxonomy.Climates) == 0 || len(taxonomy.SoilTypes) == 0 {
		t.Fatal("Expected non-empty taxonomy from seeded data")
	}

	// A partial triple yields no suggestions
	names, err := services.AutoSuggest(db, "Nairobi", "", "Loamy")
	if err != nil {
		t.Fatalf("Auto-suggest failed: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("Expected no suggestions for a partial triple, got %v", names)
	}

	// The full triple narrows to viable plants
	names, err = services.AutoSuggest(db, "Nairobi", "Tropical", "Loamy")
	if err != nil {
		t.Fatalf("Auto-suggest failed: %v", err)
	}
	if len(names) == 0 {
		t.Error("Expected suggestions for Tropical/Loamy from seeded data")
	}

	recs, err := services.GetRecommendations(db, services.RecommendationQuery{
		Location: "Nairobi",
		SoilType: "Loamy",
	})
	if err != nil {
		t.Fatalf("Recommendations failed: %v", err)
	}
	if len(recs) == 0 {
		t.Error("Expected recommendations resolved through the Nairobi region")
	}
	for _, rec := range recs {
		if rec.PlantName == "" || rec.WateringSchedule == "" {
			t.Errorf("Expected populated care fields, got %+v", rec)
		}
	}
}

// TestHealthCheck tests the health check functionality
func TestHealthCheck(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// Start MariaDB container
	mariadbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("DB_IMAGE"),
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      "testdb",
				"MYSQL_USER":          "testuser",
				"MYSQL_PASSWORD":      "testpass",
			},
			WaitingFor: wait.ForLog("ready for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariadbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	host, err := mariadbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := mariadbContainer.MappedPort(ctx, "3306")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	cfg := &config.Config{
		DBType:     "mysql",
		DBHost:     host,
		DBPort:     port.Port(),
		DBDatabase: "testdb",
		DBUser:     "testuser",
		DBPassword: "testpass",
		AuthzURL:   "http://localhost:9999", // Non-existent service
	}

	time.Sleep(5 * time.Second)

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run health check
	result := services.HealthCheck(cfg, db)

	// Database should be healthy
	if result.Database != "ok" {
		t.Errorf("Expected database to be ok, got: %s", result.Database)
	}

	// Authorizer should be unreachable
	if result.Authorizer != "unreachable" {
		t.Errorf("Expected authorizer to be unreachable, got: %s", result.Authorizer)
	}

	// Overall status should be unhealthy
	if result.Status != "unhealthy" {
		t.Errorf("Expected status to be unhealthy, got: %s", result.Status)
	}
}
