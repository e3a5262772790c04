package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/greenloop/plantcare/pkg/session"
)

var (
	recommendPlant    string
	recommendLocation string
	recommendClimate  string
	recommendSoilType string
	recommendJSON     bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Get weather-aware care recommendations",
	Long: `Resolves care recommendations for your growing conditions. With no
flags the conditions come from your stored profile. Current weather for the
location, when available, annotates each recommendation.`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&recommendPlant, "plant", "", "narrow to one plant")
	recommendCmd.Flags().StringVar(&recommendLocation, "location", "", "override profile location")
	recommendCmd.Flags().StringVar(&recommendClimate, "climate", "", "override profile climate")
	recommendCmd.Flags().StringVar(&recommendSoilType, "soil-type", "", "override profile soil type")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	sess := session.New(apiClient())

	if err := sess.Start(); err != nil {
		return fmt.Errorf("session rejected: %w", err)
	}

	// Flag overrides beat the profile-seeded values.
	if recommendLocation != "" {
		sess.SetLocation(recommendLocation)
	}
	if recommendClimate != "" {
		sess.SetClimate(recommendClimate)
	}
	if recommendSoilType != "" {
		sess.SetSoilType(recommendSoilType)
	}
	if recommendPlant != "" {
		sess.SetPlant(recommendPlant)
	}

	if err := sess.Search(); err != nil {
		return fmt.Errorf("recommendation search failed: %w", err)
	}

	results := sess.Results()

	if recommendJSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if weather := sess.Weather(); weather != nil {
		filters := sess.Filters()
		cmd.Printf("Current weather in %s: %.1f°C, %s, humidity %.0f%%\n\n",
			filters.Location, weather.Temp, weather.Condition, weather.Humidity)
	} else if msg := sess.WeatherMessage(); msg != "" {
		cmd.Println(msg)
		cmd.Println()
	}

	if msg := sess.ResultMessage(); msg != "" {
		cmd.Println(msg)
		return nil
	}

	for _, rec := range results {
		cmd.Printf("  %s\n", rec.PlantName)
		cmd.Printf("      Watering:      %s\n", rec.WateringSchedule)
		cmd.Printf("      Fertilization: %s\n", rec.FertilizationPlan)
		cmd.Printf("      Pest control:  %s\n", rec.PestControl)
		if rec.WeatherNote != "" {
			cmd.Printf("      Note: %s\n", rec.WeatherNote)
		}
		cmd.Println()
	}

	if suggestions := sess.Suggestions(); len(suggestions) > 0 {
		cmd.Printf("Plants suited to your conditions: %s\n", strings.Join(suggestions, ", "))
	}

	return nil
}
