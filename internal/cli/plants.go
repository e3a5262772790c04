package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greenloop/plantcare/pkg/client"
)

var (
	plantsName     string
	plantsLocation string
	plantsClimate  string
	plantsSoilType string
	plantsJSON     bool
)

var plantsCmd = &cobra.Command{
	Use:   "plants",
	Short: "Browse the plant catalog",
	RunE:  runPlants,
}

func init() {
	plantsCmd.Flags().StringVar(&plantsName, "name", "", "filter by name substring")
	plantsCmd.Flags().StringVar(&plantsLocation, "location", "", "filter by location")
	plantsCmd.Flags().StringVar(&plantsClimate, "climate", "", "filter by climate")
	plantsCmd.Flags().StringVar(&plantsSoilType, "soil-type", "", "filter by soil type")
	plantsCmd.Flags().BoolVar(&plantsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(plantsCmd)
}

func runPlants(cmd *cobra.Command, args []string) error {
	api := apiClient()

	var plants []client.Plant
	var err error
	if plantsName == "" && plantsLocation == "" && plantsClimate == "" && plantsSoilType == "" {
		plants, err = api.ListPlants()
	} else {
		plants, err = api.SearchPlants(client.SearchQuery{
			Name:     plantsName,
			Location: plantsLocation,
			Climate:  plantsClimate,
			SoilType: plantsSoilType,
		})
	}
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}

	if plantsJSON {
		data, err := json.MarshalIndent(plants, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal plants: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(plants) == 0 {
		cmd.Println("No plants found.")
		return nil
	}

	for _, p := range plants {
		cmd.Printf("  [%d] %s (%s, %s soil, %s)\n", p.ID, p.Name, p.Climate, p.SoilType, p.Category)
		if p.WateringSchedule != "" {
			cmd.Printf("      Watering: %s\n", p.WateringSchedule)
		}
	}

	return nil
}
