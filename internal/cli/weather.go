package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var weatherCmd = &cobra.Command{
	Use:   "weather [location]",
	Short: "Show current conditions for a location",
	Args:  cobra.ExactArgs(1),
	RunE:  runWeather,
}

func init() {
	rootCmd.AddCommand(weatherCmd)
}

func runWeather(cmd *cobra.Command, args []string) error {
	weather, err := apiClient().GetWeather(args[0])
	if err != nil {
		return fmt.Errorf("weather request failed: %w", err)
	}

	cmd.Printf("Temperature: %.1f°C\n", weather.Temp)
	cmd.Printf("Humidity:    %.0f%%\n", weather.Humidity)
	cmd.Printf("Condition:   %s\n", weather.Condition)
	if weather.WindSpeed > 0 {
		cmd.Printf("Wind:        %.1f m/s\n", weather.WindSpeed)
	}
	return nil
}
