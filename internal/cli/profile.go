package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	profileLocation string
	profileClimate  string
	profileSoilType string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update your gardening profile",
	RunE:  runProfileShow,
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store your growing conditions",
	RunE:  runProfileSet,
}

func init() {
	profileSetCmd.Flags().StringVar(&profileLocation, "location", "", "where you garden")
	profileSetCmd.Flags().StringVar(&profileClimate, "climate", "", "your climate")
	profileSetCmd.Flags().StringVar(&profileSoilType, "soil-type", "", "your soil type")
	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	profile, err := apiClient().GetProfile()
	if err != nil {
		return fmt.Errorf("profile request failed: %w", err)
	}

	if profile.Location == "" && profile.Climate == "" && profile.SoilType == "" {
		cmd.Println("No profile stored. Use 'gardenctl profile set' to save your conditions.")
		return nil
	}

	cmd.Printf("Location:  %s\n", profile.Location)
	cmd.Printf("Climate:   %s\n", profile.Climate)
	cmd.Printf("Soil type: %s\n", profile.SoilType)
	return nil
}

func runProfileSet(cmd *cobra.Command, args []string) error {
	profile, err := apiClient().UpdateProfile(profileLocation, profileClimate, profileSoilType)
	if err != nil {
		return fmt.Errorf("profile update failed: %w", err)
	}

	cmd.Printf("Profile saved: %s / %s / %s\n", profile.Location, profile.Climate, profile.SoilType)
	return nil
}
