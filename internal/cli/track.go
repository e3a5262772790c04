package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var trackNickname string

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Manage tracked plants",
}

var trackAddCmd = &cobra.Command{
	Use:   "add [plant-id]",
	Short: "Start tracking a catalog plant",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrackAdd,
}

var trackRemoveCmd = &cobra.Command{
	Use:   "remove [tracking-id]",
	Short: "Stop tracking a plant and delete its records",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrackRemove,
}

var trackListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your tracked plants",
	RunE:  runTrackList,
}

func init() {
	trackAddCmd.Flags().StringVar(&trackNickname, "nickname", "", "display name for this plant")
	trackCmd.AddCommand(trackAddCmd)
	trackCmd.AddCommand(trackRemoveCmd)
	trackCmd.AddCommand(trackListCmd)
	rootCmd.AddCommand(trackCmd)
}

func runTrackAdd(cmd *cobra.Command, args []string) error {
	plantID, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("plant-id must be a number: %s", args[0])
	}

	instance, err := apiClient().TrackPlant(plantID, trackNickname)
	if err != nil {
		return fmt.Errorf("track failed: %w", err)
	}

	cmd.Printf("Tracking started: %s\n", instance.ID)
	return nil
}

func runTrackRemove(cmd *cobra.Command, args []string) error {
	if err := apiClient().UntrackPlant(args[0]); err != nil {
		return fmt.Errorf("untrack failed: %w", err)
	}

	cmd.Println("Tracking removed, growth logs and health records deleted.")
	return nil
}

func runTrackList(cmd *cobra.Command, args []string) error {
	rows, err := apiClient().ListTracked()
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	if len(rows) == 0 {
		cmd.Println("No tracked plants.")
		return nil
	}

	for _, row := range rows {
		name := row.PlantName
		if row.Nickname != "" {
			name = fmt.Sprintf("%s (%s)", row.Nickname, row.PlantName)
		}
		cmd.Printf("  %s  %s  since %s\n", row.ID, name, row.DateAdded.Format("2006-01-02"))
	}

	return nil
}
