package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/greenloop/plantcare/pkg/client"
)

var (
	growthHeight float64
	growthStage  string
	growthDate   string
	growthImage  string
)

var growthCmd = &cobra.Command{
	Use:   "growth",
	Short: "Record and review growth observations",
}

var growthAddCmd = &cobra.Command{
	Use:   "add [tracking-id]",
	Short: "Record a growth observation",
	Args:  cobra.ExactArgs(1),
	RunE:  runGrowthAdd,
}

var growthListCmd = &cobra.Command{
	Use:   "list [tracking-id]",
	Short: "List growth observations, newest first",
	Args:  cobra.ExactArgs(1),
	RunE:  runGrowthList,
}

var growthRemoveCmd = &cobra.Command{
	Use:   "remove [log-id]",
	Short: "Delete a growth observation",
	Args:  cobra.ExactArgs(1),
	RunE:  runGrowthRemove,
}

func init() {
	growthAddCmd.Flags().Float64Var(&growthHeight, "height", 0, "plant height in centimeters")
	growthAddCmd.Flags().StringVar(&growthStage, "stage", "", "growth stage (Seedling, Vegetative, Budding, Flowering, Fruiting, Mature)")
	growthAddCmd.Flags().StringVar(&growthDate, "date", time.Now().Format("2006-01-02"), "observation date (YYYY-MM-DD)")
	growthAddCmd.Flags().StringVar(&growthImage, "image", "", "path to an image of the plant")
	growthCmd.AddCommand(growthAddCmd)
	growthCmd.AddCommand(growthListCmd)
	growthCmd.AddCommand(growthRemoveCmd)
	rootCmd.AddCommand(growthCmd)
}

func runGrowthAdd(cmd *cobra.Command, args []string) error {
	entry, err := apiClient().AddGrowthLog(client.GrowthLogRequest{
		TrackingID:      args[0],
		HeightCm:        growthHeight,
		GrowthStage:     growthStage,
		ObservationDate: growthDate,
		ImagePath:       growthImage,
	})
	if err != nil {
		return fmt.Errorf("growth log rejected: %w", err)
	}

	cmd.Printf("Recorded: %.1f cm, %s on %s\n", entry.HeightCm, entry.GrowthStage, entry.ObservationDate.Format("2006-01-02"))
	return nil
}

func runGrowthList(cmd *cobra.Command, args []string) error {
	logs, err := apiClient().ListGrowthLogs(args[0])
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	if len(logs) == 0 {
		cmd.Println("No growth observations yet.")
		return nil
	}

	for _, entry := range logs {
		cmd.Printf("  [%d] %s  %.1f cm  %s\n",
			entry.ID, entry.ObservationDate.Format("2006-01-02"), entry.HeightCm, entry.GrowthStage)
	}

	return nil
}

func runGrowthRemove(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("log-id must be a number: %s", args[0])
	}

	if err := apiClient().RemoveGrowthLog(id); err != nil {
		return fmt.Errorf("remove failed: %w", err)
	}

	cmd.Println("Growth observation deleted.")
	return nil
}
