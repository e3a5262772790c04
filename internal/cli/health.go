package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/greenloop/plantcare/pkg/client"
)

var (
	healthMoisture   string
	healthPests      bool
	healthDeficiency string
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Record and review plant health observations",
}

var healthAddCmd = &cobra.Command{
	Use:   "add [tracking-id]",
	Short: "Record a health observation",
	Args:  cobra.ExactArgs(1),
	RunE:  runHealthAdd,
}

var healthListCmd = &cobra.Command{
	Use:   "list [tracking-id]",
	Short: "List health observations, newest first",
	Args:  cobra.ExactArgs(1),
	RunE:  runHealthList,
}

var healthRemoveCmd = &cobra.Command{
	Use:   "remove [record-id]",
	Short: "Delete a health observation",
	Args:  cobra.ExactArgs(1),
	RunE:  runHealthRemove,
}

func init() {
	healthAddCmd.Flags().StringVar(&healthMoisture, "moisture", "", "soil moisture (Low, Medium, High)")
	healthAddCmd.Flags().BoolVar(&healthPests, "pests", false, "pests observed")
	healthAddCmd.Flags().StringVar(&healthDeficiency, "deficiency", "", "nutrient deficiency (defaults to None)")
	healthCmd.AddCommand(healthAddCmd)
	healthCmd.AddCommand(healthListCmd)
	healthCmd.AddCommand(healthRemoveCmd)
	rootCmd.AddCommand(healthCmd)
}

func runHealthAdd(cmd *cobra.Command, args []string) error {
	record, err := apiClient().AddHealthRecord(client.HealthRecordRequest{
		TrackingID:         args[0],
		MoistureLevel:      healthMoisture,
		PestPresence:       healthPests,
		NutrientDeficiency: healthDeficiency,
	})
	if err != nil {
		return fmt.Errorf("health record rejected: %w", err)
	}

	cmd.Printf("Recorded: moisture %s, pests %t, deficiency %s\n",
		record.MoistureLevel, record.PestPresence, record.NutrientDeficiency)
	return nil
}

func runHealthList(cmd *cobra.Command, args []string) error {
	records, err := apiClient().ListHealthRecords(args[0])
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	if len(records) == 0 {
		cmd.Println("No health observations yet.")
		return nil
	}

	for _, record := range records {
		pests := "no pests"
		if record.PestPresence {
			pests = "pests present"
		}
		cmd.Printf("  [%d] %s  moisture %s, %s, %s\n",
			record.ID, record.RecordedAt.Format("2006-01-02"),
			record.MoistureLevel, pests, record.NutrientDeficiency)
	}

	return nil
}

func runHealthRemove(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("record-id must be a number: %s", args[0])
	}

	if err := apiClient().RemoveHealthRecord(id); err != nil {
		return fmt.Errorf("remove failed: %w", err)
	}

	cmd.Println("Health observation deleted.")
	return nil
}
