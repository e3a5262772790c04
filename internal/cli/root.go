// Package cli implements the gardenctl command line interface over the
// plantcare API.
package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/greenloop/plantcare/pkg/client"
)

var (
	serverURL string
	authToken string
)

var rootCmd = &cobra.Command{
	Use:   "gardenctl",
	Short: "Command line client for the plantcare service",
	Long: `gardenctl talks to a plantcare server: browse the plant catalog,
get care recommendations for your growing conditions, and keep growth and
health records for the plants you track.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", envOr("PLANTCARE_SERVER", "http://localhost:5000"), "plantcare server base URL")
	rootCmd.PersistentFlags().StringVar(&authToken, "token", os.Getenv("PLANTCARE_TOKEN"), "bearer token for authenticated requests")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// apiClient builds a client from the persistent flags
func apiClient() *client.Client {
	opts := []client.Option{client.WithTimeout(15 * time.Second)}
	if authToken != "" {
		opts = append(opts, client.WithToken(authToken))
	}
	return client.New(serverURL, opts...)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
