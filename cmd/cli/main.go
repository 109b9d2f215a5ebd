package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	host       string
	adminToken string
)

var rootCmd = &cobra.Command{
	Use:   "duels-cli",
	Short: "A CLI to interact with the fantasy-duels server",
	Long: `A command-line interface for reading the league tables of a
fantasy-duels server and triggering its admin operations.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "The host address of the server")
	rootCmd.PersistentFlags().StringVar(&adminToken, "token", os.Getenv("ADMIN_TOKEN"), "Admin token for write commands")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
