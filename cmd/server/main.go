// Package main is the entry point for the creature API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "creature-api",
	Short: "Creature lookup API server",
	Long:  `Creature API serves creature records aggregated from the external species catalog, optionally restyled through the configured style-transform services.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
