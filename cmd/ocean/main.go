package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ocean",
	Short: "Ocean registry API",
	Long: `Ocean serves the registry of companies, institutions, contracts,
services, transactions, exhibitions, users and their profiles over a
hypermedia REST API. Configuration comes from app.env and the environment.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}
