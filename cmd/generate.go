package cmd

import "github.com/spf13/cobra"

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print the zone capacity configuration snippet",
	RunE:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
