package cmd

import (
	"github.com/spf13/cobra"
)

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate source icons, scaffolds, etc.",
	Long:  `Generate collects procedures to ease the icon authoring process.`,
}

func init() {
	rootCmd.AddCommand(genCmd)
}
