package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gitlab.com/begraf/ikonwerk/building"
	"gitlab.com/begraf/ikonwerk/config"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the distributable icon artifacts",
	Long:  "Build optimizes every source icon and emits the catalog, consumer package, sprite, cheatsheet and fixture mirror.",
	RunE:  building.RunBuildCmd,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("output", "O", "", "Build directory")
	buildCmd.Flags().Bool("clean", false, "Ignore the build cache and re-optimize everything")

	viper.BindPFlag(config.KeyBuildDirectory, buildCmd.Flags().Lookup("output"))
}
