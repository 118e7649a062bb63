package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gitlab.com/begraf/ikonwerk/config"
	"gitlab.com/begraf/ikonwerk/data"
	"gitlab.com/begraf/ikonwerk/previews"
)

// previewsCmd represents the previews command
var previewsCmd = &cobra.Command{
	Use:   "previews",
	Short: "Render PNG previews of every source icon",
	RunE:  runPreviews,
}

func init() {
	rootCmd.AddCommand(previewsCmd)

	previewsCmd.Flags().IntP("width", "w", config.DefaultPreviewWidth(), "Preview width in pixels")
}

func runPreviews(cmd *cobra.Command, args []string) error {
	if !config.HasProjectDirectory() {
		return fmt.Errorf("no project directory configured")
	}

	projectDirectory := config.ProjectDirectory()
	buildDirectory := config.BuildDirectory()

	sourceDirectory := filepath.Join(projectDirectory, config.DefaultSourceDirectory())
	store, err := data.NewStore(sourceDirectory, filepath.Join(buildDirectory, "svg"))
	if err != nil {
		return err
	}

	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		width = config.DefaultPreviewWidth()
	}

	return previews.RenderAll(store.Icons, previews.Options{
		OutputDirectory: filepath.Join(buildDirectory, "previews"),
		Width:           width,
	})
}
