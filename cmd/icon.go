package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"gitlab.com/begraf/ikonwerk/catalog"
	"gitlab.com/begraf/ikonwerk/config"
	"gitlab.com/begraf/ikonwerk/data/icon"
	"gitlab.com/begraf/ikonwerk/filesystem"
)

// iconCmd represents the icon command
var iconCmd = &cobra.Command{
	Use:   "icon",
	Short: "Interactive process to scaffold a new source icon",
	RunE:  runGenIcon,
}

func init() {
	genCmd.AddCommand(iconCmd)
}

var iconNamePattern = regexp.MustCompile(`^[a-z0-9]+([-_][a-z0-9]+)*$`)

func runGenIcon(cmd *cobra.Command, args []string) error {
	if !config.HasProjectDirectory() {
		return fmt.Errorf("no project directory configured")
	}

	sourceDirectory := filepath.Join(config.ProjectDirectory(), config.DefaultSourceDirectory())

	// Read icon name
	name := ""
	{
		prompt := survey.Input{
			Message: "Icon name",
		}
		err := survey.AskOne(
			&prompt,
			&name,
			survey.WithValidator(survey.Required),
			survey.WithValidator(
				func(ans interface{}) error {
					s := strings.TrimSpace(ans.(string))
					if !iconNamePattern.MatchString(s) {
						return fmt.Errorf("use lowercase segments separated by hyphens, e.g. airplane-outline")
					}
					if err := icon.ValidateFileName(s + icon.Extension); err != nil {
						return err
					}
					if _, err := os.Stat(filepath.Join(sourceDirectory, s+icon.Extension)); err == nil {
						return fmt.Errorf("icon '%s' already exists", s)
					}
					return nil
				},
			),
		)
		exitOnInterrupt(err)
		name = strings.TrimSpace(name)
	}

	var tags []string
	{
		prompt := survey.Input{
			Message: "Tag",
		}
		for {
			tag := ""
			err := survey.AskOne(&prompt, &tag)
			exitOnInterrupt(err)

			tag = strings.TrimSpace(tag)
			if len(tag) > 0 {
				fmt.Println()
				tags = append(tags, tag)
				continue
			}

			break
		}
	}

	iconFile := filepath.Join(sourceDirectory, name+icon.Extension)

	log.Printf("icon file: %s", iconFile)
	if len(tags) > 0 {
		log.Printf("tags: %s", strings.Join(tags, ", "))
	}

	// Review before writing
	{
		isConfirmed := true

		prompt := &survey.Confirm{
			Message: "Proceed",
			Default: isConfirmed,
		}

		err := survey.AskOne(prompt, &isConfirmed)
		exitOnInterrupt(err)

		if !isConfirmed {
			os.Exit(0)
		}
	}

	if err := filesystem.CreateDirectoryIfNotExists(sourceDirectory); err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile(iconFile, []byte(iconScaffold(name)), 0o666); err != nil {
		log.Fatal(err)
	}

	// Record the curated tags right away so the next build keeps them.
	if len(tags) > 0 {
		catalogFile := filepath.Join(config.ProjectDirectory(), config.DefaultCatalogFile())

		cat := catalog.Load(catalogFile)
		cat.Icons = append(cat.Icons, catalog.Entry{Name: name, Tags: tags})

		if err := cat.Write(catalogFile); err != nil {
			log.Fatal(err)
		}
	}

	log.Print("created icon")

	fmt.Printf("== Edit the icon ==\n\n%s\n\n", iconFile)

	return nil
}

func iconScaffold(name string) string {
	return fmt.Sprintf(
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"512\" height=\"512\" viewBox=\"0 0 512 512\"><title>%s</title></svg>\n",
		displayName(name),
	)
}

// displayName turns "airplane-outline" into "Airplane Outline".
func displayName(name string) string {
	segments := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})

	for i, segment := range segments {
		segments[i] = strings.ToUpper(segment[:1]) + segment[1:]
	}

	return strings.Join(segments, " ")
}

func exitOnInterrupt(err error) {
	if err == terminal.InterruptErr {
		os.Exit(1)
	}
}
