package config

import (
	"path/filepath"

	"github.com/spf13/viper"
)

var (
	KeyProjectDirectory = "project.directory"
	KeyBuildDirectory   = "build.directory"
)

func HasProjectDirectory() bool {
	return viper.IsSet(KeyProjectDirectory)
}

func ProjectDirectory() string {
	return viper.GetString(KeyProjectDirectory)
}

func BuildDirectory() string {
	if viper.IsSet(KeyBuildDirectory) && viper.GetString(KeyBuildDirectory) != "" {
		return viper.GetString(KeyBuildDirectory)
	}

	return filepath.Join(ProjectDirectory(), "dist")
}

func DefaultSourceDirectory() string {
	return filepath.Join("src", "svg")
}

func DefaultCatalogFile() string {
	return filepath.Join("src", "data.json")
}

func DefaultNotesFile() string {
	return filepath.Join("src", "cheatsheet.md")
}

func DefaultTemplateFile() string {
	return filepath.Join("src", "cheatsheet.html")
}

func DefaultFixtureDirectory() string {
	return "www"
}

func DefaultPreviewWidth() int {
	return 256
}

func DistPackageName() string {
	return "ionicons"
}
