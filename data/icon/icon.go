package icon

import (
	"fmt"
	"strings"
)

const Extension = ".svg"

// Icon describes a single source SVG file. All fields are derived once during
// loading and never change afterwards; the optimized markup lives in a
// separate type so that no consumer can observe a half-built record.
type Icon struct {
	// FileName is the bare source file name, e.g. "airplane-outline.svg".
	FileName string

	// SourcePath and OptimizedPath are the absolute locations of the source
	// file and of the optimized copy the build writes.
	SourcePath    string
	OptimizedPath string

	// Name is the icon identifier, the file name minus its extension.
	Name string

	// ExportName is the camel-case public binding name, e.g. "airplaneOutline".
	ExportName string

	// ModuleFile and ScriptFile name the per-icon package wrappers.
	ModuleFile string
	ScriptFile string

	// Source is the raw markup as read from disk.
	Source []byte
}

// New validates the given file name and derives a record from it.
func New(fileName, sourcePath, optimizedPath string, source []byte) (*Icon, error) {
	if err := ValidateFileName(fileName); err != nil {
		return nil, err
	}

	name := strings.TrimSuffix(fileName, Extension)

	return &Icon{
		FileName:      fileName,
		SourcePath:    sourcePath,
		OptimizedPath: optimizedPath,
		Name:          name,
		ExportName:    ExportIdentifier(name),
		ModuleFile:    name + ".mjs",
		ScriptFile:    name + ".js",
		Source:        source,
	}, nil
}

// ValidateFileName enforces the source naming convention: all lowercase, at
// most one period (the extension's).
func ValidateFileName(fileName string) error {
	if strings.ToLower(fileName) != fileName {
		return fmt.Errorf("icon file '%s' contains uppercase characters", fileName)
	}

	if strings.Count(fileName, ".") > 1 {
		return fmt.Errorf("icon file '%s' contains more than one period", fileName)
	}

	return nil
}

// ExportIdentifier converts an icon identifier into its camel-case export
// form: segments split on hyphen or underscore, the first segment lowered
// entirely, every later segment lowered with its first rune raised.
func ExportIdentifier(name string) string {
	segments := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})

	var b strings.Builder
	for i, segment := range segments {
		segment = strings.ToLower(segment)
		if i == 0 {
			b.WriteString(segment)
			continue
		}

		b.WriteString(strings.ToUpper(segment[:1]))
		b.WriteString(segment[1:])
	}

	return b.String()
}

// DeriveTags is the default tag set for an icon without curated tags: the
// hyphen-separated segments of its name.
func DeriveTags(name string) []string {
	return strings.Split(name, "-")
}
