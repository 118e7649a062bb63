package emit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gitlab.com/begraf/ikonwerk/config"
	"gitlab.com/begraf/ikonwerk/filesystem"
	"gitlab.com/begraf/ikonwerk/optimize"
)

// packageManifest is the consumer package's package.json. The per-icon
// wrappers under imports/ are declared side-effecting so bundlers keep the
// asset references alive while still tree-shaking the indices.
type packageManifest struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Main        string   `json:"main"`
	Module      string   `json:"module"`
	Types       string   `json:"types"`
	SideEffects []string `json:"sideEffects"`
}

// Package writes the consumer package: per-icon ESM and CommonJS wrappers, the
// three aggregate indices, and the manifest. Icons arrive in export-name order
// from the loader and are emitted in that order, keeping diffs across builds
// stable.
func Package(icons []*optimize.OptimizedIcon, distDirectory, version string) error {
	packageDirectory := filepath.Join(distDirectory, "icons")
	importsDirectory := filepath.Join(packageDirectory, "imports")

	if err := filesystem.CreateDirectoryIfNotExists(importsDirectory); err != nil {
		return fmt.Errorf("could not ensure package directory: %w", err)
	}

	if err := pruneImports(importsDirectory, icons); err != nil {
		return err
	}

	var (
		esmImports bytes.Buffer
		esmExports bytes.Buffer
		cjsIndex   bytes.Buffer
		dtsIndex   bytes.Buffer
	)

	for _, ic := range icons {
		assetPath := fmt.Sprintf("../../svg/%s", ic.FileName)

		esm := fmt.Sprintf("import %s from '%s';\nexport default %s;\n",
			ic.ExportName, assetPath, ic.ExportName)
		if err := writePackageFile(filepath.Join(importsDirectory, ic.ModuleFile), esm); err != nil {
			return err
		}

		cjs := fmt.Sprintf("module.exports = require('%s');\n", assetPath)
		if err := writePackageFile(filepath.Join(importsDirectory, ic.ScriptFile), cjs); err != nil {
			return err
		}

		fmt.Fprintf(&esmImports, "import %s from './imports/%s';\n", ic.ExportName, ic.ModuleFile)
		fmt.Fprintf(&esmExports, "  %s,\n", ic.ExportName)
		fmt.Fprintf(&cjsIndex, "exports.%s = require('./imports/%s');\n", ic.ExportName, ic.ScriptFile)
		fmt.Fprintf(&dtsIndex, "export declare var %s: string;\n", ic.ExportName)
	}

	esmIndex := fmt.Sprintf("%s\nexport {\n%s};\n", esmImports.String(), esmExports.String())
	if err := writePackageFile(filepath.Join(packageDirectory, "index.mjs"), esmIndex); err != nil {
		return err
	}

	if err := writePackageFile(filepath.Join(packageDirectory, "index.js"), cjsIndex.String()); err != nil {
		return err
	}

	if err := writePackageFile(filepath.Join(packageDirectory, "index.d.ts"), dtsIndex.String()); err != nil {
		return err
	}

	manifest := packageManifest{
		Name:        config.DistPackageName() + "/icons",
		Version:     version,
		Main:        "index.js",
		Module:      "index.mjs",
		Types:       "index.d.ts",
		SideEffects: []string{"./imports/*"},
	}

	payload, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}

	return writePackageFile(filepath.Join(packageDirectory, "package.json"), string(payload)+"\n")
}

// pruneImports deletes wrappers of icons that no longer exist, so a removed
// icon's artifacts do not outlive it.
func pruneImports(importsDirectory string, icons []*optimize.OptimizedIcon) error {
	keep := make(map[string]bool, 2*len(icons))
	for _, ic := range icons {
		keep[ic.ModuleFile] = true
		keep[ic.ScriptFile] = true
	}

	entries, err := os.ReadDir(importsDirectory)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() || keep[entry.Name()] {
			continue
		}

		if err := os.Remove(filepath.Join(importsDirectory, entry.Name())); err != nil {
			return err
		}
	}

	return nil
}

func writePackageFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o666); err != nil {
		return fmt.Errorf("could not write package file: %w", err)
	}

	return nil
}
