package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/pynocchio/extbuild/internal/branding"
	"github.com/pynocchio/extbuild/internal/manifest"
)

//go:embed scaffolds
var scaffoldFS embed.FS

const templateSet = "scaffolds/extension"

// Data holds all template variables available to scaffold templates.
type Data struct {
	Name         string // Dotted extension name, e.g. "pynocchio"
	Target       string // CMake target, the last component of Name
	Distribution string
	Version      string
	Description  string
	Year         int
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// NewData returns Data for extension name with derived fields populated.
// The distribution defaults to the first component of name.
func NewData(name string) *Data {
	parts := strings.Split(name, ".")
	return &Data{
		Name:         name,
		Target:       parts[len(parts)-1],
		Distribution: parts[0],
		Version:      "0.1.0",
		Description:  fmt.Sprintf("Native extension %s", name),
		Year:         time.Now().Year(),
	}
}

// Generate renders the template set into outputDir. Existing files are never
// overwritten unless force is set.
func Generate(data *Data, outputDir string, force bool) (*Result, error) {
	entries, err := fs.ReadDir(scaffoldFS, templateSet)
	if err != nil {
		return nil, fmt.Errorf("template set %q not found: %w", templateSet, err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	if !force {
		for _, entry := range entries {
			outPath := filepath.Join(outputDir, strings.TrimSuffix(entry.Name(), ".tmpl"))
			if _, err := os.Stat(outPath); err == nil {
				return nil, fmt.Errorf("%s already exists; use --force to overwrite", outPath)
			}
		}
	}

	result := &Result{OutputDir: outputDir}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		// Embedded paths always use forward slashes.
		tmplBytes, err := fs.ReadFile(scaffoldFS, path.Join(templateSet, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", entry.Name(), err)
		}

		tmpl, err := template.New(entry.Name()).Option("missingkey=error").Parse(string(tmplBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", entry.Name(), err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", entry.Name(), err)
		}

		outName := strings.TrimSuffix(entry.Name(), ".tmpl")
		outPath := filepath.Join(outputDir, outName)
		if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}
		result.Files = append(result.Files, outName)
	}

	// Validate the generated manifest against the schema.
	manifestFile := filepath.Join(outputDir, branding.ManifestFile())
	valResult, valErr := manifest.ValidateFile(manifestFile)
	if valErr != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Could not validate manifest: %v", valErr))
	} else if !valResult.Valid {
		for _, issue := range valResult.Issues {
			result.Warnings = append(result.Warnings, issue.String())
		}
	}

	return result, nil
}
