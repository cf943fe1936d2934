package templates

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// TplSuffix marks files whose contents are rendered before copying; the
// suffix is stripped from the destination name. All other files are copied
// byte-for-byte.
const TplSuffix = ".tpl"

// Render copies the template tree at sourceDir into destDir. Files ending in
// .tpl are executed as text/template against tokens; everything else is
// copied verbatim. The template.yaml metadata file is never copied.
func Render(sourceDir, destDir string, tokens map[string]string) error {
	return filepath.Walk(sourceDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		if info.IsDir() {
			return os.MkdirAll(filepath.Join(destDir, renderPath(rel, tokens)), 0750) // #nosec G301
		}
		if filepath.Base(rel) == MetadataFile {
			return nil
		}

		dst := filepath.Join(destDir, renderPath(rel, tokens))
		if strings.HasSuffix(path, TplSuffix) {
			return renderFile(path, strings.TrimSuffix(dst, TplSuffix), tokens)
		}
		return copyFile(path, dst)
	})
}

// renderPath substitutes tokens that appear in path segments, so a template
// can ship a directory literally named {{project_name}}.
func renderPath(rel string, tokens map[string]string) string {
	out := rel
	for name, value := range tokens {
		out = strings.ReplaceAll(out, "{{"+name+"}}", value)
	}
	return out
}

func renderFile(src, dst string, tokens map[string]string) error {
	data, err := os.ReadFile(filepath.Clean(src)) // #nosec G304 -- path comes from walking the template dir
	if err != nil {
		return err
	}

	tpl, err := template.New(filepath.Base(src)).Option("missingkey=error").Parse(string(data))
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", src, err)
	}

	out, err := os.Create(dst) // #nosec G304
	if err != nil {
		return err
	}
	defer out.Close()

	if err := tpl.Execute(out, tokens); err != nil {
		return fmt.Errorf("failed to render template %s: %w", src, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) // #nosec G304
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst) // #nosec G304
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
