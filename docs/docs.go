//go:build docs

package main

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/pkg/errors"
	log "github.com/rs/zerolog"
	"github.com/spf13/cobra/doc"

	"github.com/maxgio92/cyclemark/internal/settings"
	"github.com/maxgio92/cyclemark/pkg/cmd"
)

const (
	docsDir        = "docs"
	readmeTemplate = "README.md.tpl"
	readmePath     = "README.md"
	templateMarker = "{{ .CLI_REFERENCE }}"
)

func main() {
	linkHandler := func(filename string) string {
		if filename == settings.CmdName+".md" {
			// The root command reference lands in the README.
			return readmePath
		}

		return path.Join(docsDir, filename)
	}
	noPrepender := func(string) string { return "" }

	root := cmd.NewCommand(cmd.NewOptions(
		cmd.WithLogger(log.New(os.Stderr).Level(log.InfoLevel)),
	))

	if err := doc.GenMarkdownTreeCustom(root, docsDir, noPrepender, linkHandler); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := renderReadme(path.Join(docsDir, settings.CmdName+".md")); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// renderReadme replaces the template marker in the handwritten README
// template with the generated root command reference.
func renderReadme(cmdDocsPath string) error {
	readme, err := os.ReadFile(readmeTemplate)
	if err != nil {
		return errors.Wrap(err, "failed to read the README template")
	}

	cmdDocs, err := os.ReadFile(cmdDocsPath)
	if err != nil {
		return errors.Wrap(err, "failed to read the generated CLI reference")
	}

	final := strings.Replace(string(readme), templateMarker, string(cmdDocs), 1)

	return os.WriteFile(readmePath, []byte(final), 0644)
}
