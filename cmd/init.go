package cmd

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//go:embed templates/*
var tplFS embed.FS

// init: scaffold a new project
var InitCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Scaffold a new Fidel project",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// targetDir is where files go, name is for templating
		var targetDir, name string
		if len(args) == 1 {
			targetDir = args[0]
			name = filepath.Base(args[0])
		} else {
			targetDir = "."
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			name = filepath.Base(cwd)
		}
		return scaffold(targetDir, name)
	},
}

func scaffold(targetDir, name string) error {
	// If we are making a new subdirectory, ensure it doesn't already exist
	if targetDir != "." {
		if _, err := os.Stat(targetDir); err == nil {
			return fmt.Errorf("directory %q already exists", targetDir)
		}
	}

	step("scaffolding new project %q ...", name)

	if err := os.MkdirAll(filepath.Join(targetDir, "samples"), 0o755); err != nil {
		return errors.Wrap(err, "creating samples dir")
	}

	data := map[string]string{"Name": name}
	files := map[string]string{
		"templates/hello.fdl.tpl": "samples/hello.fdl",
		"templates/fidel.yml.tpl": "fidel.yml",
		"templates/gitignore.tpl": ".gitignore",
	}
	for tplPath, outName := range files {
		if err := writeTpl(tplPath, filepath.Join(targetDir, outName), data); err != nil {
			return err
		}
	}

	success("project %q initialized!", name)
	return nil
}

// writeTpl loads tplName from tplFS, executes it with data, and writes to outPath
func writeTpl(tplName, outPath string, data any) error {
	t, err := template.ParseFS(tplFS, tplName)
	if err != nil {
		return errors.Wrapf(err, "parsing template %s", tplName)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return errors.Wrapf(err, "creating %s", outPath)
	}
	defer f.Close()

	if err := t.Execute(f, data); err != nil {
		return errors.Wrapf(err, "writing %s", outPath)
	}
	return nil
}
