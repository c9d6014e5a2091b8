package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"lintbridge/internal/adapter"
	"lintbridge/internal/config"
	"lintbridge/internal/diag"
	"lintbridge/internal/diagfmt"
	"lintbridge/internal/engine/local"
	"lintbridge/internal/finder"
)

// ProjectFileName is the project configuration looked up in the scan base
// when --project-config is not given.
const ProjectFileName = "lintbridge.toml"

var checkCmd = &cobra.Command{
	Use:   "check [flags] <directory>",
	Short: "Run the engine over a source tree",
	Long:  `Discover packages and standalone modules under a directory, resolve the layered engine configuration and report the combined diagnostics`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "text", "output format (text|json)")
	checkCmd.Flags().String("project-config", "", "project configuration file (default <directory>/"+ProjectFileName+")")
	checkCmd.Flags().String("ext", local.DefaultExt, "source file extension to scan")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	dir := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	ext, err := cmd.Flags().GetString("ext")
	if err != nil {
		return fmt.Errorf("failed to get ext flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	colorMode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	projectPath, err := cmd.Flags().GetString("project-config")
	if err != nil {
		return fmt.Errorf("failed to get project-config flag: %w", err)
	}

	files, err := finder.Walk(dir, ext)
	if err != nil {
		return fmt.Errorf("failed to discover %s: %w", dir, err)
	}

	project, err := loadProject(projectPath, files.Base())
	if err != nil {
		return err
	}

	eng := local.New(local.Options{Ext: ext, Jobs: jobs, WorkDir: files.Base()})
	a := adapter.New(eng)

	configuredBy, configDiags, err := a.Configure(project, files)
	if err != nil {
		return fmt.Errorf("failed to configure engine: %w", err)
	}
	findings, err := a.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("engine run failed: %w", err)
	}

	// Configuration problems ride along with the analysis findings, in
	// the same deterministic order.
	all := append(configDiags, findings...)
	diag.Sort(all)

	switch format {
	case "json":
		if err := diagfmt.JSON(cmd.OutOrStdout(), configuredBy, all); err != nil {
			return err
		}
	case "text":
		if configuredBy != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "configured by %s\n", configuredBy)
		}
		diagfmt.Text(cmd.OutOrStdout(), all, resolveColor(colorMode, os.Stdout))
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	if len(all) > 0 {
		os.Exit(1)
	}
	return nil
}

// loadProject reads the project configuration, falling back to an empty
// project rooted at base when no file exists.
func loadProject(explicit, base string) (*config.Project, error) {
	path := explicit
	if path == "" {
		path = filepath.Join(base, ProjectFileName)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return &config.Project{WorkDir: base}, nil
		}
	}
	project, err := config.LoadProject(path)
	if err != nil {
		return nil, err
	}
	return project, nil
}
