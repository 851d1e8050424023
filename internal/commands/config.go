package commands

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/relgate/relgate/internal/config"
	"github.com/relgate/relgate/internal/fs"
	"github.com/relgate/relgate/internal/styles"
)

// NewConfigCmd creates the config command with subcommands.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and initialize relgate configuration",
		Long: `Inspect the effective configuration for this repository.

Configuration is resolved in precedence order: built-in defaults,
RELGATE_* environment variables, then the repo-local ` + config.FileName + `
at the repository root.

Examples:
  relgate config list            # Show effective configuration
  relgate config list --json     # Same, machine readable
  relgate config path            # Show the repo config file location
  relgate config init            # Write a commented starter config`,
	}

	cmd.AddCommand(newConfigListCmd())
	cmd.AddCommand(newConfigPathCmd())
	cmd.AddCommand(newConfigInitCmd())

	return cmd
}

func newConfigListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  runConfigList,
	}

	cmd.Flags().Bool("json", false, "Output configuration as JSON")

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the repo config file path",
		Args:  cobra.NoArgs,
		RunE:  runConfigPath,
	}
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter " + config.FileName + " to the repository root",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
}

// configReport mirrors Settings with stable JSON keys.
type configReport struct {
	Project struct {
		Name string `json:"name,omitempty"`
	} `json:"project"`
	Release struct {
		Branch    string `json:"branch"`
		TagPrefix string `json:"tag_prefix"`
		Annotate  bool   `json:"annotate"`
	} `json:"release"`
	Version struct {
		Source  string `json:"source"`
		File    string `json:"file,omitempty"`
		Pattern string `json:"pattern,omitempty"`
		Command string `json:"command,omitempty"`
	} `json:"version"`
	Hooks struct {
		Tag string `json:"tag,omitempty"`
	} `json:"hooks"`
	Journal struct {
		Enabled bool   `json:"enabled"`
		Path    string `json:"path"`
	} `json:"journal"`
}

func runConfigList(cmd *cobra.Command, args []string) error {
	ctx, err := newRunContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	s := ctx.Settings

	var report configReport
	report.Project.Name = s.ProjectName
	report.Release.Branch = s.ReleaseBranch
	report.Release.TagPrefix = s.TagPrefix
	report.Release.Annotate = s.Annotate
	report.Version.Source = s.VersionSource
	report.Version.File = s.VersionFile
	report.Version.Pattern = s.VersionPattern
	report.Version.Command = s.VersionCommand
	report.Hooks.Tag = s.TagHook
	report.Journal.Enabled = s.JournalEnabled
	report.Journal.Path = s.JournalPath

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	if s.ProjectName != "" {
		cmd.Printf("project.name = %q\n", s.ProjectName)
	}
	cmd.Printf("release.branch = %q\n", s.ReleaseBranch)
	cmd.Printf("release.tag_prefix = %q\n", s.TagPrefix)
	cmd.Printf("release.annotate = %t\n", s.Annotate)
	cmd.Printf("version.source = %q\n", s.VersionSource)
	switch s.VersionSource {
	case "command":
		cmd.Printf("version.command = %q\n", s.VersionCommand)
	default:
		cmd.Printf("version.file = %q\n", s.VersionFile)
		if s.VersionPattern != "" {
			cmd.Printf("version.pattern = %q\n", s.VersionPattern)
		}
	}
	if s.TagHook != "" {
		cmd.Printf("hooks.tag = %q\n", s.TagHook)
	}
	cmd.Printf("journal.enabled = %t\n", s.JournalEnabled)
	cmd.Printf("journal.path = %q\n", s.JournalPath)

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	ctx, err := newRunContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	path := filepath.Join(ctx.Root, config.FileName)
	if config.FileConfigExists(ctx.Root) {
		cmd.Println(path)
	} else {
		cmd.Printf("%s %s\n", path, styles.Render(&styles.Dimmed, "(not created)"))
	}
	return nil
}

// starterConfig is the template written by 'relgate config init'.
const starterConfig = `# relgate configuration. Every key is optional; remove what you
# don't need. Values here override RELGATE_* environment variables
# and built-in defaults.

[release]
branch = "master"
# tag_prefix = "v"
# annotate = true

[version]
source = "file"
file = "VERSION"
# pattern = '__version__ = "(.+)"'

[hooks]
# Command run to create the tag. It sees RELGATE_PROJECT,
# RELGATE_VERSION and RELGATE_TAG in its environment and must exit 0
# on success. Leave unset to let relgate run 'git tag' itself.
# tag = "./scripts/tag-release.sh"

[journal]
# enabled = true
# path = ".git/relgate/journal.db"
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	ctx, err := newRunContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	path := filepath.Join(ctx.Root, config.FileName)
	if config.FileConfigExists(ctx.Root) {
		return fmt.Errorf("%s already exists", path)
	}

	if err := fs.WriteFileAtomic(path, []byte(starterConfig), fs.FileGit); err != nil {
		return err
	}

	cmd.Println(styles.Render(&styles.Success, "Created "+path))
	return nil
}
