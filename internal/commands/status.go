package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/relgate/relgate/internal/formatter"
	"github.com/relgate/relgate/internal/git"
	"github.com/relgate/relgate/internal/styles"
	"github.com/relgate/relgate/internal/version"
)

// statusReport is the machine-readable shape of 'relgate status --json'.
type statusReport struct {
	Project         string   `json:"project"`
	Root            string   `json:"root"`
	Branch          string   `json:"branch"`
	ReleaseBranch   string   `json:"release_branch"`
	OnReleaseBranch bool     `json:"on_release_branch"`
	Clean           bool     `json:"clean"`
	ModifiedFiles   []string `json:"modified_files,omitempty"`
	Version         string   `json:"version,omitempty"`
	VersionError    string   `json:"version_error,omitempty"`
	Tag             string   `json:"tag,omitempty"`
	TagExists       bool     `json:"tag_exists"`
	Ready           bool     `json:"ready"`
}

func NewStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show release readiness without failing",
		Long: `Show the state of every release precondition.

Unlike 'relgate check', status never exits 1 for a failing precondition:
it reports all of them and leaves the verdict to the reader. Use --json
for machine-readable output.`,
		Args: cobra.NoArgs,
		RunE: runStatus,
	}

	cmd.Flags().Bool("json", false, "Output status as JSON")

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx, err := newRunContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	report, err := buildStatusReport(ctx)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	printStatusReport(cmd, report)
	return nil
}

// buildStatusReport gathers every precondition without short-circuiting.
// Only environment failures (git itself breaking) are returned as errors.
func buildStatusReport(ctx *runContext) (*statusReport, error) {
	client := git.NewClient()

	report := &statusReport{
		Project:       ctx.Gate.Project,
		Root:          ctx.Root,
		ReleaseBranch: ctx.Settings.ReleaseBranch,
	}

	branch, err := client.CurrentBranch(ctx.Root)
	if err != nil {
		return nil, err
	}
	report.Branch = branch
	report.OnReleaseBranch = branch == ctx.Settings.ReleaseBranch

	files, err := client.ModifiedFiles(ctx.Root)
	if err != nil {
		return nil, err
	}
	report.ModifiedFiles = files
	report.Clean = len(files) == 0

	resolver := version.FromSettings(ctx.Settings)
	if ver, verr := resolver.Resolve(ctx.Root); verr != nil {
		report.VersionError = verr.Error()
	} else {
		report.Version = ver
		report.Tag = ctx.Settings.TagName(ver)

		exists, terr := client.TagExists(ctx.Root, report.Tag)
		if terr != nil {
			return nil, terr
		}
		report.TagExists = exists
	}

	report.Ready = report.OnReleaseBranch && report.Clean && report.VersionError == ""
	return report, nil
}

func printStatusReport(cmd *cobra.Command, report *statusReport) {
	cmd.Printf("%s on %s\n\n", report.Project, styles.Render(&styles.Info, report.Branch))

	cmd.Printf("  %s release branch (%s)\n", formatter.CheckMarker(report.OnReleaseBranch), report.ReleaseBranch)
	cmd.Printf("  %s clean working tree", formatter.CheckMarker(report.Clean))
	if !report.Clean {
		cmd.Printf(" (%d modified)", len(report.ModifiedFiles))
	}
	cmd.Println()

	if report.VersionError != "" {
		cmd.Printf("  %s version (%s)\n", formatter.CheckMarker(false), report.VersionError)
	} else {
		cmd.Printf("  %s version %s\n", formatter.CheckMarker(true), report.Version)
	}

	switch {
	case report.Tag == "":
		cmd.Printf("  %s tag\n", formatter.SkipMarker())
	case report.TagExists:
		cmd.Printf("  %s tag '%s' exists\n", formatter.CheckMarker(true), report.Tag)
	default:
		cmd.Printf("  %s tag '%s' not created yet\n", formatter.SkipMarker(), report.Tag)
	}

	cmd.Println()
	if report.Ready {
		cmd.Println(styles.Render(&styles.Success, "Ready to release."))
	} else {
		cmd.Println(styles.Render(&styles.Warning, "Not ready to release."))
	}

	if len(report.ModifiedFiles) > 0 {
		cmd.Println()
		for _, file := range report.ModifiedFiles {
			cmd.Println(styles.Render(&styles.Dimmed, "  "+file))
		}
	}
}
