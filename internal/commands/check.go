package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relgate/relgate/internal/gate"
	"github.com/relgate/relgate/internal/logger"
	"github.com/relgate/relgate/internal/styles"
)

func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the release preconditions without tagging",
		Long: `Run the same checks as 'relgate release' but never create a tag.

Useful as a pre-release sanity check or in CI: a failing precondition
exits 1 with the same message 'relgate release' would print, while a
repository that is ready to release exits 0 and reports the tag that
would be created.`,
		Args: cobra.NoArgs,
		RunE: runCheck,
	}

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("check_command")

	ctx, err := newRunContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	result, err := ctx.Gate.Run(gate.Options{DryRun: true, Output: cmd.OutOrStdout()})
	if err != nil {
		log.Debug("check failed", "error", err)
		return err
	}

	switch {
	case result.TagExisted:
		cmd.Println(styles.Render(&styles.Info,
			fmt.Sprintf("Version %s is already tagged as '%s'.", result.Version, result.Tag)))
	case result.WouldTag:
		cmd.Println(styles.Render(&styles.Success,
			fmt.Sprintf("Release gate passed; would tag '%s'.", result.Tag)))
	}

	return nil
}
