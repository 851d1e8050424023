package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relgate/relgate/internal/formatter"
	"github.com/relgate/relgate/internal/journal"
	"github.com/relgate/relgate/internal/styles"
)

func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded release gate runs",
		Long: `Show the release journal for this repository, newest first.

Every gate run is recorded with its outcome:
  tagged          the gate passed and a tag was created
  already-tagged  the gate passed, the version was tagged before
  would-tag       a dry run ('relgate check') stopped before tagging
  blocked         a precondition failed
  failed          tagging was attempted and failed`,
		Args: cobra.NoArgs,
		RunE: runHistory,
	}

	cmd.Flags().Int("limit", 20, "Maximum number of entries to show")
	cmd.Flags().String("tag", "", "Show only the most recent entry for a tag")
	cmd.Flags().Bool("json", false, "Output history as JSON")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx, err := newRunContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	if !ctx.Settings.JournalEnabled {
		return fmt.Errorf("the release journal is disabled (journal.enabled = false)")
	}

	j, err := journal.Open(ctx.Settings.JournalPath)
	if err != nil {
		return err
	}
	defer func() { _ = j.Close() }()

	entries, err := lookupEntries(cmd, j)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}

	if len(entries) == 0 {
		cmd.Println(styles.Render(&styles.Dimmed, "No recorded gate runs."))
		return nil
	}

	for _, entry := range entries {
		cmd.Println(formatter.Entry(entry))
	}
	return nil
}

func lookupEntries(cmd *cobra.Command, j *journal.Journal) ([]journal.Entry, error) {
	if tag, _ := cmd.Flags().GetString("tag"); tag != "" {
		entry, err := j.LastForTag(tag)
		if err != nil {
			return nil, err
		}
		if entry == nil {
			return nil, nil
		}
		return []journal.Entry{*entry}, nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	return j.Recent(limit)
}
