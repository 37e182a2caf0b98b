package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcus/alertkit/internal/journal"
	"github.com/marcus/alertkit/internal/output"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently dismissed alerts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		stats, _ := cmd.Flags().GetBool("stats")

		j, err := journal.Open(projectPaths().Journal)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer j.Close()

		if stats {
			counts, err := j.CountByReason(cmd.Context())
			if err != nil {
				output.Error("%v", err)
				return err
			}
			if jsonOutput {
				return output.JSON(counts)
			}
			reasons := make([]string, 0, len(counts))
			for r := range counts {
				reasons = append(reasons, r)
			}
			sort.Strings(reasons)
			for _, r := range reasons {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %d\n", r, counts[r])
			}
			return nil
		}

		entries, err := j.Recent(cmd.Context(), limit)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		if jsonOutput {
			if entries == nil {
				entries = []journal.Outcome{}
			}
			return output.JSON(entries)
		}
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No alerts recorded")
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "HISTORY (%d):\n", len(entries))
		for _, line := range output.RenderChildrenList(historyNodes(entries)) {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

func historyNodes(entries []journal.Outcome) []output.TreeNode {
	nodes := make([]output.TreeNode, 0, len(entries))
	for _, e := range entries {
		id := e.AlertID
		if len(id) > 8 {
			id = id[:8]
		}
		title := e.Title
		if title == "" {
			title = "(untitled)"
		}
		nodes = append(nodes, output.TreeNode{
			ID:    id,
			Title: joinNonEmpty(" ", title, output.FormatReason(e.Reason), output.FormatTimeAgo(e.DismissedAt)),
			Kind:  e.Category,
			Flags: nonEmpty(e.Button),
		})
	}
	return nodes
}

func joinNonEmpty(sep string, parts ...string) string {
	return strings.Join(nonEmpty(parts...), sep)
}

func nonEmpty(s ...string) []string {
	var out []string
	for _, v := range s {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntP("limit", "n", 20, "number of entries (0 = all)")
	historyCmd.Flags().Bool("stats", false, "count outcomes by dismiss reason")
	historyCmd.Flags().Bool("json", false, "JSON output")
}
