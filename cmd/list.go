package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/moviegraph/moviegraph/internal/recordcore"
	"github.com/moviegraph/moviegraph/internal/ui"
)

var (
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List actors and their movies",
	Long: `Lists every actor with the movies starring them, in seed order.
Movies whose actor does not exist are listed under "Unknown actor".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderList(cmd.OutOrStdout(), core, listJSON)
	},
}

func renderList(w io.Writer, c *recordcore.Core, asJSON bool) error {
	nodes := ui.BuildTree(c)

	if asJSON {
		out := make([]*ui.TreeNodeJSON, len(nodes))
		for i, n := range nodes {
			out[i] = n.ToJSON()
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if len(nodes) == 0 {
		fmt.Fprintln(w, ui.Muted.Render("No actors or movies found."))
		return nil
	}

	fmt.Fprint(w, ui.RenderTree(nodes))

	movies, actors := c.Counts()
	fmt.Fprintln(w, ui.RenderCount(actors, "actor")+ui.Muted.Render(", ")+ui.RenderCount(movies, "movie"))
	return nil
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(listCmd)
}
