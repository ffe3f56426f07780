package cli

import (
	"github.com/spf13/cobra"
)

var (
	treeAncestors bool
	treeDepth     int
)

var treeCmd = &cobra.Command{
	Use:   "tree [person-id]",
	Short: "Draw a descendant or ancestor chart",
	Long: `Draws the family tree rooted at a person.

By default the chart shows descendants with spouses inline; pass
--ancestors to walk up the tree instead. --depth limits how many
generations are drawn.`,
	Args: cobra.ExactArgs(1),
	RunE: runTree,
}

func init() {
	treeCmd.Flags().BoolVarP(&treeAncestors, "ancestors", "a", false, "show ancestors instead of descendants")
	treeCmd.Flags().IntVarP(&treeDepth, "depth", "d", 0, "maximum generations (0 for all)")
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	r := renderer()
	var out string
	if treeAncestors {
		out, err = r.AncestorChart(s.query, args[0], treeDepth)
	} else {
		out, err = r.DescendantChart(s.query, args[0], treeDepth)
	}
	if err != nil {
		return err
	}

	cmd.Print(out)
	return nil
}
