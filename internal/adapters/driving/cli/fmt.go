package cli

import (
	"github.com/spf13/cobra"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Rewrite the tree file in canonical form",
	Long: `Parses the tree file and writes it back in canonical form: blocks
sorted, fields in a fixed order, comments dropped. Unknown fields are
preserved. Saving an already-canonical file changes nothing.`,
	Args: cobra.NoArgs,
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	return saveTree(cmd, s)
}
