package cli

import (
	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path [person-id] [person-id]",
	Short: "Show how two persons are related",
	Long: `Finds the shortest chain of parent-child and spousal links
connecting two persons and prints it hop by hop.`,
	Args: cobra.ExactArgs(2),
	RunE: runPath,
}

func init() {
	rootCmd.AddCommand(pathCmd)
}

func runPath(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	from, err := s.query.Person(args[0])
	if err != nil {
		return err
	}
	steps, err := s.query.RelationshipPath(args[0], args[1])
	if err != nil {
		return err
	}

	cmd.Print(renderer().Path(from, steps))
	return nil
}
