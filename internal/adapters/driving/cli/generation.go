package cli

import (
	"github.com/spf13/cobra"
)

var generationCmd = &cobra.Command{
	Use:   "generation [person-id] [root-id]",
	Short: "Show a person's generation relative to a root",
	Long: `Computes the signed blood-line distance of a person from a chosen
root: negative for ancestors, positive for descendants, 0 for the
root itself. Persons related only through marriage have no generation
number.`,
	Args: cobra.ExactArgs(2),
	RunE: runGeneration,
}

func init() {
	rootCmd.AddCommand(generationCmd)
}

func runGeneration(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	n, ok, err := s.query.GenerationNumber(args[0], args[1])
	if err != nil {
		return err
	}
	if !ok {
		cmd.Println("no blood line connects these persons")
		return nil
	}

	cmd.Printf("%+d\n", n)
	return nil
}
