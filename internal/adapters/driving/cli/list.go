package cli

import (
	"github.com/spf13/cobra"

	"github.com/gtree-project/gtree/internal/core/domain"
)

var (
	listGiven   string
	listSurname string
)

var listCmd = &cobra.Command{
	Use:   "list [pattern]",
	Short: "List persons, optionally filtered",
	Long: `Lists persons as a table. The optional positional pattern is a
regular expression matched against name, id and notes; --given and
--surname narrow by the individual name parts.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listGiven, "given", "", "match given name against a regular expression")
	listCmd.Flags().StringVar(&listSurname, "surname", "", "match surname against a regular expression")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	q := domain.PersonQuery{Given: listGiven, Surname: listSurname}
	if len(args) == 1 {
		q.Any = args[0]
	}

	persons, err := s.query.Find(q)
	if err != nil {
		return err
	}

	cmd.Print(renderer().Table(persons))
	return nil
}
