package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gtree-project/gtree/internal/core/domain"
)

var (
	addGiven   string
	addSurname string
	addSex     string
	addBorn    string
	addDied    string
	addNotes   string

	addStart  string
	addEnd    string
	addStatus string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a person or relationship",
}

var addPersonCmd = &cobra.Command{
	Use:   "person",
	Short: "Add a person",
	Long: `Adds a person and prints the freshly allocated id. All fields are
optional; dates use YYYY, YYYY-MM or YYYY-MM-DD, with a ~ prefix for
approximate dates.`,
	Args: cobra.NoArgs,
	RunE: runAddPerson,
}

var addParentCmd = &cobra.Command{
	Use:   "parent [parent-id] [child-id]",
	Short: "Add a parent-child relationship",
	Args:  cobra.ExactArgs(2),
	RunE:  runAddParent,
}

var addSpouseCmd = &cobra.Command{
	Use:   "spouse [person-id] [person-id]",
	Short: "Add a spousal relationship",
	Long: `Adds a spousal relationship between two persons. --start and --end
bound the partnership; a second marriage between the same pair is
accepted only when the date ranges do not overlap.`,
	Args: cobra.ExactArgs(2),
	RunE: runAddSpouse,
}

func init() {
	addPersonCmd.Flags().StringVar(&addGiven, "given", "", "given name")
	addPersonCmd.Flags().StringVar(&addSurname, "surname", "", "surname")
	addPersonCmd.Flags().StringVar(&addSex, "sex", "", "sex (male/female)")
	addPersonCmd.Flags().StringVar(&addBorn, "born", "", "birth date")
	addPersonCmd.Flags().StringVar(&addDied, "died", "", "death date")
	addPersonCmd.Flags().StringVar(&addNotes, "notes", "", "free-form notes")

	addSpouseCmd.Flags().StringVar(&addStart, "start", "", "start date (marriage)")
	addSpouseCmd.Flags().StringVar(&addEnd, "end", "", "end date (divorce or death)")
	addSpouseCmd.Flags().StringVar(&addStatus, "status", "", "status (current/ended)")

	addCmd.AddCommand(addPersonCmd)
	addCmd.AddCommand(addParentCmd)
	addCmd.AddCommand(addSpouseCmd)
	rootCmd.AddCommand(addCmd)
}

func runAddPerson(cmd *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	p := domain.Person{
		GivenName: addGiven,
		Surname:   addSurname,
		Sex:       domain.ParseSex(addSex),
		Notes:     addNotes,
	}
	if p.Birth, err = parseDateFlag("born", addBorn); err != nil {
		return err
	}
	if p.Death, err = parseDateFlag("died", addDied); err != nil {
		return err
	}

	id, err := s.editor.AddPerson(p)
	if err != nil {
		return err
	}

	cmd.Printf("added person %s\n", id)
	return saveTree(cmd, s)
}

func runAddParent(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	id, err := s.editor.AddRelationship(domain.Relationship{
		Kind:     domain.KindParentChild,
		ParentID: args[0],
		ChildID:  args[1],
	})
	if err != nil {
		return err
	}

	cmd.Printf("added relationship %s\n", id)
	return saveTree(cmd, s)
}

func runAddSpouse(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	r := domain.Relationship{
		Kind:    domain.KindSpousal,
		PersonA: args[0],
		PersonB: args[1],
		Status:  domain.SpousalStatus(addStatus),
	}
	if r.Status == "" {
		r.Status = domain.StatusUnknown
	}
	if r.Start, err = parseDateFlag("start", addStart); err != nil {
		return err
	}
	if r.End, err = parseDateFlag("end", addEnd); err != nil {
		return err
	}

	id, err := s.editor.AddRelationship(r)
	if err != nil {
		return err
	}

	cmd.Printf("added relationship %s\n", id)
	return saveTree(cmd, s)
}

func parseDateFlag(name, value string) (domain.PartialDate, error) {
	if value == "" {
		return domain.PartialDate{}, nil
	}
	d, err := domain.ParseDate(value)
	if err != nil {
		return domain.PartialDate{}, fmt.Errorf("--%s: %w", name, err)
	}
	return d, nil
}
