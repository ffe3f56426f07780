package cli

import (
	"github.com/spf13/cobra"

	"github.com/gtree-project/gtree/internal/core/domain"
)

var (
	updateGiven   string
	updateSurname string
	updateSex     string
	updateBorn    string
	updateDied    string
	updateNotes   string
)

var updateCmd = &cobra.Command{
	Use:   "update [person-id]",
	Short: "Update a person's fields",
	Long: `Updates the fields of an existing person. Only the flags given on
the command line change; every other field keeps its value. Pass an
empty string to clear a field.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateGiven, "given", "", "given name")
	updateCmd.Flags().StringVar(&updateSurname, "surname", "", "surname")
	updateCmd.Flags().StringVar(&updateSex, "sex", "", "sex (male/female)")
	updateCmd.Flags().StringVar(&updateBorn, "born", "", "birth date")
	updateCmd.Flags().StringVar(&updateDied, "died", "", "death date")
	updateCmd.Flags().StringVar(&updateNotes, "notes", "", "free-form notes")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	current, err := s.query.Person(args[0])
	if err != nil {
		return err
	}
	p := *current

	flags := cmd.Flags()
	if flags.Changed("given") {
		p.GivenName = updateGiven
	}
	if flags.Changed("surname") {
		p.Surname = updateSurname
	}
	if flags.Changed("sex") {
		p.Sex = domain.ParseSex(updateSex)
	}
	if flags.Changed("born") {
		if p.Birth, err = parseDateFlag("born", updateBorn); err != nil {
			return err
		}
	}
	if flags.Changed("died") {
		if p.Death, err = parseDateFlag("died", updateDied); err != nil {
			return err
		}
	}
	if flags.Changed("notes") {
		p.Notes = updateNotes
	}

	if err := s.editor.UpdatePerson(args[0], p); err != nil {
		return err
	}

	cmd.Printf("updated person %s\n", args[0])
	return saveTree(cmd, s)
}
