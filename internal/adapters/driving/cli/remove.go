package cli

import (
	"bufio"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var removeYes bool

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a person or relationship",
}

var removePersonCmd = &cobra.Command{
	Use:   "person [person-id]",
	Short: "Remove a person and every relationship touching them",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemovePerson,
}

var removeRelCmd = &cobra.Command{
	Use:   "relationship [relationship-id]",
	Short: "Remove a single relationship",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemoveRelationship,
}

func init() {
	removeCmd.PersistentFlags().BoolVarP(&removeYes, "yes", "y", false, "skip the confirmation prompt")
	removeCmd.AddCommand(removePersonCmd)
	removeCmd.AddCommand(removeRelCmd)
	rootCmd.AddCommand(removeCmd)
}

func runRemovePerson(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	p, err := s.query.Person(args[0])
	if err != nil {
		return err
	}

	if !confirm(cmd, "remove "+p.Name()+" and every relationship touching them?") {
		cmd.Println("aborted")
		return nil
	}

	if err := s.editor.RemovePerson(args[0]); err != nil {
		return err
	}

	cmd.Printf("removed person %s\n", args[0])
	return saveTree(cmd, s)
}

func runRemoveRelationship(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	if !confirm(cmd, "remove relationship "+args[0]+"?") {
		cmd.Println("aborted")
		return nil
	}

	if err := s.editor.RemoveRelationship(args[0]); err != nil {
		return err
	}

	cmd.Printf("removed relationship %s\n", args[0])
	return saveTree(cmd, s)
}

// confirm asks an interactive user before a destructive edit. Scripted
// use (--yes, or stdin not a terminal) proceeds without asking.
func confirm(cmd *cobra.Command, prompt string) bool {
	if removeYes || !term.IsTerminal(int(os.Stdin.Fd())) {
		return true
	}
	cmd.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n') //nolint:errcheck // CLI helper, error ignored for UX
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y")
}
