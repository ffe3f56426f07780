package cli

import (
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile [person-id]",
	Short: "Show a person's profile card",
	Long: `Shows one person's recorded fields together with their parents,
children, siblings (tagged full or half) and spouses.`,
	Args: cobra.ExactArgs(1),
	RunE: runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	out, err := renderer().Profile(s.query, args[0])
	if err != nil {
		return err
	}

	cmd.Print(out)
	return nil
}
