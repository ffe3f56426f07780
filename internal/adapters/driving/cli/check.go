package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gtree-project/gtree/internal/core/domain"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the tree's structure and plausibility",
	Long: `Sweeps the whole tree and reports findings: structural errors
(dangling references, cycles, too many parents, overlapping
marriages, impossible dates) and plausibility warnings (implausible
ages, a child born before its parent). Exits non-zero when any error
is found.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	issues := s.query.Validate()
	cmd.Print(renderer().Issues(issues))

	errs := 0
	for _, i := range issues {
		if i.Severity == domain.SeverityError {
			errs++
		}
	}
	if errs > 0 {
		return fmt.Errorf("%d error(s) found", errs)
	}
	return nil
}
