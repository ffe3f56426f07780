package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gtree-project/gtree/internal/render"
)

var (
	exportOut       string
	exportAncestors bool
	exportDepth     int
	exportInline    bool
)

var exportCmd = &cobra.Command{
	Use:   "export [person-id]",
	Short: "Export a chart as HTML",
	Long: `Renders a chart and writes it as an HTML report: a standalone page
by default, or a fragment for embedding with --inline. Without --out
the HTML goes to standard output.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().BoolVarP(&exportAncestors, "ancestors", "a", false, "export ancestors instead of descendants")
	exportCmd.Flags().IntVarP(&exportDepth, "depth", "d", 0, "maximum generations (0 for all)")
	exportCmd.Flags().BoolVar(&exportInline, "inline", false, "emit an embeddable fragment instead of a full page")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	p, err := s.query.Person(args[0])
	if err != nil {
		return err
	}

	r := renderer()
	title := "Descendants of " + p.Name()
	var chart string
	if exportAncestors {
		title = "Ancestors of " + p.Name()
		chart, err = r.AncestorChart(s.query, args[0], exportDepth)
	} else {
		chart, err = r.DescendantChart(s.query, args[0], exportDepth)
	}
	if err != nil {
		return err
	}

	html, err := render.HTMLReport(title, filepath.Base(s.path), chart, !exportInline)
	if err != nil {
		return err
	}

	if exportOut == "" {
		cmd.Print(html)
		return nil
	}
	if err := os.WriteFile(exportOut, []byte(html), 0644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	cmd.Printf("wrote %s\n", exportOut)
	return nil
}
