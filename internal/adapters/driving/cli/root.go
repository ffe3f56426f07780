package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	configfile "github.com/gtree-project/gtree/internal/adapters/driven/config/file"
	"github.com/gtree-project/gtree/internal/adapters/driven/storage/gtr"
	"github.com/gtree-project/gtree/internal/core/domain"
	"github.com/gtree-project/gtree/internal/core/services"
	"github.com/gtree-project/gtree/internal/logger"
	"github.com/gtree-project/gtree/internal/render"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	treeFile   string
	verbose    bool
	asciiLines bool

	// configDir overrides the default ~/.gtree directory; used by tests.
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "gtree",
	Short: "Family tree toolkit",
	Long: `gtree maintains family trees stored as plain text files.

It draws ancestor and descendant charts, renders person profiles,
answers kinship queries and validates the tree's structure. The file
format is line-oriented and diff-friendly, safe to edit by hand.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	// A bare invocation on a terminal opens the interactive browser;
	// piped or scripted use gets the help text instead.
	RunE: func(cmd *cobra.Command, args []string) error {
		if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
			return runShell(cmd, args)
		}
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&treeFile, "file", "f", "", "family tree file (.gtr)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging to stderr")
	rootCmd.PersistentFlags().BoolVar(&asciiLines, "ascii", false, "draw charts with ASCII characters")
}

// session bundles the services a command needs over one loaded file.
type session struct {
	tree   *domain.Tree
	query  *services.QueryService
	editor *services.EditorService
	path   string
}

// openSession loads the tree named by --file, falling back to the
// last file recorded in the configuration. A successful open is
// remembered as the new last file.
func openSession() (*session, error) {
	cfg := openConfig()

	path := treeFile
	if path == "" && cfg != nil {
		path = cfg.GetString(configfile.KeyLastFile)
	}
	if path == "" {
		return nil, errors.New("no file given: use --file or open one first")
	}

	store := gtr.NewStore()
	tree, err := store.Load(path)
	if err != nil {
		return nil, err
	}

	if cfg != nil && path != cfg.GetString(configfile.KeyLastFile) {
		if err := cfg.Set(configfile.KeyLastFile, path); err != nil {
			logger.Warn("could not record last file: %v", err)
		}
	}

	maxAge := 0
	if cfg != nil {
		maxAge = cfg.GetInt(configfile.KeyMaxAgeYears)
	}

	return &session{
		tree:   tree,
		query:  services.NewQueryService(tree, maxAge),
		editor: services.NewEditorService(tree, store, path),
		path:   path,
	}, nil
}

// renderer builds the chart renderer, honouring the --ascii flag and
// the render.ascii configuration key.
func renderer() *render.Renderer {
	ascii := asciiLines
	if !ascii {
		if cfg := openConfig(); cfg != nil {
			ascii = cfg.GetBool(configfile.KeyRenderASCII)
		}
	}
	return render.NewRenderer(ascii)
}

// openConfig opens the configuration store. Configuration is an
// optional convenience; failures degrade to defaults.
func openConfig() *configfile.ConfigStore {
	cfg, err := configfile.NewConfigStore(configDir)
	if err != nil {
		logger.Warn("could not open config: %v", err)
		return nil
	}
	return cfg
}

// saveTree writes the session's tree back to its file and reports the
// result on the command's output.
func saveTree(cmd *cobra.Command, s *session) error {
	if err := s.editor.Save(); err != nil {
		return fmt.Errorf("save failed: %w", err)
	}
	cmd.Printf("saved %s\n", s.path)
	return nil
}
