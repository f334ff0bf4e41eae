// Package commands implements the crosspath command line interface
package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/crosspath/internal/version"
	"github.com/arthur-debert/crosspath/pkg/cobrax/topics"
	"github.com/arthur-debert/crosspath/pkg/config"
	"github.com/arthur-debert/crosspath/pkg/crosspath"
	"github.com/arthur-debert/crosspath/pkg/errors"
	"github.com/arthur-debert/crosspath/pkg/logging"
	"github.com/arthur-debert/crosspath/pkg/ui"
)

// app holds the state shared by all commands of one invocation
type app struct {
	ops *crosspath.FileOps

	verbosity  int
	configFile string
	format     string

	cfg *config.Config
}

// loadConfig loads the configuration on first use
func (a *app) loadConfig() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return nil, errors.Wrap(err, errors.GetErrorCode(err), MsgErrLoadConfig)
	}
	a.cfg = cfg
	return cfg, nil
}

// renderer returns a renderer writing to the command's output. The --format
// flag wins over display.format from the configuration.
func (a *app) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	name := a.format
	if !cmd.Flags().Changed("format") {
		cfg, err := a.loadConfig()
		if err != nil {
			return nil, err
		}
		name = cfg.Display.Format
	}
	format, err := ui.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// render renders result with the command's renderer
func (a *app) render(cmd *cobra.Command, result interface{}) error {
	r, err := a.renderer(cmd)
	if err != nil {
		return err
	}
	if err := r.RenderResult(result); err != nil {
		return errors.Wrap(err, errors.ErrIO, MsgErrWriteOutput)
	}
	return nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(crosspath.DefaultFileOps())
}

func newRootCmd(ops *crosspath.FileOps) *cobra.Command {
	a := &app{ops: ops}

	rootCmd := &cobra.Command{
		Use:     "crosspath",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.String(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "auto", MsgFlagFormat)
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return ui.FormatNames(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{ID: "paths", Title: "PATH COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "files", Title: "FILE COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	for _, cmd := range []*cobra.Command{
		newNormalizeCmd(a),
		newNativeCmd(a),
		newInfoCmd(a),
		newJoinCmd(a),
		newShortCmd(a),
		newExtCmd(a),
	} {
		cmd.GroupID = "paths"
		rootCmd.AddCommand(cmd)
	}

	for _, cmd := range []*cobra.Command{
		newCatCmd(a),
		newWriteCmd(a),
		newMkdirCmd(a),
		newRmCmd(a),
		newCpCmd(a),
		newMvCmd(a),
		newExtractCmd(a),
	} {
		cmd.GroupID = "files"
		rootCmd.AddCommand(cmd)
	}

	for _, cmd := range []*cobra.Command{
		newBookmarkCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
		newCompletionCmd(),
	} {
		cmd.GroupID = "misc"
		rootCmd.AddCommand(cmd)
	}

	// topics are embedded, so this only fails on a broken build
	if err := topics.InitializeWithOptions(rootCmd, helpTopics(), topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}); err != nil {
		panic(err)
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}
