package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/crosspath/pkg/config"
	"github.com/arthur-debert/crosspath/pkg/crosspath"
	"github.com/arthur-debert/crosspath/pkg/ui/display"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
	}
	cmd.AddCommand(newConfigInitCmd(a), newConfigShowCmd(a), newConfigPathCmd(a))
	return cmd
}

// configPath returns the file the configuration commands act on
func (a *app) configPath() string {
	if a.configFile != "" {
		return a.configFile
	}
	return config.DefaultPath()
}

func newConfigInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [PATH]",
		Short: MsgConfigInitShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := a.configPath()
			if len(args) == 1 {
				raw = args[0]
			}
			p, err := crosspath.New(raw)
			if err != nil {
				return err
			}
			if err := config.WriteDefault(a.ops, p, force); err != nil {
				return err
			}
			return a.render(cmd, &display.Message{
				Command: "config init",
				Path:    p.String(),
				Message: fmt.Sprintf(MsgConfigWritten, p),
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	return cmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			return config.Generate(cmd.OutOrStdout(), cfg)
		},
	}
}

func newConfigPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: MsgConfigPathShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd, &display.Value{Command: "config path", Value: a.configPath()})
		},
	}
}
